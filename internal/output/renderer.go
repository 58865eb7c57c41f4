package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/atikulmunna/logclean/internal/model"
)

// Renderer writes a run summary to an output stream.
type Renderer interface {
	Render(sum model.Summary) error
}

// NewRenderer picks a Renderer for the given format name: text, json or yaml.
func NewRenderer(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return NewTextRenderer(), nil
	case "json":
		return NewJSONRenderer(), nil
	case "yaml", "yml":
		return NewYAMLRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// ---------------------------------------------------------------------------
// Text Renderer (colorized terminal report)
// ---------------------------------------------------------------------------

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")) // cyan
	styleLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))           // gray
	styleInfo  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))            // yellow
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // red bold
	styleCount = lipgloss.NewStyle().Bold(true)
	styleEmpty = lipgloss.NewStyle().Faint(true)
)

// TextRenderer prints the summary as a human-readable report.
type TextRenderer struct {
	w io.Writer
}

// NewTextRenderer returns a Renderer that writes colorized text to stdout.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{w: os.Stdout}
}

func (r *TextRenderer) Render(sum model.Summary) error {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Log summary") + "\n")
	fmt.Fprintf(&b, "  %s %s\n", styleLabel.Render("total:  "), styleCount.Render(fmt.Sprint(sum.TotalLines)))
	fmt.Fprintf(&b, "  %s %s\n", styleLabel.Render("valid:  "), styleCount.Render(fmt.Sprint(sum.ValidLines)))
	fmt.Fprintf(&b, "  %s %s\n", styleLabel.Render("invalid:"), styleCount.Render(fmt.Sprint(sum.InvalidLines)))

	b.WriteString("\n" + styleTitle.Render("Levels") + "\n")
	for _, lc := range []struct {
		level string
		count int
	}{
		{model.LevelInfo, sum.Levels.Info},
		{model.LevelWarn, sum.Levels.Warn},
		{model.LevelError, sum.Levels.Error},
	} {
		fmt.Fprintf(&b, "  %s %d\n", styleLevelTag(lc.level), lc.count)
	}

	b.WriteString("\n" + styleTitle.Render("Top services") + "\n")
	if len(sum.TopServices) == 0 {
		b.WriteString("  " + styleEmpty.Render("(none)") + "\n")
	}
	for i, s := range sum.TopServices {
		fmt.Fprintf(&b, "  %d. %s %s\n", i+1, s.Service, styleCount.Render(fmt.Sprintf("(%d)", s.Count)))
	}

	b.WriteString("\n" + styleTitle.Render("Top errors") + "\n")
	if len(sum.TopErrors) == 0 {
		b.WriteString("  " + styleEmpty.Render("(none)") + "\n")
	}
	for i, e := range sum.TopErrors {
		fmt.Fprintf(&b, "  %d. %s %s\n", i+1, e.Message, styleCount.Render(fmt.Sprintf("(%d)", e.Count)))
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func styleLevelTag(level string) string {
	padded := fmt.Sprintf("%-5s", level)
	switch level {
	case model.LevelWarn:
		return styleWarn.Render(padded)
	case model.LevelError:
		return styleError.Render(padded)
	default:
		return styleInfo.Render(padded)
	}
}

// ---------------------------------------------------------------------------
// JSON Renderer (the summary document, for piping)
// ---------------------------------------------------------------------------

// JSONRenderer prints the summary in the same form as summary.json.
type JSONRenderer struct {
	w io.Writer
}

// NewJSONRenderer returns a Renderer that writes indented JSON to stdout.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{w: os.Stdout}
}

func (r *JSONRenderer) Render(sum model.Summary) error {
	return EncodeSummary(r.w, sum)
}

// ---------------------------------------------------------------------------
// YAML Renderer
// ---------------------------------------------------------------------------

// YAMLRenderer prints the summary as a YAML document.
type YAMLRenderer struct {
	w io.Writer
}

// NewYAMLRenderer returns a Renderer that writes YAML to stdout.
func NewYAMLRenderer() *YAMLRenderer {
	return &YAMLRenderer{w: os.Stdout}
}

func (r *YAMLRenderer) Render(sum model.Summary) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(sum); err != nil {
		return fmt.Errorf("encoding summary as yaml: %w", err)
	}
	return enc.Close()
}
