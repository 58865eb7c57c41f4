package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atikulmunna/logclean/internal/model"
)

// EncodeSummary writes the summary as JSON with 2-space indentation.
// Key order follows the model.Summary field order.
func EncodeSummary(w io.Writer, sum model.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(sum); err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	return nil
}

// WriteSummary writes summary.json atomically.
func WriteSummary(path string, sum model.Summary) error {
	return writeAtomic(path, func(w io.Writer) error {
		return EncodeSummary(w, sum)
	})
}

// WriteCleanLines writes one newline-terminated line per accepted record,
// in the given order. An empty slice produces an empty file.
func WriteCleanLines(path string, lines []string) error {
	return writeAtomic(path, func(w io.Writer) error {
		for _, line := range lines {
			if _, err := io.WriteString(w, line+"\n"); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeAtomic writes to a temp file next to path, then renames it into place
// so readers never observe a partially written artifact. The temp file is
// removed on every failure path.
func writeAtomic(path string, fill func(w io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = fill(bw); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = tmp.Chmod(0644); err != nil {
		return fmt.Errorf("setting mode on %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
