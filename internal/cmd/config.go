package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/atikulmunna/logclean/internal/aggregator"
	"github.com/atikulmunna/logclean/internal/output"
	"github.com/atikulmunna/logclean/internal/watcher"
)

const (
	defaultInput      = "logs.txt"
	defaultCleanOut   = "clean_logs.txt"
	defaultSummaryOut = "summary.json"
	defaultOutput     = "text"
)

// Config is the resolved runtime configuration of one command invocation.
type Config struct {
	Input      string        `mapstructure:"input"`
	CleanOut   string        `mapstructure:"clean-out"`
	SummaryOut string        `mapstructure:"summary-out"`
	Top        int           `mapstructure:"top"`
	Output     string        `mapstructure:"output"`
	Debounce   time.Duration `mapstructure:"debounce"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input", defaultInput)
	v.SetDefault("clean-out", defaultCleanOut)
	v.SetDefault("summary-out", defaultSummaryOut)
	v.SetDefault("top", aggregator.DefaultTopN)
	v.SetDefault("output", defaultOutput)
	v.SetDefault("debounce", watcher.DefaultDebounce)
}

// loadConfig reads v into a Config. A positional argument overrides the
// configured input path.
func loadConfig(v *viper.Viper, args []string) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Top < 1 {
		return fmt.Errorf("invalid top: %d (must be at least 1)", c.Top)
	}
	if _, err := output.NewRenderer(c.Output); err != nil {
		return err
	}
	if c.CleanOut == "" || c.SummaryOut == "" {
		return fmt.Errorf("clean-out and summary-out must both be set")
	}
	return checkDistinct(c.Input, c.CleanOut, c.SummaryOut)
}

// checkDistinct fails when any two of the input and the two outputs name the
// same file. It runs on the configured pattern and again on the resolved path,
// since a glob can expand onto one of the outputs.
func checkDistinct(input, cleanOut, summaryOut string) error {
	paths := map[string]string{}
	for _, p := range []struct{ key, path string }{
		{"input", input},
		{"clean-out", cleanOut},
		{"summary-out", summaryOut},
	} {
		abs, err := filepath.Abs(p.path)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", p.key, err)
		}
		if other, dup := paths[abs]; dup {
			return fmt.Errorf("%s and %s point to the same file: %s", other, p.key, p.path)
		}
		paths[abs] = p.key
	}
	return nil
}
