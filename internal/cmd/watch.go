package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/atikulmunna/logclean/internal/output"
	"github.com/atikulmunna/logclean/internal/source"
	"github.com/atikulmunna/logclean/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [input]",
	Short: "Re-clean the log file every time it changes",
	Long: `Clean the input once, then watch it and run a fresh, complete pass
each time the file is written. Every run starts from empty counters, so
the outputs always describe the whole file.

Examples:
  logclean watch
  logclean watch /var/log/app/logs.txt --output json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper(), args)
	if err != nil {
		return err
	}
	renderer, err := output.NewRenderer(cfg.Output)
	if err != nil {
		return err
	}

	// The input must exist when watching starts.
	path, err := source.Resolve(cfg.Input)
	if err != nil {
		return err
	}
	cfg.Input = path

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w, err := watcher.New(path, cfg.Debounce)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	fmt.Fprintf(os.Stderr, "🧵 logclean watching %s\n\n", w.Path())

	if err := cleanOnce(cfg, renderer); err != nil {
		log.Printf("run failed: %v", err)
	}

	go w.Start(ctx)

	for range w.Events {
		if err := cleanOnce(cfg, renderer); err != nil {
			log.Printf("run failed: %v", err)
		}
	}

	fmt.Fprintln(os.Stderr, "\n🧵 logclean stopped.")
	return nil
}
