package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/atikulmunna/logclean/internal/output"
	"github.com/atikulmunna/logclean/internal/pipeline"
	"github.com/atikulmunna/logclean/internal/source"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [input]",
	Short: "Clean a log file and write its summary",
	Long: `Read the input log once, keep only valid lines and write the clean log
and the JSON summary. The input may be a path or a glob that matches
exactly one file.

Examples:
  logclean clean
  logclean clean /var/log/app/logs.txt --clean-out clean.txt
  logclean clean "archive/**/2026-02-17.log" --output json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper(), args)
	if err != nil {
		return err
	}
	renderer, err := output.NewRenderer(cfg.Output)
	if err != nil {
		return err
	}
	return cleanOnce(cfg, renderer)
}

// cleanOnce runs a complete pass over the configured input and reports it.
func cleanOnce(cfg Config, renderer output.Renderer) error {
	path, err := source.Resolve(cfg.Input)
	if err != nil {
		return err
	}
	if err := checkDistinct(path, cfg.CleanOut, cfg.SummaryOut); err != nil {
		return err
	}

	sum, err := pipeline.Run(pipeline.Options{
		Input:      path,
		CleanOut:   cfg.CleanOut,
		SummaryOut: cfg.SummaryOut,
		TopN:       cfg.Top,
	})
	if err != nil {
		return err
	}

	if err := renderer.Render(sum); err != nil {
		log.Printf("render error: %v", err)
	}

	fmt.Fprintf(os.Stderr, "Valid: %d, Invalid: %d\n", sum.ValidLines, sum.InvalidLines)
	fmt.Fprintf(os.Stderr, "Clean logs saved to %s\n", cfg.CleanOut)
	fmt.Fprintf(os.Stderr, "Summary saved to %s\n", cfg.SummaryOut)
	return nil
}
