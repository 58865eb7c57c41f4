package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/atikulmunna/logclean/internal/aggregator"
	"github.com/atikulmunna/logclean/internal/watcher"
)

var cfgFile string

// rootCmd is the base command. Without a subcommand it behaves like "clean".
var rootCmd = &cobra.Command{
	Use:   "logclean [input]",
	Short: "logclean — log cleaner and summarizer",
	Long: `logclean reads a "timestamp | level | service | message" log file,
keeps only well-formed INFO/WARN/ERROR lines, writes them to a clean log
and produces a JSON summary with level counts and top services/errors.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runClean,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.logclean.yaml)")
	flags.StringP("output", "o", defaultOutput, "report format: text, json, yaml")
	flags.String("clean-out", defaultCleanOut, "path of the cleaned log file")
	flags.String("summary-out", defaultSummaryOut, "path of the JSON summary")
	flags.Int("top", aggregator.DefaultTopN, "number of entries in top_services and top_errors")
	flags.Duration("debounce", watcher.DefaultDebounce, "watch mode: quiet period before rerunning")

	for _, key := range []string{"output", "clean-out", "summary-out", "top", "debounce"} {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(key)))
	}
	setDefaults(viper.GetViper())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".logclean")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("LOGCLEAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "warning: cannot read config: %v\n", err)
		}
	}
}
