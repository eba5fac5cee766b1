package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "langhub",
	Short: "Side-by-side programming language comparisons",
	Long: `Language Transfer Hub serves and publishes side-by-side comparisons
between programming languages: syntax examples, common pitfalls, key
differences, and framework equivalents. Every authored pair works in
both directions.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".langhub.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
