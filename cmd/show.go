package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/moeloubani/language-transfer-hub-sub000/internal/comparison"
	"github.com/moeloubani/language-transfer-hub-sub000/internal/config"
)

var showTab string

var showCmd = &cobra.Command{
	Use:   "show <source> <target>",
	Short: "Print a comparison between two languages in the terminal",
	Long:  `Prints one section of the comparison between two languages. The pair resolves in either direction, so "show python java" works even when the data was authored as java-python.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		reg, err := loadRegistry(cfg)
		if err != nil {
			return err
		}

		if !config.ValidTab(showTab) {
			return fmt.Errorf("unknown section %q (valid: syntax, pitfalls, differences, frameworks)", showTab)
		}

		rec := reg.Resolve(args[0], args[1])
		if rec == nil {
			fmt.Printf("No comparison available for %s -> %s.\n", args[0], args[1])
			fmt.Println("Run `langhub list` to see the available pairs.")
			return nil
		}

		printComparison(rec, config.Tab(showTab))
		return nil
	},
}

func init() {
	showCmd.Flags().StringVar(&showTab, "tab", string(config.TabSyntax), "section to print (syntax, pitfalls, differences, frameworks)")
	rootCmd.AddCommand(showCmd)
}

func printComparison(rec *comparison.LanguageComparison, tab config.Tab) {
	title := color.New(color.Bold).SprintFunc()
	topic := color.New(color.Bold, color.FgCyan).SprintFunc()
	side := color.YellowString

	fmt.Println(title(fmt.Sprintf("%s to %s", rec.SourceLanguage, rec.TargetLanguage)))
	fmt.Println()

	switch tab {
	case config.TabSyntax:
		for _, ex := range rec.SyntaxExamples {
			fmt.Println(topic(ex.Topic))
			if ex.Description != "" {
				fmt.Println(ex.Description)
			}
			fmt.Printf("%s\n%s\n", side(rec.SourceLanguage+":"), ex.SourceCode)
			fmt.Printf("%s\n%s\n\n", side(rec.TargetLanguage+":"), ex.TargetCode)
		}
	case config.TabPitfalls:
		for _, p := range rec.CommonPitfalls {
			fmt.Println(topic(p.Title))
			fmt.Println(p.Description)
			if p.SourceExample != nil {
				fmt.Printf("%s\n%s\n", side(rec.SourceLanguage+":"), *p.SourceExample)
			}
			if p.TargetExample != nil {
				fmt.Printf("%s\n%s\n", side(rec.TargetLanguage+":"), *p.TargetExample)
			}
			fmt.Printf("%s %s\n\n", side("Correct approach:"), p.CorrectApproach)
		}
	case config.TabDifferences:
		for _, d := range rec.KeyDifferences {
			fmt.Println(topic(d.Topic))
			fmt.Println(d.Description)
			fmt.Printf("%s %s\n", side(rec.SourceLanguage+":"), d.SourceApproach)
			fmt.Printf("%s %s\n\n", side(rec.TargetLanguage+":"), d.TargetApproach)
		}
	case config.TabFrameworks:
		if len(rec.FrameworkComparisons) == 0 {
			fmt.Println("No framework comparisons for this pair.")
			return
		}
		for _, fc := range rec.FrameworkComparisons {
			fmt.Println(topic(fc.Category))
			fmt.Printf("%s %s\n", side(rec.SourceLanguage+":"), fc.SourceFramework.Name)
			fmt.Printf("%s %s\n", side(rec.TargetLanguage+":"), fc.TargetFramework.Name)
			for _, tip := range fc.MigrationTips {
				fmt.Printf("  - %s\n", tip)
			}
			fmt.Println()
		}
	}
}
