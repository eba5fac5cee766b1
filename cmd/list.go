package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available languages and comparison pairs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		reg, err := loadRegistry(cfg)
		if err != nil {
			return err
		}

		heading := color.New(color.Bold).SprintFunc()
		slug := color.CyanString

		fmt.Println(heading("Languages"))
		for _, lang := range reg.Languages() {
			fmt.Printf("  %s (%s)\n", lang.Name, slug(lang.ID))
		}

		fmt.Println()
		fmt.Println(heading("Pairs"))
		for _, key := range reg.Pairs() {
			fmt.Printf("  %s\n", slug(key.String()))
		}
		fmt.Println()
		fmt.Println("Each pair works in both directions.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
