package cmd

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/moeloubani/language-transfer-hub-sub000/internal/sitegen"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static comparison site",
	Long:  `Renders every comparison pair, in both directions, into a self-contained static HTML site ready for any static host.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir from config)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	reg, err := loadRegistry(cfg)
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("Rendering pages"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	gen := &sitegen.Generator{
		Registry:  reg,
		OutputDir: outputDir,
		Theme:     cfg.Theme,
		Include:   cfg.Include,
		Exclude:   cfg.Exclude,
		Progress: func(page string) {
			bar.Describe(page)
			_ = bar.Add(1)
		},
	}

	pageCount, err := gen.Generate()
	_ = bar.Finish()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d pages)\n", outputDir, pageCount)
	return nil
}
