package cmd

import (
	"github.com/spf13/cobra"

	"github.com/moeloubani/language-transfer-hub-sub000/internal/config"
	"github.com/moeloubani/language-transfer-hub-sub000/internal/dataset"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize langhub configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure Language Transfer Hub for your project and generates a .langhub.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := dataset.Load()
		if err != nil {
			return err
		}
		var ids []string
		for _, lang := range reg.Languages() {
			ids = append(ids, lang.ID)
		}
		_, err = config.RunWizard(cfgFile, ids)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
