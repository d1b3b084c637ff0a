package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/storekit-labs/martgen/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new martgen project",
	Long:  `Create a default martgen.config.json and the data directory in the current folder.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitializeProject(); err != nil {
			return err
		}

		color.Green("✅ Project initialized")
		color.Cyan("📄 Config written to %s", config.ConfigFileName)
		color.White("Next: run 'martgen generate' to create the fixture CSVs")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
