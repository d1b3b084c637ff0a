package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.1.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════╗",
		"║  ███╗   ███╗ █████╗ ██████╗ ████████╗        ║",
		"║  ████╗ ████║██╔══██╗██╔══██╗╚══██╔══╝        ║",
		"║  ██╔████╔██║███████║██████╔╝   ██║           ║",
		"║  ██║╚██╔╝██║██╔══██║██╔══██╗   ██║           ║",
		"║  ██║ ╚═╝ ██║██║  ██║██║  ██║   ██║ gen       ║",
		"║  ╚═╝     ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝           ║",
		"║                                              ║",
		"║   🛒 Synthetic E-Commerce Fixture Toolkit    ║",
		"╚══════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("              ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "martgen",
	Short: "Generate, load and query synthetic e-commerce fixture data",
	Long: `
martgen is a one-shot fixture generator for demos and tests. It produces
five related tables (customers, products, orders, order items, payments)
with consistent foreign keys and derived totals, writes them as CSV, bulk
loads them into a relational database and can run a sample join.

Database Support:
- SQLite (embedded databases)
- PostgreSQL
- MySQL`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("martgen CLI version %s\n", Version)
			os.Exit(0)
		}

		if len(args) == 0 {
			showBanner()
			fmt.Println()
			cmd.Help()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./martgen.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("martgen.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
