package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "tabglide",
	Short: "Animated tab strip for terminal apps",
	Long: `Tabglide — an animated, selectable tab strip for Bubble Tea apps

A tab bar widget with a spring-animated selection indicator,
fit and scroll layout modes, and mouse support. The demo command
shows the widget over a configurable set of markdown pages.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tabglide")
		fmt.Println("Run 'tabglide demo' to launch the interactive demo,")
		fmt.Println("or 'tabglide --help' for available commands")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./tabglide.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tabglide")
		viper.SetConfigType("json")
		viper.AddConfigPath(".")
	}
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
