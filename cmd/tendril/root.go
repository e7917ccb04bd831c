package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "tendril",
	Short: "Tendril template toolchain",
	Long:  "Tendril parses its HTML-like template language, mounts reactive component trees, and renders them to HTML.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("store", "", "Path to the persistent store file (default: in-memory)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("store", rootCmd.PersistentFlags().Lookup("store"))
}

func initConfig() {
	viper.SetEnvPrefix("TENDRIL")
	viper.AutomaticEnv()
}
