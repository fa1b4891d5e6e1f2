package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lilyparse",
	Short: "Music notation parser",
	Long:  `Parses the compact music-notation dialect into a validated notation tree.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
