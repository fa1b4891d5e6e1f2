package cmd

import (
	"fmt"

	"github.com/jsphweid/lilyparse/lily"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fmtCmd)
}

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Reprints notation source",
	Long:  `Parses notation source and prints its canonical rendering`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		col, err := lily.Parse(args[0])
		if err != nil {
			fmt.Println("Could not parse: " + err.Error())
			return
		}
		out, err := lily.Write(col)
		if err != nil {
			fmt.Println("Could not format: " + err.Error())
			return
		}
		fmt.Println(out)
	},
}
