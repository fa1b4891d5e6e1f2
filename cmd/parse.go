package cmd

import (
	"fmt"

	"github.com/jsphweid/lilyparse/format"
	"github.com/jsphweid/lilyparse/lily"
	"github.com/jsphweid/lilyparse/notation"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parses notation source",
	Long:  `Parses notation source and prints the tree plus its total duration`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		col, err := lily.Parse(args[0])
		if err != nil {
			fmt.Println("Could not parse: " + err.Error())
			return
		}
		fmt.Println(format.Column(col))
		fmt.Println("duration: " + format.Duration(notation.TotalDuration(col)))
	},
}
