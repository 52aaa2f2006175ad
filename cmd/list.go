package cmd

import (
	"fmt"

	"github.com/benn-herrera/gladfortran/gen"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered generators",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range gen.All() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
