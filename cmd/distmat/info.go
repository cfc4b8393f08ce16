package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Print a summary of a distance matrix file",
	Long:  `Info prints the matrix dimensions, its sample IDs (truncated) and the distances.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, err := readMatrixFile(args[0])
		if err != nil {
			fatal("error reading distance matrix", err)
		}

		fmt.Println(m)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
