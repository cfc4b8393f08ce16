package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Parse a distance matrix file and report whether it is valid",
	Long: `Validate parses the file and runs the full structural check: square,
symmetric, hollow, finite values, unique sample IDs. Exits non-zero with the
first violation found.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, err := readMatrixFile(args[0])
		if err != nil {
			fatal("invalid distance matrix", err)
		}

		rows, cols := m.Shape()
		fmt.Printf("OK: %dx%d distance matrix, %d sample(s)\n", rows, cols, m.NumSamples())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
