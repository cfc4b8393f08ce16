package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var condenseCmd = &cobra.Command{
	Use:   "condense [file]",
	Short: "Print the condensed (vector) form of a distance matrix",
	Long: `Condense prints the N·(N−1)/2 strictly-upper-triangle distances in row-major
order, space-separated on a single line.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, err := readMatrixFile(args[0])
		if err != nil {
			fatal("error reading distance matrix", err)
		}

		vals := m.CondensedForm()
		fields := make([]string, len(vals))
		for i, v := range vals {
			fields[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		fmt.Println(strings.Join(fields, " "))
	},
}

func init() {
	rootCmd.AddCommand(condenseCmd)
}
