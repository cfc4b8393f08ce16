package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/distmat/dmtext"
)

var (
	convertFrom string
	convertTo   string
)

var convertCmd = &cobra.Command{
	Use:   "convert [in] [out]",
	Short: "Re-delimit a distance matrix file",
	Long: `Convert parses a distance matrix using the --from delimiter and rewrites it
using the --to delimiter. The matrix passes through the full validation gate,
so convert doubles as a normalizer: comments and blank lines are dropped.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		in, err := os.Open(args[0])
		if err != nil {
			fatal("error opening input", err)
		}
		defer in.Close()

		m, err := dmtext.Read(in, dmtext.WithDelimiter(convertFrom))
		if err != nil {
			fatal("error reading distance matrix", err)
		}

		out, err := os.Create(args[1])
		if err != nil {
			fatal("error creating output", err)
		}
		defer out.Close()

		if err := dmtext.Write(m, out, dmtext.WithDelimiter(convertTo)); err != nil {
			fatal("error writing distance matrix", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVar(&convertFrom, "from", dmtext.DefaultDelimiter, "Input field delimiter")
	convertCmd.Flags().StringVar(&convertTo, "to", dmtext.DefaultDelimiter, "Output field delimiter")
}
