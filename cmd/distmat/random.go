package main

import (
	"math/rand"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/distmat"
)

var (
	randomOut  string
	randomSeed int64
)

var randomCmd = &cobra.Command{
	Use:   "random [n]",
	Short: "Generate a random n×n distance matrix",
	Long: `Random generates an n×n distance matrix with entries drawn uniformly from
[0, 1), symmetric and hollow by construction, and writes it in delimited text
format. Sample IDs are "1".."n". Use --seed for reproducible output.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fatal("invalid sample count", err)
		}

		opts := []distmat.RandomOption{}
		if cmd.Flags().Changed("seed") {
			opts = append(opts, distmat.WithRand(rand.New(rand.NewSource(randomSeed))))
		}

		m, err := distmat.Random(n, opts...)
		if err != nil {
			fatal("error generating distance matrix", err)
		}

		if err := writeMatrixFile(m, randomOut); err != nil {
			fatal("error writing distance matrix", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(randomCmd)
	randomCmd.Flags().StringVarP(&randomOut, "output", "o", "-", "Output file (\"-\" for stdout)")
	randomCmd.Flags().Int64Var(&randomSeed, "seed", 0, "Seed for reproducible generation")
}
