package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/distmat"
	"github.com/katalvlaran/distmat/dmtext"
)

var (
	verbose   bool
	delimiter string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "distmat",
	Short: "A toolkit for labeled, symmetric, hollow distance matrices",
	Long: `Distmat reads, writes, validates and generates distance matrices stored
in delimited text format (tab-separated by default). Every matrix is checked
to be square, symmetric, hollow and finite before any command touches it.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&delimiter, "delimiter", "d", dmtext.DefaultDelimiter,
		"Field delimiter used when reading and writing matrices")
}

// readMatrixFile parses the distance matrix stored at path using the
// globally configured delimiter.
func readMatrixFile(path string) (*distmat.DistanceMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := dmtext.Read(f, dmtext.WithDelimiter(delimiter))
	if err != nil {
		return nil, err
	}
	slog.Debug("parsed distance matrix", "path", path, "samples", m.NumSamples())

	return m, nil
}

// writeMatrixFile serializes m to path, or to stdout when path is "-".
func writeMatrixFile(m *distmat.DistanceMatrix, path string) error {
	if path == "-" {
		return dmtext.Write(m, os.Stdout, dmtext.WithDelimiter(delimiter))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := dmtext.Write(m, f, dmtext.WithDelimiter(delimiter)); err != nil {
		return err
	}
	slog.Debug("wrote distance matrix", "path", path, "samples", m.NumSamples())

	return nil
}
