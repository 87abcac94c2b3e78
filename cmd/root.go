package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// the command line arguments
var (
	proc      *int    // number of processors to use
	profiling *bool   // create profile for go pprof
	logFile   *string // the log file
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "skmap",
	Short: "compute winnowed minimizer sketches of reference genomes",
	Long: `
#####################################################################################
		SKMAP: winnowed minimizer SKetching for genome MAPping
#####################################################################################

 SKMAP converts a set of reference sequences to a winnowed minimizer index.

 Each sequence is decomposed to canonical k-mer hashes and a sliding window of
 those hashes is winnowed down to a compact, position-tagged sketch. The sketch
 can be queried downstream to approximately map long sequences against the
 references.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// a function to initalise the command line arguments
func init() {
	proc = RootCmd.PersistentFlags().IntP("processors", "p", 1, "number of processors to use")
	profiling = RootCmd.PersistentFlags().Bool("profiling", false, "create the files needed to profile SKMAP using the go tool pprof")
	logFile = RootCmd.PersistentFlags().String("log", "skmap.log", "filename for log file")
}
