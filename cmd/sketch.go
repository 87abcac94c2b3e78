package cmd

import (
	"fmt"
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/skmap-bio/skmap/src/minimizer"
	"github.com/skmap-bio/skmap/src/misc"
	"github.com/skmap-bio/skmap/src/seqio"
	"github.com/skmap-bio/skmap/src/version"
)

// the command line arguments
var (
	refSeqs        *[]string                                                               // the reference FASTA files
	kmerSize       *int                                                                    // size of k-mer
	windowSize     *int                                                                    // size of the winnowing window
	protein        *bool                                                                   // treat the references as amino acid sequences
	outFile        *string                                                                 // file to save the index to
	defaultOutFile = "./skmap-index-" + string(time.Now().Format("20060102150405")) + ".skm" // a default file to store the index
)

// the sketch command (used by cobra)
var sketchCmd = &cobra.Command{
	Use:   "sketch",
	Short: "Sketch a set of reference sequences to a winnowed minimizer index",
	Long:  `Sketch a set of reference sequences to a winnowed minimizer index`,
	Run: func(cmd *cobra.Command, args []string) {
		runSketch()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

// a function to initialise the command line arguments
func init() {
	refSeqs = sketchCmd.Flags().StringSliceP("refSeqs", "i", []string{}, "reference sequences (FASTA format, gzipped or not) - required")
	kmerSize = sketchCmd.Flags().IntP("kmerSize", "k", 16, "size of k-mer")
	windowSize = sketchCmd.Flags().IntP("windowSize", "w", 90, "size of the winnowing window (number of consecutive k-mers)")
	protein = sketchCmd.Flags().Bool("protein", false, "treat the references as amino acid sequences (disables reverse complement handling)")
	outFile = sketchCmd.Flags().StringP("outFile", "o", defaultOutFile, "file to save the minimizer index to")
	sketchCmd.MarkFlagRequired("refSeqs")
	RootCmd.AddCommand(sketchCmd)
}

// a function to check user supplied parameters
func sketchParamCheck() error {
	if len(*refSeqs) == 0 {
		return fmt.Errorf("no reference sequences specified - run `skmap sketch --help` for more info on the command")
	}
	for _, file := range *refSeqs {
		if err := misc.CheckFile(file); err != nil {
			return err
		}
		if err := misc.CheckExt(file, []string{"fasta", "fa", "fna", "faa"}); err != nil {
			return err
		}
	}
	if *kmerSize < 1 || *windowSize < 1 {
		return fmt.Errorf("k-mer size and window size must both be positive integers")
	}
	// set number of processors to use
	if *proc <= 0 || *proc > runtime.NumCPU() {
		*proc = runtime.NumCPU()
	}
	runtime.GOMAXPROCS(*proc)
	return nil
}

/*
  The main function for the sketch command
*/
func runSketch() {
	// set up profiling
	if *profiling == true {
		defer profile.Start(profile.ProfilePath("./")).Stop()
	}
	// start logging
	logFH := misc.StartLogging(*logFile)
	defer logFH.Close()
	log.SetOutput(logFH)
	log.Printf("this is skmap (version %s)", version.VERSION)
	log.Printf("starting the sketch subcommand")
	// check the supplied files and then log some stuff
	log.Printf("checking parameters...")
	misc.ErrorCheck(sketchParamCheck())
	log.Printf("\tprocessors: %d", *proc)
	log.Printf("\tk-mer size: %d", *kmerSize)
	log.Printf("\twindow size: %d", *windowSize)
	log.Printf("\tnumber of reference files: %d", len(*refSeqs))
	refSize, err := misc.GetReferenceSize(*refSeqs)
	misc.ErrorCheck(err)
	log.Printf("\ttotal reference size: %d bytes", refSize)
	alphabetSize := minimizer.NucleotideAlphabet
	if *protein {
		alphabetSize = minimizer.ProteinAlphabet
		log.Printf("\talphabet: protein")
	} else {
		log.Printf("\talphabet: nucleotide")
	}
	///////////////////////////////////////////////////////////////////////////////////////
	log.Printf("loading reference sequences...")
	sequences := []*seqio.Sequence{}
	for _, file := range *refSeqs {
		seqs, err := seqio.ReadFASTA(file, *protein)
		misc.ErrorCheck(err)
		sequences = append(sequences, seqs...)
	}
	log.Printf("\tnumber of sequences loaded: %d", len(sequences))
	///////////////////////////////////////////////////////////////////////////////////////
	log.Printf("sketching sequences...")
	sketcher, err := minimizer.NewSketcher(*kmerSize, *windowSize, alphabetSize)
	misc.ErrorCheck(err)

	// sketch each sequence in a go routine, writing to a private sink so no state is shared between invocations
	type sketchResult struct {
		seqID int32
		sink  *minimizer.Index
	}
	var wg sync.WaitGroup
	resultChan := make(chan *sketchResult)
	for i, sequence := range sequences {
		wg.Add(1)
		go func(seqID int32, sequence *seqio.Sequence) {
			defer wg.Done()
			sink := minimizer.NewIndex(*kmerSize, *windowSize)
			misc.ErrorCheck(sketcher.AddMinimizers(sequence.Seq, seqID, sink))
			resultChan <- &sketchResult{seqID: seqID, sink: sink}
		}(int32(i), sequence)
	}
	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// collect the per-sequence sinks
	sinks := make([]*minimizer.Index, len(sequences))
	for result := range resultChan {
		sinks[result.seqID] = result.sink
	}

	// append the sinks to the master index in sequence order
	index := minimizer.NewIndex(*kmerSize, *windowSize)
	for seqID, sink := range sinks {
		misc.ErrorCheck(index.Merge(sink))
		log.Printf("\tsequence %d (%v): %d minimizers", seqID, sequences[seqID].ID, sink.Size())
	}
	log.Printf("\ttotal number of minimizers: %d", index.Size())
	log.Printf("\t%v", misc.PrintMemUsage())
	///////////////////////////////////////////////////////////////////////////////////////
	// save the index
	log.Printf("saving index to \"%v\"...", *outFile)
	misc.ErrorCheck(index.Dump(*outFile))
	log.Println("finished")
}
