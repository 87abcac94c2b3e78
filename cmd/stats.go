package cmd

import (
	"log"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/skmap-bio/skmap/src/minimizer"
	"github.com/skmap-bio/skmap/src/misc"
	"github.com/skmap-bio/skmap/src/version"
)

// the command line arguments
var (
	indexFile *string // the index file to report on
	plotFile  *string // where to save the density plot
)

// the stats command (used by cobra)
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report the density of a winnowed minimizer index",
	Long:  `Report the density of a winnowed minimizer index`,
	Run: func(cmd *cobra.Command, args []string) {
		runStats()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

// a function to initialise the command line arguments
func init() {
	indexFile = statsCmd.Flags().StringP("indexFile", "i", "", "the minimizer index to report on - required")
	plotFile = statsCmd.Flags().StringP("plotFile", "f", "skmap-density.png", "file to save the minimizer spacing histogram to")
	statsCmd.MarkFlagRequired("indexFile")
	RootCmd.AddCommand(statsCmd)
}

/*
  The main function for the stats command
*/
func runStats() {
	// set up profiling
	if *profiling == true {
		defer profile.Start(profile.ProfilePath("./")).Stop()
	}
	// start logging
	logFH := misc.StartLogging(*logFile)
	defer logFH.Close()
	log.SetOutput(logFH)
	log.Printf("this is skmap (version %s)", version.VERSION)
	log.Printf("starting the stats subcommand")
	// load the index
	misc.ErrorCheck(misc.CheckFile(*indexFile))
	log.Printf("loading the index from \"%v\"...", *indexFile)
	index, err := minimizer.LoadIndex(*indexFile)
	misc.ErrorCheck(err)
	log.Printf("\tk-mer size: %d", index.KmerSize)
	log.Printf("\twindow size: %d", index.WindowSize)
	log.Printf("\ttotal number of minimizers: %d", index.Size())
	///////////////////////////////////////////////////////////////////////////////////////
	// collect per-sequence record counts and the gaps between consecutive minimizer windows
	seqCounts := make(map[int32]int)
	gaps := plotter.Values{}
	for i, record := range index.Records {
		seqCounts[record.SeqID]++
		if i > 0 && index.Records[i-1].SeqID == record.SeqID {
			gaps = append(gaps, float64(record.WindowID-index.Records[i-1].WindowID))
		}
	}
	log.Printf("\tnumber of sequences represented: %d", len(seqCounts))
	for seqID, count := range seqCounts {
		log.Printf("\tsequence %d: %d minimizers", seqID, count)
	}
	if len(gaps) == 0 {
		log.Println("no consecutive minimizers found - nothing to plot")
		return
	}
	///////////////////////////////////////////////////////////////////////////////////////
	// plot the spacing histogram
	log.Printf("plotting minimizer spacing to \"%v\"...", *plotFile)
	p, err := plot.New()
	misc.ErrorCheck(err)
	p.Title.Text = "minimizer spacing"
	p.X.Label.Text = "gap between consecutive window ids"
	p.Y.Label.Text = "count"
	h, err := plotter.NewHist(gaps, 20)
	misc.ErrorCheck(err)
	h.FillColor = plotutil.Color(2)
	p.Add(h)
	misc.ErrorCheck(p.Save(8*vg.Inch, 4*vg.Inch, *plotFile))
	log.Println("finished")
}
