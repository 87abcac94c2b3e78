package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skmap-bio/skmap/src/version"
)

// the version command (used by cobra)
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of SKMAP",
	Long:  `Print the version number of SKMAP`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.VERSION)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
