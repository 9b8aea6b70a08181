package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rnwolfe/sift/internal/version"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print sift version",
	Run: func(_ *cobra.Command, _ []string) {
		if versionShort {
			fmt.Println(version.Short())
		} else {
			fmt.Printf("sift %s\n", version.Full())
		}
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
}
