package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	svgheadergen "github.com/ryugen-io/svgheadergen"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of svgheadergen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("svgheadergen version %s\n", strings.TrimSpace(svgheadergen.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
