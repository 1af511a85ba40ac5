package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ryugen-io/svgheadergen/internal/adapters/process"
)

var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "List available toilet/figlet fonts",
	Long: `Asks toilet for its font directory and lists the font files found
there. Both toilet (.tlf) and figlet (.flf) fonts are shown.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)

		toilet := process.NewToilet(process.WithLogger(logger))
		dir, err := toilet.FontDirectory(context.Background())
		if err != nil {
			exitWith(logger, err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			logger.Error("font directory not readable", "dir", dir, "error", err)
			os.Exit(1)
		}

		var names []string
		for _, entry := range entries {
			ext := filepath.Ext(entry.Name())
			if ext == ".tlf" || ext == ".flf" {
				names = append(names, strings.TrimSuffix(entry.Name(), ext))
			}
		}
		sort.Strings(names)

		logger.Info("available fonts", "dir", dir, "count", len(names))
		for _, name := range names {
			fmt.Printf("  %s\n", name)
		}
	},
}

func init() {
	rootCmd.AddCommand(fontsCmd)
}
