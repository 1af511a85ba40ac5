package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	svgheadergen "github.com/ryugen-io/svgheadergen"
	"github.com/ryugen-io/svgheadergen/internal/config"
	"github.com/ryugen-io/svgheadergen/internal/logging"
	"github.com/ryugen-io/svgheadergen/pkg/domain"
)

// Exit codes: cobra reserves 1 for its own usage errors, so the two
// failure kinds get their own codes for scripting.
const (
	exitValidation  = 2
	exitRender      = 3
	exitInterrupted = 130
)

var rootCmd = &cobra.Command{
	Use:   "svgheadergen [text]",
	Short: "Generate SVG header images from text using toilet/figlet fonts",
	Long: `svgheadergen renders text as ASCII art and converts it into an SVG
with a gradient fill. Pixel mode (default) turns each character cell into a
filled square; text mode (-t) rewrites toilet's native SVG export and works
best with Unicode fonts like 'future'. The document goes to stdout unless
-o is given, so output is safely redirectable.`,
	Example: `  svgheadergen "Hello World"
  svgheadergen "Kitchn" -f bloody -g sweet_dracula -o header.svg
  svgheadergen "Kitchn" -f future --text-mode
  svgheadergen "Custom" --custom-gradient "#ff0000:0,#00ff00:50,#0000ff:100"`,
	Args: cobra.ExactArgs(1),
	Run:  runGenerate,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringP("font", "f", domain.DefaultFont, "font name for toilet/figlet")
	rootCmd.Flags().StringP("output", "o", "", "output file path (default: stdout)")
	rootCmd.Flags().StringP("gradient", "g", domain.DefaultPreset, "gradient preset name")
	rootCmd.Flags().String("custom-gradient", "", "custom gradient '#color:offset,...' (overrides --gradient)")
	rootCmd.Flags().String("gradient-id", domain.DefaultGradientID, "XML id of the gradient definition")
	rootCmd.Flags().IntP("scale", "s", domain.DefaultScale, "pixel-mode cell size in SVG units")
	rootCmd.Flags().BoolP("text-mode", "t", false, "rewrite toilet's native SVG export (best for Unicode fonts)")
	rootCmd.PersistentFlags().String("gradient-file", "", "YAML file with additional gradient presets")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

func runGenerate(cmd *cobra.Command, args []string) {
	logger := newLogger(cmd)

	font, _ := cmd.Flags().GetString("font")
	output, _ := cmd.Flags().GetString("output")
	gradientID, _ := cmd.Flags().GetString("gradient-id")
	scale, _ := cmd.Flags().GetInt("scale")
	textMode, _ := cmd.Flags().GetBool("text-mode")

	stops, err := resolveStops(cmd)
	if err != nil {
		exitWith(logger, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	gen := svgheadergen.New(svgheadergen.WithLogger(logger))
	doc, err := gen.Generate(ctx, svgheadergen.Request{
		Text:       args[0],
		Font:       font,
		Scale:      scale,
		Stops:      stops,
		GradientID: gradientID,
		TextMode:   textMode,
	})
	if err != nil {
		if ctx.Err() != nil {
			logger.Info("interrupted")
			os.Exit(exitInterrupted)
		}
		exitWith(logger, err)
	}

	if output != "" {
		if err := os.WriteFile(output, []byte(doc), 0o644); err != nil {
			logger.Error("writing output file", "error", err)
			os.Exit(1)
		}
		logger.Info("SVG written", "path", output)
		return
	}
	fmt.Println(doc)
}

// resolveStops picks the gradient: an explicit custom spec wins, then
// presets from --gradient-file, then the built-in catalogue.
func resolveStops(cmd *cobra.Command) (domain.Stops, error) {
	custom, _ := cmd.Flags().GetString("custom-gradient")
	if custom != "" {
		return domain.ParseStops(custom)
	}

	name, _ := cmd.Flags().GetString("gradient")
	extra, err := filePresets(cmd)
	if err != nil {
		return nil, err
	}
	if stops, ok := extra[name]; ok {
		return stops, nil
	}
	if stops, ok := domain.PresetStops(name); ok {
		return stops, nil
	}
	return nil, fmt.Errorf("%w: unknown gradient preset %q (known: %v)",
		domain.ErrValidation, name, domain.PresetNames())
}

func filePresets(cmd *cobra.Command) (map[string]domain.Stops, error) {
	path, _ := cmd.Flags().GetString("gradient-file")
	if path == "" {
		return nil, nil
	}
	return config.LoadPresets(path)
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return logging.New(level)
}

// exitWith reports err on stderr and exits with the code for its kind.
func exitWith(logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		logger.Error("validation error", "error", err)
		os.Exit(exitValidation)
	case errors.Is(err, domain.ErrRender):
		logger.Error("render error", "error", err)
		os.Exit(exitRender)
	default:
		logger.Error("error", "error", err)
		os.Exit(1)
	}
}
