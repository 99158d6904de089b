// Command textboxdemo is a small Cobra CLI wrapping the textbox engine:
// flags configure width, height and alignment; the laid-out text is
// printed to the terminal via package termrender.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/glyphbox/textbox"
	"github.com/glyphbox/textbox/internal/termrender"
	"github.com/glyphbox/textbox/style"
)

var (
	width       int
	height      int
	horizontal  string
	vertical    string
	heightMode  string
	ansiEnabled bool
	verbose     bool
)

var horizontalAlignments = map[string]style.HorizontalAlignment{
	"left":      style.Left,
	"right":     style.Right,
	"center":    style.Center,
	"justified": style.Justified,
}

var verticalAlignments = map[string]style.VerticalAlignment{
	"top":       style.Top,
	"middle":    style.Middle,
	"bottom":    style.Bottom,
	"scrolling": style.Scrolling,
}

var rootCmd = &cobra.Command{
	Use:   "textboxdemo [text]",
	Short: "Lay out and print text with the textbox engine",
	Long: `textboxdemo renders its argument (or stdin, if no argument is given)
through the textbox layout engine and prints the result to the terminal,
one character cell standing in for one pixel.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().IntVar(&width, "width", 48, "box width in cells")
	rootCmd.Flags().IntVar(&height, "height", 10, "box height in cells (ignored for fit-to-text)")
	rootCmd.Flags().StringVar(&horizontal, "h-align", "left", "left|right|center|justified")
	rootCmd.Flags().StringVar(&vertical, "v-align", "top", "top|middle|bottom|scrolling")
	rootCmd.Flags().StringVar(&heightMode, "height-mode", "exact", "exact|fit|shrink")
	rootCmd.Flags().BoolVar(&ansiEnabled, "ansi", false, "recognize in-band ANSI SGR/cursor escapes")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log layout decisions to stderr")
}

func resolveHeightMode(name string) (style.HeightMode, error) {
	switch name {
	case "exact":
		return style.Exact(style.FullRowsOnly), nil
	case "fit":
		return style.FitToText(), nil
	case "shrink":
		return style.ShrinkToText(style.FullRowsOnly), nil
	default:
		return style.HeightMode{}, errors.Errorf("unknown height mode %q", name)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	log.Logger = logger

	text, err := readText(args)
	if err != nil {
		return errors.Wrap(err, "reading input text")
	}

	h, ok := horizontalAlignments[horizontal]
	if !ok {
		return errors.Errorf("unknown h-align %q", horizontal)
	}
	v, ok := verticalAlignments[vertical]
	if !ok {
		return errors.Errorf("unknown v-align %q", vertical)
	}
	hm, err := resolveHeightMode(heightMode)
	if err != nil {
		return err
	}

	st := style.New().
		WithHorizontalAlignment(h).
		WithVerticalAlignment(v).
		WithHeightMode(hm).
		WithAnsiEnabled(ansiEnabled)
	if verbose {
		st = st.WithLogger(&logger)
	}

	box := textbox.New(text, st)
	font := &termrender.Font{}

	gridHeight := height
	if hm.Kind != style.ModeExact {
		gridHeight = box.MeasuredHeight(font, width)
		log.Debug().Int("measuredHeight", gridHeight).Msg("pre-measured text height")
		if hm.Kind == style.ModeShrinkToText && gridHeight > height {
			gridHeight = height
		}
	}

	grid := termrender.NewGrid(width, gridHeight)
	if err := box.Draw(font, grid); err != nil {
		return errors.Wrap(err, "drawing text box")
	}

	fmt.Print(grid.Render())
	return nil
}

func readText(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	var b strings.Builder
	buf := make([]byte, 4096)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			b.Write(buf[:n])
		}
		if err != nil {
			break
		}
	}
	return b.String(), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
