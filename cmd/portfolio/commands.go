package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/benbjohnson/clock"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/portfolio/internal/bubble"
	"github.com/san-kum/portfolio/internal/config"
	"github.com/san-kum/portfolio/internal/contact"
	"github.com/san-kum/portfolio/internal/engine"
	"github.com/san-kum/portfolio/internal/export"
	"github.com/san-kum/portfolio/internal/log"
	"github.com/san-kum/portfolio/internal/metrics"
	"github.com/san-kum/portfolio/internal/render"
	"github.com/san-kum/portfolio/internal/sequence"
	"github.com/san-kum/portfolio/internal/tui"
	"github.com/san-kum/portfolio/internal/viz"
	"github.com/spf13/cobra"
)

var (
	compact    bool
	cycles     int
	sorted     bool
	braille    bool
	svgWidth   int
	svgHeight  int
	formName   string
	formEmail  string
	formBody   string
	forceWrite bool
)

func newEngine() (*engine.Engine, error) {
	a := cfg.Animation
	return engine.New(engine.Config{
		Count:     a.Count,
		MinValue:  a.Min,
		MaxValue:  a.Max,
		StepDelay: a.StepDelay,
		Pause:     a.Pause,
		Clock:     clock.New(),
		Source:    sequence.NewSource(a.Seed),
		Logger:    log.WithComponent("engine"),
	})
}

func runPortfolio(cmd *cobra.Command, args []string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}
	return tui.Run(cmd.Context(), tui.Options{
		Profile: profile,
		Engine:  eng,
		Theme:   cfg.Theme,
		SVGDir:  ".",
		Logger:  log.WithComponent("tui"),
	})
}

func newSortCmd() *cobra.Command {
	c := &cobra.Command{
		Use:         "sort",
		Short:       "full-screen sorting visualizer",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{interactive: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), tui.Options{
				Profile:        profile,
				Engine:         eng,
				Theme:          cfg.Theme,
				VisualizerOnly: true,
				Compact:        compact,
				SVGDir:         ".",
				Logger:         log.WithComponent("tui"),
			})
		},
	}
	c.Flags().BoolVar(&compact, "compact", false, "draw on a braille canvas")
	return c
}

func newTraceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace [values...]",
		Short: "print every swap of a bubble sort",
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := inputSequence(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "pass\tindex\tswaps\tsequence\n")
			fmt.Fprintf(w, "-\t-\t0\t%s\n", formatSeq(seq))
			for step := range bubble.Steps(seq) {
				fmt.Fprintf(w, "%d\t%d\t%d\t%s\n", step.Pass, step.Index, step.Swaps, formatSeq(step.Snapshot))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			final, swaps := bubble.Sort(seq)
			fmt.Fprintf(out, "\nsorted: %s\nswaps: %d\n", formatSeq(final), swaps)
			return nil
		},
	}
}

func newPlotCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "plot",
		Short: "plot a sequence before and after sorting, and swaps per cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := cfg.Animation
			src := sequence.NewSource(a.Seed)
			seq, err := sequence.Generate(src, a.Count, a.Min, a.Max)
			if err != nil {
				return err
			}
			if len(seq) == 0 {
				return fmt.Errorf("nothing to plot: count is 0")
			}
			final, swaps := bubble.Sort(seq)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, asciigraph.Plot(floats(seq),
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption("generated"),
			))
			fmt.Fprintln(out)
			fmt.Fprintln(out, asciigraph.Plot(floats(final),
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("sorted after %d swaps", swaps)),
			))

			if cycles < 1 {
				return nil
			}
			history := make([]float64, 0, cycles)
			perCycle := metrics.NewSwapsPerCycle()
			for i := range cycles {
				s, err := sequence.Generate(src, a.Count, a.Min, a.Max)
				if err != nil {
					return err
				}
				n := bubble.CountSwaps(s)
				perCycle.Observe(engine.Frame{Cycle: i + 1, State: engine.Paused, Swaps: n, Swapped: -1})
				history = append(history, float64(n))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, asciigraph.Plot(history,
				asciigraph.Height(8),
				asciigraph.Width(80),
				asciigraph.Precision(0),
				asciigraph.Caption(fmt.Sprintf("swaps per cycle over %d cycles", cycles)),
			))
			fmt.Fprintf(out, "\nmean %.1f swaps per cycle, peak %d\n", perCycle.Value(), perCycle.Peak())
			return nil
		},
	}
	c.Flags().IntVar(&cycles, "cycles", 20, "generated sequences in the swaps plot")
	return c
}

func newSVGCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "svg [file]",
		Short: "write an svg snapshot of a generated sequence",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := cfg.Animation
			seq, err := sequence.Generate(sequence.NewSource(a.Seed), a.Count, a.Min, a.Max)
			if err != nil {
				return err
			}
			if sorted {
				seq, _ = bubble.Sort(seq)
			}
			theme := viz.GetTheme(cfg.Theme)
			bars := render.Bars(seq)

			var svg string
			if braille {
				canvas := viz.NewCanvas(max(len(seq), 1), max(svgHeight/32, 1))
				canvas.DrawBars(bars)
				svg = export.CanvasToSVG(canvas, float64(svgWidth)/float64(canvas.DotWidth()), string(theme.BarHigh))
			} else {
				svg = export.BarsSVG(bars, svgWidth, svgHeight, theme)
			}

			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			if err := export.WriteFile(path, svg); err != nil {
				return err
			}
			if path != "" && path != "-" {
				l := log.WithComponent("cli")
				l.Info().Str("path", path).Int("bars", len(seq)).Int("tallest", seq.Max()).Msg("svg written")
			}
			return nil
		},
	}
	c.Flags().BoolVar(&sorted, "sorted", false, "sort the sequence first")
	c.Flags().BoolVar(&braille, "braille", false, "render through the braille canvas")
	c.Flags().IntVar(&svgWidth, "width", 800, "image width")
	c.Flags().IntVar(&svgHeight, "height", 400, "image height")
	return c
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list animation presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "name\tbars\trange\tstep\tpause\tdescription")
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%d-%d\t%s\t%s\t%s\n", name, p.Count, p.Min, p.Max, p.StepDelay, p.Pause, p.Description)
			}
			return w.Flush()
		},
	}
}

func newContactCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "contact",
		Short: "validate a message and print its mailto link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := contact.Form{Name: formName, Email: formEmail, Message: formBody}
			if errs := form.Validate(); !errs.OK() {
				return errs
			}
			fmt.Fprintln(cmd.OutOrStdout(), contact.MailtoURL(profile.Contact.Email, form))
			return nil
		},
	}
	c.Flags().StringVar(&formName, "name", "", "your name")
	c.Flags().StringVar(&formEmail, "email", "", "your email")
	c.Flags().StringVar(&formBody, "message", "", "message body")
	return c
}

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	initCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "portfolio.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !forceWrite {
				return fmt.Errorf("%s already exists (use --force)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&forceWrite, "force", false, "overwrite an existing file")
	c.AddCommand(initCmd)
	return c
}

// inputSequence parses args as the values to sort, or generates a random
// sequence from the animation settings when there are none.
func inputSequence(args []string) (sequence.Sequence, error) {
	if len(args) == 0 {
		a := cfg.Animation
		return sequence.Generate(sequence.NewSource(a.Seed), a.Count, a.Min, a.Max)
	}
	seq := make(sequence.Sequence, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", s, err)
		}
		seq[i] = v
	}
	return seq, nil
}

func formatSeq(s sequence.Sequence) string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func floats(s sequence.Sequence) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}
