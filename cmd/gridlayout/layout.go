package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benoitkugler/gridlayout/config"
	"github.com/benoitkugler/gridlayout/html"
	"github.com/benoitkugler/gridlayout/logger"
	"github.com/benoitkugler/gridlayout/tracer"
)

type layoutOptions struct {
	width     float32
	format    string
	metrics   string
	fontSize  float32
	precision int
	traceFile string
}

func newLayoutCmd(global *globalOptions) *cobra.Command {
	var opts layoutOptions
	cmd := &cobra.Command{
		Use:   "layout [file.html]",
		Short: "Resolve the tracks and cell areas of the first grid container",
		Long: `Parses the HTML document (or the standard input when no file or "-" is given),
finds the first element with an inline "display: grid" style, and lays out its children.
Text is measured with a fixed 7x13 font scaled to the font size, or in terminal cells.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *global.cfg
			flags := cmd.Flags()
			if flags.Changed("width") {
				cfg.Width = opts.width
			}
			if flags.Changed("format") {
				cfg.Format = opts.format
			}
			if flags.Changed("metrics") {
				cfg.Metrics = opts.metrics
			}
			if flags.Changed("font-size") {
				cfg.FontSize = opts.fontSize
			}
			if flags.Changed("precision") {
				cfg.Precision = opts.precision
			}
			if err := config.Validate(&cfg); err != nil {
				return err
			}

			var (
				g   *html.Grid
				err error
			)
			if len(args) == 1 && args[0] != "-" {
				g, err = html.LoadFile(args[0], cfg.TextMetrics(), cfg.Width)
			} else {
				g, err = html.Load(cmd.InOrStdin(), cfg.TextMetrics(), cfg.Width)
			}
			if err != nil {
				return err
			}
			res, err := g.Layout()
			if err != nil {
				return err
			}
			logger.ProgressLogger.Printf("Layout done: %d columns, %d rows", len(res.Columns), len(res.Rows))

			if opts.traceFile != "" {
				f, err := os.Create(opts.traceFile)
				if err != nil {
					return fmt.Errorf("creating trace file: %w", err)
				}
				tracer.NewTracerWriter(f).DumpGrid(res, g.Labels, fmt.Sprintf("grid of %d items", len(g.Items)))
				if err := f.Close(); err != nil {
					return err
				}
			}

			return writeReport(cmd.OutOrStdout(), newReport(res, g.Labels, cfg.Precision), cfg.Format)
		},
	}

	flags := cmd.Flags()
	flags.Float32VarP(&opts.width, "width", "w", 0, "width of the container, when not set by its style")
	flags.StringVarP(&opts.format, "format", "f", "text", "output format: text, yaml or json")
	flags.StringVar(&opts.metrics, "metrics", "font", "text measure: font or cells")
	flags.Float32Var(&opts.fontSize, "font-size", 13, "font size, in pixels")
	flags.IntVar(&opts.precision, "precision", 2, "number of decimals in the output")
	flags.StringVar(&opts.traceFile, "trace", "", "dump the resolved grid in this file")
	return cmd
}
