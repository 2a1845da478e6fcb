// Command pzip run-length encodes a file of lowercase letters in parallel and
// reports the runs, the letter histogram and codec comparisons.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/urfave/cli/v2"

	"github.com/arloliu/pzip"
	"github.com/arloliu/pzip/errs"
	"github.com/arloliu/pzip/format"
	"github.com/arloliu/pzip/rle"
)

const (
	histogramText = "text"
	histogramCSV  = "csv"
)

// histogramRow is one CSV record of the letter histogram.
type histogramRow struct {
	Letter string `csv:"letter"`
	Count  int    `csv:"count"`
}

type command struct {
	logger *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	cmd := &command{logger: slog.New(slog.DiscardHandler)}

	return &cli.App{
		Name:  "pzip",
		Usage: "Parallel run-length encoding of lowercase letters",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging on stderr",
			},
		},
		Before: func(c *cli.Context) error {
			level := slog.LevelInfo
			if c.Bool("verbose") {
				level = slog.LevelDebug
			}
			cmd.logger = slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
				Level: level,
			}))

			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "zip",
				Usage:     "Encode a file and print its runs and histogram",
				ArgsUsage: "[FILE|-]",
				Flags: []cli.Flag{
					newWorkersFlag(),
					&cli.StringFlag{
						Name:  "strategy",
						Value: format.MergeBarrier.String(),
						Usage: "merge strategy: barrier or coordinator",
					},
					&cli.StringFlag{
						Name:  "histogram-format",
						Value: histogramText,
						Usage: "histogram output: text or csv",
					},
					&cli.BoolFlag{
						Name:    "quiet",
						Aliases: []string{"q"},
						Usage:   "do not print the runs",
					},
				},
				Action: cmd.zip,
			},
			{
				Name:      "stats",
				Usage:     "Compare general-purpose codecs on the encoded runs",
				ArgsUsage: "FILE",
				Flags:     []cli.Flag{newWorkersFlag()},
				Action:    cmd.stats,
			},
		},
	}
}

func newWorkersFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "workers",
		Aliases: []string{"w"},
		Usage:   "number of partitions; 0 uses one per CPU",
	}
}

func (cmd *command) zip(c *cli.Context) error {
	strategy, ok := format.ParseMergeStrategy(c.String("strategy"))
	if !ok {
		return fmt.Errorf("%w: %q", errs.ErrInvalidStrategy, c.String("strategy"))
	}
	histFormat := c.String("histogram-format")
	if histFormat != histogramText && histFormat != histogramCSV {
		return fmt.Errorf("unknown histogram format %q", histFormat)
	}

	res, err := cmd.encode(c, rle.WithStrategy(strategy))
	if err != nil {
		return err
	}

	w := c.App.Writer
	if !c.Bool("quiet") {
		if err := res.WriteRuns(w); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "runs: %d\n", res.Count())
	fmt.Fprintf(w, "checksum: %016x\n", res.Checksum())

	if histFormat == histogramCSV {
		return writeHistogramCSV(w, &res.Histogram)
	}

	return writeHistogramText(w, &res.Histogram)
}

func (cmd *command) stats(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("stats expects exactly one FILE argument, got %d", c.Args().Len())
	}

	res, err := cmd.encode(c)
	if err != nil {
		return err
	}

	stats, err := pzip.CompareCodecs(res)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "codec\toriginal\tcompressed\tratio\tsavings\tcompress\tdecompress")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.3f\t%.1f%%\t%s\t%s\n",
			s.Algorithm, s.OriginalSize, s.CompressedSize, s.Ratio, s.SpaceSavings(),
			time.Duration(s.CompressionTimeNs), time.Duration(s.DecompressionTimeNs))
	}

	return tw.Flush()
}

func (cmd *command) encode(c *cli.Context, opts ...rle.ZipperOption) (*rle.Result, error) {
	input, err := readInput(c)
	if err != nil {
		return nil, err
	}

	opts = append(opts, rle.WithLogger(cmd.logger))
	res, err := pzip.Encode(c.Context, c.Int("workers"), input, opts...)
	if err != nil {
		return nil, err
	}
	cmd.logger.Debug("encoded input",
		"bytes", res.InputLen,
		"runs", res.Count(),
		"workers", res.Workers,
		"strategy", res.Strategy.String(),
	)

	return res, nil
}

// readInput reads the named file, or standard input for "-" or no argument,
// and strips trailing line endings.
func readInput(c *cli.Context) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch name := c.Args().First(); name {
	case "", "-":
		data, err = io.ReadAll(c.App.Reader)
	default:
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return bytes.TrimRight(data, "\r\n"), nil
}

func writeHistogramText(w io.Writer, hist *rle.Histogram) error {
	for letter, n := range hist.All() {
		if n == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%c %d\n", letter, n); err != nil {
			return err
		}
	}

	return nil
}

func writeHistogramCSV(w io.Writer, hist *rle.Histogram) error {
	rows := make([]histogramRow, 0, rle.AlphabetSize)
	for letter, n := range hist.All() {
		rows = append(rows, histogramRow{Letter: string(letter), Count: n})
	}

	return gocsv.Marshal(rows, w)
}
