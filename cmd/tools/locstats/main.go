// cmd/tools/locstats/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/codr1/bizpulse/internal/report"
	"github.com/codr1/bizpulse/internal/stats"
)

const (
	formatCSV  = "csv"
	formatXLSX = "xlsx"
)

type options struct {
	in     string
	out    string
	format string
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid arguments")
	}

	count, err := run(opts)
	if err != nil {
		log.Fatal().Err(err).Str("in", opts.in).Str("out", opts.out).Msg("Failed to summarise daily max hours")
	}
	log.Info().Str("out", opts.out).Int("locations", count).Msg("Wrote location stats")
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("locstats", flag.ContinueOnError)
	var opts options
	fs.StringVar(&opts.in, "in", "booked_hours_daily_max.csv", "Daily max hours CSV to read")
	fs.StringVar(&opts.out, "out", "location_stats_daily_max.csv", "Summary file to write")
	fs.StringVar(&opts.format, "format", "", "Output format (csv, xlsx); defaults from the -out extension")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.format == "" {
		opts.format = formatCSV
		if filepath.Ext(opts.out) == ".xlsx" {
			opts.format = formatXLSX
		}
	}
	if opts.format != formatCSV && opts.format != formatXLSX {
		return options{}, fmt.Errorf("unsupported format %q", opts.format)
	}
	return opts, nil
}

// run reads opts.in and writes the summary; it returns the location count.
func run(opts options) (int, error) {
	in, err := os.Open(opts.in)
	if err != nil {
		return 0, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	rows, err := stats.ReadDailyMax(in)
	if err != nil {
		return 0, fmt.Errorf("read input: %w", err)
	}
	summaries := stats.Summarize(rows)

	out, err := os.Create(opts.out)
	if err != nil {
		return 0, fmt.Errorf("create output: %w", err)
	}
	if err := write(out, opts.format, summaries); err != nil {
		out.Close()
		return 0, err
	}
	if err := out.Close(); err != nil {
		return 0, fmt.Errorf("close output: %w", err)
	}
	return len(summaries), nil
}

func write(w io.Writer, format string, summaries []stats.LocationStats) error {
	if format == formatCSV {
		return stats.WriteCSV(w, summaries)
	}

	f, err := report.StatsWorkbook(summaries)
	if err != nil {
		return err
	}
	defer f.Close()
	return report.Write(w, f)
}
