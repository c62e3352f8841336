package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/leengari/csvtables/datasets"
	"github.com/leengari/csvtables/internal/domain/data"
	"github.com/leengari/csvtables/internal/engine"
	"github.com/leengari/csvtables/internal/logging"
	"github.com/leengari/csvtables/internal/planner/predicate"
	"github.com/leengari/csvtables/internal/query/aggregate"
	"github.com/leengari/csvtables/internal/report"
	"github.com/leengari/csvtables/internal/storage"
)

// config holds the parsed command-line flags
type config struct {
	dataDir   string
	countries string
	where     string
	reducer   string
	column    string
	plotPath  string
	seed      bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.dataDir, "data", "", "Directory holding Cities.csv and Countries.csv (default: executable directory)")
	flag.StringVar(&cfg.countries, "countries", "Italy,Sweden", "Comma-separated countries to summarise")
	flag.StringVar(&cfg.where, "where", "", "Extra filter over Cities, e.g. \"country = Norway AND latitude >= 60\"")
	flag.StringVar(&cfg.reducer, "aggregate", "", "Reduce -column over the -where rows (all cities without -where): avg, min, max, sum, count")
	flag.StringVar(&cfg.column, "column", "temperature", "Column reduced by -aggregate")
	flag.StringVar(&cfg.plotPath, "plot", "", "Write a per-country temperature chart to this PNG/SVG file")
	flag.BoolVar(&cfg.seed, "seed", false, "Write the embedded sample CSV files into the data directory if missing")
	logLevel := flag.String("log-level", "warn", "Log level: debug, info, warn, error")
	flag.Parse()

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}

	logger, closeFn := logging.SetupLogger(logging.ConfigFromEnv(level))
	defer closeFn()
	slog.SetDefault(logger)

	if err := run(cfg, os.Stdout); err != nil {
		slog.Error("report failed", "error", err)
		closeFn()
		os.Exit(1)
	}
}

func run(cfg config, out io.Writer) error {
	// Resolve flag values before touching the filesystem
	var reducer aggregate.Reducer
	if cfg.reducer != "" {
		r, ok := aggregate.ByName(cfg.reducer)
		if !ok {
			return fmt.Errorf("unknown -aggregate %q", cfg.reducer)
		}
		reducer = r
	}

	pred := predicate.PredicateFunc(predicate.All)
	if cfg.where != "" {
		p, err := predicate.Parse(cfg.where)
		if err != nil {
			return fmt.Errorf("invalid -where expression: %w", err)
		}
		pred = p
	}

	dataDir := cfg.dataDir
	if dataDir == "" {
		dir, err := executableDir()
		if err != nil {
			return fmt.Errorf("failed to resolve executable directory: %w", err)
		}
		dataDir = dir
	}

	if cfg.seed {
		if err := datasets.Seed(dataDir); err != nil {
			return fmt.Errorf("failed to seed %s: %w", dataDir, err)
		}
	}

	// Load tables and register them in the catalog
	cat, err := storage.LoadCatalog(dataDir, datasets.Cities, datasets.Countries)
	if err != nil {
		return err
	}

	eng := engine.New(cat)
	eng.AddObserver(engine.NewLoggingObserver(slog.Default()))
	slog.Debug("tables registered", "tables", eng.ListTables())

	cities, err := eng.Table(datasets.Cities)
	if err != nil {
		return err
	}

	opts := report.DefaultOptions()
	if list := splitList(cfg.countries); len(list) > 0 {
		opts.Countries = list
		opts.FocusCountry = list[0]
	}

	w := report.NewWriter(out, eng, cities)
	if err := w.Write(opts); err != nil {
		return err
	}

	var selected []data.Record
	if cfg.where != "" || reducer != nil {
		selected = eng.Filter(cities, pred)
	}

	if cfg.where != "" {
		fmt.Fprintf(out, "\nCities where %s\n", cfg.where)
		w.WriteRows(selected)
	}

	if reducer != nil {
		v, err := eng.Aggregate(cfg.column, reducer, selected)
		if err != nil {
			return fmt.Errorf("-aggregate %s of %s: %w", cfg.reducer, cfg.column, err)
		}
		fmt.Fprintf(out, "\n%s(%s): %.4f\n", cfg.reducer, cfg.column, v)
	}

	if cfg.plotPath != "" {
		summaries, err := report.Summaries(eng, cities, report.ColumnTemperature, opts.Countries)
		if err != nil {
			return err
		}
		if err := report.Plot(summaries, cfg.plotPath); err != nil {
			return err
		}
		slog.Info("plot written", "path", cfg.plotPath)
	}

	return nil
}

// executableDir returns the directory of the running binary
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
