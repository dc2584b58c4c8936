package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/gridastar/astar"
	"github.com/katalvlaran/gridastar/gridgraph"
	"github.com/katalvlaran/gridastar/scenario"
)

// App runs scenario files and writes a report.
type App struct {
	outW   io.Writer
	config *Config
	logger *slog.Logger
}

// Summary counts outcomes of one Run.
type Summary struct {
	Passed int
	Failed int
}

// NewApp builds an App. Logs go to logW, the report to outW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	return &App{
		outW:   outW,
		config: cfg,
		logger: newLogger(cfg, logW),
	}
}

// Run loads every scenario under the configured path and runs its searches.
// A search that errors or misses its expectation counts as failed; Run
// itself only errors when scenarios cannot be loaded.
func (a *App) Run(ctx context.Context) (Summary, error) {
	var sum Summary
	a.logger.Debug("Loading scenarios.", "path", a.config.ScenarioPath)

	scs, err := scenario.LoadDir(a.config.ScenarioPath)
	if err != nil {
		return sum, err
	}
	if len(scs) == 0 {
		a.logger.Warn("No .hcl scenario files found.", "path", a.config.ScenarioPath)
		return sum, nil
	}

	for _, sc := range scs {
		a.logger.Info("Running scenario.", "source", sc.Source,
			"rows", sc.Grid.Rows, "cols", sc.Grid.Cols, "searches", len(sc.Searches))

		for _, s := range sc.Searches {
			if a.config.Only != "" && s.Name != a.config.Only {
				continue
			}
			o := sc.RunSearch(s, a.searchOptions(ctx, s.Name)...)
			a.report(sc.Source, o)
			if o.Passed() {
				sum.Passed++
			} else {
				sum.Failed++
			}
		}
	}

	a.logger.Info("Run finished.", "passed", sum.Passed, "failed", sum.Failed)
	return sum, nil
}

func (a *App) searchOptions(ctx context.Context, name string) []astar.Option {
	opts := []astar.Option{astar.WithMaxExpansions(a.config.MaxExpansions)}
	if a.config.Precheck {
		opts = append(opts, astar.WithRegionPrecheck())
	}
	if a.logger.Enabled(ctx, slog.LevelDebug) {
		logger := a.logger.With("search", name)
		opts = append(opts, astar.WithOnExpand(func(p gridgraph.Position, g int) {
			logger.Debug("Expanded cell.", "cell", p.String(), "g", g)
		}))
	}
	return opts
}

func (a *App) report(source string, o scenario.Outcome) {
	status := "PASS"
	if !o.Passed() {
		status = "FAIL"
	}
	fmt.Fprintf(a.outW, "%s %s %s", status, source, o.Search.Name)
	switch {
	case o.Err != nil:
		fmt.Fprintf(a.outW, " error=%v", o.Err)
	case o.Found:
		fmt.Fprintf(a.outW, " path=%v cost=%d expanded=%d", o.Path, o.Cost, o.Expanded)
	default:
		fmt.Fprint(a.outW, " no path")
	}
	if o.Mismatch != "" {
		fmt.Fprintf(a.outW, " (%s)", o.Mismatch)
	}
	fmt.Fprintln(a.outW)

	if !o.Passed() {
		a.logger.Warn("Search failed.", "source", source, "search", o.Search.Name, "error", o.Err, "mismatch", o.Mismatch)
	}
}
