package commands

import (
	"cmp"
	"fmt"
	"maps"
	"math"
	"os"
	"slices"
	"time"

	"github.com/cleared-dev/ledgercheck/internal/ledger"
	"github.com/cleared-dev/ledgercheck/internal/model"
	"github.com/cleared-dev/ledgercheck/internal/options"
	"github.com/cleared-dev/ledgercheck/internal/source"
)

// pass is one read-and-process run over a ledger file.
type pass struct {
	file   string
	result ledger.Result
	// errors holds reader and processor errors in source order;
	// errors without a location come last.
	errors []model.Error
	took   time.Duration
}

// startOptions builds the snapshot the pass starts from: registry
// defaults overlaid with the config file's options, applied by name.
func (a *app) startOptions() (*options.Config, error) {
	cfg := options.Defaults()
	for _, name := range slices.Sorted(maps.Keys(a.cfg.Options)) {
		if err := cfg.Apply(name, a.cfg.Options[name]); err != nil {
			return nil, fmt.Errorf("config options: %w", err)
		}
	}
	return cfg, nil
}

func (a *app) process(path string) (*pass, error) {
	start := time.Now()

	startCfg, err := a.startOptions()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	directives, readErrs := source.Read(f, path)
	res := ledger.Run(directives,
		ledger.WithLogger(a.logger),
		ledger.WithOptions(startCfg))

	p := &pass{
		file:   path,
		result: res,
		errors: mergeErrors(readErrs, res.Errors),
		took:   time.Since(start),
	}
	a.logger.Info("ledger processed",
		"file", path,
		"directives", len(directives),
		"entries", len(res.Entries),
		"errors", len(p.errors),
		"invalid_accounts", model.CountKind(p.errors, model.ErrorInvalidAccountName),
		"duration", p.took)
	return p, nil
}

func mergeErrors(groups ...[]model.Error) []model.Error {
	var all []model.Error
	for _, g := range groups {
		all = append(all, g...)
	}
	slices.SortStableFunc(all, func(x, y model.Error) int {
		return cmp.Compare(sortLine(x), sortLine(y))
	})
	return all
}

func sortLine(e model.Error) int {
	if !e.Location.IsValid() {
		return math.MaxInt
	}
	return e.Location.Line
}
