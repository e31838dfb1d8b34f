package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgercheck/internal/runlog"
)

var errCheckFailed = errors.New("check failed")

func newCheckCommand(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Report invalid options and account names in a ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !watch {
				return a.runCheck(cmd.OutOrStdout(), args[0])
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return a.watch(ctx, args[0], func() {
				if err := a.runCheck(cmd.OutOrStdout(), args[0]); err != nil && !errors.Is(err, errCheckFailed) {
					a.logger.Error("check failed", "file", args[0], "error", err)
				}
			})
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-check whenever FILE changes, until interrupted")

	return cmd
}

func (a *app) runCheck(out io.Writer, path string) error {
	p, err := a.process(path)
	if err != nil {
		return err
	}

	for _, e := range p.errors {
		fmt.Fprintln(out, e.Error())
	}
	fmt.Fprintf(out, "%s: %d entries, %d errors\n", path, len(p.result.Entries), len(p.errors))

	if a.cfg.Check.RunLog != "" {
		entry := runlog.Entry{
			Timestamp: time.Now().UTC().Truncate(time.Second),
			RunID:     a.runID,
			File:      path,
			Entries:   len(p.result.Entries),
			Errors:    len(p.errors),
			Duration:  p.took,
		}
		if err := runlog.Append(a.cfg.Check.RunLog, []runlog.Entry{entry}); err != nil {
			a.logger.Warn("writing run log", "path", a.cfg.Check.RunLog, "error", err)
		}
	}

	if len(p.errors) > 0 {
		return fmt.Errorf("%w: %d errors in %s", errCheckFailed, len(p.errors), path)
	}
	return nil
}

// watch calls run once, then again after each burst of writes to path,
// until ctx is done. Passes never overlap.
func (a *app) watch(ctx context.Context, path string, run func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file on save, so watch its directory.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	debounce := a.cfg.Check.WatchDebounce
	a.logger.Info("watching ledger", "file", abs, "debounce", debounce)

	run()

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case <-timerC:
			timerC = nil
			run()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("watcher error", "error", err)
		case evt, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(evt.Name) != abs || evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			a.logger.Debug("ledger changed", "op", evt.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			timerC = timer.C
		}
	}
}
