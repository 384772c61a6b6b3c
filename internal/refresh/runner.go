package refresh

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/rally-metrics/internal/importer"
	"github.com/mauv0809/rally-metrics/internal/notifier"
)

// NewRunner creates a new refresh Runner. command is split on whitespace; an
// empty command skips straight to the import.
func NewRunner(command string, commandTimeout time.Duration, statsPath string, imp FileImporter, n notifier.Notifier) *Runner {
	if n == nil {
		n = notifier.Noop{}
	}
	return &Runner{
		command:        strings.Fields(command),
		commandTimeout: commandTimeout,
		statsPath:      statsPath,
		importer:       imp,
		notifier:       n,
		runCommand:     execCommand,
	}
}

var _ Trigger = (*Runner)(nil)

// Run executes one refresh. Only one run is active at a time; a concurrent
// call returns ErrRunInProgress. A failing command skips the import.
func (r *Runner) Run(ctx context.Context, dryRun bool) (*importer.Report, error) {
	if !r.mu.TryLock() {
		return nil, ErrRunInProgress
	}
	defer r.mu.Unlock()

	log.Info("Starting stats refresh", "command", strings.Join(r.command, " "), "stats_path", r.statsPath, "dry_run", dryRun)

	if len(r.command) > 0 {
		if err := r.execute(ctx); err != nil {
			r.notifyFailure(err, dryRun)
			return nil, err
		}
	}

	report, err := r.importer.ImportFile(r.statsPath)
	if err != nil {
		log.Error("Stats refresh import failed", "error", err)
		r.notifyFailure(err, dryRun)
		return nil, err
	}

	if err := r.notifier.SendImportReport(report, dryRun); err != nil {
		log.Warn("Failed to send import report", "run_id", report.RunID, "error", err)
	}
	log.Info("Stats refresh finished", "run_id", report.RunID, "imported", report.Imported, "skipped", report.Skipped)
	return report, nil
}

func (r *Runner) execute(ctx context.Context) error {
	if r.commandTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.commandTimeout)
		defer cancel()
	}

	start := time.Now()
	out, err := r.runCommand(ctx, r.command[0], r.command[1:]...)
	output := strings.TrimSpace(string(out))
	if err != nil {
		log.Error("Refresh command failed", "command", r.command[0], "error", err, "output", output)
		return &CommandError{Command: strings.Join(r.command, " "), Output: output, Err: err}
	}
	log.Info("Refresh command finished", "command", r.command[0], "duration", time.Since(start))
	log.Debug("Refresh command output", "output", output)
	return nil
}

func (r *Runner) notifyFailure(cause error, dryRun bool) {
	if err := r.notifier.SendRefreshFailure(cause, dryRun); err != nil {
		log.Warn("Failed to send refresh failure", "error", err)
	}
}

func execCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}
