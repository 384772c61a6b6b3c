package refresh

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mauv0809/rally-metrics/internal/importer"
	"github.com/mauv0809/rally-metrics/internal/notifier"
	"github.com/robfig/cron/v3"
)

// ErrRunInProgress is returned when a refresh is triggered while another is running.
var ErrRunInProgress = errors.New("refresh already in progress")

// FileImporter is the part of the import pipeline a refresh needs.
type FileImporter interface {
	ImportFile(path string) (*importer.Report, error)
}

// Trigger starts one refresh run.
type Trigger interface {
	Run(ctx context.Context, dryRun bool) (*importer.Report, error)
}

// commandFunc runs an external program and returns its combined output.
type commandFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Runner runs the external refresh command, then imports the stats file it produced.
type Runner struct {
	command        []string
	commandTimeout time.Duration
	statsPath      string
	importer       FileImporter
	notifier       notifier.Notifier
	runCommand     commandFunc

	mu sync.Mutex
}

// Scheduler fires a Trigger on a cron schedule in a fixed time zone.
type Scheduler struct {
	cron     *cron.Cron
	entryID  cron.EntryID
	trigger  Trigger
	timeout  time.Duration
	schedule string
}

// CommandError reports an external refresh command that failed.
type CommandError struct {
	Command string
	Output  string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("refresh command %q failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
