package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/jobs"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	mu     sync.Mutex
	scopes []commands.SyncScope
	report commands.SyncReport
	err    error
}

func (f *fakeRunner) Handle(_ context.Context, cmd commands.SyncCommand) (commands.SyncReport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scopes = append(f.scopes, cmd.Scope())
	return f.report, f.err
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newLogger() (*slog.Logger, *syncBuffer) {
	out := &syncBuffer{}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug})), out
}

func TestSyncJob_Run(t *testing.T) {
	t.Run("runs a full sync and logs the report", func(t *testing.T) {
		logger, out := newLogger()
		runner := &fakeRunner{report: commands.SyncReport{
			Products: &commands.SyncProductsReport{Imported: 3, Skipped: 1},
			Orders:   &commands.SyncOrdersReport{Created: 2, Updated: 5},
		}}

		jobs.NewSyncJob(runner, "@every 1h", logger).Run(context.Background())

		assert.Equal(t, []commands.SyncScope{commands.SyncScopeAll}, runner.scopes)
		assert.Contains(t, out.String(), "Sync job finished")
		assert.Contains(t, out.String(), "imported=3")
		assert.Contains(t, out.String(), "created=2")
	})

	t.Run("missing configuration is a warning", func(t *testing.T) {
		logger, out := newLogger()
		runner := &fakeRunner{err: fmt.Errorf("wix: %w", errs.NewValueIsRequiredError("WIX_API_KEY"))}

		jobs.NewSyncJob(runner, "@every 1h", logger).Run(context.Background())

		assert.Contains(t, out.String(), "level=WARN")
		assert.Contains(t, out.String(), "Sync job skipped")
	})

	t.Run("other failures are errors", func(t *testing.T) {
		logger, out := newLogger()
		runner := &fakeRunner{err: errors.New("connection reset")}

		jobs.NewSyncJob(runner, "@every 1h", logger).Run(context.Background())

		assert.Contains(t, out.String(), "level=ERROR")
		assert.Contains(t, out.String(), "connection reset")
	})
}

func TestSyncJob_InvalidSchedule(t *testing.T) {
	logger, _ := newLogger()
	job := jobs.NewSyncJob(&fakeRunner{}, "every tuesday", logger)

	err := job.Start()

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	job.Stop()
}

func TestJobManager(t *testing.T) {
	t.Run("empty schedule starts nothing", func(t *testing.T) {
		logger, out := newLogger()
		jm := jobs.NewJobManager(&fakeRunner{}, "", logger)

		require.NoError(t, jm.StartAll())
		jm.StopAll()

		assert.Empty(t, out.String())
	})

	t.Run("starts and stops the sync job", func(t *testing.T) {
		logger, out := newLogger()
		jm := jobs.NewJobManager(&fakeRunner{}, "0 3 * * *", logger)

		require.NoError(t, jm.StartAll())
		jm.StopAll()

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "Sync job started")
		assert.Contains(t, lines[0], `schedule="0 3 * * *"`)
		assert.Contains(t, lines[1], "Sync job stopped")
	})

	t.Run("invalid schedule fails to start", func(t *testing.T) {
		logger, _ := newLogger()
		jm := jobs.NewJobManager(&fakeRunner{}, "61 * * * *", logger)

		err := jm.StartAll()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "failed to start sync job")
	})
}
