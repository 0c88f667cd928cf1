package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/avd-sessions-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(id string, finishedAt time.Time) domain.RunRecord {
	return domain.RunRecord{
		ID:   id,
		User: "alice@example.com",
		Pool: domain.Pool{
			ResourceGroup: "rg-desktops",
			Name:          "prod-01",
		},
		StartedAt:            finishedAt.Add(-3 * time.Second),
		FinishedAt:           finishedAt,
		HostsVisited:         2,
		SessionsMatched:      2,
		DisconnectedPrimary:  1,
		DisconnectedFallback: 1,
	}
}

func TestJournalRoundTrip(t *testing.T) {
	t.Parallel()

	journalPath := filepath.Join(t.TempDir(), "runs.toml")
	config := viper.New()
	config.Set("journal.path", journalPath)

	journal, err := NewJournal(config)
	require.NoError(t, err)

	finished := time.Date(2026, 3, 2, 9, 0, 4, 0, time.UTC)
	first := testRecord("run-1", finished)
	second := testRecord("run-2", finished.Add(time.Hour))

	require.NoError(t, journal.Append(context.Background(), first))
	require.NoError(t, journal.Append(context.Background(), second))

	got, err := journal.GetByID(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, first, got)

	records, err := journal.List(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.RunRecord{first, second}, records)
}

func TestJournalAppendCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	journal, err := NewJournal(viper.New())
	require.NoError(t, err)

	record := testRecord("run-1", time.Date(2026, 3, 2, 9, 0, 4, 0, time.UTC))
	require.NoError(t, journal.Append(context.Background(), record))

	journalPath := filepath.Join(homeDir, ".avds", "runs.toml")
	info, err := os.Stat(journalPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestJournalMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	journalPath := filepath.Join(t.TempDir(), "missing", "runs.toml")
	config := viper.New()
	config.Set("journal.path", journalPath)

	journal, err := NewJournal(config)
	require.NoError(t, err)

	records, err := journal.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = journal.GetByID(context.Background(), "run-1")
	require.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestJournalMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	journalPath := filepath.Join(t.TempDir(), "runs.toml")
	require.NoError(t, os.WriteFile(journalPath, []byte("runs = ["), 0o600))

	config := viper.New()
	config.Set("journal.path", journalPath)

	journal, err := NewJournal(config)
	require.NoError(t, err)

	_, err = journal.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode journal file")
}

func TestJournalAppendCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	journalPath := filepath.Join(t.TempDir(), "runs.toml")
	config := viper.New()
	config.Set("journal.path", journalPath)

	journal, err := NewJournal(config)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = journal.Append(ctx, testRecord("run-1", time.Now()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestJournalConcurrentAppendsAcrossInstancesPreserveAllRuns(t *testing.T) {
	t.Parallel()

	journalPath := filepath.Join(t.TempDir(), "runs.toml")

	newJournal := func() *Journal {
		config := viper.New()
		config.Set("journal.path", journalPath)
		journal, err := NewJournal(config)
		require.NoError(t, err)
		return journal
	}

	journalA := newJournal()
	journalB := newJournal()

	const perJournalWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perJournalWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	finished := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	go func() {
		defer wg.Done()
		<-start
		for i := 0; i < perJournalWrites; i++ {
			errCh <- journalA.Append(context.Background(), testRecord("run-a-"+strconv.Itoa(i), finished))
		}
	}()

	go func() {
		defer wg.Done()
		<-start
		for i := 0; i < perJournalWrites; i++ {
			errCh <- journalB.Append(context.Background(), testRecord("run-b-"+strconv.Itoa(i), finished))
		}
	}()

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	records, err := journalA.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, perJournalWrites*2)
}

func TestJournalSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	journalPath := filepath.Join(t.TempDir(), "runs.toml")
	config := viper.New()
	config.Set("journal.path", journalPath)

	journal, err := NewJournal(config)
	require.NoError(t, err)

	require.NoError(t, journal.Append(context.Background(), testRecord("run-1", time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))))

	data, err := os.ReadFile(journalPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "host_pool")
}

func TestJournalFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	journalPath := filepath.Join(t.TempDir(), "runs.toml")
	require.NoError(t, os.WriteFile(journalPath, []byte(strings.Join([]string{
		"version = 999",
		"",
		"runs = []",
		"",
	}, "\n")), 0o600))

	config := viper.New()
	config.Set("journal.path", journalPath)
	journal, err := NewJournal(config)
	require.NoError(t, err)

	_, err = journal.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported journal schema version")
}
