package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/avd-sessions-cli/internal/domain"
	"github.com/bnema/avd-sessions-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName        = "config"
	configType        = "toml"
	journalPathKey    = "journal.path"
	journalFileMode   = 0o600
	journalDirMode    = 0o700
	journalConfigDir  = ".avds"
	journalConfigFile = "runs.toml"
	tempFilePattern   = ".runs-*.toml.tmp"
)

// Journal keeps the trace of past disconnect runs in a single TOML
// file. Writes go through a temp file and rename so a crash never
// leaves a half-written journal behind.
type Journal struct {
	journalPath string
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.RunJournal = (*Journal)(nil)

func NewJournal(cfg *viper.Viper) (*Journal, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, journalConfigDir, journalConfigFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, journalConfigDir))
	cfg.SetDefault(journalPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	journalPath := cfg.GetString(journalPathKey)
	if journalPath == "" {
		return nil, errors.New("journal path is empty")
	}
	journalPath, err = normalizeJournalPath(journalPath)
	if err != nil {
		return nil, err
	}

	return &Journal{journalPath: journalPath, mu: lockForPath(journalPath)}, nil
}

func (j *Journal) Append(ctx context.Context, record domain.RunRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	file, err := j.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()

	file.Runs = append(file.Runs, toSchema(record))

	if err := ctx.Err(); err != nil {
		return err
	}

	return j.writeSchema(file)
}

func (j *Journal) List(ctx context.Context) ([]domain.RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	j.mu.RLock()
	defer j.mu.RUnlock()

	file, err := j.readSchema()
	if err != nil {
		return nil, err
	}
	file.applyDefaults()

	records := make([]domain.RunRecord, 0, len(file.Runs))
	for _, entry := range file.Runs {
		records = append(records, fromSchema(entry))
	}

	return records, nil
}

func (j *Journal) GetByID(ctx context.Context, id string) (domain.RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.RunRecord{}, err
	}

	j.mu.RLock()
	defer j.mu.RUnlock()

	file, err := j.readSchema()
	if err != nil {
		return domain.RunRecord{}, err
	}
	file.applyDefaults()

	for _, entry := range file.Runs {
		if entry.ID == id {
			return fromSchema(entry), nil
		}
	}

	return domain.RunRecord{}, domain.ErrRunNotFound
}

func (j *Journal) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(j.journalPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read journal file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode journal file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (j *Journal) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(j.journalPath), journalDirMode); err != nil {
		return fmt.Errorf("create journal directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode journal file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(j.journalPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp journal file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp journal file: %w", err)
	}

	if err := tempFile.Chmod(journalFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp journal file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp journal file: %w", err)
	}

	if err := os.Rename(tempName, j.journalPath); err != nil {
		return fmt.Errorf("replace journal file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(j.journalPath, journalFileMode); err != nil {
		return fmt.Errorf("chmod journal file: %w", err)
	}

	return nil
}

func normalizeJournalPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve journal path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(record domain.RunRecord) runSchema {
	return runSchema{
		ID:                   record.ID,
		User:                 record.User,
		ResourceGroup:        string(record.Pool.ResourceGroup),
		HostPool:             string(record.Pool.Name),
		StartedAt:            formatTime(record.StartedAt),
		FinishedAt:           formatTime(record.FinishedAt),
		HostsVisited:         record.HostsVisited,
		HostsFailed:          record.HostsFailed,
		SessionsMatched:      record.SessionsMatched,
		DisconnectedPrimary:  record.DisconnectedPrimary,
		DisconnectedFallback: record.DisconnectedFallback,
		Failed:               record.Failed,
	}
}

func fromSchema(entry runSchema) domain.RunRecord {
	return domain.RunRecord{
		ID:   entry.ID,
		User: entry.User,
		Pool: domain.Pool{
			ResourceGroup: domain.ResourceGroup(entry.ResourceGroup),
			Name:          domain.PoolName(entry.HostPool),
		},
		StartedAt:            parseTime(entry.StartedAt),
		FinishedAt:           parseTime(entry.FinishedAt),
		HostsVisited:         entry.HostsVisited,
		HostsFailed:          entry.HostsFailed,
		SessionsMatched:      entry.SessionsMatched,
		DisconnectedPrimary:  entry.DisconnectedPrimary,
		DisconnectedFallback: entry.DisconnectedFallback,
		Failed:               entry.Failed,
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
