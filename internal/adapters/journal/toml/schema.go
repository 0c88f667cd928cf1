package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int         `toml:"version"`
	Runs    []runSchema `toml:"runs"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported journal schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type runSchema struct {
	ID                   string `toml:"id"`
	User                 string `toml:"user"`
	ResourceGroup        string `toml:"resource_group"`
	HostPool             string `toml:"host_pool"`
	StartedAt            string `toml:"started_at"`
	FinishedAt           string `toml:"finished_at"`
	HostsVisited         int    `toml:"hosts_visited"`
	HostsFailed          int    `toml:"hosts_failed,omitempty"`
	SessionsMatched      int    `toml:"sessions_matched"`
	DisconnectedPrimary  int    `toml:"disconnected_primary"`
	DisconnectedFallback int    `toml:"disconnected_fallback,omitempty"`
	Failed               int    `toml:"failed,omitempty"`
}
