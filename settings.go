package wikimark

import (
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings is the flat configuration record the engine consults. The engine
// only reads it; persistence belongs to a store.
type Settings struct {
	// ProcessingDelayMs is how long a conversion waits before re-validating
	// and writing, so text the user is still typing into is left alone.
	ProcessingDelayMs int `yaml:"processing_delay_ms"`

	// AutoConvert offers pipe insertion for freshly completed links.
	AutoConvert bool `yaml:"auto_convert"`

	// AutoConvertEmpty completes [[]] to [[|]] when typed.
	AutoConvertEmpty bool `yaml:"auto_convert_empty"`

	// Notifications enables transient outcome notices.
	Notifications bool `yaml:"notifications"`

	// ConfirmTimeoutMs bounds how long a confirmation dialog stays open
	// before resolving to decline.
	ConfirmTimeoutMs int `yaml:"confirm_timeout_ms"`
}

// DefaultSettings returns the stock configuration.
func DefaultSettings() Settings {
	return Settings{
		ProcessingDelayMs: 300,
		AutoConvert:       true,
		AutoConvertEmpty:  true,
		Notifications:     true,
		ConfirmTimeoutMs:  8000,
	}
}

// Validate rejects numeric values that make no sense as delays. Values are
// never coerced; an invalid record is refused whole.
func (s Settings) Validate() error {
	if s.ProcessingDelayMs < 0 {
		return fmt.Errorf("processing_delay_ms must be >= 0, got %d", s.ProcessingDelayMs)
	}
	if s.ConfirmTimeoutMs < 0 {
		return fmt.Errorf("confirm_timeout_ms must be >= 0, got %d", s.ConfirmTimeoutMs)
	}
	return nil
}

// ProcessingDelay returns the processing delay as a duration.
func (s Settings) ProcessingDelay() time.Duration {
	return time.Duration(s.ProcessingDelayMs) * time.Millisecond
}

// ConfirmTimeout returns the confirmation timeout as a duration.
func (s Settings) ConfirmTimeout() time.Duration {
	return time.Duration(s.ConfirmTimeoutMs) * time.Millisecond
}

// SettingsStore is the engine's read-only view of configuration. It is
// consulted at every decision point, so a store may change values between
// passes.
type SettingsStore interface {
	Settings() Settings
}

// StaticSettings adapts a fixed Settings value to the SettingsStore
// interface.
type StaticSettings Settings

// Settings returns the wrapped record.
func (s StaticSettings) Settings() Settings {
	return Settings(s)
}

// FileStore persists settings as a yaml file. Invalid records are rejected at
// this boundary: the previously stored record stays in effect.
type FileStore struct {
	path string

	mu  sync.Mutex
	cur Settings
}

// NewFileStore creates a store over path, starting from defaults. The file is
// not read until Load.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, cur: DefaultSettings()}
}

// Settings returns the current record.
func (fs *FileStore) Settings() Settings {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.cur
}

// Load reads the file and replaces the current record. A missing file keeps
// the current record and is not an error; an unreadable, unparsable or
// invalid file keeps the current record and returns the reason.
func (fs *FileStore) Load() error {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read settings: %w", err)
	}

	// Decode over a copy of the current record so absent keys keep their
	// stored values.
	fs.mu.Lock()
	incoming := fs.cur
	fs.mu.Unlock()

	if err := yaml.Unmarshal(data, &incoming); err != nil {
		return fmt.Errorf("parse settings: %w", err)
	}
	return fs.Update(incoming)
}

// Update validates and installs a new record. On validation failure the
// previous record is retained and the error returned.
func (fs *FileStore) Update(s Settings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("settings rejected: %w", err)
	}
	fs.mu.Lock()
	fs.cur = s
	fs.mu.Unlock()
	return nil
}

// Save writes the current record to the file.
func (fs *FileStore) Save() error {
	fs.mu.Lock()
	cur := fs.cur
	fs.mu.Unlock()

	data, err := yaml.Marshal(cur)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(fs.path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
