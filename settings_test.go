package wikimark

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, 300, s.ProcessingDelayMs)
	assert.Equal(t, 8000, s.ConfirmTimeoutMs)
	assert.True(t, s.AutoConvert)
	assert.True(t, s.AutoConvertEmpty)
	assert.True(t, s.Notifications)
	require.NoError(t, s.Validate())
}

func TestSettings_ValidateRejectsNegatives(t *testing.T) {
	s := DefaultSettings()
	s.ProcessingDelayMs = -1
	assert.Error(t, s.Validate())

	s = DefaultSettings()
	s.ConfirmTimeoutMs = -500
	assert.Error(t, s.Validate())
}

func TestSettings_Durations(t *testing.T) {
	s := DefaultSettings()
	s.ProcessingDelayMs = 250
	s.ConfirmTimeoutMs = 1500
	assert.Equal(t, 250*time.Millisecond, s.ProcessingDelay())
	assert.Equal(t, 1500*time.Millisecond, s.ConfirmTimeout())
}

func TestFileStore_MissingFileKeepsDefaults(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "settings.yml"))
	require.NoError(t, fs.Load())
	assert.Equal(t, DefaultSettings(), fs.Settings())
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")

	fs := NewFileStore(path)
	s := DefaultSettings()
	s.ProcessingDelayMs = 150
	s.AutoConvert = false
	require.NoError(t, fs.Update(s))
	require.NoError(t, fs.Save())

	reload := NewFileStore(path)
	require.NoError(t, reload.Load())
	assert.Equal(t, s, reload.Settings())
}

func TestFileStore_PartialFileKeepsOtherFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")
	require.NoError(t, os.WriteFile(path, []byte("processing_delay_ms: 42\n"), 0o644))

	fs := NewFileStore(path)
	require.NoError(t, fs.Load())

	got := fs.Settings()
	assert.Equal(t, 42, got.ProcessingDelayMs)
	assert.True(t, got.AutoConvert, "absent keys keep their stored values")
	assert.Equal(t, 8000, got.ConfirmTimeoutMs)
}

func TestFileStore_InvalidNumericRejectedAtBoundary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")

	fs := NewFileStore(path)
	good := DefaultSettings()
	good.ProcessingDelayMs = 100
	require.NoError(t, fs.Update(good))

	require.NoError(t, os.WriteFile(path, []byte("processing_delay_ms: -7\n"), 0o644))
	err := fs.Load()
	require.Error(t, err)
	assert.Equal(t, good, fs.Settings(), "the previously stored record is retained")

	// Non-numeric value: yaml refuses it, prior record survives.
	require.NoError(t, os.WriteFile(path, []byte("processing_delay_ms: soon\n"), 0o644))
	require.Error(t, fs.Load())
	assert.Equal(t, good, fs.Settings())
}

func TestFileStore_UpdateRejectedKeepsPrevious(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "settings.yml"))

	bad := DefaultSettings()
	bad.ConfirmTimeoutMs = -1
	require.Error(t, fs.Update(bad))
	assert.Equal(t, DefaultSettings(), fs.Settings())
}

func TestStaticSettings(t *testing.T) {
	s := DefaultSettings()
	s.ProcessingDelayMs = 5
	var store SettingsStore = StaticSettings(s)
	assert.Equal(t, s, store.Settings())
}
