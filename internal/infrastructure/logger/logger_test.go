package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missiontracker/core/internal/infrastructure/config"
)

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New(config.LoggerConfig{Level: "loud", Format: "json"})
	assert.Error(t, err)
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l, err := New(config.LoggerConfig{Level: "info", Format: "json", Output: "file", Filename: path})
	require.NoError(t, err)

	l.WithComponent("test").LogSecurityEvent("login_failed", "ufaq", "127.0.0.1", map[string]interface{}{
		"reason": "invalid_credentials",
	})
	_ = l.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"security_event":"login_failed"`)
	assert.Contains(t, string(data), `"component":"test"`)
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	assert.NotPanics(t, func() {
		l.WithFields("k", "v").LogUserAction("ufaq", "mission_created", nil)
	})
}
