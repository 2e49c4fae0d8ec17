package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, values map[string]any) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestLoad_Defaults(t *testing.T) {
	s, err := Load(newViper(t, nil))
	require.NoError(t, err)

	assert.Equal(t, "info", s.Logging.Level)
	assert.Equal(t, "console", s.Logging.Format)
	assert.Equal(t, SourceNone, s.Snapshot.Source)
	assert.Equal(t, 10, s.Snapshot.RecentLimit)
	assert.Equal(t, -1, s.Snapshot.Goals)
	assert.Equal(t, 400*time.Millisecond, s.Chat.TypingDelay)
	assert.Equal(t, 20, s.Chat.HistoryLimit)
	assert.True(t, filepath.IsAbs(s.Database.Path))
	assert.Equal(t, "finwise.db", filepath.Base(s.Database.Path))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FINWISE_SNAPSHOT_SOURCE", "OFX")
	t.Setenv("FINWISE_SNAPSHOT_OFX_PATH", "/tmp/statement.ofx")
	t.Setenv("FINWISE_CHAT_TYPING_DELAY", "0s")

	v := newViper(t, nil)
	BindEnv(v)

	s, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, SourceOFX, s.Snapshot.Source)
	assert.Equal(t, "/tmp/statement.ofx", s.Snapshot.OFXPath)
	assert.Zero(t, s.Chat.TypingDelay)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]any
		wantErr error
	}{
		{name: "bad level", values: map[string]any{"logging.level": "loud"}, wantErr: common.ErrInvalidConfig},
		{name: "bad format", values: map[string]any{"logging.format": "xml"}, wantErr: common.ErrInvalidConfig},
		{name: "unknown source", values: map[string]any{"snapshot.source": "csv"}, wantErr: common.ErrInvalidConfig},
		{name: "ofx without path", values: map[string]any{"snapshot.source": "ofx"}, wantErr: common.ErrMissingConfig},
		{
			name:    "plaid without credentials",
			values:  map[string]any{"snapshot.source": "plaid", "plaid.client_id": "id"},
			wantErr: common.ErrMissingConfig,
		},
		{name: "negative recent limit", values: map[string]any{"snapshot.recent_limit": -1}, wantErr: common.ErrInvalidConfig},
		{name: "negative typing delay", values: map[string]any{"chat.typing_delay": "-1s"}, wantErr: common.ErrInvalidConfig},
		{name: "zero history limit", values: map[string]any{"chat.history_limit": 0}, wantErr: common.ErrInvalidConfig},
		{name: "empty database path", values: map[string]any{"database.path": ""}, wantErr: common.ErrMissingConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(newViper(t, tt.values))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("FINWISE_DIR", "/data")

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, "/home/tester", ExpandPath("~"))
	assert.Equal(t, "/home/tester/x.db", ExpandPath("~/x.db"))
	assert.Equal(t, "/data/x.db", ExpandPath("$FINWISE_DIR/x.db"))
	assert.Equal(t, "relative/x.db", ExpandPath("relative/x.db"))
}
