package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/common"
	"github.com/spf13/viper"
)

// Snapshot source names.
const (
	SourceNone  = "none"
	SourceOFX   = "ofx"
	SourcePlaid = "plaid"
)

// Settings is the resolved application configuration.
type Settings struct {
	Logging  LoggingSettings
	Database DatabaseSettings
	Plaid    PlaidSettings
	Snapshot SnapshotSettings
	Chat     ChatSettings
}

// LoggingSettings configures slog.
type LoggingSettings struct {
	Level  string
	Format string
}

// DatabaseSettings locates the chat history database.
type DatabaseSettings struct {
	Path string
}

// SnapshotSettings selects where the financial context comes from.
type SnapshotSettings struct {
	Source      string
	OFXPath     string
	RecentLimit int
	// Goals is the savings goal count to report; negative means unknown.
	Goals int
}

// PlaidSettings holds credentials for the Plaid snapshot source.
type PlaidSettings struct {
	ClientID    string
	Secret      string
	Environment string
	AccessToken string
}

// ChatSettings tunes the interactive session.
type ChatSettings struct {
	TypingDelay  time.Duration
	HistoryLimit int
}

// SetDefaults registers default values for every known key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("database.path", DefaultDatabasePath())
	v.SetDefault("snapshot.source", SourceNone)
	v.SetDefault("snapshot.recent_limit", 10)
	v.SetDefault("snapshot.goals", -1)
	v.SetDefault("plaid.environment", "sandbox")
	v.SetDefault("chat.typing_delay", "400ms")
	v.SetDefault("chat.history_limit", 20)
}

// BindEnv makes FINWISE_* environment variables override nested keys,
// e.g. FINWISE_DATABASE_PATH for database.path.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix("FINWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads and validates settings from v.
func Load(v *viper.Viper) (*Settings, error) {
	s := &Settings{
		Logging: LoggingSettings{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
		Database: DatabaseSettings{
			Path: ExpandPath(v.GetString("database.path")),
		},
		Snapshot: SnapshotSettings{
			Source:      strings.ToLower(strings.TrimSpace(v.GetString("snapshot.source"))),
			OFXPath:     ExpandPath(v.GetString("snapshot.ofx_path")),
			RecentLimit: v.GetInt("snapshot.recent_limit"),
			Goals:       v.GetInt("snapshot.goals"),
		},
		Plaid: PlaidSettings{
			ClientID:    v.GetString("plaid.client_id"),
			Secret:      v.GetString("plaid.secret"),
			Environment: v.GetString("plaid.environment"),
			AccessToken: v.GetString("plaid.access_token"),
		},
		Chat: ChatSettings{
			TypingDelay:  v.GetDuration("chat.typing_delay"),
			HistoryLimit: v.GetInt("chat.history_limit"),
		},
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the settings for consistency.
func (s *Settings) Validate() error {
	if _, err := common.ParseLevel(s.Logging.Level); err != nil {
		return err
	}
	switch s.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", common.ErrInvalidConfig, s.Logging.Format)
	}

	if s.Database.Path == "" {
		return fmt.Errorf("%w: database.path", common.ErrMissingConfig)
	}

	if s.Snapshot.RecentLimit < 0 {
		return fmt.Errorf("%w: snapshot.recent_limit must not be negative", common.ErrInvalidConfig)
	}
	switch s.Snapshot.Source {
	case SourceNone:
	case SourceOFX:
		if s.Snapshot.OFXPath == "" {
			return fmt.Errorf("%w: snapshot.ofx_path is required for the ofx source", common.ErrMissingConfig)
		}
	case SourcePlaid:
		if s.Plaid.ClientID == "" || s.Plaid.Secret == "" || s.Plaid.AccessToken == "" {
			return fmt.Errorf("%w: plaid.client_id, plaid.secret and plaid.access_token are required for the plaid source",
				common.ErrMissingConfig)
		}
	default:
		return fmt.Errorf("%w: unknown snapshot.source %q", common.ErrInvalidConfig, s.Snapshot.Source)
	}

	if s.Chat.TypingDelay < 0 {
		return fmt.Errorf("%w: chat.typing_delay must not be negative", common.ErrInvalidConfig)
	}
	if s.Chat.HistoryLimit <= 0 {
		return fmt.Errorf("%w: chat.history_limit must be positive", common.ErrInvalidConfig)
	}
	return nil
}
