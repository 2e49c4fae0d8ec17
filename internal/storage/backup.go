package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/common"
)

// DefaultBackupPath returns a timestamped backup location next to the database.
func (s *SQLiteStorage) DefaultBackupPath(now time.Time) string {
	dir := filepath.Join(filepath.Dir(s.dbPath), "backups")
	name := strings.TrimSuffix(filepath.Base(s.dbPath), filepath.Ext(s.dbPath))
	return filepath.Join(dir, fmt.Sprintf("%s-%s.db", name, now.UTC().Format("20060102-150405")))
}

// Backup writes a consistent copy of the database to destPath and verifies it.
// A relative destPath is resolved against the working directory.
func (s *SQLiteStorage) Backup(ctx context.Context, destPath string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(destPath, "destPath"); err != nil {
		return err
	}

	destPath, err := filepath.Abs(destPath)
	if err != nil {
		return fmt.Errorf("invalid backup path: %w", err)
	}
	// VACUUM INTO takes a literal, so the path is restricted instead of bound.
	if strings.ContainsAny(destPath, `'";`) {
		return fmt.Errorf("invalid backup path: contains forbidden characters")
	}
	if _, err := os.Stat(destPath); err == nil {
		return fmt.Errorf("backup path %s already exists", destPath)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0750); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return fmt.Errorf("failed to checkpoint WAL: %w", err)
	}

	// #nosec G201 - destPath is validated above
	if _, err := s.db.ExecContext(ctx, fmt.Sprintf("VACUUM INTO '%s'", destPath)); err != nil {
		return fmt.Errorf("failed to back up database: %w", err)
	}

	if err := verifyIntegrity(destPath); err != nil {
		return fmt.Errorf("backup verification failed: %w", err)
	}

	slog.Debug("Backed up chat history", "path", destPath)
	return nil
}

func verifyIntegrity(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	var result string
	if err := db.QueryRow("PRAGMA integrity_check").Scan(&result); err != nil {
		return fmt.Errorf("%w: %v", common.ErrDatabaseCorrupted, err)
	}
	if result != "ok" {
		return fmt.Errorf("%w: integrity check reported %s", common.ErrDatabaseCorrupted, result)
	}
	return nil
}
