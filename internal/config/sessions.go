package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/threebell/threebell/internal/models"
)

// WriteSession stores a session record under ~/.threebell/sessions/.
func WriteSession(rec *models.SessionRecord) error {
	if err := EnsureGlobalSessionsDir(); err != nil {
		return fmt.Errorf("failed to ensure sessions dir: %w", err)
	}
	path, err := SessionFile(rec.ID)
	if err != nil {
		return err
	}
	return SaveYAML(path, rec)
}

// ReadSession reads a single session record by ID.
func ReadSession(id string) (*models.SessionRecord, error) {
	path, err := SessionFile(id)
	if err != nil {
		return nil, err
	}
	var rec models.SessionRecord
	if err := LoadYAML(path, &rec); err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	return &rec, nil
}

// ListSessions reads all session records (newest first). Unreadable files are skipped.
func ListSessions() ([]*models.SessionRecord, error) {
	dir, err := GlobalSessionsDir()
	if err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var sessions []*models.SessionRecord
	for _, e := range dirEntries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}

		var rec models.SessionRecord
		if err := LoadYAML(filepath.Join(dir, e.Name()), &rec); err != nil {
			continue
		}
		if rec.ID == "" {
			rec.ID = strings.TrimSuffix(e.Name(), ".yaml")
		}
		sessions = append(sessions, &rec)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartedAt.After(sessions[j].StartedAt)
	})

	return sessions, nil
}
