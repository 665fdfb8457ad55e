package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"tubelang/internal/preferences"
)

const selectedLanguagesKey = "selectedLanguages"

// LoadRaw reads the stored settings record. Missing keys stay nil so callers
// can layer the record over configured defaults with preferences.Merge.
func (s *Store) LoadRaw(ctx context.Context) (preferences.Raw, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM preferences")
	if err != nil {
		return preferences.Raw{}, fmt.Errorf("query preferences: %w", err)
	}
	defer rows.Close()

	record := make(map[string]json.RawMessage)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return preferences.Raw{}, fmt.Errorf("scan preference: %w", err)
		}
		record[key] = json.RawMessage(value)
	}
	if err := rows.Err(); err != nil {
		return preferences.Raw{}, fmt.Errorf("iterate preferences: %w", err)
	}
	if len(record) == 0 {
		return preferences.Raw{}, nil
	}

	encoded, err := json.Marshal(record)
	if err != nil {
		return preferences.Raw{}, fmt.Errorf("encode preference record: %w", err)
	}
	var raw preferences.Raw
	if err := json.Unmarshal(encoded, &raw); err != nil {
		return preferences.Raw{}, fmt.Errorf("decode preference record: %w", err)
	}
	return raw, nil
}

// SaveRaw writes every present field of raw, replacing earlier values. Absent
// fields are left untouched.
func (s *Store) SaveRaw(ctx context.Context, raw preferences.Raw) error {
	encoded, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(encoded, &fields); err != nil {
		return fmt.Errorf("split preferences: %w", err)
	}
	if len(fields) == 0 {
		return nil
	}

	now := s.timestamp()
	return s.withTx(ctx, func(tx *sql.Tx) error {
		// A legacy single-language write must not be shadowed by an older list.
		if _, hasList := fields[selectedLanguagesKey]; !hasList && raw.SelectedLanguage != "" {
			if _, err := tx.ExecContext(ctx, "DELETE FROM preferences WHERE key = ?", selectedLanguagesKey); err != nil {
				return fmt.Errorf("drop stale language list: %w", err)
			}
		}
		for key, value := range fields {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
				 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
				key, string(value), now,
			); err != nil {
				return fmt.Errorf("save preference %s: %w", key, err)
			}
		}
		return nil
	})
}

// SaveSettings stores a normalized settings value, including the legacy
// single-language field for older readers.
func (s *Store) SaveSettings(ctx context.Context, settings preferences.Settings) error {
	return s.SaveRaw(ctx, settings.Raw())
}

// ResetPreferences removes the stored record so configured defaults apply.
func (s *Store) ResetPreferences(ctx context.Context) error {
	if err := s.execWithoutResultRetry(ctx, "DELETE FROM preferences"); err != nil {
		return fmt.Errorf("reset preferences: %w", err)
	}
	return nil
}

// Settings resolves the effective settings: stored values over defaults.
func (s *Store) Settings(ctx context.Context, defaults preferences.Raw) (preferences.Settings, error) {
	stored, err := s.LoadRaw(ctx)
	if err != nil {
		return preferences.Settings{}, err
	}
	return preferences.Normalize(preferences.Merge(defaults, stored)), nil
}
