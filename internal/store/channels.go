package store

import (
	"context"
	"database/sql"
	"fmt"

	"tubelang/internal/channels"
)

// AddChannels stores every member of set and returns how many were new.
func (s *Store) AddChannels(ctx context.Context, set channels.Set) (int, error) {
	if set.Len() == 0 {
		return 0, nil
	}
	now := s.timestamp()
	added := 0
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		added = 0
		for _, href := range set.Sorted() {
			res, err := tx.ExecContext(ctx,
				"INSERT INTO subscribed_channels (href, added_at) VALUES (?, ?) ON CONFLICT(href) DO NOTHING",
				href, now,
			)
			if err != nil {
				return fmt.Errorf("insert channel %s: %w", href, err)
			}
			if n, err := res.RowsAffected(); err == nil {
				added += int(n)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}

// Channels loads the stored subscription set.
func (s *Store) Channels(ctx context.Context) (channels.Set, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, "SELECT href FROM subscribed_channels ORDER BY href")
	if err != nil {
		return nil, fmt.Errorf("query channels: %w", err)
	}
	defer rows.Close()

	set := make(channels.Set)
	for rows.Next() {
		var href string
		if err := rows.Scan(&href); err != nil {
			return nil, fmt.Errorf("scan channel: %w", err)
		}
		set.Add(href)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate channels: %w", err)
	}
	return set, nil
}

// ClearChannels removes every stored subscription.
func (s *Store) ClearChannels(ctx context.Context) error {
	if err := s.execWithoutResultRetry(ctx, "DELETE FROM subscribed_channels"); err != nil {
		return fmt.Errorf("clear channels: %w", err)
	}
	return nil
}
