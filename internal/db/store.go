package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Joseda-hg/lazypocket/internal/model"
	"github.com/shopspring/decimal"
)

// Store is the sqlite-backed KV and transaction source.
type Store struct {
	DB *sql.DB
}

var _ KV = (*Store)(nil)

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.DB.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if _, err := s.DB.ExecContext(ctx, `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`, key, value); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.DB.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

// Transactions lists the stored transactions in display order.
func (s *Store) Transactions(ctx context.Context) ([]model.Transaction, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT id, date_label, merchant, category, amount, icon, style, report
		FROM transactions ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var result []model.Transaction
	for rows.Next() {
		var (
			tx     model.Transaction
			amount string
		)
		if err := rows.Scan(&tx.ID, &tx.Date, &tx.Merchant, &tx.Category, &amount, &tx.Icon, &tx.Style, &tx.Report); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parse amount of transaction %d: %w", tx.ID, err)
		}
		result = append(result, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return result, nil
}
