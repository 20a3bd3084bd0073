package purchases

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/artmarket/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// conn joins a transaction opened with dbx.WithTx when ctx carries one.
func (r *SQLiteRepository) conn(ctx context.Context) dbx.DBTX {
	return dbx.Conn(ctx, r.db)
}

func (r *SQLiteRepository) Add(ctx context.Context, userID, artworkID string) error {
	_, err := r.conn(ctx).ExecContext(ctx,
		`INSERT OR IGNORE INTO purchases (user_id, artwork_id) VALUES (?, ?)`, userID, artworkID)
	if err != nil {
		return fmt.Errorf("failed to add purchase[%s/%s]: %w", userID, artworkID, err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.conn(ctx).QueryContext(ctx,
		`SELECT artwork_id FROM purchases WHERE user_id = ? ORDER BY seq`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases[%s]: %w", userID, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate purchase rows: %w", err)
	}
	return ids, nil
}

func (r *SQLiteRepository) Has(ctx context.Context, userID, artworkID string) (bool, error) {
	var n int
	err := r.conn(ctx).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM purchases WHERE user_id = ? AND artwork_id = ?`, userID, artworkID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check purchase[%s/%s]: %w", userID, artworkID, err)
	}
	return n > 0, nil
}
