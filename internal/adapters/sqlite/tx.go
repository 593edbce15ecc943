package sqlite

import (
	"context"
	"database/sql"

	"nestlist/internal/domain"
)

// listTx wraps the statements that rewrite a single list
type listTx struct {
	ctx context.Context
	tx  *sql.Tx
}

func (s *Store) beginTx(ctx context.Context) (*listTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &listTx{ctx: ctx, tx: tx}, nil
}

// replaceList makes sure the list row exists and clears its items
func (t *listTx) replaceList(name string) error {
	if _, err := t.tx.ExecContext(t.ctx, `INSERT OR IGNORE INTO lists (name) VALUES (?)`, name); err != nil {
		return err
	}
	_, err := t.tx.ExecContext(t.ctx, `DELETE FROM items WHERE list = ?`, name)
	return err
}

// insertItem adds one row. An empty parent stores NULL.
func (t *listTx) insertItem(list string, parent domain.Key, position int, key domain.Key, title, note string) error {
	_, err := t.tx.ExecContext(t.ctx, `
		INSERT INTO items (key, list, parent_key, position, title, note)
		VALUES (?, ?, ?, ?, ?, ?)
	`, string(key), list, nullKey(parent), position, title, note)
	return err
}

// deleteList removes the list and its items, returning how many lists went
func (t *listTx) deleteList(name string) (int64, error) {
	if _, err := t.tx.ExecContext(t.ctx, `DELETE FROM items WHERE list = ?`, name); err != nil {
		return 0, err
	}
	res, err := t.tx.ExecContext(t.ctx, `DELETE FROM lists WHERE name = ?`, name)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Commit commits the transaction
func (t *listTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *listTx) Rollback() error {
	return t.tx.Rollback()
}

func nullKey(k domain.Key) interface{} {
	if k == "" {
		return nil
	}
	return string(k)
}
