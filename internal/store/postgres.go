package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// Postgres keeps every logical table in a single relation of JSON documents:
//
//	CREATE TABLE records (
//	    tbl  text  NOT NULL,
//	    key  text  NOT NULL,
//	    doc  jsonb NOT NULL,
//	    PRIMARY KEY (tbl, key)
//	);
//
// Upserts are atomic per row via ON CONFLICT; filtered reads use jsonb
// containment.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const queryTimeout = 3 * time.Second

func (p *Postgres) GetRows(ctx context.Context, table string, filter Filter) ([]json.RawMessage,
	error) {
	stmt := `
		SELECT doc
		FROM records
		WHERE tbl = $1 AND doc @> $2::jsonb
		ORDER BY key`

	filterJSON, err := json.Marshal(filter)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := p.db.QueryContext(ctx, stmt, table, filterJSON)
	if err != nil {
		return nil, fmt.Errorf("store: get rows from %q: %w", table, err)
	}
	defer rows.Close()

	var docs []json.RawMessage
	for rows.Next() {
		var doc json.RawMessage
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("store: scan row from %q: %w", table, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: get rows from %q: %w", table, err)
	}

	return docs, nil
}

func (p *Postgres) GetRow(ctx context.Context, table string, key Filter) (json.RawMessage, error) {
	stmt := `
		SELECT doc
		FROM records
		WHERE tbl = $1 AND key = $2`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var doc json.RawMessage
	err := p.db.QueryRowContext(ctx, stmt, table, keyString(key)).Scan(&doc)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRowNotFound
		default:
			return nil, fmt.Errorf("store: get row from %q: %w", table, err)
		}
	}

	return doc, nil
}

func (p *Postgres) UpsertRow(ctx context.Context, table string, key Filter, row any) (
	json.RawMessage, error) {
	stmt := `
		INSERT INTO records (tbl, key, doc)
		VALUES ($1, $2, $3)
		ON CONFLICT (tbl, key) DO UPDATE SET doc = excluded.doc
		RETURNING doc`

	doc, err := json.Marshal(row)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var stored json.RawMessage
	err = p.db.QueryRowContext(ctx, stmt, table, keyString(key), doc).Scan(&stored)
	if err != nil {
		return nil, fmt.Errorf("store: upsert row into %q: %w", table, err)
	}

	return stored, nil
}

func (p *Postgres) DeleteRow(ctx context.Context, table string, key Filter) (bool, error) {
	stmt := `
		DELETE FROM records
		WHERE tbl = $1 AND key = $2`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := p.db.ExecContext(ctx, stmt, table, keyString(key))
	if err != nil {
		return false, fmt.Errorf("store: delete row from %q: %w", table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("store: delete row from %q: %w", table, err)
	}

	return affected > 0, nil
}
