package store

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
)

var ErrRowNotFound = errors.New("row not found")

// Filter is an equality match on string-valued record fields. The same type
// doubles as a row key: every record the engine stores is keyed by one or
// more string identifiers (UUIDs, emails, token hashes).
type Filter map[string]string

// Store is a table-oriented record store. Rows are JSON documents addressed
// by table name and key. Individual calls are atomic per row; nothing here
// spans rows or tables.
type Store interface {
	GetRows(ctx context.Context, table string, filter Filter) ([]json.RawMessage, error)
	GetRow(ctx context.Context, table string, key Filter) (json.RawMessage, error)
	UpsertRow(ctx context.Context, table string, key Filter, row any) (json.RawMessage, error)
	DeleteRow(ctx context.Context, table string, key Filter) (bool, error)
}

// keyString renders a key Filter into a canonical string so composite keys
// like (player_id, match_id) address a single row regardless of map order.
func keyString(key Filter) string {
	parts := make([]string, 0, len(key))
	for k, v := range key {
		parts = append(parts, k+"="+v)
	}
	sort.Strings(parts)
	return strings.Join(parts, "&")
}
