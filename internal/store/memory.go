package store

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
)

// Memory is an in-process Store. It backs tests and the no-DSN development
// mode. FailTable injects a fault on every call touching a table, which is
// how tests reach the store-unavailable paths.
type Memory struct {
	mu     sync.RWMutex
	tables map[string]map[string]json.RawMessage
	faults map[string]error
}

func NewMemory() *Memory {
	return &Memory{
		tables: make(map[string]map[string]json.RawMessage),
		faults: make(map[string]error),
	}
}

// FailTable makes every subsequent call against table return err. Passing a
// nil err clears the fault.
func (m *Memory) FailTable(table string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.faults, table)
		return
	}
	m.faults[table] = err
}

func (m *Memory) GetRows(_ context.Context, table string, filter Filter) ([]json.RawMessage,
	error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.faults[table]; err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(m.tables[table]))
	for key := range m.tables[table] {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var docs []json.RawMessage
	for _, key := range keys {
		doc := m.tables[table][key]
		if matches(doc, filter) {
			docs = append(docs, doc)
		}
	}

	return docs, nil
}

func (m *Memory) GetRow(_ context.Context, table string, key Filter) (json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.faults[table]; err != nil {
		return nil, err
	}

	doc, ok := m.tables[table][keyString(key)]
	if !ok {
		return nil, ErrRowNotFound
	}

	return doc, nil
}

func (m *Memory) UpsertRow(_ context.Context, table string, key Filter, row any) (
	json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.faults[table]; err != nil {
		return nil, err
	}

	doc, err := json.Marshal(row)
	if err != nil {
		return nil, err
	}

	if m.tables[table] == nil {
		m.tables[table] = make(map[string]json.RawMessage)
	}
	m.tables[table][keyString(key)] = doc

	return doc, nil
}

func (m *Memory) DeleteRow(_ context.Context, table string, key Filter) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.faults[table]; err != nil {
		return false, err
	}

	k := keyString(key)
	if _, ok := m.tables[table][k]; !ok {
		return false, nil
	}
	delete(m.tables[table], k)

	return true, nil
}

func matches(doc json.RawMessage, filter Filter) bool {
	if len(filter) == 0 {
		return true
	}

	var fields map[string]any
	if err := json.Unmarshal(doc, &fields); err != nil {
		return false
	}

	for k, want := range filter {
		got, ok := fields[k].(string)
		if !ok || got != want {
			return false
		}
	}

	return true
}
