package hashing

import (
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// TableRegistry shares one ZobristTable per board geometry. It is safe for
// concurrent use; the tables themselves are read-only once built.
type TableRegistry struct {
	tables map[chess.Board]*ZobristTable
	mu     sync.RWMutex
}

// NewTableRegistry creates an empty registry.
func NewTableRegistry() *TableRegistry {
	return &TableRegistry{tables: make(map[chess.Board]*ZobristTable)}
}

var defaultRegistry = NewTableRegistry()

// TableFor returns the shared table for board from the package registry.
func TableFor(board chess.Board) *ZobristTable {
	return defaultRegistry.Get(board)
}

// Get returns the table for board, building it on first use.
func (r *TableRegistry) Get(board chess.Board) *ZobristTable {
	r.mu.RLock()
	z, ok := r.tables[board]
	r.mu.RUnlock()
	if ok {
		return z
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if z, ok := r.tables[board]; ok {
		return z
	}
	z = NewZobristTable(board)
	r.tables[board] = z
	return z
}
