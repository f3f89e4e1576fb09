// Package memory persists conversation memories in SQLite.
package memory

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/pkg/filesystem"
	"github.com/doeshing/jarvis-go/internal/ports"
)

// SQLiteStore is the append-only memory collaborator backed by
// ~/.jarvis/memory/memory.db (or an explicit path for tests).
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore creates (or opens) the memory database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		path = filepath.Join(filesystem.UserHomeDir(), ".jarvis", "memory", "memory.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("memory dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open memory db: %w", err)
	}
	store := &SQLiteStore{db: db}
	if err := store.init(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS memories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT,
		conversation TEXT,
		message TEXT,
		response TEXT,
		intent TEXT,
		topic TEXT,
		confidence REAL
	);`)
	return err
}

// Save implements ports.MemoryStore.
func (s *SQLiteStore) Save(record domain.MemoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO memories
		(timestamp, conversation, message, response, intent, topic, confidence)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.Timestamp.Format(time.RFC3339),
		record.Conversation,
		record.Message,
		record.Response,
		record.Intent,
		record.Topic,
		record.Confidence,
	)
	return err
}

// Search returns the most recent records whose message or response matches
// the query. An empty query behaves like Recent.
func (s *SQLiteStore) Search(query string, limit int) ([]domain.MemoryRecord, error) {
	builder := strings.Builder{}
	builder.WriteString("SELECT timestamp, conversation, message, response, intent, topic, confidence FROM memories")
	var args []any
	if query != "" {
		builder.WriteString(" WHERE message LIKE ? OR response LIKE ? OR topic LIKE ?")
		like := "%" + query + "%"
		args = append(args, like, like, like)
	}
	builder.WriteString(" ORDER BY datetime(timestamp) DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}

	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.MemoryRecord
	for rows.Next() {
		var rec domain.MemoryRecord
		var ts string
		if err := rows.Scan(&ts, &rec.Conversation, &rec.Message, &rec.Response, &rec.Intent, &rec.Topic, &rec.Confidence); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Timestamp = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Recent implements ports.MemoryStore.
func (s *SQLiteStore) Recent(limit int) ([]domain.MemoryRecord, error) {
	return s.Search("", limit)
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ ports.MemoryStore = (*SQLiteStore)(nil)
