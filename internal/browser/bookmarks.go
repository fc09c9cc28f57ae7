package browser

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite"
)

// DefaultBookmarksPath is the bookmark database used when none is configured.
func DefaultBookmarksPath() string {
	return filepath.Join(xdg.DataHome, "chromepie", "bookmarks.db")
}

// Bookmarks persists bookmarked URLs.
type Bookmarks interface {
	Exists(ctx context.Context, url string) (bool, error)
	Add(ctx context.Context, url, title string) error
	Remove(ctx context.Context, url string) error
	List(ctx context.Context) ([]Bookmark, error)
}

// Bookmark is one stored entry.
type Bookmark struct {
	URL     string
	Title   string
	AddedAt time.Time
}

// SQLiteBookmarks stores bookmarks in a local SQLite database.
type SQLiteBookmarks struct {
	db *sql.DB
}

// OpenSQLiteBookmarks opens (and migrates) the database at path.
func OpenSQLiteBookmarks(ctx context.Context, path string) (*SQLiteBookmarks, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create bookmark directory: %w", err)
		}
	}
	// modernc.org/sqlite registers the "sqlite" driver name.
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open bookmarks: %w", err)
	}
	db.SetMaxOpenConns(1)
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("configure bookmarks: %w", err)
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS bookmarks (
		url TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		added_at_unixms INTEGER NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate bookmarks: %w", err)
	}
	return &SQLiteBookmarks{db: db}, nil
}

// Close releases the database.
func (b *SQLiteBookmarks) Close() error {
	return b.db.Close()
}

func (b *SQLiteBookmarks) Exists(ctx context.Context, url string) (bool, error) {
	var n int
	err := b.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM bookmarks WHERE url = ?`, url).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("query bookmark: %w", err)
	}
	return n > 0, nil
}

func (b *SQLiteBookmarks) Add(ctx context.Context, url, title string) error {
	_, err := b.db.ExecContext(ctx,
		`INSERT INTO bookmarks (url, title, added_at_unixms) VALUES (?, ?, ?)
		 ON CONFLICT(url) DO UPDATE SET title = excluded.title`,
		url, title, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("add bookmark: %w", err)
	}
	return nil
}

func (b *SQLiteBookmarks) Remove(ctx context.Context, url string) error {
	if _, err := b.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE url = ?`, url); err != nil {
		return fmt.Errorf("remove bookmark: %w", err)
	}
	return nil
}

func (b *SQLiteBookmarks) List(ctx context.Context) ([]Bookmark, error) {
	rows, err := b.db.QueryContext(ctx, `SELECT url, title, added_at_unixms FROM bookmarks ORDER BY added_at_unixms, url`)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()
	var out []Bookmark
	for rows.Next() {
		var (
			bm    Bookmark
			added int64
		)
		if err := rows.Scan(&bm.URL, &bm.Title, &added); err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		bm.AddedAt = time.UnixMilli(added)
		out = append(out, bm)
	}
	return out, rows.Err()
}

// MemoryBookmarks keeps bookmarks in process memory.
type MemoryBookmarks struct {
	mu    sync.Mutex
	items []Bookmark
}

func NewMemoryBookmarks() *MemoryBookmarks {
	return &MemoryBookmarks{}
}

func (m *MemoryBookmarks) Exists(_ context.Context, url string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.indexOf(url) >= 0, nil
}

func (m *MemoryBookmarks) Add(_ context.Context, url, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.indexOf(url); i >= 0 {
		m.items[i].Title = title
		return nil
	}
	m.items = append(m.items, Bookmark{URL: url, Title: title, AddedAt: time.Now()})
	return nil
}

func (m *MemoryBookmarks) Remove(_ context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.indexOf(url); i >= 0 {
		m.items = append(m.items[:i], m.items[i+1:]...)
	}
	return nil
}

func (m *MemoryBookmarks) List(context.Context) ([]Bookmark, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Bookmark(nil), m.items...), nil
}

func (m *MemoryBookmarks) indexOf(url string) int {
	for i, bm := range m.items {
		if bm.URL == url {
			return i
		}
	}
	return -1
}
