// Package cache persists the last fetched offers for offline browsing.
package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"sixcities/internal/offer"
)

// DefaultPath returns the default cache path: ~/.config/six/cache.db
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "six", "cache.db"), nil
}

// migrations is an ordered list of SQL statements to run on open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS offers (
		id          TEXT    PRIMARY KEY,
		city        TEXT    NOT NULL,
		is_favorite INTEGER NOT NULL DEFAULT 0,
		payload     TEXT    NOT NULL,
		fetched_at  DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
}

// Cache is a SQLite-backed snapshot of the last successful offers
// fetch. It mirrors the store's full-replace semantics: each save
// replaces the whole snapshot.
type Cache struct {
	db *sql.DB
}

// Open opens (or creates) the cache at the given path, enables WAL
// mode, and runs migrations.
func Open(path string) (*Cache, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("setting journal mode: %w (also failed to close: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			closeErr := db.Close()
			if closeErr != nil {
				return nil, fmt.Errorf("migration %d: %w (also failed to close: %v)", i, err, closeErr)
			}
			return nil, fmt.Errorf("migration %d: %w", i, err)
		}
	}

	return &Cache{db: db}, nil
}

// ReplaceOffers replaces the cached snapshot with the given offers.
func (c *Cache) ReplaceOffers(offers []offer.Offer) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() {
		// No-op after a successful commit.
		if rerr := tx.Rollback(); rerr != nil && rerr != sql.ErrTxDone {
			fmt.Fprintf(os.Stderr, "warning: rolling back: %v\n", rerr)
		}
	}()

	if _, err := tx.Exec("DELETE FROM offers"); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}

	for _, o := range offers {
		payload, err := json.Marshal(o)
		if err != nil {
			return fmt.Errorf("marshaling offer %s: %w", o.ID, err)
		}
		fav := 0
		if o.IsFavorite {
			fav = 1
		}
		if _, err := tx.Exec(
			"INSERT INTO offers (id, city, is_favorite, payload) VALUES (?, ?, ?, ?)",
			o.ID, o.City.Name, fav, string(payload),
		); err != nil {
			return fmt.Errorf("caching offer %s: %w", o.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// Offers returns the cached snapshot.
func (c *Cache) Offers() ([]offer.Offer, error) {
	return c.query("SELECT payload FROM offers ORDER BY rowid")
}

// Favorites returns the favorited offers from the cached snapshot.
func (c *Cache) Favorites() ([]offer.Offer, error) {
	return c.query("SELECT payload FROM offers WHERE is_favorite = 1 ORDER BY rowid")
}

func (c *Cache) query(q string) ([]offer.Offer, error) {
	rows, err := c.db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("querying cache: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "warning: closing rows: %v\n", cerr)
		}
	}()

	var offers []offer.Offer
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		var o offer.Offer
		if err := json.Unmarshal([]byte(payload), &o); err != nil {
			return nil, fmt.Errorf("decoding cached offer: %w", err)
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return offers, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
