package analytics

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	_ "modernc.org/sqlite"
)

// Logger receives background errors. echo.Logger satisfies it.
type Logger interface {
	Errorf(format string, args ...interface{})
}

// Store provides database operations for analytics.
type Store struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

// NewStore opens (creating if needed) the analytics database at dbPath and
// loads or generates the per-installation hashing salt.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := s.initSalt(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS visits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			visitor_id TEXT NOT NULL,
			ip_hash TEXT NOT NULL,
			browser TEXT NOT NULL,
			os TEXT NOT NULL,
			device TEXT NOT NULL,
			path TEXT NOT NULL,
			referrer TEXT NOT NULL DEFAULT '',
			timestamp DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS bot_visits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			bot_name TEXT NOT NULL,
			ip_hash TEXT NOT NULL,
			user_agent TEXT NOT NULL,
			path TEXT NOT NULL,
			timestamp DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_visits_timestamp ON visits(timestamp);
		CREATE INDEX IF NOT EXISTS idx_visits_path ON visits(path);
		CREATE INDEX IF NOT EXISTS idx_bot_visits_timestamp ON bot_visits(timestamp);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	return err
}

// currentSchemaVersion is the latest schema version. Increment when adding migrations.
const currentSchemaVersion = 1

func (s *Store) migrate() error {
	verStr, err := s.GetSetting("schema_version")
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	version := 0
	if verStr != "" {
		version, err = strconv.Atoi(verStr)
		if err != nil {
			return fmt.Errorf("parse schema version %q: %w", verStr, err)
		}
	}
	if version > currentSchemaVersion {
		return fmt.Errorf("schema version %d is newer than supported %d", version, currentSchemaVersion)
	}
	return s.SetSetting("schema_version", strconv.Itoa(currentSchemaVersion))
}

func (s *Store) initSalt() error {
	v, err := s.GetSetting("hash_salt")
	if err != nil {
		return fmt.Errorf("read hash salt: %w", err)
	}
	if v == "" {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return fmt.Errorf("generate salt: %w", err)
		}
		v = hex.EncodeToString(b)
		if err := s.SetSetting("hash_salt", v); err != nil {
			return fmt.Errorf("store hash salt: %w", err)
		}
	}
	s.salt = v
	return nil
}

// HashIP creates a salted hash of an IP address.
func (s *Store) HashIP(ip string) string {
	return hash(s.salt, ip)
}

// VisitorID creates a salted visitor ID from IP and User-Agent.
func (s *Store) VisitorID(ip, userAgent string) string {
	return hash(s.salt, ip, userAgent)
}

// GetSetting retrieves a setting value by key. Returns empty string if not found.
func (s *Store) GetSetting(key string) (string, error) {
	var val string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&val)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return val, err
}

// SetSetting stores a setting value by key (upsert).
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(`INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

// SaveVisit stores a new visit.
func (s *Store) SaveVisit(ctx context.Context, v *Visit) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO visits
		(visitor_id, ip_hash, browser, os, device, path, referrer, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		v.VisitorID, v.IPHash, v.Browser, v.OS, v.Device, v.Path, v.Referrer, v.Timestamp.UTC())
	return err
}

// SaveBotVisit stores a new bot visit.
func (s *Store) SaveBotVisit(ctx context.Context, bv *BotVisit) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO bot_visits
		(bot_name, ip_hash, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?, ?)`,
		bv.BotName, bv.IPHash, bv.UserAgent, bv.Path, bv.Timestamp.UTC())
	return err
}

// GetStats returns aggregated statistics for the last days days.
func (s *Store) GetStats(ctx context.Context, days int) (*Stats, error) {
	if days <= 0 {
		days = 30
	}
	to := s.now().UTC()
	from := to.AddDate(0, 0, -days)
	stats := &Stats{
		Period:        from.Format("2006-01-02") + " to " + to.Format("2006-01-02"),
		Days:          days,
		TopPages:      []PageStat{},
		BrowserStats:  []DimensionStat{},
		ReferrerStats: []DimensionStat{},
		DailyViews:    []DailyView{},
	}

	counts := []struct {
		query string
		dst   *int
		name  string
	}{
		{`SELECT COUNT(*) FROM visits WHERE timestamp >= ? AND timestamp <= ?`, &stats.TotalViews, "count views"},
		{`SELECT COUNT(DISTINCT visitor_id) FROM visits WHERE timestamp >= ? AND timestamp <= ?`, &stats.UniqueVisitors, "count unique visitors"},
		{`SELECT COUNT(*) FROM bot_visits WHERE timestamp >= ? AND timestamp <= ?`, &stats.BotVisits, "count bot visits"},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, from, to).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("%s: %w", c.name, err)
		}
	}

	err := s.rows(ctx, `SELECT path, COUNT(*) FROM visits WHERE timestamp >= ? AND timestamp <= ?
		GROUP BY path ORDER BY COUNT(*) DESC, path LIMIT 20`, from, to, func(r *sql.Rows) error {
		var p PageStat
		if err := r.Scan(&p.Path, &p.Views); err != nil {
			return err
		}
		stats.TopPages = append(stats.TopPages, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("top pages: %w", err)
	}

	for _, dim := range []struct {
		column string
		dst    *[]DimensionStat
	}{
		{"browser", &stats.BrowserStats},
		{"referrer", &stats.ReferrerStats},
	} {
		dst := dim.dst
		err := s.rows(ctx, `SELECT `+dim.column+`, COUNT(*) FROM visits WHERE timestamp >= ? AND timestamp <= ?
			GROUP BY `+dim.column+` ORDER BY COUNT(*) DESC LIMIT 10`, from, to, func(r *sql.Rows) error {
			var d DimensionStat
			if err := r.Scan(&d.Name, &d.Count); err != nil {
				return err
			}
			*dst = append(*dst, d)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%s stats: %w", dim.column, err)
		}
	}

	err = s.rows(ctx, `SELECT substr(timestamp, 1, 10) AS day, COUNT(*) FROM visits
		WHERE timestamp >= ? AND timestamp <= ? GROUP BY day ORDER BY day`, from, to, func(r *sql.Rows) error {
		var d DailyView
		if err := r.Scan(&d.Date, &d.Views); err != nil {
			return err
		}
		stats.DailyViews = append(stats.DailyViews, d)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("daily views: %w", err)
	}
	return stats, nil
}

func (s *Store) rows(ctx context.Context, query string, from, to time.Time, scan func(*sql.Rows) error) error {
	rows, err := s.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// CleanupOldVisits removes visits and bot visits older than the retention period.
func (s *Store) CleanupOldVisits(ctx context.Context, retentionDays int) error {
	cutoff := s.now().UTC().AddDate(0, 0, -retentionDays)
	if _, err := s.db.ExecContext(ctx, `DELETE FROM visits WHERE timestamp < ?`, cutoff); err != nil {
		return fmt.Errorf("cleanup visits: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM bot_visits WHERE timestamp < ?`, cutoff); err != nil {
		return fmt.Errorf("cleanup bot_visits: %w", err)
	}
	return nil
}

// StartCleanupScheduler runs periodic cleanup of old data. Returns a stop function.
func (s *Store) StartCleanupScheduler(retentionDays int, interval time.Duration, logger Logger) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				if err := s.CleanupOldVisits(context.Background(), retentionDays); err != nil {
					logger.Errorf("analytics cleanup: %v", err)
				}
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() { close(done) }
}
