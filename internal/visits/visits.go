// Package visits records privacy-conscious page views: IPs are stored only
// as salted hashes, Do Not Track is honored, and rows older than twelve
// months are removed.
package visits

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite" // CGO-free SQLite
)

// Visit is one recorded page view.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	QueryKey  string    `json:"query_key,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// PathStat counts views of one path.
type PathStat struct {
	Path   string `json:"path"`
	Visits int64  `json:"visits"`
}

// Stats summarizes recorded visits.
type Stats struct {
	TotalVisitors    int64      `json:"total_visitors"`
	UniqueVisitors   int64      `json:"unique_visitors"`
	VisitorsToday    int64      `json:"visitors_today"`
	VisitorsThisWeek int64      `json:"visitors_this_week"`
	TopPaths         []PathStat `json:"top_paths"`
	RecentVisitors   []Visit    `json:"recent_visitors"`
}

// Retention is how long visits are kept.
const Retention = 12 * 30 * 24 * time.Hour

// Store persists visits in SQLite.
type Store struct {
	db   *sql.DB
	qb   squirrel.StatementBuilderType
	salt string
	now  func() time.Time

	// pending tracks background Record calls so Close can wait for them.
	pending sync.WaitGroup
}

// Open opens (or creates) the visits database at path.
func Open(path string) (*Store, error) {
	// WAL + busy timeout to avoid "database is locked"
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	salt, err := newSalt()
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:   db,
		qb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question).RunWith(db),
		salt: salt,
		now:  time.Now,
	}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS visitors (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip  TEXT    NOT NULL,
		user_agent TEXT,
		path       TEXT,
		query_key  TEXT,
		timestamp  INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_visitors_ts ON visitors(timestamp);
	`)
	if err != nil {
		return fmt.Errorf("failed to create visitors table: %w", err)
	}
	return nil
}

// Close waits for background records to finish, then closes the database.
// No new records may be started once Close is called.
func (s *Store) Close() error {
	s.pending.Wait()
	return s.db.Close()
}

func newSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashIP hashes an IP with the per-process salt. The result is stable for
// the life of the process.
func (s *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Record stores one visit. The portfolio query key is hashed like the IP.
func (s *Store) Record(ctx context.Context, ip, userAgent, path, queryKey string) error {
	if queryKey != "" {
		queryKey = s.HashIP(queryKey)
	}
	_, err := s.qb.Insert("visitors").
		Columns("hashed_ip", "user_agent", "path", "query_key", "timestamp").
		Values(s.HashIP(ip), userAgent, path, queryKey, s.now().Unix()).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}
	return nil
}

// recordAsync stores one visit in the background. Errors are logged.
func (s *Store) recordAsync(ip, userAgent, path, queryKey string) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Record(ctx, ip, userAgent, path, queryKey); err != nil {
			log.Printf("visits: error recording visitor: %v", err)
		}
	}()
}

// Cleanup deletes visits older than Retention and returns how many went.
func (s *Store) Cleanup(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-Retention).Unix()
	result, err := s.qb.Delete("visitors").
		Where(squirrel.Lt{"timestamp": cutoff}).
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("cleaning up visits: %w", err)
	}
	n, _ := result.RowsAffected()
	if n > 0 {
		log.Printf("visits: removed %d records older than 12 months", n)
	}
	return n, nil
}

// Stats computes the visit summary.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	counts := []struct {
		dst   *int64
		query squirrel.SelectBuilder
	}{
		{&stats.TotalVisitors, s.qb.Select("COUNT(*)").From("visitors")},
		{&stats.UniqueVisitors, s.qb.Select("COUNT(DISTINCT hashed_ip)").From("visitors")},
		{&stats.VisitorsToday, s.qb.Select("COUNT(*)").From("visitors").
			Where(squirrel.GtOrEq{"timestamp": midnight.Unix()})},
		{&stats.VisitorsThisWeek, s.qb.Select("COUNT(*)").From("visitors").
			Where(squirrel.GtOrEq{"timestamp": now.Add(-7 * 24 * time.Hour).Unix()})},
	}
	for _, c := range counts {
		if err := c.query.QueryRowContext(ctx).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("counting visits: %w", err)
		}
	}

	rows, err := s.qb.Select("path", "COUNT(*) AS visits").
		From("visitors").
		GroupBy("path").
		OrderBy("visits DESC", "path").
		Limit(10).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("top paths: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p PathStat
		if err := rows.Scan(&p.Path, &p.Visits); err != nil {
			return nil, fmt.Errorf("scanning top paths: %w", err)
		}
		stats.TopPaths = append(stats.TopPaths, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top paths: %w", err)
	}

	recent, err := s.Recent(ctx, 50)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors = recent

	return stats, nil
}

// Recent returns the latest visits, newest first.
func (s *Store) Recent(ctx context.Context, limit uint64) ([]Visit, error) {
	rows, err := s.qb.Select("id", "hashed_ip", "user_agent", "path", "query_key", "timestamp").
		From("visitors").
		OrderBy("timestamp DESC", "id DESC").
		Limit(limit).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("recent visits: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var (
			v         Visit
			userAgent sql.NullString
			path      sql.NullString
			queryKey  sql.NullString
			ts        int64
		)
		if err := rows.Scan(&v.ID, &v.HashedIP, &userAgent, &path, &queryKey, &ts); err != nil {
			return nil, fmt.Errorf("scanning recent visits: %w", err)
		}
		v.UserAgent = userAgent.String
		v.Path = path.String
		v.QueryKey = queryKey.String
		v.Timestamp = time.Unix(ts, 0)
		visits = append(visits, v)
	}
	return visits, rows.Err()
}
