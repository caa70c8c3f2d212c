package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"listing-view/models"
)

const summaryColumns = 15

// PostgresWriter persists rendered entries to PostgreSQL.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS listing_views (
			entry_id     TEXT          PRIMARY KEY,
			run_id       UUID          NOT NULL,
			name         TEXT          NOT NULL DEFAULT '',
			entry_type   VARCHAR(50)   NOT NULL DEFAULT 'poi',
			row_type     VARCHAR(50)   NOT NULL DEFAULT '',
			is_ad        BOOLEAN       NOT NULL DEFAULT FALSE,
			street       TEXT          NOT NULL DEFAULT '',
			city         TEXT          NOT NULL DEFAULT '',
			categories   TEXT          NOT NULL DEFAULT '',
			phone        TEXT          NOT NULL DEFAULT '',
			distance_m   NUMERIC(12,2) NOT NULL DEFAULT 0,
			offer_count  INTEGER       NOT NULL DEFAULT 0,
			latitude     DOUBLE PRECISION NOT NULL DEFAULT 0,
			longitude    DOUBLE PRECISION NOT NULL DEFAULT 0,
			rendered     JSONB         NOT NULL,
			created_at   TIMESTAMPTZ   NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_listing_views_run        ON listing_views(run_id);
		CREATE INDEX IF NOT EXISTS idx_listing_views_entry_type ON listing_views(entry_type);
		CREATE INDEX IF NOT EXISTS idx_listing_views_city       ON listing_views(city);
		CREATE INDEX IF NOT EXISTS idx_listing_views_is_ad      ON listing_views(is_ad);
	`)
	return err
}

// WriteRun upserts all summaries, tagging each row with runID. An entry
// rendered again replaces its previous row.
func (pw *PostgresWriter) WriteRun(runID uuid.UUID, summaries []*models.Summary) error {
	if len(summaries) == 0 {
		return nil
	}

	const batchSize = 50
	for i := 0; i < len(summaries); i += batchSize {
		end := i + batchSize
		if end > len(summaries) {
			end = len(summaries)
		}
		if err := pw.insertBatch(runID, summaries[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (pw *PostgresWriter) insertBatch(runID uuid.UUID, batch []*models.Summary) error {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*summaryColumns)

	for idx, s := range batch {
		rendered, err := json.Marshal(s.Rendered)
		if err != nil {
			return fmt.Errorf("postgres: encode rendered view %s: %w", s.ID, err)
		}

		placeholders := make([]string, summaryColumns)
		for c := range placeholders {
			placeholders[c] = fmt.Sprintf("$%d", idx*summaryColumns+c+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")
		valueArgs = append(valueArgs,
			s.ID, runID.String(), s.Name, s.EntryType, s.RowType, s.IsAd, s.Street, s.City,
			s.Categories, s.Phone, s.DistanceMeters, s.OfferCount, s.Latitude, s.Longitude, string(rendered))
	}

	query := fmt.Sprintf(`
		INSERT INTO listing_views (entry_id, run_id, name, entry_type, row_type, is_ad, street, city,
			categories, phone, distance_m, offer_count, latitude, longitude, rendered)
		VALUES %s
		ON CONFLICT (entry_id) DO UPDATE SET
			run_id = EXCLUDED.run_id, name = EXCLUDED.name, entry_type = EXCLUDED.entry_type,
			row_type = EXCLUDED.row_type, is_ad = EXCLUDED.is_ad, street = EXCLUDED.street,
			city = EXCLUDED.city, categories = EXCLUDED.categories, phone = EXCLUDED.phone,
			distance_m = EXCLUDED.distance_m, offer_count = EXCLUDED.offer_count,
			latitude = EXCLUDED.latitude, longitude = EXCLUDED.longitude,
			rendered = EXCLUDED.rendered, created_at = NOW()
	`, strings.Join(valueStrings, ","))

	if _, err := pw.db.Exec(query, valueArgs...); err != nil {
		return fmt.Errorf("postgres: insert batch: %w", err)
	}
	return nil
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}

// FetchRun retrieves the rows written by runID for the insight service.
func (pw *PostgresWriter) FetchRun(runID uuid.UUID) ([]*models.Summary, error) {
	rows, err := pw.db.Query(`
		SELECT entry_id, name, entry_type, row_type, is_ad, street, city, categories, phone,
			distance_m, offer_count, latitude, longitude, rendered, created_at
		FROM listing_views
		WHERE run_id = $1
		ORDER BY entry_id
	`, runID.String())
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch run: %w", err)
	}
	defer rows.Close()

	var summaries []*models.Summary
	for rows.Next() {
		s := &models.Summary{}
		var rendered []byte
		if err := rows.Scan(
			&s.ID, &s.Name, &s.EntryType, &s.RowType, &s.IsAd, &s.Street, &s.City, &s.Categories,
			&s.Phone, &s.DistanceMeters, &s.OfferCount, &s.Latitude, &s.Longitude, &rendered, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}

		s.Rendered = &models.RenderedView{}
		if err := json.Unmarshal(rendered, s.Rendered); err != nil {
			return nil, fmt.Errorf("postgres: decode rendered view %s: %w", s.ID, err)
		}
		s.Distance = s.Rendered.Distance
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
