package characters

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/iceandfire/internal/client/models"
	"github.com/dmitrijs2005/iceandfire/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// ReplaceAll clears the table and inserts list. Titles are encoded as JSON,
// nil text fields are written as "".
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, list []models.Character) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM characters`); err != nil {
		return fmt.Errorf("failed to clear characters: %w", err)
	}

	query := `INSERT INTO characters (name, gender, culture, titles) VALUES (?, ?, ?, ?)`
	for i, c := range list {
		titles, err := encodeTitles(c.Titles)
		if err != nil {
			return fmt.Errorf("failed to encode titles of character %d: %w", i, err)
		}

		_, err = r.db.ExecContext(ctx, query,
			models.Text(c.Name), models.Text(c.Gender), models.Text(c.Culture), titles)
		if err != nil {
			return fmt.Errorf("failed to insert character %d: %w", i, err)
		}
	}
	return nil
}

// GetAll reads every row back, normalizing empty text to nil and decoding titles.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Character, error) {
	query := `SELECT id, name, gender, culture, titles FROM characters ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select characters: %w", err)
	}
	defer rows.Close()

	result := []models.Character{}
	for rows.Next() {
		var (
			id                            int64
			name, gender, culture, titles sql.NullString
		)
		if err := rows.Scan(&id, &name, &gender, &culture, &titles); err != nil {
			return nil, fmt.Errorf("failed to scan character row: %w", err)
		}

		decoded, err := decodeTitles(titles.String)
		if err != nil {
			return nil, fmt.Errorf("failed to decode titles of character %d: %w", id, err)
		}

		result = append(result, models.Character{
			ID:      &id,
			Name:    models.Nullable(name.String),
			Gender:  models.Nullable(gender.String),
			Culture: models.Nullable(culture.String),
			Titles:  decoded,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate character rows: %w", err)
	}
	return result, nil
}

// Count returns the number of rows in the table.
func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM characters`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count characters: %w", err)
	}
	return n, nil
}

func encodeTitles(titles []string) (string, error) {
	if titles == nil {
		titles = []string{}
	}
	b, err := json.Marshal(titles)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeTitles(s string) ([]string, error) {
	titles := []string{}
	if s == "" {
		return titles, nil
	}
	if err := json.Unmarshal([]byte(s), &titles); err != nil {
		return nil, err
	}
	// a stored "null" decodes to a nil slice
	if titles == nil {
		titles = []string{}
	}
	return titles, nil
}
