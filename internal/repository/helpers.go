package repository

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/degreeplan/internal/domain"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// encodeStrings stores a string list as a JSON array; nil becomes "[]".
func encodeStrings(vals []string) string {
	if len(vals) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(vals)
	return string(b)
}

func decodeStrings(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("decoding string list %q: %w", s, err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

func seasonsToStrings(seasons []domain.Season) []string {
	out := make([]string, len(seasons))
	for i, s := range seasons {
		out[i] = string(s)
	}
	return out
}

// parseSeasons maps stored season names back to domain seasons. Unknown names
// are an error rather than silently dropped.
func parseSeasons(names []string) ([]domain.Season, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make([]domain.Season, 0, len(names))
	for _, n := range names {
		s, err := domain.ParseSeason(n)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
