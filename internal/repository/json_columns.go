package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// encodeStringList stores a list column as JSON text; nil becomes "[]".
func encodeStringList(v []string) (string, error) {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode list column: %w", err)
	}
	return string(b), nil
}

// decodeStringList reads a JSON list column. NULL, empty or malformed text
// yields an empty list.
func decodeStringList(s sql.NullString) []string {
	if !s.Valid || s.String == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(s.String), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}
