// Package catalog supplies the static companion candidate pool the
// matching engine filters. The pool is configuration data: the built-in
// default matches the original site, and a JSON file can replace it.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/onedate/onedate/internal/models"
)

// DefaultPool returns the built-in candidate pool. Order matters: the
// matching engine preserves it, and tests depend on it.
func DefaultPool() []models.Candidate {
	return []models.Candidate{
		{Name: "Noa", Age: 24, Bio: "Loves live music.", Rating: 4.5, Icon: "bi-person-heart"},
		{Name: "Maya", Age: 29, Bio: "Sophisticated gala dinners.", Rating: 4.8, Icon: "bi-person-stars"},
		{Name: "Tom", Age: 31, Bio: "Networking expert.", Rating: 4.9, Icon: "bi-person-check"},
		{Name: "Adi", Age: 35, Bio: "Calm and intellectual.", Rating: 4.7, Icon: "bi-person-workspace"},
		{Name: "Daniel", Age: 42, Bio: "Formal events expert.", Rating: 5.0, Icon: "bi-person-badge"},
		{Name: "Elena", Age: 52, Bio: "High-end gala companion.", Rating: 4.9, Icon: "bi-person-check-circle"},
	}
}

// Load reads a candidate pool from the JSON file at path (a top-level
// array of candidates). An empty path returns the default pool.
func Load(path string) ([]models.Candidate, error) {
	if path == "" {
		return DefaultPool(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate pool: %w", err)
	}

	var pool []models.Candidate
	if err := json.Unmarshal(data, &pool); err != nil {
		return nil, fmt.Errorf("failed to parse candidate pool: %w", err)
	}
	return pool, nil
}
