package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onedate/onedate/internal/catalog"
	"github.com/onedate/onedate/internal/models"
)

func names(pool []models.Candidate) []string {
	out := make([]string, len(pool))
	for i, c := range pool {
		out[i] = c.Name
	}
	return out
}

func TestMatch_TargetAge30_ReturnsWindowInPoolOrder(t *testing.T) {
	// Pool ages are {24,29,31,35,42,52}; [23,37] survives as
	// {24,29,31,35}, truncated to the first two.
	got := Match(catalog.DefaultPool(), 30, DefaultLimit)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"Noa", "Maya"}, names(got))
}

func TestMatch_NoTargetAge_ReturnsFirstEntriesUnfiltered(t *testing.T) {
	got := Match(catalog.DefaultPool(), 0, DefaultLimit)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"Noa", "Maya"}, names(got))
}

func TestMatch_WindowBoundsAreClosed(t *testing.T) {
	pool := []models.Candidate{
		{Name: "low", Age: 23},
		{Name: "below", Age: 22},
		{Name: "high", Age: 37},
		{Name: "above", Age: 38},
	}

	got := Match(pool, 30, 10)
	assert.Equal(t, []string{"low", "high"}, names(got))
}

func TestMatch_NothingMatches_ReturnsEmptyNotNil(t *testing.T) {
	got := Match(catalog.DefaultPool(), 90, DefaultLimit)

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatch_PreservesPoolOrder(t *testing.T) {
	// Daniel (5.0) outranks Tom (4.9), but order stays positional.
	got := MatchWindow(catalog.DefaultPool(), 38, 7, 10)
	assert.Equal(t, []string{"Tom", "Adi", "Daniel"}, names(got))
}

func TestParseTargetAge(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"range string takes first number", "25-32", 25},
		{"plain number", "40", 40},
		{"number embedded in text", "about 33 or so", 33},
		{"empty string", "", 0},
		{"no digits", "any", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseTargetAge(tc.raw))
		})
	}
}
