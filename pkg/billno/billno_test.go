package billno

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"well formed", "LPG-20260901-000001", true},
		{"long prefix", "GASWORKS-20260901-000001", true},
		{"lowercase prefix", "lpg-20260901-000001", false},
		{"short sequence", "LPG-20260901-001", false},
		{"missing date", "LPG-000001", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.input))
		})
	}
}

func TestGeneratorSequencesWithinDay(t *testing.T) {
	g := NewGenerator("lpg")
	g.now = func() time.Time { return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC) }

	first := g.Next()
	second := g.Next()

	require.Equal(t, "LPG-20260901-000001", first)
	require.Equal(t, "LPG-20260901-000002", second)
	assert.True(t, Valid(first))
}

func TestGeneratorResetsOnDateRollover(t *testing.T) {
	g := NewGenerator("LPG")
	day := time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC)
	g.now = func() time.Time { return day }

	g.Next()
	g.Next()

	day = day.Add(2 * time.Minute)
	require.Equal(t, "LPG-20260902-000001", g.Next())
}
