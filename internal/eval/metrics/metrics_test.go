package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func set(names ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func TestAveragePrecision(t *testing.T) {
	tests := []struct {
		name     string
		ranked   []string
		relevant map[string]struct{}
		want     float64
	}{
		{
			name:     "all relevant in first positions",
			ranked:   []string{"100101.jpg", "100102.jpg", "100103.jpg"},
			relevant: set("100101.jpg", "100102.jpg"),
			// Precision at each relevant rank: 1/1, 2/2
			want: 1.0,
		},
		{
			name:     "relevant at ranks 1 and 3",
			ranked:   []string{"100101.jpg", "100103.jpg", "100102.jpg"},
			relevant: set("100101.jpg", "100102.jpg"),
			// (1/1 + 2/3) / 2
			want: (1.0 + 2.0/3.0) / 2.0,
		},
		{
			name:     "no relevant returned",
			ranked:   []string{"100103.jpg", "100104.jpg"},
			relevant: set("100101.jpg"),
			want:     0,
		},
		{
			name:     "empty ranked list",
			ranked:   nil,
			relevant: set("100101.jpg"),
			want:     0,
		},
		{
			name:     "relevant missing from results lowers the score",
			ranked:   []string{"100101.jpg"},
			relevant: set("100101.jpg", "100102.jpg"),
			want:     0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AveragePrecision(tt.ranked, tt.relevant)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}

	t.Run("empty relevant set", func(t *testing.T) {
		_, err := AveragePrecision([]string{"100101.jpg"}, nil)
		assert.ErrorIs(t, err, ErrNoRelevant)
	})
}

func TestAveragePrecisionIrrelevantOrderInvariance(t *testing.T) {
	relevant := set("100101.jpg", "100102.jpg")

	a := []string{"100101.jpg", "100103.jpg", "100104.jpg", "100102.jpg"}
	b := []string{"100101.jpg", "100104.jpg", "100103.jpg", "100102.jpg"}

	apA, err := AveragePrecision(a, relevant)
	require.NoError(t, err)
	apB, err := AveragePrecision(b, relevant)
	require.NoError(t, err)

	assert.InDelta(t, apA, apB, 1e-9)
}

func TestReciprocalRank(t *testing.T) {
	tests := []struct {
		name     string
		ranked   []string
		relevant map[string]struct{}
		want     float64
	}{
		{
			name:     "first is relevant",
			ranked:   []string{"100101.jpg", "100103.jpg"},
			relevant: set("100101.jpg"),
			want:     1.0,
		},
		{
			name:     "third is first relevant",
			ranked:   []string{"100103.jpg", "100104.jpg", "100101.jpg"},
			relevant: set("100101.jpg"),
			want:     1.0 / 3.0,
		},
		{
			name:     "none relevant",
			ranked:   []string{"100103.jpg"},
			relevant: set("100101.jpg"),
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ReciprocalRank(tt.ranked, tt.relevant), 1e-9)
		})
	}
}

func TestPrecisionAtK(t *testing.T) {
	relevant := set("100101.jpg", "100102.jpg")
	ranked := []string{"100101.jpg", "100103.jpg", "100102.jpg", "100104.jpg"}

	assert.InDelta(t, 1.0, PrecisionAtK(ranked, relevant, 1), 1e-9)
	assert.InDelta(t, 0.5, PrecisionAtK(ranked, relevant, 2), 1e-9)
	assert.InDelta(t, 0.5, PrecisionAtK(ranked, relevant, 4), 1e-9)
	// K beyond the list length counts the missing tail as misses.
	assert.InDelta(t, 0.4, PrecisionAtK(ranked, relevant, 5), 1e-9)
	assert.Zero(t, PrecisionAtK(ranked, relevant, 0))
	assert.Zero(t, PrecisionAtK(nil, relevant, 3))
}

func TestRecallAtK(t *testing.T) {
	relevant := set("100101.jpg", "100102.jpg", "100105.jpg")
	ranked := []string{"100101.jpg", "100103.jpg", "100102.jpg"}

	assert.InDelta(t, 1.0/3.0, RecallAtK(ranked, relevant, 1), 1e-9)
	assert.InDelta(t, 2.0/3.0, RecallAtK(ranked, relevant, 3), 1e-9)
	assert.Zero(t, RecallAtK(ranked, nil, 3))
}
