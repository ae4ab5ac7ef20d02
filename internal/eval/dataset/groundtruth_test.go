package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGroundTruth(t *testing.T) {
	t.Run("queries and relevant sets", func(t *testing.T) {
		input := strings.Join([]string{
			"100100.jpg",
			"100101.jpg",
			"100102.jpg",
			"100200.jpg",
			"100201.jpg",
		}, "\n")

		gt, err := ParseGroundTruth(strings.NewReader(input), DefaultConfig())
		require.NoError(t, err)

		assert.Len(t, gt.AllNames, 5)
		assert.Equal(t, []string{"100100.jpg", "100200.jpg"}, gt.Queries)

		rel, ok := gt.RelevantFor("100100.jpg")
		require.True(t, ok)
		assert.Len(t, rel, 2)
		assert.Contains(t, rel, "100101.jpg")
		assert.Contains(t, rel, "100102.jpg")

		rel, ok = gt.RelevantFor("100200.jpg")
		require.True(t, ok)
		assert.Len(t, rel, 1)
		assert.Contains(t, rel, "100201.jpg")
	})

	t.Run("query is not in its own relevant set", func(t *testing.T) {
		gt, err := ParseGroundTruth(strings.NewReader("100100.jpg\n100101.jpg\n"), DefaultConfig())
		require.NoError(t, err)

		rel, ok := gt.RelevantFor("100100.jpg")
		require.True(t, ok)
		assert.NotContains(t, rel, "100100.jpg")
	})

	t.Run("query with empty relevant set is kept", func(t *testing.T) {
		gt, err := ParseGroundTruth(strings.NewReader("100100.jpg\n100200.jpg\n100201.jpg\n"), DefaultConfig())
		require.NoError(t, err)

		rel, ok := gt.RelevantFor("100100.jpg")
		require.True(t, ok)
		assert.Empty(t, rel)
	})

	t.Run("relevant line before any query", func(t *testing.T) {
		_, err := ParseGroundTruth(strings.NewReader("100101.jpg\n100100.jpg\n"), DefaultConfig())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedLine)
		assert.Contains(t, err.Error(), "before any query")
	})

	t.Run("non-numeric id", func(t *testing.T) {
		_, err := ParseGroundTruth(strings.NewReader("100100.jpg\nholiday.jpg\n"), DefaultConfig())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedLine)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("wrong extension", func(t *testing.T) {
		_, err := ParseGroundTruth(strings.NewReader("100100.png\n"), DefaultConfig())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedLine)
	})

	t.Run("blank line", func(t *testing.T) {
		_, err := ParseGroundTruth(strings.NewReader("100100.jpg\n\n100101.jpg\n"), DefaultConfig())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedLine)
	})

	t.Run("custom extension and modulus", func(t *testing.T) {
		cfg := Config{Extension: ".png", QueryModulus: 10}
		gt, err := ParseGroundTruth(strings.NewReader("20.png\n21.png\n"), cfg)
		require.NoError(t, err)

		rel, ok := gt.RelevantFor("20.png")
		require.True(t, ok)
		assert.Contains(t, rel, "21.png")
	})

	t.Run("empty input", func(t *testing.T) {
		gt, err := ParseGroundTruth(strings.NewReader(""), DefaultConfig())
		require.NoError(t, err)
		assert.Empty(t, gt.AllNames)
		assert.Empty(t, gt.Queries)
	})
}

func TestGroundTruthMissingFrom(t *testing.T) {
	gt, err := ParseGroundTruth(strings.NewReader("100200.jpg\n100201.jpg\n100100.jpg\n100101.jpg\n"), DefaultConfig())
	require.NoError(t, err)

	missing := gt.MissingFrom(map[string]struct{}{"100200.jpg": {}})
	assert.Equal(t, []string{"100100.jpg"}, missing)

	missing = gt.MissingFrom(nil)
	assert.Equal(t, []string{"100100.jpg", "100200.jpg"}, missing)

	missing = gt.MissingFrom(map[string]struct{}{"100100.jpg": {}, "100200.jpg": {}})
	assert.Empty(t, missing)
}

func TestLoadGroundTruthFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadGroundTruthFile("does-not-exist.dat", DefaultConfig())
		assert.Error(t, err)
	})
}
