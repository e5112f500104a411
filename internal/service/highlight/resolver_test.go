package highlight

import (
	"strings"
	"testing"

	"github.com/HarshXTrisha/vericheck-pro/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func concatSegments(segments []Segment) string {
	var sb strings.Builder
	for _, s := range segments {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

func decorated(segments []Segment) []Segment {
	var out []Segment
	for _, s := range segments {
		if s.Index != 0 {
			out = append(out, s)
		}
	}
	return out
}

func TestResolve_NoMatches(t *testing.T) {
	content := "Just a plain paragraph."

	segments := Resolve(content, nil)

	require.Len(t, segments, 1)
	assert.Equal(t, content, segments[0].Text)
	assert.Zero(t, segments[0].Index)
}

func TestResolve_EmptyContent(t *testing.T) {
	segments := Resolve("", []models.PlagiarismMatch{{Index: 1, MatchedText: "anything"}})

	assert.Empty(t, segments)
	assert.Equal(t, "", concatSegments(segments))
}

func TestResolve_RepeatedOccurrences(t *testing.T) {
	content := "The quick brown fox. The quick brown fox jumps."
	matches := []models.PlagiarismMatch{{Index: 1, MatchedText: "The quick brown fox"}}

	segments := Resolve(content, matches)

	assert.Equal(t, content, concatSegments(segments))

	dec := decorated(segments)
	require.Len(t, dec, 2)
	assert.Equal(t, "The quick brown fox", dec[0].Text)
	assert.Equal(t, "The quick brown fox", dec[1].Text)
	assert.Equal(t, 1, dec[0].Index)
	assert.Equal(t, ColorFor(1), dec[0].Color)

	// the separator between the two hits stays a plain segment
	require.Len(t, segments, 4)
	assert.Equal(t, ". ", segments[1].Text)
	assert.Zero(t, segments[1].Index)
}

func TestResolve_OverlapDiscarded(t *testing.T) {
	content := "abcdefg"
	matches := []models.PlagiarismMatch{
		{Index: 2, MatchedText: "abc"},
		{Index: 1, MatchedText: "abcdef"},
	}

	segments := Resolve(content, matches)

	assert.Equal(t, content, concatSegments(segments))

	dec := decorated(segments)
	require.Len(t, dec, 1)
	// longer occurrence wins at the same start offset
	assert.Equal(t, "abcdef", dec[0].Text)
	assert.Equal(t, 1, dec[0].Index)
}

func TestResolve_DuplicateMatchesNeverOverlap(t *testing.T) {
	content := "alpha beta alpha beta"
	matches := []models.PlagiarismMatch{
		{Index: 1, MatchedText: "alpha beta"},
		{Index: 2, MatchedText: "alpha beta"},
		{Index: 3, MatchedText: "beta alpha"},
	}

	segments := Resolve(content, matches)

	assert.Equal(t, content, concatSegments(segments))

	dec := decorated(segments)
	end := 0
	pos := 0
	for _, s := range segments {
		if s.Index != 0 {
			assert.GreaterOrEqual(t, pos, end, "decorated segments must not overlap")
			end = pos + len(s.Text)
		}
		pos += len(s.Text)
	}
	assert.NotEmpty(t, dec)
}

func TestResolve_MatchTextNotPresent(t *testing.T) {
	content := "Nothing matches here."
	matches := []models.PlagiarismMatch{{Index: 1, MatchedText: "absent phrase"}}

	segments := Resolve(content, matches)

	require.Len(t, segments, 1)
	assert.Equal(t, content, segments[0].Text)
}

func TestResolve_EmptyMatchedTextIgnored(t *testing.T) {
	content := "Some content."
	matches := []models.PlagiarismMatch{{Index: 1, MatchedText: ""}}

	segments := Resolve(content, matches)

	assert.Equal(t, content, concatSegments(segments))
	assert.Empty(t, decorated(segments))
}

func TestResolve_DoesNotMutateInputs(t *testing.T) {
	content := "alpha beta gamma"
	matches := []models.PlagiarismMatch{{Index: 1, MatchedText: "beta", Similarity: 5}}

	Resolve(content, matches)

	assert.Equal(t, "beta", matches[0].MatchedText)
	assert.Equal(t, 5, matches[0].Similarity)
}

func TestColorFor_PaletteCycle(t *testing.T) {
	assert.Equal(t, ColorFor(1), ColorFor(11))
	assert.Equal(t, ColorFor(10), ColorFor(20))
	assert.NotEqual(t, ColorFor(1), ColorFor(2))

	// out-of-range indexes still land inside the palette
	assert.NotEmpty(t, ColorFor(0))
	assert.NotEmpty(t, ColorFor(-3))
}
