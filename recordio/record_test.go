package recordio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseWellFormedLine(t *testing.T) {
	rec, ok := Parse([]byte("A|B|C1|S1"))
	require.True(t, ok)
	require.Equal(t, "A", string(rec.Source))
	require.Equal(t, "B", string(rec.Destination))
	require.Equal(t, "C1", string(rec.ClaimID))
	require.Equal(t, "S1", string(rec.StatusCode))
}

// TestParseFoldsExtraPipesIntoStatusCode checks that a fourth (and later)
// "|" in the line is not a new split point: splitting stops after the
// third "|", so everything past it, pipes included, is the status_code.
func TestParseFoldsExtraPipesIntoStatusCode(t *testing.T) {
	rec, ok := Parse([]byte("A|B|C1|S1|extra|more"))
	require.True(t, ok)
	require.Equal(t, "A", string(rec.Source))
	require.Equal(t, "B", string(rec.Destination))
	require.Equal(t, "C1", string(rec.ClaimID))
	require.Equal(t, "S1|extra|more", string(rec.StatusCode))
}

func TestParseRejectsFewerThanFourFields(t *testing.T) {
	cases := []string{"", "A", "A|B", "A|B|C1"}
	for _, line := range cases {
		_, ok := Parse([]byte(line))
		require.False(t, ok, "line=%q", line)
	}
}

func TestParseAcceptsExactlyFourFields(t *testing.T) {
	rec, ok := Parse([]byte("A|B|C1|S1"))
	require.True(t, ok)
	require.Equal(t, "C1", string(rec.ClaimID))
	require.Equal(t, "S1", string(rec.StatusCode))
}

func TestParseAllowsEmptyFields(t *testing.T) {
	rec, ok := Parse([]byte("|||"))
	require.True(t, ok)
	require.Empty(t, rec.Source)
	require.Empty(t, rec.Destination)
	require.Empty(t, rec.ClaimID)
	require.Empty(t, rec.StatusCode)
}

func TestKeyReturnsClaimIDAndStatusCode(t *testing.T) {
	rec, ok := Parse([]byte("A|B|C1|S1"))
	require.True(t, ok)
	claimID, statusCode := rec.Key()
	require.Equal(t, "C1", string(claimID))
	require.Equal(t, "S1", string(statusCode))
}

func TestTrimTerminator(t *testing.T) {
	cases := map[string]string{
		"A|B|C1|S1\n":   "A|B|C1|S1",
		"A|B|C1|S1\r\n": "A|B|C1|S1",
		"A|B|C1|S1":     "A|B|C1|S1",
	}
	for input, want := range cases {
		require.Equal(t, want, string(TrimTerminator([]byte(input))), "input=%q", input)
	}
}
