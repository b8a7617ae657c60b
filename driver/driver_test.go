package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routingcycle/routingcycle/config"
	"github.com/routingcycle/routingcycle/logging"
	"github.com/routingcycle/routingcycle/schedule"
)

func writeInputFile(t *testing.T, lines ...string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunFindsLongestCycleAcrossKeys(t *testing.T) {
	input := writeInputFile(t,
		"A|B|C1|S1",
		"B|A|C1|S1",
		"X|Y|C2|S2",
		"Y|Z|C2|S2",
		"Z|X|C2|S2",
	)

	cfg := config.Run{
		InputPath:        input,
		Buckets:          4,
		HandleCacheSize:  4,
		Executor:         schedule.KindSerial,
		ProcessBatchSize: 16,
		LogLevel:         logging.WARNING,
	}

	outcome, err := Run(cfg, "")
	require.NoError(t, err)
	require.True(t, outcome.Found)
	require.Equal(t, "C2", outcome.ClaimID)
	require.Equal(t, "S2", outcome.StatusCode)
	require.Equal(t, 3, outcome.CycleLength)
}

func TestRunNoCycleAnywhere(t *testing.T) {
	input := writeInputFile(t, "A|B|C1|S1", "B|C|C1|S1")

	cfg := config.Run{
		InputPath:        input,
		Buckets:          2,
		HandleCacheSize:  4,
		Executor:         schedule.KindSerial,
		ProcessBatchSize: 16,
		LogLevel:         logging.WARNING,
	}

	outcome, err := Run(cfg, "")
	require.NoError(t, err)
	require.False(t, outcome.Found)
}

func TestRunRejectsNonPowerOfTwoBuckets(t *testing.T) {
	input := writeInputFile(t, "A|B|C1|S1")
	cfg := config.Run{
		InputPath: input,
		Buckets:   3,
		Executor:  schedule.KindSerial,
	}
	_, err := Run(cfg, "")
	require.Error(t, err)
}

// TestRunResultInvariantUnderBucketCount checks that the same input produces
// the same winning key and cycle length regardless of how many
// power-of-two buckets it gets partitioned into.
func TestRunResultInvariantUnderBucketCount(t *testing.T) {
	input := writeInputFile(t,
		"A|B|C1|S1",
		"B|A|C1|S1",
		"X|Y|C2|S2",
		"Y|Z|C2|S2",
		"Z|W|C2|S2",
		"W|X|C2|S2",
	)

	var outcomes []Outcome
	for _, buckets := range []int{1, 2, 4, 16, 64} {
		cfg := config.Run{
			InputPath:        input,
			Buckets:          buckets,
			HandleCacheSize:  4,
			Executor:         schedule.KindSerial,
			ProcessBatchSize: 16,
			LogLevel:         logging.WARNING,
		}
		outcome, err := Run(cfg, "")
		require.NoError(t, err, "buckets=%d", buckets)
		outcomes = append(outcomes, outcome)
	}

	want := outcomes[0]
	require.True(t, want.Found)
	for i, got := range outcomes[1:] {
		require.Equal(t, want.ClaimID, got.ClaimID, "outcome %d", i+1)
		require.Equal(t, want.StatusCode, got.StatusCode, "outcome %d", i+1)
		require.Equal(t, want.CycleLength, got.CycleLength, "outcome %d", i+1)
		require.Equal(t, want.Found, got.Found, "outcome %d", i+1)
	}
}

// TestRunIsIdempotent checks that running the driver twice on the same
// input and the same bucket count produces the identical outcome.
func TestRunIsIdempotent(t *testing.T) {
	input := writeInputFile(t,
		"A|B|C1|S1",
		"B|C|C1|S1",
		"C|A|C1|S1",
		"X|Y|C2|S2",
	)

	cfg := config.Run{
		InputPath:        input,
		Buckets:          8,
		HandleCacheSize:  4,
		Executor:         schedule.KindSerial,
		ProcessBatchSize: 16,
		LogLevel:         logging.WARNING,
	}

	first, err := Run(cfg, "")
	require.NoError(t, err)
	second, err := Run(cfg, "")
	require.NoError(t, err)

	require.Equal(t, first, second)
}
