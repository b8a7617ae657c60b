package schedule

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTestBucket(t *testing.T, lines ...string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "bucket_0.bin")
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSerialDispatchPicksLongest(t *testing.T) {
	bucketA := writeTestBucket(t, "A|B|C1|S1", "B|A|C1|S1")
	bucketB := writeTestBucket(t, "X|Y|C2|S2", "Y|Z|C2|S2", "Z|X|C2|S2")

	exec := NewSerial()
	result, found, err := exec.Dispatch([]string{bucketA, bucketB}, nil)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "C2", result.ClaimID)
	require.Equal(t, 3, result.CycleLength)
}

func TestSerialDispatchNoBuckets(t *testing.T) {
	exec := NewSerial()
	_, found, err := exec.Dispatch(nil, nil)
	require.NoError(t, err)
	require.False(t, found)
}

func TestThreadPoolDispatchPicksLongest(t *testing.T) {
	bucketA := writeTestBucket(t, "A|B|C1|S1", "B|A|C1|S1")
	bucketB := writeTestBucket(t, "X|Y|C2|S2", "Y|Z|C2|S2", "Z|X|C2|S2")

	exec := NewThreadPool(2)
	result, found, err := exec.Dispatch([]string{bucketA, bucketB}, nil)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "C2", result.ClaimID)
	require.Equal(t, 3, result.CycleLength)
}

func TestResolveKindPrefersOverride(t *testing.T) {
	t.Setenv("RC_EXECUTOR", "serial")
	require.Equal(t, KindThreads, resolveKind(KindThreads))
}

func TestResolveKindFallsBackToEnv(t *testing.T) {
	t.Setenv("RC_EXECUTOR", "processes")
	require.Equal(t, KindProcesses, resolveKind(""))
}

func TestResolveKindDefaultsToAuto(t *testing.T) {
	t.Setenv("RC_EXECUTOR", "")
	require.Equal(t, KindAuto, resolveKind(""))
}

func TestBatchPaths(t *testing.T) {
	paths := []string{"a", "b", "c", "d", "e"}
	batches := batchPaths(paths, 2)
	require.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, batches)
}
