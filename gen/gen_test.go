package gen

import (
	"bufio"
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routingcycle/routingcycle/recordio"
)

func TestWriteProducesParseableRecords(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{NumKeys: 5, NodesPerKey: 4, EdgesPerKey: 6, CycleFraction: 0.5}
	require.NoError(t, Write(&buf, opts, rand.New(rand.NewSource(1))))

	scanner := bufio.NewScanner(&buf)
	count := 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		_, ok := recordio.Parse([]byte(line))
		require.True(t, ok, "line=%q", line)
		count++
	}
	require.Equal(t, opts.NumKeys*opts.EdgesPerKey, count)
}

func TestWriteIsDeterministicForFixedSeed(t *testing.T) {
	opts := Options{NumKeys: 3, NodesPerKey: 3, EdgesPerKey: 4, CycleFraction: 0.5}

	var a, b bytes.Buffer
	require.NoError(t, Write(&a, opts, rand.New(rand.NewSource(42))))
	require.NoError(t, Write(&b, opts, rand.New(rand.NewSource(42))))
	require.Equal(t, a.String(), b.String())
}
