package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   DEBUG,
		"DEBUG":   DEBUG,
		"info":    INFO,
		"warning": WARNING,
		"error":   ERROR,
		"bogus":   WARNING,
		"":        WARNING,
	}
	for input, want := range cases {
		require.Equal(t, want, ParseLevel(input), "input=%q", input)
	}
}
