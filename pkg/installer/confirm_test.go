package installer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleConfirmerAnswers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		def      bool
		expected bool
	}{
		{"yes", "y\n", false, true},
		{"yes long form", "yes\n", false, true},
		{"yes uppercase", "Y\n", false, true},
		{"no", "n\n", false, false},
		{"anything else is no", "maybe\n", false, false},
		{"empty input takes default no", "\n", false, false},
		{"empty input takes default yes", "\n", true, true},
		{"whitespace is empty", "   \n", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			c := &ConsoleConfirmer{
				In:          strings.NewReader(tt.input),
				Out:         &out,
				Interactive: true,
			}

			got, err := c.Confirm(ConfirmationRequest{
				Name:    "skills",
				Target:  "/home/user/.claude/skills",
				Default: tt.def,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Contains(t, out.String(), "/home/user/.claude/skills")
		})
	}
}

func TestConsoleConfirmerPromptMarker(t *testing.T) {
	var out strings.Builder
	c := &ConsoleConfirmer{In: strings.NewReader("\n"), Out: &out, Interactive: true}

	_, err := c.Confirm(ConfirmationRequest{Target: "/t", Default: false})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[y/N]")
}

func TestConsoleConfirmerEOFMeansDefault(t *testing.T) {
	var out strings.Builder
	c := &ConsoleConfirmer{In: strings.NewReader(""), Out: &out, Interactive: true}

	got, err := c.Confirm(ConfirmationRequest{Target: "/t", Default: false})
	require.NoError(t, err)
	assert.False(t, got)
}

func TestConsoleConfirmerSequentialPrompts(t *testing.T) {
	// Typed-ahead answers must survive across prompts.
	var out strings.Builder
	c := &ConsoleConfirmer{In: strings.NewReader("y\nn\n"), Out: &out, Interactive: true}

	first, err := c.Confirm(ConfirmationRequest{Target: "/a"})
	require.NoError(t, err)
	second, err := c.Confirm(ConfirmationRequest{Target: "/b"})
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
}

func TestAlwaysApprove(t *testing.T) {
	got, err := AlwaysApprove().Confirm(ConfirmationRequest{Target: "/t"})
	require.NoError(t, err)
	assert.True(t, got)
}
