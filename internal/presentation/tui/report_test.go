package tui_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/blanket"
	"github.com/aretw0/blanket/internal/presentation/tui"
)

func TestReport(t *testing.T) {
	m, err := blanket.New().Build(context.Background(), blanket.DefaultCase())
	require.NoError(t, err)

	out := tui.Report(m)

	assert.True(t, strings.HasPrefix(out, "# Blanket model `reference`"))
	assert.Contains(t, out, "| inner | chamber |  | 188.7007 |  |")
	assert.Contains(t, out, "| flibe2 | molten_salt | 195.8007 | 295.8007 | 100 |")
	assert.Contains(t, out, "vacuum boundary at 298.8007 cm")
	assert.Contains(t, out, "| 3 | molten_salt |")
	assert.Contains(t, out, "67 tallies over 13 filters.")
	assert.Contains(t, out, "- breeding: 2\n")
	assert.Contains(t, out, "- flux: 2\n")
	assert.Contains(t, out, "- heating: 56\n")
	assert.Contains(t, out, "- spectrum: 7\n")
}

func TestWrite_NonTerminal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, tui.Write(&buf, "# title\n"))
	assert.Equal(t, "# title\n", buf.String())
	assert.False(t, tui.IsTerminal(&buf))
}

func TestNewRenderer(t *testing.T) {
	out, err := tui.NewRenderer()("**bold**")
	require.NoError(t, err)
	assert.Contains(t, out, "bold")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf)
	assert.Contains(t, buf.String(), "|_.__/")
}
