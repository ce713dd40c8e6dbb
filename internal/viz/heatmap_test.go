package viz

import (
	"strings"
	"testing"

	"github.com/commanderjcc/hotplate/internal/plate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeatmap_OneLinePerRow(t *testing.T) {
	p, err := plate.NewWithBoundary(6, 8, 100.0)
	require.NoError(t, err)

	out := Heatmap(p)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 6)
}

func TestHeatmap_UniformPlate(t *testing.T) {
	// a flat field must not divide by a zero span
	p, err := plate.New(5, 5)
	require.NoError(t, err)

	out := Heatmap(p)
	assert.NotEmpty(t, out)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 5)
}
