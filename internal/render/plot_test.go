package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/geotrend-go/internal/models"
)

func testResult() *models.Result {
	return &models.Result{
		GridWidth:     2,
		GridHeight:    2,
		TotalPoints:   6,
		NonEmptyCells: 3,
		X:             []float64{1, 2, 3},
		Columns: []models.ColumnResult{
			{
				Name: "RAIN",
				Y:    []float64{2, 4, 6},
				Linear: &models.TrendFit{
					Kind:        models.TrendPolynomial,
					Params:      []float64{0, 2},
					Correlation: 1,
					RSquared:    1,
				},
				Logarithmic: &models.TrendFit{
					Kind:     models.TrendLogarithmic,
					Params:   []float64{2, 1, 2},
					RSquared: 0.9,
				},
			},
			{
				// Column whose logarithmic fit failed: only the scatter
				// and linear trendline are drawn.
				Name:     "WIND",
				Y:        []float64{1, 1, 2},
				Linear:   &models.TrendFit{Kind: models.TrendPolynomial, Params: []float64{0.5, 0.5}},
				LogError: "curve fit did not converge",
			},
		},
	}
}

func TestNew(t *testing.T) {
	p, err := New(testResult())
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trend.png")
	require.NoError(t, Save(testResult(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(testResult(), &buf))
	// PNG magic bytes
	require.Greater(t, buf.Len(), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, buf.Bytes()[:4])
}
