package mtx_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergepath/spmv"
	"github.com/mergepath/spmv/contrib/mtx"
)

func TestReadGeneralReal(t *testing.T) {
	const doc = `%%MatrixMarket matrix coordinate real general
3 3 4
1 1 2.0
1 2 3.0
2 3 4.0
3 1 5.0
`
	m, err := mtx.Read(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 3, m.RowDim)
	assert.Equal(t, 3, m.ColDim)
	assert.Equal(t, []int{0, 0, 1, 2}, m.RowIdx)
	assert.Equal(t, []int{0, 1, 2, 0}, m.ColIdx)
	assert.Equal(t, []float64{2, 3, 4, 5}, m.Values)
}

func TestReadSymmetricExpandsOffDiagonal(t *testing.T) {
	const doc = `%%MatrixMarket matrix coordinate real symmetric
3 3 2
2 1 7.0
3 3 9.0
`
	m, err := mtx.Read(strings.NewReader(doc))
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	// (1,0)=7 expands to (0,1)=7 too; (2,2)=9 stays on the diagonal.
	assert.Equal(t, 3, m.N())
	for i := 1; i < len(m.RowIdx); i++ {
		assert.LessOrEqual(t, m.RowIdx[i-1], m.RowIdx[i])
	}
}

func TestReadPatternDefaultsValueToOne(t *testing.T) {
	const doc = `%%MatrixMarket matrix coordinate pattern general
2 2 2
1 1
2 2
`
	m, err := mtx.Read(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, m.Values)
}

func TestReadRejectsMissingHeader(t *testing.T) {
	_, err := mtx.Read(strings.NewReader("2 2 1\n1 1 3.0\n"))
	assert.Error(t, err)
}

func TestWriteThenReadRoundTrips(t *testing.T) {
	original := spmv.COO{
		RowIdx: []int{0, 0, 1, 2},
		ColIdx: []int{0, 1, 2, 0},
		Values: []float64{2, 3, 4, 5},
		RowDim: 3,
		ColDim: 3,
	}
	var buf bytes.Buffer
	require.NoError(t, mtx.Write(&buf, original))

	round, err := mtx.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, original.RowIdx, round.RowIdx)
	assert.Equal(t, original.ColIdx, round.ColIdx)
	assert.Equal(t, original.Values, round.Values)
}
