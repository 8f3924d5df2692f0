package apsp_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apspp/apsp"
)

// writeFile stores content under a fresh temp dir and returns the path.
func writeFile(t *testing.T, content string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), "apspp.dat")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

func TestLoadMatrix_Valid(t *testing.T) {
	t.Parallel()

	a, err := apsp.LoadMatrix(strings.NewReader("3\n-1 5 -1\n-1 -1 3\n-1 -1 -1\n"))
	require.NoError(t, err)
	require.Equal(t, 3, a.N())

	assert.Equal(t, apsp.NoEdge, weight(t, a, 0, 0))
	assert.Equal(t, int64(5), weight(t, a, 0, 1))
	assert.Equal(t, int64(3), weight(t, a, 1, 2))
	assert.False(t, a.HasEdge(2, 0))
	assert.True(t, a.HasEdge(0, 1))
}

// TestLoadMatrix_LayoutIndependent: only token order matters, not line breaks.
func TestLoadMatrix_LayoutIndependent(t *testing.T) {
	t.Parallel()

	a, err := apsp.LoadMatrix(strings.NewReader("  2 0\t4\n\n4\r\n 0 "))
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{0, 4}, {4, 0}}, apsp.BuildInitialDistances(a).Rows())
}

// TestLoadMatrix_TrailingTokensIgnored: values after n*n are not read.
func TestLoadMatrix_TrailingTokensIgnored(t *testing.T) {
	t.Parallel()

	a, err := apsp.LoadMatrix(strings.NewReader("1 7 99 junk"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), weight(t, a, 0, 0))
}

func TestLoadMatrix_Malformed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"OnlyWhitespace", " \n\t "},
		{"ZeroDimension", "0"},
		{"NegativeDimension", "-2 1 2 3 4"},
		{"NonIntegerDimension", "three 1 2 3"},
		{"ShortStream", "3\n1 2 3\n4 5"},
		{"NonIntegerWeight", "2\n0 x\n1 0"},
		{"FloatWeight", "2\n0 1.5\n1 0"},
		{"WeightAboveInt32", "2\n0 2147483648\n1 0"},
		{"HugeDimensionShortStream", "1000000 1 2 3"},
		{"DimensionTokenTooLong", strings.Repeat("1", 70000)},
		{"WeightTokenTooLong", "1 " + strings.Repeat("9", 70000)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := apsp.LoadMatrix(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, apsp.ErrMalformedInput)
			assert.Nil(t, a)
		})
	}
}

// TestLoadMatrix_ReadError maps an I/O failure to ErrSourceUnavailable.
func TestLoadMatrix_ReadError(t *testing.T) {
	t.Parallel()

	_, err := apsp.LoadMatrix(iotest.ErrReader(errors.New("disk on fire")))
	assert.ErrorIs(t, err, apsp.ErrSourceUnavailable)
	assert.Contains(t, err.Error(), "disk on fire")
}

// TestLoadFile_EchoesMatrix checks the width-7 echo written on success.
func TestLoadFile_EchoesMatrix(t *testing.T) {
	t.Parallel()

	p := writeFile(t, "3\n-1 5 -1\n-1 -1 3\n-1 -1 -1\n")
	var echo bytes.Buffer

	a, err := apsp.LoadFile(p, &echo)
	require.NoError(t, err)
	assert.Equal(t, 3, a.N())
	assert.Equal(t,
		"     -1      5     -1\n"+
			"     -1     -1      3\n"+
			"     -1     -1     -1\n",
		echo.String())
}

// TestLoadFile_NilEcho loads silently.
func TestLoadFile_NilEcho(t *testing.T) {
	t.Parallel()

	a, err := apsp.LoadFile(writeFile(t, "1 0"), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, a.N())
}

// TestLoadFile_Missing: SourceUnavailable naming the file, nothing echoed.
func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "does-not-exist.dat")
	var echo bytes.Buffer

	a, err := apsp.LoadFile(p, &echo)
	assert.Nil(t, a)
	assert.ErrorIs(t, err, apsp.ErrSourceUnavailable)
	assert.Contains(t, err.Error(), "cannot open: "+p)
	assert.Empty(t, echo.String())
}

// TestLoadFile_MalformedNoEcho: n=3 with five data tokens fails and echoes nothing.
func TestLoadFile_MalformedNoEcho(t *testing.T) {
	t.Parallel()

	p := writeFile(t, "3\n1 2 3\n4 5\n")
	var echo bytes.Buffer

	a, err := apsp.LoadFile(p, &echo)
	assert.Nil(t, a)
	assert.ErrorIs(t, err, apsp.ErrMalformedInput)
	assert.Contains(t, err.Error(), p)
	assert.Empty(t, echo.String())
}

func TestNewAdjacency_Validation(t *testing.T) {
	t.Parallel()

	_, err := apsp.NewAdjacency(0, nil)
	assert.ErrorIs(t, err, apsp.ErrMalformedInput)

	_, err = apsp.NewAdjacency(2, []int64{0, 1, 2})
	assert.ErrorIs(t, err, apsp.ErrMalformedInput)

	src := []int64{0, 1, 2, 0}
	a, err := apsp.NewAdjacency(2, src)
	require.NoError(t, err)
	src[1] = 99
	assert.Equal(t, int64(1), weight(t, a, 0, 1), "NewAdjacency must copy its input")
}
