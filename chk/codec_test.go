package chk_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qchemlab/gowfn/chk"
)

// buildTree assembles a two-level tree exercising every leaf kind.
// Float payloads are dyadic rationals so text round-trips are exact.
func buildTree(t *testing.T) *chk.Group {
	t.Helper()

	g := chk.NewGroup()
	g.SetAttr("type", "OpenShell")
	g.SetInt("alphaElectronCount", 2)
	g.SetInt("betaElectronCount", 1)
	g.SetInt("basisSize", 3)

	sub := g.CreateGroup("alphaExpansion")
	sub.SetInt("basisSize", 3)
	sub.SetInt("orbitalCount", 3)
	sub.SetArray("energies", []float64{-0.5, 0.25, 1.5})
	sub.SetArray("occupations", []float64{1, 1, 0})

	tab, err := chk.NewTable(3, 3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		tab.Set(i, i, 1)
	}
	tab.Set(0, 2, -0.75)
	require.NoError(t, sub.SetTable("coefficients", tab))

	return g
}

// TestEncodeDecode_RoundTrip verifies that a full tree survives the YAML
// codec unchanged.
func TestEncodeDecode_RoundTrip(t *testing.T) {
	g := buildTree(t)

	data, err := chk.Encode(g)
	require.NoError(t, err)
	back, err := chk.Decode(data)
	require.NoError(t, err)

	typ, err := back.Attr("type")
	require.NoError(t, err)
	assert.Equal(t, "OpenShell", typ)

	na, err := back.Int("alphaElectronCount")
	require.NoError(t, err)
	assert.Equal(t, 2, na)

	sub, err := back.Subgroup("alphaExpansion")
	require.NoError(t, err)

	en, err := sub.Array("energies")
	require.NoError(t, err)
	assert.Equal(t, []float64{-0.5, 0.25, 1.5}, en, "energies must round-trip exactly")

	tab, err := sub.Table("coefficients")
	require.NoError(t, err)
	assert.Equal(t, 3, tab.Rows)
	assert.Equal(t, 3, tab.Cols)
	assert.Equal(t, 1.0, tab.At(1, 1))
	assert.Equal(t, -0.75, tab.At(0, 2), "off-diagonal coefficient must round-trip exactly")
}

// TestEncode_NilGroup verifies the nil guard.
func TestEncode_NilGroup(t *testing.T) {
	_, err := chk.Encode(nil)
	assert.ErrorIs(t, err, chk.ErrNilGroup)
}

// TestDecode_MalformedYAML verifies that syntactically broken input errors out.
func TestDecode_MalformedYAML(t *testing.T) {
	_, err := chk.Decode([]byte("attrs: ["))
	assert.Error(t, err, "unterminated YAML must not decode")
}

// TestDecode_BadTable verifies that a decoded table whose payload length
// disagrees with its dimensions is rejected with ErrBadTable.
func TestDecode_BadTable(t *testing.T) {
	const damaged = `
tables:
    coefficients:
        rows: 2
        cols: 2
        data: [1.0, 2.0, 3.0]
`
	_, err := chk.Decode([]byte(damaged))
	assert.ErrorIs(t, err, chk.ErrBadTable, "2×2 table with 3 values must be rejected")
}

// TestDecode_BadTableInSubgroup verifies that validation descends into
// nested groups.
func TestDecode_BadTableInSubgroup(t *testing.T) {
	const damaged = `
groups:
    expansion:
        tables:
            coefficients:
                rows: 1
                cols: 2
                data: [1.0]
`
	_, err := chk.Decode([]byte(damaged))
	assert.ErrorIs(t, err, chk.ErrBadTable, "validation must reach nested tables")
}

// TestDecode_NullSubgroup verifies that a "name: null" subgroup entry is
// normalized to an empty group instead of a nil pointer.
func TestDecode_NullSubgroup(t *testing.T) {
	g, err := chk.Decode([]byte("groups:\n    expansion: null\n"))
	require.NoError(t, err)

	sub, err := g.Subgroup("expansion")
	require.NoError(t, err)
	require.NotNil(t, sub, "null subgroup must decode as an empty group")
	assert.False(t, sub.HasAttr("type"))
}

// TestSaveLoad_File verifies the file-backed round trip and the missing-file error.
func TestSaveLoad_File(t *testing.T) {
	g := buildTree(t)
	path := filepath.Join(t.TempDir(), "water.chk")

	require.NoError(t, chk.Save(path, g))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size(), "saved checkpoint must not be empty")

	back, err := chk.Load(path)
	require.NoError(t, err)
	nb, err := back.Int("basisSize")
	require.NoError(t, err)
	assert.Equal(t, 3, nb)

	_, err = chk.Load(filepath.Join(t.TempDir(), "absent.chk"))
	assert.Error(t, err, "loading a missing file must error")
}
