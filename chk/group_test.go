package chk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qchemlab/gowfn/chk"
)

//----------------------------------------------------------------------------//
// Table tests
//----------------------------------------------------------------------------//

// TestNewTable_RejectsBadDimensions verifies that non-positive dimensions
// are refused with ErrBadTable.
func TestNewTable_RejectsBadDimensions(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroCols", 3, 0},
		{"NegativeRows", -1, 3},
		{"NegativeCols", 3, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := chk.NewTable(tc.rows, tc.cols)
			assert.ErrorIs(t, err, chk.ErrBadTable, "dimensions %d×%d must be rejected", tc.rows, tc.cols)
		})
	}
}

// TestTable_Validate covers the nil, bad-dimension and payload-mismatch cases.
func TestTable_Validate(t *testing.T) {
	var nilTable *chk.Table
	assert.ErrorIs(t, nilTable.Validate(), chk.ErrBadTable, "nil table must fail validation")

	short := &chk.Table{Rows: 2, Cols: 2, Data: []float64{1, 2, 3}}
	assert.ErrorIs(t, short.Validate(), chk.ErrBadTable, "payload shorter than rows×cols must fail")

	ok, err := chk.NewTable(2, 3)
	require.NoError(t, err)
	assert.NoError(t, ok.Validate(), "freshly allocated table must validate")
	assert.Len(t, ok.Data, 6, "payload length must equal rows×cols")
}

// TestTable_AtSet checks the row-major element accessors.
func TestTable_AtSet(t *testing.T) {
	tab, err := chk.NewTable(2, 3)
	require.NoError(t, err)

	tab.Set(1, 2, 0.5)
	assert.Equal(t, 0.5, tab.At(1, 2), "At must read back what Set stored")
	assert.Equal(t, 0.5, tab.Data[1*3+2], "element (1,2) must live at Data[i*Cols+j]")
}

// TestTable_Clone verifies that clones do not alias the original payload.
func TestTable_Clone(t *testing.T) {
	tab, err := chk.NewTable(1, 2)
	require.NoError(t, err)
	tab.Set(0, 0, 1.0)

	cp := tab.Clone()
	cp.Set(0, 0, -1.0)
	assert.Equal(t, 1.0, tab.At(0, 0), "mutating a clone must not touch the original")
}

//----------------------------------------------------------------------------//
// Group leaf tests
//----------------------------------------------------------------------------//

// TestGroup_AttrRoundTrip checks string attribute set/get and the missing-key error.
func TestGroup_AttrRoundTrip(t *testing.T) {
	g := chk.NewGroup()
	g.SetAttr("type", "ClosedShell")

	v, err := g.Attr("type")
	require.NoError(t, err)
	assert.Equal(t, "ClosedShell", v)
	assert.True(t, g.HasAttr("type"))

	_, err = g.Attr("missing")
	assert.ErrorIs(t, err, chk.ErrNoSuchKey, "absent attribute must yield ErrNoSuchKey")
	assert.False(t, g.HasAttr("missing"))
}

// TestGroup_IntRoundTrip checks integer scalar set/get and the missing-key error.
func TestGroup_IntRoundTrip(t *testing.T) {
	g := chk.NewGroup()
	g.SetInt("basisSize", 13)

	v, err := g.Int("basisSize")
	require.NoError(t, err)
	assert.Equal(t, 13, v)

	_, err = g.Int("orbitalCount")
	assert.ErrorIs(t, err, chk.ErrNoSuchKey, "absent scalar must yield ErrNoSuchKey")
}

// TestGroup_ArrayCopySemantics verifies that both SetArray and Array copy,
// so callers can never mutate the stored payload through aliases.
func TestGroup_ArrayCopySemantics(t *testing.T) {
	g := chk.NewGroup()
	src := []float64{1, 1, 0}
	g.SetArray("occupations", src)

	// Mutating the source after SetArray must not leak into the group.
	src[0] = 99
	got, err := g.Array("occupations")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 0}, got, "stored array must be insulated from the source slice")

	// Mutating the returned copy must not leak either.
	got[1] = -5
	again, err := g.Array("occupations")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 0}, again, "stored array must be insulated from returned copies")

	_, err = g.Array("energies")
	assert.ErrorIs(t, err, chk.ErrNoSuchKey)
	assert.True(t, g.HasArray("occupations"))
	assert.False(t, g.HasArray("energies"))
}

// TestGroup_TableRoundTrip verifies table storage, clone-on-read and the
// error paths for missing and damaged tables.
func TestGroup_TableRoundTrip(t *testing.T) {
	g := chk.NewGroup()
	tab, err := chk.NewTable(2, 2)
	require.NoError(t, err)
	tab.Set(0, 1, 0.25)

	require.NoError(t, g.SetTable("coefficients", tab))
	assert.True(t, g.HasTable("coefficients"))

	// Mutating the original after SetTable must not leak into the group.
	tab.Set(0, 1, -4)
	got, err := g.Table("coefficients")
	require.NoError(t, err)
	assert.Equal(t, 0.25, got.At(0, 1), "stored table must be a deep copy")

	_, err = g.Table("overlap")
	assert.ErrorIs(t, err, chk.ErrNoSuchKey)

	// A table that fails validation must be refused on write...
	bad := &chk.Table{Rows: 2, Cols: 2, Data: []float64{1}}
	assert.ErrorIs(t, g.SetTable("broken", bad), chk.ErrBadTable)

	// ...and reported on read when planted directly (a damaged file decode).
	g.Tables["planted"] = bad
	_, err = g.Table("planted")
	assert.ErrorIs(t, err, chk.ErrBadTable)
}

// TestGroup_Subgroups checks CreateGroup, Subgroup and replacement semantics.
func TestGroup_Subgroups(t *testing.T) {
	g := chk.NewGroup()
	sub := g.CreateGroup("expansion")
	sub.SetInt("orbitalCount", 5)

	back, err := g.Subgroup("expansion")
	require.NoError(t, err)
	n, err := back.Int("orbitalCount")
	require.NoError(t, err)
	assert.Equal(t, 5, n, "subgroup handle must address the attached node")

	_, err = g.Subgroup("density")
	assert.ErrorIs(t, err, chk.ErrNoSuchGroup)
	assert.True(t, g.HasSubgroup("expansion"))
	assert.False(t, g.HasSubgroup("density"))

	// CreateGroup with an existing name replaces the old subtree.
	fresh := g.CreateGroup("expansion")
	_, err = fresh.Int("orbitalCount")
	assert.ErrorIs(t, err, chk.ErrNoSuchKey, "recreated subgroup must start empty")
}

// TestGroup_ZeroValueUsable verifies that a zero-value Group accepts writes,
// which decoded groups rely on.
func TestGroup_ZeroValueUsable(t *testing.T) {
	var g chk.Group
	g.SetAttr("type", "OpenShell")
	g.SetInt("basisSize", 3)
	g.SetArray("energies", []float64{-0.5})
	g.CreateGroup("alphaExpansion")

	v, err := g.Attr("type")
	require.NoError(t, err)
	assert.Equal(t, "OpenShell", v)
	assert.True(t, g.HasSubgroup("alphaExpansion"))
}
