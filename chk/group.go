package chk

import "fmt"

// Table is a dense row-major matrix payload: element (i,j) lives at
// Data[i*Cols+j]. Dimensions travel with the payload so a decoded table
// can be validated before anything indexes it.
type Table struct {
	Rows int       `yaml:"rows"`
	Cols int       `yaml:"cols"`
	Data []float64 `yaml:"data,flow"`
}

// NewTable allocates a zeroed rows×cols table.
// Returns ErrBadTable when either dimension is not positive.
func NewTable(rows, cols int) (*Table, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: dimensions %d×%d", ErrBadTable, rows, cols)
	}

	return &Table{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}, nil
}

// Validate checks that dimensions are positive and agree with the payload
// length. Decoded tables must pass Validate before indexing.
func (t *Table) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil table", ErrBadTable)
	}
	if t.Rows <= 0 || t.Cols <= 0 {
		return fmt.Errorf("%w: dimensions %d×%d", ErrBadTable, t.Rows, t.Cols)
	}
	if len(t.Data) != t.Rows*t.Cols {
		return fmt.Errorf("%w: %d×%d table carries %d values", ErrBadTable, t.Rows, t.Cols, len(t.Data))
	}

	return nil
}

// At returns element (i,j). Indices are not range-checked. Complexity: O(1).
func (t *Table) At(i, j int) float64 { return t.Data[i*t.Cols+j] }

// Set stores v at element (i,j). Indices are not range-checked. Complexity: O(1).
func (t *Table) Set(i, j int, v float64) { t.Data[i*t.Cols+j] = v }

// Clone returns an independent deep copy of the table.
func (t *Table) Clone() *Table {
	cp := &Table{Rows: t.Rows, Cols: t.Cols, Data: make([]float64, len(t.Data))}
	copy(cp.Data, t.Data)

	return cp
}

// Group is one node of a checkpoint tree. Each kind of leaf lives in its
// own named map; subgroups nest arbitrarily. The zero value is usable:
// setters allocate maps on first write, getters treat nil maps as empty.
type Group struct {
	Attrs  map[string]string    `yaml:"attrs,omitempty"`
	Ints   map[string]int       `yaml:"ints,omitempty"`
	Arrays map[string][]float64 `yaml:"arrays,omitempty"`
	Tables map[string]*Table    `yaml:"tables,omitempty"`
	Groups map[string]*Group    `yaml:"groups,omitempty"`
}

// NewGroup returns an empty group ready for population.
func NewGroup() *Group {
	return &Group{}
}

// SetAttr stores a string attribute under name, replacing any previous value.
func (g *Group) SetAttr(name, value string) {
	if g.Attrs == nil {
		g.Attrs = make(map[string]string)
	}
	g.Attrs[name] = value
}

// Attr returns the string attribute stored under name.
// Returns ErrNoSuchKey when the attribute is absent.
func (g *Group) Attr(name string) (string, error) {
	v, ok := g.Attrs[name]
	if !ok {
		return "", fmt.Errorf("%w: attribute %q", ErrNoSuchKey, name)
	}

	return v, nil
}

// HasAttr reports whether a string attribute named name exists.
func (g *Group) HasAttr(name string) bool {
	_, ok := g.Attrs[name]

	return ok
}

// SetInt stores an integer scalar under name, replacing any previous value.
func (g *Group) SetInt(name string, value int) {
	if g.Ints == nil {
		g.Ints = make(map[string]int)
	}
	g.Ints[name] = value
}

// Int returns the integer scalar stored under name.
// Returns ErrNoSuchKey when the scalar is absent.
func (g *Group) Int(name string) (int, error) {
	v, ok := g.Ints[name]
	if !ok {
		return 0, fmt.Errorf("%w: scalar %q", ErrNoSuchKey, name)
	}

	return v, nil
}

// SetArray stores a copy of values under name, replacing any previous array.
// The copy keeps later mutation of the caller's slice out of the tree.
func (g *Group) SetArray(name string, values []float64) {
	if g.Arrays == nil {
		g.Arrays = make(map[string][]float64)
	}
	cp := make([]float64, len(values))
	copy(cp, values)
	g.Arrays[name] = cp
}

// Array returns a copy of the float array stored under name.
// Returns ErrNoSuchKey when the array is absent.
func (g *Group) Array(name string) ([]float64, error) {
	v, ok := g.Arrays[name]
	if !ok {
		return nil, fmt.Errorf("%w: array %q", ErrNoSuchKey, name)
	}
	cp := make([]float64, len(v))
	copy(cp, v)

	return cp, nil
}

// HasArray reports whether a float array named name exists.
func (g *Group) HasArray(name string) bool {
	_, ok := g.Arrays[name]

	return ok
}

// SetTable stores a deep copy of t under name, replacing any previous table.
// Returns ErrBadTable when t fails Validate.
func (g *Group) SetTable(name string, t *Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if g.Tables == nil {
		g.Tables = make(map[string]*Table)
	}
	g.Tables[name] = t.Clone()

	return nil
}

// Table returns a deep copy of the table stored under name.
// Returns ErrNoSuchKey when the table is absent and ErrBadTable when the
// stored table is inconsistent (possible after decoding a damaged file).
func (g *Group) Table(name string) (*Table, error) {
	t, ok := g.Tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: table %q", ErrNoSuchKey, name)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t.Clone(), nil
}

// HasTable reports whether a table named name exists.
func (g *Group) HasTable(name string) bool {
	_, ok := g.Tables[name]

	return ok
}

// CreateGroup attaches a fresh empty subgroup under name and returns it,
// replacing any previous subgroup with that name.
func (g *Group) CreateGroup(name string) *Group {
	if g.Groups == nil {
		g.Groups = make(map[string]*Group)
	}
	sub := NewGroup()
	g.Groups[name] = sub

	return sub
}

// Subgroup returns the subgroup stored under name.
// Returns ErrNoSuchGroup when the subgroup is absent.
func (g *Group) Subgroup(name string) (*Group, error) {
	sub, ok := g.Groups[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchGroup, name)
	}

	return sub, nil
}

// HasSubgroup reports whether a subgroup named name exists.
func (g *Group) HasSubgroup(name string) bool {
	_, ok := g.Groups[name]

	return ok
}
