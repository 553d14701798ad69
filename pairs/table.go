package pairs

// MaxSlots caps the R·C·R·C slots of a Table (about 600 MB of storage,
// a 90×90 grid). Larger grids need a rolling evaluation.
const MaxSlots = 1 << 26

// NewTable allocates a Table for an R×C grid with every slot Uncomputed.
// Returns ErrTooLarge if R·C·R·C exceeds MaxSlots; nothing is allocated then.
// Complexity: O(R²·C²) time and memory.
func NewTable(rows, cols int) (*Table, error) {
	if rows <= 0 || cols <= 0 || rows > MaxSlots/cols {
		return nil, ErrTooLarge
	}
	cells := rows * cols
	if cells > MaxSlots/cells {
		return nil, ErrTooLarge
	}

	return &Table{
		rows:   rows,
		cols:   cols,
		values: make([]int64, cells*cells),
		status: make([]Status, cells*cells),
	}, nil
}

// Index flattens p into ((i1·C + j1)·R + i2)·C + j2.
// The caller guarantees all four coordinates are in bounds.
func (t *Table) Index(p Pair) int {
	return ((p.I1*t.cols+p.J1)*t.rows+p.I2)*t.cols + p.J2
}

// Lookup returns the stored value and its Status.
// The value is meaningful only when the Status is Known.
func (t *Table) Lookup(p Pair) (int64, Status) {
	k := t.Index(p)
	return t.values[k], t.status[k]
}

// Store records v as the Known value of p.
func (t *Table) Store(p Pair, v int64) {
	k := t.Index(p)
	t.values[k] = v
	t.status[k] = Known
}

// MarkUnreachable records that p has no valid continuation.
func (t *Table) MarkUnreachable(p Pair) {
	t.status[t.Index(p)] = Unreachable
}
