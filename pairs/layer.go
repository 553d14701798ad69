package pairs

// NewLayer allocates an R×R Layer with every slot Uncomputed.
func NewLayer(rows int) *Layer {
	return &Layer{
		rows:   rows,
		values: make([]int64, rows*rows),
		status: make([]Status, rows*rows),
	}
}

// Reset marks every slot Uncomputed so the Layer can hold another step.
func (l *Layer) Reset() {
	for k := range l.status {
		l.status[k] = Uncomputed
		l.values[k] = 0
	}
}

// Lookup returns the value and Status of the state with rows (i1, i2).
func (l *Layer) Lookup(i1, i2 int) (int64, Status) {
	k := i1*l.rows + i2
	return l.values[k], l.status[k]
}

// Store records v as the Known value of the state with rows (i1, i2).
func (l *Layer) Store(i1, i2 int, v int64) {
	k := i1*l.rows + i2
	l.values[k] = v
	l.status[k] = Known
}

// MarkUnreachable records that the state with rows (i1, i2) has no valid continuation.
func (l *Layer) MarkUnreachable(i1, i2 int) {
	l.status[i1*l.rows+i2] = Unreachable
}
