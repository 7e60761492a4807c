package table

// Policy reacts to data changes before the lines are reconciled. It may add
// lines to the table, e.g. one per entry of a growing collection.
type Policy[T any] interface {
	Update(old, data T, t *Table[T])
}

// Static is the policy of tables whose lines never change after construction.
type Static[T any] struct{}

// Update does nothing.
func (Static[T]) Update(T, T, *Table[T]) {}

// PolicyFunc adapts a function to Policy.
type PolicyFunc[T any] func(old, data T, t *Table[T])

// Update calls f(old, data, t).
func (f PolicyFunc[T]) Update(old, data T, t *Table[T]) {
	f(old, data, t)
}

// LinePerItem returns a policy that keeps one line per entry of items(data),
// building new lines with build and dropping lines past the end.
func LinePerItem[T, E any](items func(T) []E, build func(index int) (Line[T], Value)) Policy[T] {
	return PolicyFunc[T](func(_, data T, t *Table[T]) {
		n := len(items(data))
		for t.LineCount() < n {
			line, v := build(t.LineCount())
			t.AddLine(line, v)
		}
		t.TruncateLines(n)
	})
}
