package state

// Ring tracks the cursor on one ring of the pie. Movement wraps around.
type Ring struct {
	Size   int
	Cursor int
}

// Reset resizes the ring and clamps the cursor.
func (r *Ring) Reset(size int) {
	if size < 0 {
		size = 0
	}
	r.Size = size
	r.clamp()
}

// Move shifts the cursor by delta, wrapping at both ends. It reports whether
// the cursor changed.
func (r *Ring) Move(delta int) bool {
	if r.Size == 0 {
		r.Cursor = 0
		return false
	}
	old := r.Cursor
	r.Cursor = ((r.Cursor+delta)%r.Size + r.Size) % r.Size
	return old != r.Cursor
}

// Home moves the cursor to the first slot.
func (r *Ring) Home() bool {
	old := r.Cursor
	r.Cursor = 0
	return old != r.Cursor
}

func (r *Ring) clamp() {
	if r.Size == 0 || r.Cursor < 0 {
		r.Cursor = 0
		return
	}
	if r.Cursor >= r.Size {
		r.Cursor = r.Size - 1
	}
}

// Selection is the cursor state of an open pie: the top ring and, when
// expanded, the nested ring of the selected slice.
type Selection struct {
	Top    Ring
	Nested bool
	Child  Ring
}

// Reset collapses the selection onto a top ring of size n.
func (s *Selection) Reset(n int) {
	s.Top.Reset(n)
	s.Top.Home()
	s.Nested = false
	s.Child = Ring{}
}

// Expand enters a nested ring with n slots.
func (s *Selection) Expand(n int) bool {
	if n == 0 {
		return false
	}
	s.Nested = true
	s.Child = Ring{Size: n}
	return true
}

// Collapse leaves the nested ring.
func (s *Selection) Collapse() bool {
	if !s.Nested {
		return false
	}
	s.Nested = false
	s.Child = Ring{}
	return true
}

// Active returns the ring the cursor is on.
func (s *Selection) Active() *Ring {
	if s.Nested {
		return &s.Child
	}
	return &s.Top
}
