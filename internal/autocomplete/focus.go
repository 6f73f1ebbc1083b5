package autocomplete

// Focus tracks whether the results panel is open. The zero value is closed.
type Focus struct {
	open bool
}

// Open moves to the open state. Opening an open panel is a no-op.
func (f *Focus) Open() {
	f.open = true
}

// Toggle flips between open and closed.
func (f *Focus) Toggle() {
	f.open = !f.open
}

// Close moves to the closed state. From open this is the same transition as
// Toggle; from closed it does nothing.
func (f *Focus) Close() {
	if f.open {
		f.Toggle()
	}
}

// IsOpen reports whether the panel is open.
func (f Focus) IsOpen() bool {
	return f.open
}
