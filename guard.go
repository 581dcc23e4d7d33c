package sweet

// noCopy may be embedded into structs which must not be copied after first
// use. go vet's copylocks check reports copies of any struct holding it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// scope holds the pending end call of an unconditional guard.
// The call is cleared before it runs, so it happens at most once.
type scope struct {
	noCopy noCopy
	end    func()
}

func (s *scope) arm(end func()) {
	s.end = end
}

// End performs the matching end or pop call. Calling End again, or on a
// zero guard, does nothing.
func (s *scope) End() {
	end := s.end
	if end == nil {
		return
	}
	s.end = nil
	end()
}

// Do runs contents inside the scope and ends it, even if contents panics.
//
// Usage:
//
//	sweet.Group(tk).Do(func() {
//	    tk.TextUnformatted("grouped")
//	})
func (s *scope) Do(contents func()) {
	defer s.End()
	contents()
}

// bracket is a scope whose begin call reported whether the region opened.
// The end call is only armed when it did.
type bracket struct {
	noCopy noCopy
	opened bool
	end    func()
}

// arm records the outcome of the begin call and, if it opened, the end
// call that balances it.
func (b *bracket) arm(opened bool, end func()) {
	b.opened = opened
	if opened {
		b.end = end
	}
}

// Opened reports whether the region opened and its contents should be drawn.
func (b *bracket) Opened() bool {
	return b.opened
}

// End performs the matching end call if the region opened. Calling End
// again, or on a zero guard, does nothing.
func (b *bracket) End() {
	end := b.end
	if end == nil {
		return
	}
	b.end = nil
	end()
}

// Do runs contents only if the region opened, then ends it, even if
// contents panics.
//
// Usage:
//
//	sweet.Window(tk, "Settings", nil, 0).Do(func() {
//	    tk.TextUnformatted("inside")
//	})
func (b *bracket) Do(contents func()) {
	defer b.End()
	if b.opened {
		contents()
	}
}
