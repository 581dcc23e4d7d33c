package enums

// Flags is the table of a bit-flag enumeration, whose values combine with
// bitwise OR. Only Flags is accepted by the checkbox binder, so passing a
// plain enumeration there does not compile.
type Flags[E Integer] struct {
	Descriptor[E]
	zero int
}

// NewFlags builds a bit-flag descriptor. An entry with value 0 is allowed
// and marks the "no flags" name; it is never rendered as a checkbox.
func NewFlags[E Integer](entries ...Entry[E]) *Flags[E] {
	f := &Flags[E]{Descriptor: *New(entries...), zero: -1}
	if i, ok := f.index[0]; ok {
		f.zero = i
	}
	return f
}

// IsBitFlag is true for flag enumerations.
func (f *Flags[E]) IsBitFlag() bool {
	return true
}

// HasZero reports whether a 0 value is declared.
func (f *Flags[E]) HasZero() bool {
	return f.zero >= 0
}

// Bits returns the OR of every declared value.
func (f *Flags[E]) Bits() E {
	var all E
	for _, e := range f.entries {
		all |= e.Value
	}
	return all
}

// Split returns the names of the declared non-zero values set in v, in
// declaration order.
func (f *Flags[E]) Split(v E) []string {
	var names []string
	for _, e := range f.entries {
		if e.Value != 0 && v&e.Value == e.Value {
			names = append(names, e.Name)
		}
	}
	return names
}
