// Package enums holds explicit value/name tables for integer enumerations.
//
// Go has no enum reflection, so each enumeration registers its table once,
// next to its declaration, and passes it to the widget binders:
//
//	type Mode int
//
//	const (
//	    ModeFast Mode = iota
//	    ModeBalanced
//	    ModeQuality
//	)
//
//	var Modes = enums.New(
//	    enums.E(ModeFast, "Fast"),
//	    enums.E(ModeBalanced, "Balanced"),
//	    enums.E(ModeQuality, "Quality"),
//	)
//
// Tables keep declaration order, are immutable after construction and may be
// read from any goroutine.
package enums

import "fmt"

// Integer is satisfied by every integer type, and therefore by every Go
// enumeration declared on one.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Entry pairs an enumeration value with its display name.
type Entry[E Integer] struct {
	Value E
	Name  string
}

// E is shorthand for Entry{Value: value, Name: name}.
func E[T Integer](value T, name string) Entry[T] {
	return Entry[T]{Value: value, Name: name}
}

// Table is the read-only view the widget binders consume.
type Table[E Integer] interface {
	Count() int
	At(i int) Entry[E]
	Index(value E) (int, bool)
}

// Descriptor is the ordered value/name table of one enumeration.
type Descriptor[E Integer] struct {
	entries []Entry[E]
	index   map[E]int
}

// New builds a descriptor from entries in declaration order.
// It panics on an empty name or a repeated value.
func New[E Integer](entries ...Entry[E]) *Descriptor[E] {
	d := &Descriptor[E]{
		entries: make([]Entry[E], len(entries)),
		index:   make(map[E]int, len(entries)),
	}
	copy(d.entries, entries)
	for i, e := range d.entries {
		if e.Name == "" {
			panic(fmt.Sprintf("enums: entry %d (value %d) has no name", i, e.Value))
		}
		if prev, dup := d.index[e.Value]; dup {
			panic(fmt.Sprintf("enums: value %d registered twice (%q and %q)", e.Value, d.entries[prev].Name, e.Name))
		}
		d.index[e.Value] = i
	}
	return d
}

// Named is an enumeration that names its own values.
type Named interface {
	Integer
	fmt.Stringer
}

// FromStringer builds a descriptor whose names come from String, as
// generated by the stringer tool.
func FromStringer[E Named](values ...E) *Descriptor[E] {
	entries := make([]Entry[E], len(values))
	for i, v := range values {
		entries[i] = Entry[E]{Value: v, Name: v.String()}
	}
	return New(entries...)
}

// Count returns the number of declared values.
func (d *Descriptor[E]) Count() int {
	return len(d.entries)
}

// At returns the i-th entry in declaration order.
func (d *Descriptor[E]) At(i int) Entry[E] {
	return d.entries[i]
}

// Entries returns a copy of the table in declaration order.
func (d *Descriptor[E]) Entries() []Entry[E] {
	out := make([]Entry[E], len(d.entries))
	copy(out, d.entries)
	return out
}

// Values returns the declared values in order.
func (d *Descriptor[E]) Values() []E {
	out := make([]E, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.Value
	}
	return out
}

// Names returns the display names in declaration order.
func (d *Descriptor[E]) Names() []string {
	out := make([]string, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.Name
	}
	return out
}

// Index returns the declaration index of value.
// ok is false when value is not one of the declared values.
func (d *Descriptor[E]) Index(value E) (int, bool) {
	i, ok := d.index[value]
	return i, ok
}

// Name returns the display name of value.
func (d *Descriptor[E]) Name(value E) (string, bool) {
	i, ok := d.index[value]
	if !ok {
		return "", false
	}
	return d.entries[i].Name, true
}

// Contains reports whether value is declared.
func (d *Descriptor[E]) Contains(value E) bool {
	_, ok := d.index[value]
	return ok
}

// IsBitFlag is false for plain enumerations. See Flags.
func (d *Descriptor[E]) IsBitFlag() bool {
	return false
}
