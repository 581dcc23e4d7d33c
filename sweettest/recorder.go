// Package sweettest provides a recording toolkit for testing code built on
// package sweet without a real GUI.
//
// A Recorder appends every toolkit call to a trace and answers begin calls
// and widget interactions from a script, so a test can play a frame, assert
// on the calls made and check that every begin was balanced:
//
//	rec := sweettest.New()
//	rec.Click("Quality")
//	changed := sweet.EnumListBox(rec, "Mode", &mode, Modes)
//	require.NoError(t, rec.Err())
package sweettest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-theft-auto/sweet"
)

var (
	// ErrUnbalanced is reported by Err when regions are still open.
	ErrUnbalanced = errors.New("sweettest: unbalanced begin/end")
	// ErrMismatchedEnd is reported by Err when an end did not match the
	// innermost open region.
	ErrMismatchedEnd = errors.New("sweettest: mismatched end")
)

// Call is one recorded toolkit call.
type Call struct {
	Op   string
	Args []any
}

// String renders the call as Op(arg, ...). Strings are quoted so that
// labels with spaces stay readable.
func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = formatArg(a)
	}
	return c.Op + "(" + strings.Join(args, ", ") + ")"
}

func formatArg(a any) string {
	switch v := a.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case float32:
		return fmt.Sprintf("%g", v)
	case *bool:
		if v == nil {
			return "nil"
		}
		return fmt.Sprintf("&%t", *v)
	case sweet.ID:
		return fmt.Sprintf("%#x", uint32(v))
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Recorder implements sweet.Toolkit by recording calls.
//
// Every conditional begin opens unless its label was passed to Close.
// Begins without a label (MenuBar, MainMenuBar, ChildFrame, DragDropSource,
// DragDropTarget) are closed by passing their kind name to Close. Context
// popups opened with an empty id close under "Popup".
type Recorder struct {
	calls []Call
	stack []string
	err   error

	closed  map[string]bool
	clicks  map[string]int
	hovered bool

	lineHeight float32
	colors     map[sweet.StyleColor]sweet.Vec4
}

var _ sweet.Toolkit = (*Recorder)(nil)

// Option configures a Recorder.
type Option func(*Recorder)

// WithLineHeight sets the value returned by TextLineHeightWithSpacing.
func WithLineHeight(h float32) Option {
	return func(r *Recorder) { r.lineHeight = h }
}

// WithStyleColor sets the value returned by StyleColorVec4 for idx.
func WithStyleColor(idx sweet.StyleColor, col sweet.Vec4) Option {
	return func(r *Recorder) { r.colors[idx] = col }
}

// DefaultLineHeight is the line height of a 13px font with 4px spacing.
const DefaultLineHeight float32 = 17

// New creates a recorder with every region open and no pending clicks.
func New(opts ...Option) *Recorder {
	r := &Recorder{
		closed:     make(map[string]bool),
		clicks:     make(map[string]int),
		lineHeight: DefaultLineHeight,
		colors: map[sweet.StyleColor]sweet.Vec4{
			sweet.ColText:         {X: 1, Y: 1, Z: 1, W: 1},
			sweet.ColTextDisabled: {X: 0.5, Y: 0.5, Z: 0.5, W: 1},
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Close makes conditional begins with the given label return false.
func (r *Recorder) Close(labels ...string) {
	for _, l := range labels {
		r.closed[l] = true
	}
}

// Reopen undoes Close for every label.
func (r *Recorder) Reopen() {
	clear(r.closed)
}

// Click queues one interaction with the next Selectable, RadioButton or
// Checkbox drawn with label. A clicked checkbox toggles its value.
func (r *Recorder) Click(labels ...string) {
	for _, l := range labels {
		r.clicks[l]++
	}
}

// SetHovered sets the value returned by IsItemHovered.
func (r *Recorder) SetHovered(hovered bool) {
	r.hovered = hovered
}

// Reset starts a new frame: the trace, the nesting state and any clicks
// that were not consumed are dropped. Closed labels stay closed.
func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
	r.stack = r.stack[:0]
	r.err = nil
	clear(r.clicks)
}

// Calls returns the calls recorded since the last Reset.
func (r *Recorder) Calls() []Call {
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Trace returns the recorded calls rendered with Call.String.
func (r *Recorder) Trace() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.String()
	}
	return out
}

// Ops returns the names of the recorded calls.
func (r *Recorder) Ops() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.Op
	}
	return out
}

// Count returns how many times op was called.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Depth returns the number of regions and stack entries currently open.
func (r *Recorder) Depth() int {
	return len(r.stack)
}

// Err returns the first mismatched end of the frame, or ErrUnbalanced if
// something is still open.
func (r *Recorder) Err() error {
	if r.err != nil {
		return r.err
	}
	if len(r.stack) > 0 {
		return fmt.Errorf("%w: open %s", ErrUnbalanced, strings.Join(r.stack, " > "))
	}
	return nil
}

func (r *Recorder) record(op string, args ...any) {
	r.calls = append(r.calls, Call{Op: op, Args: args})
}

func (r *Recorder) open(kind, label string) bool {
	key := label
	if key == "" {
		key = kind
	}
	if r.closed[key] {
		return false
	}
	r.stack = append(r.stack, kind)
	return true
}

func (r *Recorder) push(kind string) {
	r.stack = append(r.stack, kind)
}

func (r *Recorder) pop(kind string) {
	n := len(r.stack)
	if n == 0 {
		r.fail(fmt.Errorf("%w: %s with nothing open", ErrMismatchedEnd, kind))
		return
	}
	top := r.stack[n-1]
	r.stack = r.stack[:n-1]
	if top != kind {
		r.fail(fmt.Errorf("%w: end of %s closes %s", ErrMismatchedEnd, kind, top))
	}
}

func (r *Recorder) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *Recorder) clicked(label string) bool {
	if r.clicks[label] == 0 {
		return false
	}
	r.clicks[label]--
	return true
}
