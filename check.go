package sweet

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var (
	// ErrUnbalanced is returned by EndFrame when regions are still open.
	ErrUnbalanced = errors.New("sweet: unbalanced begin/end")
	// ErrMismatchedEnd is returned by EndFrame when an end or pop did not
	// match the innermost open region.
	ErrMismatchedEnd = errors.New("sweet: mismatched end")
)

// openRegion is one entry of the checker's stack.
type openRegion struct {
	kind  string
	label string
}

func (r openRegion) String() string {
	if r.label == "" {
		return r.kind
	}
	return r.kind + "(" + r.label + ")"
}

// Checked wraps a Toolkit and verifies that every begin and push it
// forwards is closed by the matching end or pop, in nesting order.
// Conditional begins that return false are not tracked, so calling their
// end is reported as a mismatch.
//
// Usage:
//
//	tk := sweet.NewChecked(backend)
//	for running {
//	    drawFrame(tk)
//	    if err := tk.EndFrame(); err != nil {
//	        log.Fatal(err)
//	    }
//	}
type Checked struct {
	Toolkit

	logger *slog.Logger
	stack  []openRegion
	err    error
	frame  uint64
}

// CheckOption configures a Checked toolkit.
type CheckOption func(*Checked)

// WithLogger sets the logger mismatches are reported to.
func WithLogger(logger *slog.Logger) CheckOption {
	return func(c *Checked) { c.logger = logger }
}

// NewChecked wraps tk.
func NewChecked(tk Toolkit, opts ...CheckOption) *Checked {
	c := &Checked{
		Toolkit: tk,
		logger:  checkLogger,
		stack:   make([]openRegion, 0, 16),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Depth returns the number of regions and stack entries currently open.
func (c *Checked) Depth() int {
	return len(c.stack)
}

// Open describes the open regions, outermost first.
func (c *Checked) Open() []string {
	out := make([]string, len(c.stack))
	for i, r := range c.stack {
		out[i] = r.String()
	}
	return out
}

// EndFrame reports the first mismatch of the frame, or ErrUnbalanced if
// anything is still open, and resets the checker for the next frame.
func (c *Checked) EndFrame() error {
	err := c.err
	if err == nil && len(c.stack) > 0 {
		err = fmt.Errorf("%w: frame %d left open: %s", ErrUnbalanced, c.frame, strings.Join(c.Open(), " > "))
		c.logger.Warn("regions left open", "frame", c.frame, "open", c.Open())
	}
	c.stack = c.stack[:0]
	c.err = nil
	c.frame++
	return err
}

func (c *Checked) push(kind, label string) {
	c.stack = append(c.stack, openRegion{kind: kind, label: label})
	if verbose() {
		c.logger.Debug("begin", "kind", kind, "label", label, "depth", len(c.stack))
	}
}

// track pushes kind if the conditional begin opened.
func (c *Checked) track(opened bool, kind, label string) bool {
	if opened {
		c.push(kind, label)
	}
	return opened
}

func (c *Checked) pop(kind string) {
	n := len(c.stack)
	if n == 0 {
		c.fail(fmt.Errorf("%w: End%s with nothing open", ErrMismatchedEnd, kind))
		return
	}
	top := c.stack[n-1]
	c.stack = c.stack[:n-1]
	if top.kind != kind {
		c.fail(fmt.Errorf("%w: End%s closes %s", ErrMismatchedEnd, kind, top))
		return
	}
	if verbose() {
		c.logger.Debug("end", "kind", kind, "label", top.label, "depth", len(c.stack))
	}
}

func (c *Checked) popN(kind string, count int) {
	for range count {
		c.pop(kind)
	}
}

func (c *Checked) fail(err error) {
	c.logger.Warn("bracket mismatch", "frame", c.frame, "err", err)
	if c.err == nil {
		c.err = err
	}
}

func (c *Checked) Begin(name string, open *bool, flags WindowFlags) bool {
	return c.track(c.Toolkit.Begin(name, open, flags), "Window", name)
}

func (c *Checked) End() {
	c.pop("Window")
	c.Toolkit.End()
}

func (c *Checked) BeginChild(id string, size Vec2, border bool, flags WindowFlags) bool {
	return c.track(c.Toolkit.BeginChild(id, size, border, flags), "Child", id)
}

func (c *Checked) EndChild() {
	c.pop("Child")
	c.Toolkit.EndChild()
}

func (c *Checked) BeginChildFrame(id ID, size Vec2, flags WindowFlags) bool {
	return c.track(c.Toolkit.BeginChildFrame(id, size, flags), "ChildFrame", fmt.Sprintf("%#x", uint32(id)))
}

func (c *Checked) EndChildFrame() {
	c.pop("ChildFrame")
	c.Toolkit.EndChildFrame()
}

func (c *Checked) BeginGroup() {
	c.Toolkit.BeginGroup()
	c.push("Group", "")
}

func (c *Checked) EndGroup() {
	c.pop("Group")
	c.Toolkit.EndGroup()
}

func (c *Checked) BeginDisabled(disabled bool) {
	c.Toolkit.BeginDisabled(disabled)
	c.push("Disabled", "")
}

func (c *Checked) EndDisabled() {
	c.pop("Disabled")
	c.Toolkit.EndDisabled()
}

func (c *Checked) BeginMenuBar() bool {
	return c.track(c.Toolkit.BeginMenuBar(), "MenuBar", "")
}

func (c *Checked) EndMenuBar() {
	c.pop("MenuBar")
	c.Toolkit.EndMenuBar()
}

func (c *Checked) BeginMainMenuBar() bool {
	return c.track(c.Toolkit.BeginMainMenuBar(), "MainMenuBar", "")
}

func (c *Checked) EndMainMenuBar() {
	c.pop("MainMenuBar")
	c.Toolkit.EndMainMenuBar()
}

func (c *Checked) BeginMenu(label string, enabled bool) bool {
	return c.track(c.Toolkit.BeginMenu(label, enabled), "Menu", label)
}

func (c *Checked) EndMenu() {
	c.pop("Menu")
	c.Toolkit.EndMenu()
}

// All popup kinds close with EndPopup, so they share one stack kind.

func (c *Checked) BeginPopup(id string, flags WindowFlags) bool {
	return c.track(c.Toolkit.BeginPopup(id, flags), "Popup", id)
}

func (c *Checked) BeginPopupModal(name string, open *bool, flags WindowFlags) bool {
	return c.track(c.Toolkit.BeginPopupModal(name, open, flags), "Popup", name)
}

func (c *Checked) BeginPopupContextItem(id string, flags PopupFlags) bool {
	return c.track(c.Toolkit.BeginPopupContextItem(id, flags), "Popup", id)
}

func (c *Checked) BeginPopupContextWindow(id string, flags PopupFlags) bool {
	return c.track(c.Toolkit.BeginPopupContextWindow(id, flags), "Popup", id)
}

func (c *Checked) BeginPopupContextVoid(id string, flags PopupFlags) bool {
	return c.track(c.Toolkit.BeginPopupContextVoid(id, flags), "Popup", id)
}

func (c *Checked) EndPopup() {
	c.pop("Popup")
	c.Toolkit.EndPopup()
}

func (c *Checked) BeginTooltip() {
	c.Toolkit.BeginTooltip()
	c.push("Tooltip", "")
}

func (c *Checked) EndTooltip() {
	c.pop("Tooltip")
	c.Toolkit.EndTooltip()
}

func (c *Checked) BeginCombo(label, preview string, flags ComboFlags) bool {
	return c.track(c.Toolkit.BeginCombo(label, preview, flags), "Combo", label)
}

func (c *Checked) EndCombo() {
	c.pop("Combo")
	c.Toolkit.EndCombo()
}

func (c *Checked) BeginListBox(label string, size Vec2) bool {
	return c.track(c.Toolkit.BeginListBox(label, size), "ListBox", label)
}

func (c *Checked) EndListBox() {
	c.pop("ListBox")
	c.Toolkit.EndListBox()
}

func (c *Checked) TreeNodeEx(label string, flags TreeNodeFlags) bool {
	return c.track(c.Toolkit.TreeNodeEx(label, flags), "TreeNode", label)
}

func (c *Checked) TreePop() {
	c.pop("TreeNode")
	c.Toolkit.TreePop()
}

func (c *Checked) BeginTabBar(id string, flags TabBarFlags) bool {
	return c.track(c.Toolkit.BeginTabBar(id, flags), "TabBar", id)
}

func (c *Checked) EndTabBar() {
	c.pop("TabBar")
	c.Toolkit.EndTabBar()
}

func (c *Checked) BeginTabItem(label string, open *bool, flags TabItemFlags) bool {
	return c.track(c.Toolkit.BeginTabItem(label, open, flags), "TabItem", label)
}

func (c *Checked) EndTabItem() {
	c.pop("TabItem")
	c.Toolkit.EndTabItem()
}

func (c *Checked) BeginTable(id string, columns int, flags TableFlags, outerSize Vec2, innerWidth float32) bool {
	return c.track(c.Toolkit.BeginTable(id, columns, flags, outerSize, innerWidth), "Table", id)
}

func (c *Checked) EndTable() {
	c.pop("Table")
	c.Toolkit.EndTable()
}

func (c *Checked) BeginDragDropSource(flags DragDropFlags) bool {
	return c.track(c.Toolkit.BeginDragDropSource(flags), "DragDropSource", "")
}

func (c *Checked) EndDragDropSource() {
	c.pop("DragDropSource")
	c.Toolkit.EndDragDropSource()
}

func (c *Checked) BeginDragDropTarget() bool {
	return c.track(c.Toolkit.BeginDragDropTarget(), "DragDropTarget", "")
}

func (c *Checked) EndDragDropTarget() {
	c.pop("DragDropTarget")
	c.Toolkit.EndDragDropTarget()
}

func (c *Checked) PushID(id string) {
	c.Toolkit.PushID(id)
	c.push("ID", id)
}

func (c *Checked) PushIDInt(id int) {
	c.Toolkit.PushIDInt(id)
	c.push("ID", fmt.Sprint(id))
}

func (c *Checked) PopID() {
	c.pop("ID")
	c.Toolkit.PopID()
}

func (c *Checked) PushStyleColor(idx StyleColor, col Vec4) {
	c.Toolkit.PushStyleColor(idx, col)
	c.push("StyleColor", "")
}

func (c *Checked) PopStyleColor(count int) {
	c.popN("StyleColor", count)
	c.Toolkit.PopStyleColor(count)
}

func (c *Checked) PushStyleVarFloat(idx StyleVar, val float32) {
	c.Toolkit.PushStyleVarFloat(idx, val)
	c.push("StyleVar", "")
}

func (c *Checked) PushStyleVarVec2(idx StyleVar, val Vec2) {
	c.Toolkit.PushStyleVarVec2(idx, val)
	c.push("StyleVar", "")
}

func (c *Checked) PopStyleVar(count int) {
	c.popN("StyleVar", count)
	c.Toolkit.PopStyleVar(count)
}

func (c *Checked) PushFont(font Font) {
	c.Toolkit.PushFont(font)
	c.push("Font", "")
}

func (c *Checked) PopFont() {
	c.pop("Font")
	c.Toolkit.PopFont()
}

func (c *Checked) PushItemWidth(width float32) {
	c.Toolkit.PushItemWidth(width)
	c.push("ItemWidth", "")
}

func (c *Checked) PopItemWidth() {
	c.pop("ItemWidth")
	c.Toolkit.PopItemWidth()
}

func (c *Checked) PushTextWrapPos(wrapPosX float32) {
	c.Toolkit.PushTextWrapPos(wrapPosX)
	c.push("TextWrapPos", "")
}

func (c *Checked) PopTextWrapPos() {
	c.pop("TextWrapPos")
	c.Toolkit.PopTextWrapPos()
}

func (c *Checked) PushClipRect(min, max Vec2, intersect bool) {
	c.Toolkit.PushClipRect(min, max, intersect)
	c.push("ClipRect", "")
}

func (c *Checked) PopClipRect() {
	c.pop("ClipRect")
	c.Toolkit.PopClipRect()
}

func (c *Checked) PushAllowKeyboardFocus(allow bool) {
	c.Toolkit.PushAllowKeyboardFocus(allow)
	c.push("AllowKeyboardFocus", "")
}

func (c *Checked) PopAllowKeyboardFocus() {
	c.pop("AllowKeyboardFocus")
	c.Toolkit.PopAllowKeyboardFocus()
}

func (c *Checked) PushButtonRepeat(repeat bool) {
	c.Toolkit.PushButtonRepeat(repeat)
	c.push("ButtonRepeat", "")
}

func (c *Checked) PopButtonRepeat() {
	c.pop("ButtonRepeat")
	c.Toolkit.PopButtonRepeat()
}

// Indent widths must match; the checker records the width as the label.

func (c *Checked) Indent(width float32) {
	c.Toolkit.Indent(width)
	c.push("Indent", fmt.Sprint(width))
}

func (c *Checked) Unindent(width float32) {
	n := len(c.stack)
	if n > 0 && c.stack[n-1].kind == "Indent" && c.stack[n-1].label != fmt.Sprint(width) {
		c.fail(fmt.Errorf("%w: Unindent(%v) after Indent(%s)", ErrMismatchedEnd, width, c.stack[n-1].label))
	}
	c.pop("Indent")
	c.Toolkit.Unindent(width)
}
