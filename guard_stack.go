package sweet

// Stack guards push onto one of the toolkit's style or attribute stacks and
// pop on End. Pushes never fail, so these guards have no Opened.
//
// Usage:
//
//	c := sweet.StyleColors(tk,
//	    sweet.ColorPush{Col: sweet.ColText, Value: red},
//	    sweet.ColorPush{Col: sweet.ColBorder, Value: red},
//	)
//	defer c.End()

// IDGuard brackets PushID/PopID.
type IDGuard struct{ scope }

// PushID scopes every item id created before End under id.
func PushID(tk Stacks, id string) *IDGuard {
	g := &IDGuard{}
	tk.PushID(id)
	g.arm(tk.PopID)
	return g
}

// PushIDInt is PushID for loop indices.
func PushIDInt(tk Stacks, id int) *IDGuard {
	g := &IDGuard{}
	tk.PushIDInt(id)
	g.arm(tk.PopID)
	return g
}

// ColorPush is one entry of a StyleColors push.
type ColorPush struct {
	Col   StyleColor
	Value Vec4
}

// StyleColorGuard brackets one or more PushStyleColor calls.
type StyleColorGuard struct {
	scope
	count int
}

// PushStyleColor overrides a single style color.
func PushStyleColor(tk Stacks, col StyleColor, value Vec4) *StyleColorGuard {
	return StyleColors(tk, ColorPush{Col: col, Value: value})
}

// StyleColors overrides every listed color as one unit; End pops them all
// in a single call.
func StyleColors(tk Stacks, pushes ...ColorPush) *StyleColorGuard {
	g := &StyleColorGuard{count: len(pushes)}
	for _, p := range pushes {
		tk.PushStyleColor(p.Col, p.Value)
	}
	if g.count > 0 {
		g.arm(func() { tk.PopStyleColor(g.count) })
	}
	return g
}

// Count returns the number of colors pushed.
func (g *StyleColorGuard) Count() int {
	return g.count
}

// FloatVar is one entry of a StyleVarsFloat push.
type FloatVar struct {
	Var   StyleVar
	Value float32
}

// Vec2Var is one entry of a StyleVarsVec2 push.
type Vec2Var struct {
	Var   StyleVar
	Value Vec2
}

// StyleVarGuard brackets one or more PushStyleVar calls.
type StyleVarGuard struct {
	scope
	count int
}

// StyleVarFloat overrides a scalar style variable.
func StyleVarFloat(tk Stacks, v StyleVar, value float32) *StyleVarGuard {
	return StyleVarsFloat(tk, FloatVar{Var: v, Value: value})
}

// StyleVarVec2 overrides a Vec2 style variable.
func StyleVarVec2(tk Stacks, v StyleVar, value Vec2) *StyleVarGuard {
	return StyleVarsVec2(tk, Vec2Var{Var: v, Value: value})
}

// StyleVarsFloat overrides every listed scalar variable as one unit.
func StyleVarsFloat(tk Stacks, pushes ...FloatVar) *StyleVarGuard {
	g := &StyleVarGuard{count: len(pushes)}
	for _, p := range pushes {
		tk.PushStyleVarFloat(p.Var, p.Value)
	}
	g.armPop(tk)
	return g
}

// StyleVarsVec2 overrides every listed Vec2 variable as one unit.
func StyleVarsVec2(tk Stacks, pushes ...Vec2Var) *StyleVarGuard {
	g := &StyleVarGuard{count: len(pushes)}
	for _, p := range pushes {
		tk.PushStyleVarVec2(p.Var, p.Value)
	}
	g.armPop(tk)
	return g
}

func (g *StyleVarGuard) armPop(tk Stacks) {
	if g.count > 0 {
		g.arm(func() { tk.PopStyleVar(g.count) })
	}
}

// Count returns the number of variables pushed.
func (g *StyleVarGuard) Count() int {
	return g.count
}

// FontGuard brackets PushFont/PopFont.
type FontGuard struct{ scope }

// PushFont draws the following text with font.
func PushFont(tk Stacks, font Font) *FontGuard {
	g := &FontGuard{}
	tk.PushFont(font)
	g.arm(tk.PopFont)
	return g
}

// ItemWidthGuard brackets PushItemWidth/PopItemWidth.
type ItemWidthGuard struct{ scope }

// ItemWidth sets the width of the following widgets. Negative values align
// to the right edge.
func ItemWidth(tk Stacks, width float32) *ItemWidthGuard {
	g := &ItemWidthGuard{}
	tk.PushItemWidth(width)
	g.arm(tk.PopItemWidth)
	return g
}

// TextWrapPosGuard brackets PushTextWrapPos/PopTextWrapPos.
type TextWrapPosGuard struct{ scope }

// TextWrapPos wraps text at wrapPosX in window coordinates; 0 wraps at the
// end of the window.
func TextWrapPos(tk Stacks, wrapPosX float32) *TextWrapPosGuard {
	g := &TextWrapPosGuard{}
	tk.PushTextWrapPos(wrapPosX)
	g.arm(tk.PopTextWrapPos)
	return g
}

// ClipRectGuard brackets PushClipRect/PopClipRect.
type ClipRectGuard struct{ scope }

// ClipRect restricts drawing to the rectangle from min to max.
func ClipRect(tk Stacks, min, max Vec2, intersect bool) *ClipRectGuard {
	g := &ClipRectGuard{}
	tk.PushClipRect(min, max, intersect)
	g.arm(tk.PopClipRect)
	return g
}

// AllowKeyboardFocusGuard brackets PushAllowKeyboardFocus/PopAllowKeyboardFocus.
type AllowKeyboardFocusGuard struct{ scope }

// AllowKeyboardFocus toggles whether Tab navigation stops on the following
// widgets.
func AllowKeyboardFocus(tk Stacks, allow bool) *AllowKeyboardFocusGuard {
	g := &AllowKeyboardFocusGuard{}
	tk.PushAllowKeyboardFocus(allow)
	g.arm(tk.PopAllowKeyboardFocus)
	return g
}

// ButtonRepeatGuard brackets PushButtonRepeat/PopButtonRepeat.
type ButtonRepeatGuard struct{ scope }

// ButtonRepeat makes held buttons fire repeatedly.
func ButtonRepeat(tk Stacks, repeat bool) *ButtonRepeatGuard {
	g := &ButtonRepeatGuard{}
	tk.PushButtonRepeat(repeat)
	g.arm(tk.PopButtonRepeat)
	return g
}

// IndentGuard brackets Indent/Unindent.
type IndentGuard struct {
	scope
	width float32
}

// Indent moves the content start right by width, or by the style's indent
// spacing when width is 0. End unindents by the same width.
func Indent(tk Stacks, width float32) *IndentGuard {
	g := &IndentGuard{width: width}
	tk.Indent(width)
	g.arm(func() { tk.Unindent(g.width) })
	return g
}

// Width returns the width passed to Indent.
func (g *IndentGuard) Width() float32 {
	return g.width
}
