package sweet

// The interfaces below describe the immediate-mode toolkit this package
// drives. They mirror Dear ImGui's begin/end and push/pop pairs.
//
// For every begin that returns a bool, the matching end must be called if
// and only if the begin returned true. Unconditional begins and all pushes
// must always be balanced by their end or pop.

// Windows opens top-level windows, child regions and grouping scopes.
type Windows interface {
	Begin(name string, open *bool, flags WindowFlags) bool
	End()
	BeginChild(id string, size Vec2, border bool, flags WindowFlags) bool
	EndChild()
	BeginChildFrame(id ID, size Vec2, flags WindowFlags) bool
	EndChildFrame()
	BeginGroup()
	EndGroup()
	BeginDisabled(disabled bool)
	EndDisabled()
}

// Menus opens menu bars and menus.
type Menus interface {
	BeginMenuBar() bool
	EndMenuBar()
	BeginMainMenuBar() bool
	EndMainMenuBar()
	BeginMenu(label string, enabled bool) bool
	EndMenu()
}

// Popups opens popups, modals, context menus and tooltips.
type Popups interface {
	BeginPopup(id string, flags WindowFlags) bool
	BeginPopupModal(name string, open *bool, flags WindowFlags) bool
	BeginPopupContextItem(id string, flags PopupFlags) bool
	BeginPopupContextWindow(id string, flags PopupFlags) bool
	BeginPopupContextVoid(id string, flags PopupFlags) bool
	EndPopup()
	BeginTooltip()
	EndTooltip()
}

// Containers opens regions that hold other items.
type Containers interface {
	BeginCombo(label, preview string, flags ComboFlags) bool
	EndCombo()
	BeginListBox(label string, size Vec2) bool
	EndListBox()
	TreeNodeEx(label string, flags TreeNodeFlags) bool
	TreePop()
	BeginTabBar(id string, flags TabBarFlags) bool
	EndTabBar()
	BeginTabItem(label string, open *bool, flags TabItemFlags) bool
	EndTabItem()
	BeginTable(id string, columns int, flags TableFlags, outerSize Vec2, innerWidth float32) bool
	EndTable()
}

// DragDrop opens drag-and-drop sources and targets.
type DragDrop interface {
	BeginDragDropSource(flags DragDropFlags) bool
	EndDragDropSource()
	BeginDragDropTarget() bool
	EndDragDropTarget()
}

// Stacks pushes and pops style and attribute stacks.
type Stacks interface {
	PushID(id string)
	PushIDInt(id int)
	PopID()
	PushStyleColor(idx StyleColor, col Vec4)
	PopStyleColor(count int)
	PushStyleVarFloat(idx StyleVar, val float32)
	PushStyleVarVec2(idx StyleVar, val Vec2)
	PopStyleVar(count int)
	PushFont(font Font)
	PopFont()
	PushItemWidth(width float32)
	PopItemWidth()
	PushTextWrapPos(wrapPosX float32)
	PopTextWrapPos()
	PushClipRect(min, max Vec2, intersect bool)
	PopClipRect()
	PushAllowKeyboardFocus(allow bool)
	PopAllowKeyboardFocus()
	PushButtonRepeat(repeat bool)
	PopButtonRepeat()
	Indent(width float32)
	Unindent(width float32)
}

// Widgets draws leaf items and answers queries about the last item.
type Widgets interface {
	Selectable(label string, selected bool) bool
	SetItemDefaultFocus()
	RadioButton(label string, active bool) bool
	Checkbox(label string, v *bool) bool
	TextUnformatted(text string)
	BulletText(text string)
	LabelText(label, text string)
	TextWrapped(text string)
	IsItemHovered() bool
	TextLineHeightWithSpacing() float32
	StyleColorVec4(idx StyleColor) Vec4
}

// Toolkit is the full primitive surface used by this package.
type Toolkit interface {
	Windows
	Menus
	Popups
	Containers
	DragDrop
	Stacks
	Widgets
}

// Selector is what the list and combo enum binders need.
type Selector interface {
	Containers
	Widgets
}

// TextToolkit is what the formatted text helpers need.
type TextToolkit interface {
	Popups
	Stacks
	Widgets
}
