package sweettest

import "github.com/go-theft-auto/sweet"

func (r *Recorder) Begin(name string, open *bool, flags sweet.WindowFlags) bool {
	r.record("Begin", name, open, flags)
	return r.open("Window", name)
}

func (r *Recorder) End() {
	r.record("End")
	r.pop("Window")
}

func (r *Recorder) BeginChild(id string, size sweet.Vec2, border bool, flags sweet.WindowFlags) bool {
	r.record("BeginChild", id, size, border, flags)
	return r.open("Child", id)
}

func (r *Recorder) EndChild() {
	r.record("EndChild")
	r.pop("Child")
}

func (r *Recorder) BeginChildFrame(id sweet.ID, size sweet.Vec2, flags sweet.WindowFlags) bool {
	r.record("BeginChildFrame", id, size, flags)
	return r.open("ChildFrame", "")
}

func (r *Recorder) EndChildFrame() {
	r.record("EndChildFrame")
	r.pop("ChildFrame")
}

func (r *Recorder) BeginGroup() {
	r.record("BeginGroup")
	r.push("Group")
}

func (r *Recorder) EndGroup() {
	r.record("EndGroup")
	r.pop("Group")
}

func (r *Recorder) BeginDisabled(disabled bool) {
	r.record("BeginDisabled", disabled)
	r.push("Disabled")
}

func (r *Recorder) EndDisabled() {
	r.record("EndDisabled")
	r.pop("Disabled")
}

func (r *Recorder) BeginMenuBar() bool {
	r.record("BeginMenuBar")
	return r.open("MenuBar", "")
}

func (r *Recorder) EndMenuBar() {
	r.record("EndMenuBar")
	r.pop("MenuBar")
}

func (r *Recorder) BeginMainMenuBar() bool {
	r.record("BeginMainMenuBar")
	return r.open("MainMenuBar", "")
}

func (r *Recorder) EndMainMenuBar() {
	r.record("EndMainMenuBar")
	r.pop("MainMenuBar")
}

func (r *Recorder) BeginMenu(label string, enabled bool) bool {
	r.record("BeginMenu", label, enabled)
	return r.open("Menu", label)
}

func (r *Recorder) EndMenu() {
	r.record("EndMenu")
	r.pop("Menu")
}

func (r *Recorder) BeginPopup(id string, flags sweet.WindowFlags) bool {
	r.record("BeginPopup", id, flags)
	return r.open("Popup", id)
}

func (r *Recorder) BeginPopupModal(name string, open *bool, flags sweet.WindowFlags) bool {
	r.record("BeginPopupModal", name, open, flags)
	return r.open("Popup", name)
}

func (r *Recorder) BeginPopupContextItem(id string, flags sweet.PopupFlags) bool {
	r.record("BeginPopupContextItem", id, flags)
	return r.open("Popup", id)
}

func (r *Recorder) BeginPopupContextWindow(id string, flags sweet.PopupFlags) bool {
	r.record("BeginPopupContextWindow", id, flags)
	return r.open("Popup", id)
}

func (r *Recorder) BeginPopupContextVoid(id string, flags sweet.PopupFlags) bool {
	r.record("BeginPopupContextVoid", id, flags)
	return r.open("Popup", id)
}

func (r *Recorder) EndPopup() {
	r.record("EndPopup")
	r.pop("Popup")
}

func (r *Recorder) BeginTooltip() {
	r.record("BeginTooltip")
	r.push("Tooltip")
}

func (r *Recorder) EndTooltip() {
	r.record("EndTooltip")
	r.pop("Tooltip")
}

func (r *Recorder) BeginCombo(label, preview string, flags sweet.ComboFlags) bool {
	r.record("BeginCombo", label, preview, flags)
	return r.open("Combo", label)
}

func (r *Recorder) EndCombo() {
	r.record("EndCombo")
	r.pop("Combo")
}

func (r *Recorder) BeginListBox(label string, size sweet.Vec2) bool {
	r.record("BeginListBox", label, size)
	return r.open("ListBox", label)
}

func (r *Recorder) EndListBox() {
	r.record("EndListBox")
	r.pop("ListBox")
}

func (r *Recorder) TreeNodeEx(label string, flags sweet.TreeNodeFlags) bool {
	r.record("TreeNodeEx", label, flags)
	return r.open("TreeNode", label)
}

func (r *Recorder) TreePop() {
	r.record("TreePop")
	r.pop("TreeNode")
}

func (r *Recorder) BeginTabBar(id string, flags sweet.TabBarFlags) bool {
	r.record("BeginTabBar", id, flags)
	return r.open("TabBar", id)
}

func (r *Recorder) EndTabBar() {
	r.record("EndTabBar")
	r.pop("TabBar")
}

func (r *Recorder) BeginTabItem(label string, open *bool, flags sweet.TabItemFlags) bool {
	r.record("BeginTabItem", label, open, flags)
	return r.open("TabItem", label)
}

func (r *Recorder) EndTabItem() {
	r.record("EndTabItem")
	r.pop("TabItem")
}

func (r *Recorder) BeginTable(id string, columns int, flags sweet.TableFlags, outerSize sweet.Vec2, innerWidth float32) bool {
	r.record("BeginTable", id, columns, flags, outerSize, innerWidth)
	return r.open("Table", id)
}

func (r *Recorder) EndTable() {
	r.record("EndTable")
	r.pop("Table")
}

func (r *Recorder) BeginDragDropSource(flags sweet.DragDropFlags) bool {
	r.record("BeginDragDropSource", flags)
	return r.open("DragDropSource", "")
}

func (r *Recorder) EndDragDropSource() {
	r.record("EndDragDropSource")
	r.pop("DragDropSource")
}

func (r *Recorder) BeginDragDropTarget() bool {
	r.record("BeginDragDropTarget")
	return r.open("DragDropTarget", "")
}

func (r *Recorder) EndDragDropTarget() {
	r.record("EndDragDropTarget")
	r.pop("DragDropTarget")
}

func (r *Recorder) PushID(id string) {
	r.record("PushID", id)
	r.push("ID")
}

func (r *Recorder) PushIDInt(id int) {
	r.record("PushIDInt", id)
	r.push("ID")
}

func (r *Recorder) PopID() {
	r.record("PopID")
	r.pop("ID")
}

func (r *Recorder) PushStyleColor(idx sweet.StyleColor, col sweet.Vec4) {
	r.record("PushStyleColor", idx, col)
	r.push("StyleColor")
}

func (r *Recorder) PopStyleColor(count int) {
	r.record("PopStyleColor", count)
	for range count {
		r.pop("StyleColor")
	}
}

func (r *Recorder) PushStyleVarFloat(idx sweet.StyleVar, val float32) {
	r.record("PushStyleVarFloat", idx, val)
	r.push("StyleVar")
}

func (r *Recorder) PushStyleVarVec2(idx sweet.StyleVar, val sweet.Vec2) {
	r.record("PushStyleVarVec2", idx, val)
	r.push("StyleVar")
}

func (r *Recorder) PopStyleVar(count int) {
	r.record("PopStyleVar", count)
	for range count {
		r.pop("StyleVar")
	}
}

func (r *Recorder) PushFont(font sweet.Font) {
	r.record("PushFont", font)
	r.push("Font")
}

func (r *Recorder) PopFont() {
	r.record("PopFont")
	r.pop("Font")
}

func (r *Recorder) PushItemWidth(width float32) {
	r.record("PushItemWidth", width)
	r.push("ItemWidth")
}

func (r *Recorder) PopItemWidth() {
	r.record("PopItemWidth")
	r.pop("ItemWidth")
}

func (r *Recorder) PushTextWrapPos(wrapPosX float32) {
	r.record("PushTextWrapPos", wrapPosX)
	r.push("TextWrapPos")
}

func (r *Recorder) PopTextWrapPos() {
	r.record("PopTextWrapPos")
	r.pop("TextWrapPos")
}

func (r *Recorder) PushClipRect(min, max sweet.Vec2, intersect bool) {
	r.record("PushClipRect", min, max, intersect)
	r.push("ClipRect")
}

func (r *Recorder) PopClipRect() {
	r.record("PopClipRect")
	r.pop("ClipRect")
}

func (r *Recorder) PushAllowKeyboardFocus(allow bool) {
	r.record("PushAllowKeyboardFocus", allow)
	r.push("AllowKeyboardFocus")
}

func (r *Recorder) PopAllowKeyboardFocus() {
	r.record("PopAllowKeyboardFocus")
	r.pop("AllowKeyboardFocus")
}

func (r *Recorder) PushButtonRepeat(repeat bool) {
	r.record("PushButtonRepeat", repeat)
	r.push("ButtonRepeat")
}

func (r *Recorder) PopButtonRepeat() {
	r.record("PopButtonRepeat")
	r.pop("ButtonRepeat")
}

func (r *Recorder) Indent(width float32) {
	r.record("Indent", width)
	r.push("Indent")
}

func (r *Recorder) Unindent(width float32) {
	r.record("Unindent", width)
	r.pop("Indent")
}

func (r *Recorder) Selectable(label string, selected bool) bool {
	r.record("Selectable", label, selected)
	return r.clicked(label)
}

func (r *Recorder) SetItemDefaultFocus() {
	r.record("SetItemDefaultFocus")
}

func (r *Recorder) RadioButton(label string, active bool) bool {
	r.record("RadioButton", label, active)
	return r.clicked(label)
}

// Checkbox records the value as it was before any scripted toggle.
func (r *Recorder) Checkbox(label string, v *bool) bool {
	r.record("Checkbox", label, *v)
	if !r.clicked(label) {
		return false
	}
	*v = !*v
	return true
}

func (r *Recorder) TextUnformatted(text string) {
	r.record("TextUnformatted", text)
}

func (r *Recorder) BulletText(text string) {
	r.record("BulletText", text)
}

func (r *Recorder) LabelText(label, text string) {
	r.record("LabelText", label, text)
}

func (r *Recorder) TextWrapped(text string) {
	r.record("TextWrapped", text)
}

// IsItemHovered is a query and is not recorded.
func (r *Recorder) IsItemHovered() bool {
	return r.hovered
}

// TextLineHeightWithSpacing is a query and is not recorded.
func (r *Recorder) TextLineHeightWithSpacing() float32 {
	return r.lineHeight
}

// StyleColorVec4 is a query and is not recorded.
func (r *Recorder) StyleColorVec4(idx sweet.StyleColor) sweet.Vec4 {
	return r.colors[idx]
}
