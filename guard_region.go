package sweet

// Region guards open a toolkit region on construction and close it with End.
// Every constructor returns a distinct type; guards whose begin call can fail
// report the outcome through Opened and only close what actually opened.
//
// Usage:
//
//	w := sweet.Window(tk, "Settings", &open, 0)
//	defer w.End()
//	if !w.Opened() {
//	    return
//	}
//	tk.TextUnformatted("visible")

// WindowGuard brackets Begin/End.
type WindowGuard struct{ bracket }

// Window begins a top-level window. open may be nil; when non-nil the window
// shows a close button that clears it.
func Window(tk Windows, name string, open *bool, flags WindowFlags) *WindowGuard {
	g := &WindowGuard{}
	g.arm(tk.Begin(name, open, flags), tk.End)
	return g
}

// ChildGuard brackets BeginChild/EndChild.
type ChildGuard struct{ bracket }

// Child begins a scrolling child region. A zero size component uses the
// remaining space on that axis.
func Child(tk Windows, id string, size Vec2, border bool, flags WindowFlags) *ChildGuard {
	g := &ChildGuard{}
	g.arm(tk.BeginChild(id, size, border, flags), tk.EndChild)
	return g
}

// ChildFrameGuard brackets BeginChildFrame/EndChildFrame.
type ChildFrameGuard struct{ bracket }

// ChildFrame begins a child region styled like a framed widget.
// Use HashID to derive id from a label.
func ChildFrame(tk Windows, id ID, size Vec2, flags WindowFlags) *ChildFrameGuard {
	g := &ChildFrameGuard{}
	g.arm(tk.BeginChildFrame(id, size, flags), tk.EndChildFrame)
	return g
}

// ComboGuard brackets BeginCombo/EndCombo.
type ComboGuard struct{ bracket }

// Combo begins a combo box. Opened is true only while the dropdown is
// expanded.
func Combo(tk Containers, label, preview string, flags ComboFlags) *ComboGuard {
	g := &ComboGuard{}
	g.arm(tk.BeginCombo(label, preview, flags), tk.EndCombo)
	return g
}

// ListBoxGuard brackets BeginListBox/EndListBox.
type ListBoxGuard struct{ bracket }

// ListBox begins a framed scrolling list of the given size.
func ListBox(tk Containers, label string, size Vec2) *ListBoxGuard {
	g := &ListBoxGuard{}
	g.arm(tk.BeginListBox(label, size), tk.EndListBox)
	return g
}

// MenuBarGuard brackets BeginMenuBar/EndMenuBar.
type MenuBarGuard struct{ bracket }

// MenuBar begins the menu bar of the current window, which must have been
// opened with WindowFlagsMenuBar.
func MenuBar(tk Menus) *MenuBarGuard {
	g := &MenuBarGuard{}
	g.arm(tk.BeginMenuBar(), tk.EndMenuBar)
	return g
}

// MainMenuBarGuard brackets BeginMainMenuBar/EndMainMenuBar.
type MainMenuBarGuard struct{ bracket }

// MainMenuBar begins the full-screen menu bar.
func MainMenuBar(tk Menus) *MainMenuBarGuard {
	g := &MainMenuBarGuard{}
	g.arm(tk.BeginMainMenuBar(), tk.EndMainMenuBar)
	return g
}

// MenuGuard brackets BeginMenu/EndMenu.
type MenuGuard struct{ bracket }

// Menu begins a sub-menu entry.
func Menu(tk Menus, label string, enabled bool) *MenuGuard {
	g := &MenuGuard{}
	g.arm(tk.BeginMenu(label, enabled), tk.EndMenu)
	return g
}

// PopupGuard brackets BeginPopup/EndPopup.
type PopupGuard struct{ bracket }

// Popup begins the popup with the given id if it is currently open.
func Popup(tk Popups, id string, flags WindowFlags) *PopupGuard {
	g := &PopupGuard{}
	g.arm(tk.BeginPopup(id, flags), tk.EndPopup)
	return g
}

// PopupModalGuard brackets BeginPopupModal/EndPopup.
type PopupModalGuard struct{ bracket }

// PopupModal begins a modal popup that blocks interaction behind it.
func PopupModal(tk Popups, name string, open *bool, flags WindowFlags) *PopupModalGuard {
	g := &PopupModalGuard{}
	g.arm(tk.BeginPopupModal(name, open, flags), tk.EndPopup)
	return g
}

// PopupContextItemGuard brackets BeginPopupContextItem/EndPopup.
type PopupContextItemGuard struct{ bracket }

// PopupContextItem begins a context popup for the last item. An empty id
// uses the last item's id. Pass PopupFlagsMouseButtonRight for the usual
// right-click behavior.
func PopupContextItem(tk Popups, id string, flags PopupFlags) *PopupContextItemGuard {
	g := &PopupContextItemGuard{}
	g.arm(tk.BeginPopupContextItem(id, flags), tk.EndPopup)
	return g
}

// PopupContextWindowGuard brackets BeginPopupContextWindow/EndPopup.
type PopupContextWindowGuard struct{ bracket }

// PopupContextWindow begins a context popup for the current window.
func PopupContextWindow(tk Popups, id string, flags PopupFlags) *PopupContextWindowGuard {
	g := &PopupContextWindowGuard{}
	g.arm(tk.BeginPopupContextWindow(id, flags), tk.EndPopup)
	return g
}

// PopupContextVoidGuard brackets BeginPopupContextVoid/EndPopup.
type PopupContextVoidGuard struct{ bracket }

// PopupContextVoid begins a context popup for clicks outside any window.
func PopupContextVoid(tk Popups, id string, flags PopupFlags) *PopupContextVoidGuard {
	g := &PopupContextVoidGuard{}
	g.arm(tk.BeginPopupContextVoid(id, flags), tk.EndPopup)
	return g
}

// DragDropSourceGuard brackets BeginDragDropSource/EndDragDropSource.
type DragDropSourceGuard struct{ bracket }

// DragDropSource begins a drag source on the last item.
func DragDropSource(tk DragDrop, flags DragDropFlags) *DragDropSourceGuard {
	g := &DragDropSourceGuard{}
	g.arm(tk.BeginDragDropSource(flags), tk.EndDragDropSource)
	return g
}

// DragDropTargetGuard brackets BeginDragDropTarget/EndDragDropTarget.
type DragDropTargetGuard struct{ bracket }

// DragDropTarget begins a drop target on the last item.
func DragDropTarget(tk DragDrop) *DragDropTargetGuard {
	g := &DragDropTargetGuard{}
	g.arm(tk.BeginDragDropTarget(), tk.EndDragDropTarget)
	return g
}

// TreeNodeGuard brackets TreeNodeEx/TreePop.
type TreeNodeGuard struct{ bracket }

// TreeNode draws a tree node. Opened is true while the node is expanded.
func TreeNode(tk Containers, label string, flags TreeNodeFlags) *TreeNodeGuard {
	g := &TreeNodeGuard{}
	g.arm(tk.TreeNodeEx(label, flags), tk.TreePop)
	return g
}

// TabBarGuard brackets BeginTabBar/EndTabBar.
type TabBarGuard struct{ bracket }

// TabBar begins a tab bar.
func TabBar(tk Containers, id string, flags TabBarFlags) *TabBarGuard {
	g := &TabBarGuard{}
	g.arm(tk.BeginTabBar(id, flags), tk.EndTabBar)
	return g
}

// TabItemGuard brackets BeginTabItem/EndTabItem.
type TabItemGuard struct{ bracket }

// TabItem begins a tab. Opened is true only for the selected tab.
func TabItem(tk Containers, label string, open *bool, flags TabItemFlags) *TabItemGuard {
	g := &TabItemGuard{}
	g.arm(tk.BeginTabItem(label, open, flags), tk.EndTabItem)
	return g
}

// TableGuard brackets BeginTable/EndTable.
type TableGuard struct{ bracket }

// Table begins a table. Opened is false when the table is clipped.
func Table(tk Containers, id string, columns int, flags TableFlags, outerSize Vec2, innerWidth float32) *TableGuard {
	g := &TableGuard{}
	g.arm(tk.BeginTable(id, columns, flags, outerSize, innerWidth), tk.EndTable)
	return g
}

// GroupGuard brackets BeginGroup/EndGroup.
type GroupGuard struct{ scope }

// Group locks the horizontal start position so the group can be treated as
// a single item.
func Group(tk Windows) *GroupGuard {
	g := &GroupGuard{}
	tk.BeginGroup()
	g.arm(tk.EndGroup)
	return g
}

// TooltipGuard brackets BeginTooltip/EndTooltip.
type TooltipGuard struct{ scope }

// Tooltip opens a tooltip window at the mouse cursor.
func Tooltip(tk Popups) *TooltipGuard {
	g := &TooltipGuard{}
	tk.BeginTooltip()
	g.arm(tk.EndTooltip)
	return g
}

// DisabledGuard brackets BeginDisabled/EndDisabled.
type DisabledGuard struct{ scope }

// Disabled disables interaction with the items inside when disabled is true.
// The region is always begun so that nested Disabled calls stay balanced.
func Disabled(tk Windows, disabled bool) *DisabledGuard {
	g := &DisabledGuard{}
	tk.BeginDisabled(disabled)
	g.arm(tk.EndDisabled)
	return g
}
