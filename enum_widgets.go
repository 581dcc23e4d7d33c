package sweet

import "github.com/go-theft-auto/sweet/enums"

// The enum binders draw a selector for an enumeration straight from its
// table. Entries always appear in declaration order. Each binder returns
// true if the user picked an entry or toggled a flag this frame, in which
// case *current has been overwritten.
//
// A *current outside the declared values selects nothing; the first pick
// replaces it with a declared value.

// EnumListBox draws a scrolling list with one selectable row per entry.
// The list is tall enough for every entry unless WithHeightInItems is given.
//
// Usage:
//
//	if sweet.EnumListBox(tk, "Mode", &cfg.Mode, Modes, sweet.WithHeightInItems(4)) {
//	    apply(cfg)
//	}
func EnumListBox[E enums.Integer](tk Selector, label string, current *E, table enums.Table[E], opts ...Option) bool {
	o := applyOptions(opts)

	rows := GetOpt(o, OptHeightInItems)
	if rows <= 0 {
		rows = table.Count()
	}
	size := Vec2{Y: tk.TextLineHeightWithSpacing() * float32(rows)}

	lb := ListBox(tk, label, size)
	defer lb.End()
	if !lb.Opened() {
		return false
	}
	return selectEntries(tk, current, table, GetOpt(o, OptDefaultFocus))
}

// EnumCombo draws a combo box showing preview while collapsed and every
// entry once expanded. An empty preview shows the name of *current.
func EnumCombo[E enums.Integer](tk Selector, label, preview string, current *E, table enums.Table[E], opts ...Option) bool {
	o := applyOptions(opts)

	if preview == "" {
		if i, ok := table.Index(*current); ok {
			preview = table.At(i).Name
		}
	}

	combo := Combo(tk, label, preview, GetOpt(o, OptComboFlags))
	defer combo.End()
	if !combo.Opened() {
		return false
	}
	return selectEntries(tk, current, table, GetOpt(o, OptDefaultFocus))
}

func selectEntries[E enums.Integer](tk Widgets, current *E, table enums.Table[E], focus bool) bool {
	selectedIndex, ok := table.Index(*current)

	changed := false
	for i := range table.Count() {
		entry := table.At(i)
		selected := ok && i == selectedIndex
		if tk.Selectable(entry.Name, selected) {
			*current = entry.Value
			changed = true
		}
		if selected && focus {
			tk.SetItemDefaultFocus()
		}
	}
	return changed
}

// EnumRadio draws one radio button per entry, under label when it is not
// empty. Meant for small enumerations; nothing scrolls.
func EnumRadio[E enums.Integer](tk Widgets, label string, current *E, table enums.Table[E]) bool {
	if label != "" {
		tk.TextUnformatted(label)
	}

	changed := false
	for i := range table.Count() {
		entry := table.At(i)
		if tk.RadioButton(entry.Name, entry.Value == *current) {
			*current = entry.Value
			changed = true
		}
	}
	return changed
}

// EnumCheckboxFlags draws one checkbox per declared bit, under groupLabel
// when it is not empty. The zero "no flags" entry is skipped. Checking a box
// sets its bits in *flags and unchecking clears them; bits that are not
// declared are left as they were.
//
// Usage:
//
//	if sweet.EnumCheckboxFlags(tk, "Permissions", &perm, PermFlags) {
//	    save(perm)
//	}
func EnumCheckboxFlags[E enums.Integer](tk Widgets, groupLabel string, flags *E, table *enums.Flags[E]) bool {
	pattern := *flags

	if groupLabel != "" {
		tk.TextUnformatted(groupLabel)
	}

	changed := false
	for i := range table.Count() {
		bit := table.At(i)
		if bit.Value == 0 {
			continue
		}
		checked := pattern&bit.Value != 0
		if tk.Checkbox(bit.Name, &checked) {
			changed = true
			if checked {
				pattern |= bit.Value
			} else {
				pattern &^= bit.Value
			}
		}
	}

	*flags = pattern
	return changed
}
