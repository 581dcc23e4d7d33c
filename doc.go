/*
Package sweet adds scoped bracket guards and reflective enum widgets on top
of an immediate-mode GUI toolkit in the style of Dear ImGui.

# Overview

Immediate-mode toolkits pair every Begin with an End and every Push with a
Pop. Forgetting one, or calling End after a Begin that returned false,
corrupts the toolkit's internal stack. This package wraps each pair in a
guard value that remembers whether the region opened and closes it exactly
once.

The toolkit itself is an interface (Toolkit), split by concern so helpers
only ask for what they use: Windows, Menus, Popups, Containers, DragDrop,
Stacks and Widgets. Backends implement Toolkit; package sweettest provides
a recording implementation for tests.

# Guards

Conditional guards wrap a Begin that returns bool. Their contents run only
when the region opened:

	sweet.Window(tk, "Inventory", &open, 0).Do(func() {
	    sweet.Text(tk, "%d items", len(items))
	})

Do defers End, so the region is closed on early return and on panic. For
code that needs the guard across statements, call End yourself:

	w := sweet.Window(tk, "Inventory", &open, 0)
	defer w.End()
	if !w.Opened() {
	    return
	}

End is idempotent and only forwards to the toolkit when the Begin returned
true. Unconditional guards (Group, Tooltip, Disabled and the stack pushes)
always close:

	sweet.StyleColors(tk,
	    sweet.ColorPush{Col: sweet.ColText, Value: red},
	    sweet.ColorPush{Col: sweet.ColBorder, Value: red},
	).Do(func() {
	    tk.TextUnformatted("alert")
	})

Multi-value guards pop everything they pushed with a single call. Guards
hold a noCopy marker; go vet reports copies.

# Enum widgets

EnumListBox, EnumCombo, EnumRadio and EnumCheckboxFlags bind a pointer to
an integer-backed enum and draw one item per declared entry. Entries come
from an enums.Descriptor or enums.Flags:

	var Modes = enums.New(
	    enums.E(ModeWalk, "Walk"),
	    enums.E(ModeDrive, "Drive"),
	)

	if sweet.EnumCombo(tk, "Mode", "", &mode, Modes) {
	    applyMode(mode)
	}

Each binder returns true when the user changed the value. EnumCheckboxFlags
accepts only an enums.Flags table, so non bit-flag enumerations are
rejected at compile time.

# Text

Text, TextColored, TextDisabled, BulletText, LabelText, TextWrapped and
SetTooltip format their arguments like fmt.Sprintf before handing the
result to the toolkit. SetLanguage switches them to a golang.org/x/text
message printer, which groups digits for the chosen locale; ResetLanguage
switches back.

# Checking

Checked wraps a Toolkit and records every begin and push it forwards.
EndFrame reports the first mismatched end of the frame or the regions left
open:

	tk := sweet.NewChecked(backend)
	draw(tk)
	if err := tk.EndFrame(); err != nil {
	    return err
	}

SetVerbose(true) logs every tracked begin and end at debug level.
*/
package sweet
