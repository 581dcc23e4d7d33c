package sweet

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter materializes format strings before they reach the toolkit's
// plain-text primitives. The zero Formatter formats exactly like
// fmt.Sprintf. One made by NewFormatter formats with a message.Printer, so
// numbers use the separators of its language.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter creates a formatter for the given language.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Sprintf formats according to the formatter's language, if it has one.
func (f *Formatter) Sprintf(format string, args ...any) string {
	if f.printer == nil {
		return fmt.Sprintf(format, args...)
	}
	return f.printer.Sprintf(format, args...)
}

var defaultFormatter atomic.Pointer[Formatter]

func init() {
	defaultFormatter.Store(&Formatter{})
}

// SetLanguage makes the package-level text helpers format numbers for tag.
// Until it is called they format like fmt.Sprintf.
func SetLanguage(tag language.Tag) {
	defaultFormatter.Store(NewFormatter(tag))
}

// ResetLanguage restores fmt.Sprintf formatting for the package-level text
// helpers.
func ResetLanguage() {
	defaultFormatter.Store(&Formatter{})
}

func sprintf(format string, args ...any) string {
	return defaultFormatter.Load().Sprintf(format, args...)
}

// Text draws formatted text.
func Text(tk Widgets, format string, args ...any) {
	tk.TextUnformatted(sprintf(format, args...))
}

// TextColored draws formatted text in color.
func TextColored(tk TextToolkit, color Vec4, format string, args ...any) {
	c := PushStyleColor(tk, ColText, color)
	defer c.End()
	tk.TextUnformatted(sprintf(format, args...))
}

// TextDisabled draws formatted text in the style's disabled text color.
func TextDisabled(tk TextToolkit, format string, args ...any) {
	TextColored(tk, tk.StyleColorVec4(ColTextDisabled), format, args...)
}

// BulletText draws formatted text after a bullet.
func BulletText(tk Widgets, format string, args ...any) {
	tk.BulletText(sprintf(format, args...))
}

// LabelText draws formatted text with a label aligned like a widget's.
func LabelText(tk Widgets, label, format string, args ...any) {
	tk.LabelText(label, sprintf(format, args...))
}

// TextWrapped draws formatted text wrapped at the window edge.
func TextWrapped(tk Widgets, format string, args ...any) {
	tk.TextWrapped(sprintf(format, args...))
}

// SetTooltip shows formatted text in a tooltip while the last item is
// hovered. Nothing is formatted otherwise.
func SetTooltip(tk TextToolkit, format string, args ...any) {
	if !tk.IsItemHovered() {
		return
	}
	text := sprintf(format, args...)
	Tooltip(tk).Do(func() {
		tk.TextUnformatted(text)
	})
}
