package sweet_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/sweet"
	"github.com/go-theft-auto/sweet/sweettest"
)

func newChecked(t *testing.T) (*sweet.Checked, *sweettest.Recorder, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	rec := sweettest.New()
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return sweet.NewChecked(rec, sweet.WithLogger(logger)), rec, &buf
}

func TestChecked_BalancedFrame(t *testing.T) {
	tk, rec, buf := newChecked(t)
	mode := letterA

	sweet.Window(tk, "Main", nil, 0).Do(func() {
		sweet.StyleColors(tk,
			sweet.ColorPush{Col: sweet.ColText, Value: sweet.Vec4{W: 1}},
			sweet.ColorPush{Col: sweet.ColBorder, Value: sweet.Vec4{W: 1}},
		).Do(func() {
			assert.Equal(t, 3, tk.Depth())
			sweet.EnumListBox(tk, "Mode", &mode, letters)
		})
		sweet.TextColored(tk, sweet.Vec4{X: 1, W: 1}, "done")
	})

	assert.NoError(t, tk.EndFrame())
	assert.NoError(t, rec.Err())
	assert.Zero(t, tk.Depth())
	assert.Empty(t, buf.String())
}

func TestChecked_ClosedBeginIsNotTracked(t *testing.T) {
	tk, rec, _ := newChecked(t)
	rec.Close("Hidden")

	w := sweet.Window(tk, "Hidden", nil, 0)
	assert.False(t, w.Opened())
	assert.Zero(t, tk.Depth())
	w.End()

	assert.NoError(t, tk.EndFrame())
}

func TestChecked_MismatchedEnd(t *testing.T) {
	tk, _, buf := newChecked(t)

	tk.Begin("Main", nil, 0)
	tk.EndChild()

	err := tk.EndFrame()
	require.ErrorIs(t, err, sweet.ErrMismatchedEnd)
	assert.Contains(t, err.Error(), "Window(Main)")
	assert.Contains(t, buf.String(), "bracket mismatch")
}

func TestChecked_EndWithNothingOpen(t *testing.T) {
	tk, _, _ := newChecked(t)

	tk.PopStyleVar(1)

	assert.ErrorIs(t, tk.EndFrame(), sweet.ErrMismatchedEnd)
}

func TestChecked_UnbalancedFrame(t *testing.T) {
	tk, _, buf := newChecked(t)

	tk.BeginGroup()
	tk.PushID("row")

	assert.Equal(t, []string{"Group", "ID(row)"}, tk.Open())
	err := tk.EndFrame()
	require.ErrorIs(t, err, sweet.ErrUnbalanced)
	assert.Contains(t, err.Error(), "Group > ID(row)")
	assert.Contains(t, buf.String(), "regions left open")

	// The next frame starts clean.
	assert.Zero(t, tk.Depth())
	assert.NoError(t, tk.EndFrame())
}

func TestChecked_IndentWidthMismatch(t *testing.T) {
	tk, _, _ := newChecked(t)

	tk.Indent(10)
	tk.Unindent(5)

	assert.ErrorIs(t, tk.EndFrame(), sweet.ErrMismatchedEnd)
}

func TestChecked_ForwardsToToolkit(t *testing.T) {
	tk, rec, _ := newChecked(t)

	sweet.Popup(tk, "menu", 0).Do(func() {
		sweet.PushIDInt(tk, 3).Do(func() {
			tk.TextUnformatted("item")
		})
	})

	assert.Equal(t, []string{
		`BeginPopup("menu", 0)`,
		`PushIDInt(3)`,
		`TextUnformatted("item")`,
		`PopID()`,
		`EndPopup()`,
	}, rec.Trace())
	assert.NoError(t, tk.EndFrame())
}
