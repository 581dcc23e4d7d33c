package sweet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/sweet"
	"github.com/go-theft-auto/sweet/enums"
	"github.com/go-theft-auto/sweet/sweettest"
)

type letter int

const (
	letterA letter = iota
	letterB
	letterC
	letterD
	letterE
)

var letters = enums.New(
	enums.E(letterA, "A"),
	enums.E(letterB, "B"),
	enums.E(letterC, "C"),
)

var fiveLetters = enums.New(
	enums.E(letterA, "A"),
	enums.E(letterB, "B"),
	enums.E(letterC, "C"),
	enums.E(letterD, "D"),
	enums.E(letterE, "E"),
)

type perm uint8

const (
	permNone  perm = 0
	permRead  perm = 1 << 0
	permWrite perm = 1 << 1
	permExec  perm = 1 << 2
)

var perms = enums.NewFlags(
	enums.E(permNone, "None"),
	enums.E(permRead, "Read"),
	enums.E(permWrite, "Write"),
	enums.E(permExec, "Exec"),
)

func TestEnumListBox_RendersDeclaredOrder(t *testing.T) {
	rec := sweettest.New()
	current := letterB

	changed := sweet.EnumListBox(rec, "Letter", &current, letters)

	assert.False(t, changed)
	assert.Equal(t, letterB, current)
	require.NoError(t, rec.Err())
	sweettest.Golden(t, "enum_list_box", rec.Trace())
}

func TestEnumListBox_SelectOverwritesValue(t *testing.T) {
	rec := sweettest.New()
	current := letterB

	rec.Click("C")
	changed := sweet.EnumListBox(rec, "Letter", &current, letters)

	assert.True(t, changed)
	assert.Equal(t, letterC, current)
	assert.NoError(t, rec.Err())
}

func TestEnumListBox_ReselectReportsChange(t *testing.T) {
	rec := sweettest.New()
	current := letterB

	rec.Click("B")
	changed := sweet.EnumListBox(rec, "Letter", &current, letters)

	assert.True(t, changed)
	assert.Equal(t, letterB, current)
}

func TestEnumListBox_HeightInItems(t *testing.T) {
	rec := sweettest.New()
	current := letterA

	sweet.EnumListBox(rec, "Letter", &current, fiveLetters, sweet.WithHeightInItems(2))

	calls := rec.Calls()
	require.Equal(t, "BeginListBox", calls[0].Op)
	assert.Equal(t, sweet.Vec2{X: 0, Y: 2 * sweettest.DefaultLineHeight}, calls[0].Args[1])
	assert.Equal(t, 5, rec.Count("Selectable"))
}

func TestEnumListBox_ClosedRegionDrawsNothing(t *testing.T) {
	rec := sweettest.New()
	rec.Close("Letter")
	current := letterA

	rec.Click("B")
	changed := sweet.EnumListBox(rec, "Letter", &current, letters)

	assert.False(t, changed)
	assert.Equal(t, letterA, current)
	assert.Equal(t, []string{"BeginListBox"}, rec.Ops())
	assert.NoError(t, rec.Err())
}

func TestEnumListBox_WithoutDefaultFocus(t *testing.T) {
	rec := sweettest.New()
	current := letterA

	sweet.EnumListBox(rec, "Letter", &current, letters, sweet.WithoutDefaultFocus())

	assert.Zero(t, rec.Count("SetItemDefaultFocus"))
}

func TestEnumSelectors_UnknownValueSelectsNothing(t *testing.T) {
	rec := sweettest.New()
	current := letter(42)

	changed := sweet.EnumListBox(rec, "Letter", &current, letters)
	assert.False(t, changed)
	assert.Zero(t, rec.Count("SetItemDefaultFocus"))
	for _, c := range rec.Calls() {
		if c.Op == "Selectable" {
			assert.Equal(t, false, c.Args[1], c.String())
		}
	}

	rec.Reset()
	rec.Click("A")
	changed = sweet.EnumListBox(rec, "Letter", &current, letters)
	assert.True(t, changed)
	assert.Equal(t, letterA, current)
}

func TestEnumSelectors_NoInteractionIsIdempotent(t *testing.T) {
	rec := sweettest.New()
	current := letterC

	for range 2 {
		rec.Reset()
		assert.False(t, sweet.EnumListBox(rec, "List", &current, letters))
		assert.False(t, sweet.EnumCombo(rec, "Combo", "", &current, letters))
		assert.False(t, sweet.EnumRadio(rec, "Radio", &current, letters))
		assert.Equal(t, letterC, current)
		assert.NoError(t, rec.Err())
	}
}

func TestEnumCombo_ListsEntriesWhenOpen(t *testing.T) {
	rec := sweettest.New()
	current := letterB

	rec.Click("C")
	changed := sweet.EnumCombo(rec, "Letter", "pick one", &current, letters, sweet.WithComboFlags(sweet.ComboFlagsHeightSmall))

	assert.True(t, changed)
	assert.Equal(t, letterC, current)
	assert.Equal(t, []string{
		`BeginCombo("Letter", "pick one", 2)`,
		`Selectable("A", false)`,
		`Selectable("B", true)`,
		`SetItemDefaultFocus()`,
		`Selectable("C", false)`,
		`EndCombo()`,
	}, rec.Trace())
}

func TestEnumCombo_EmptyPreviewShowsCurrentName(t *testing.T) {
	rec := sweettest.New()
	rec.Close("Letter")
	current := letterB

	changed := sweet.EnumCombo(rec, "Letter", "", &current, letters)

	assert.False(t, changed)
	assert.Equal(t, []string{`BeginCombo("Letter", "B", 0)`}, rec.Trace())
	assert.NoError(t, rec.Err())
}

func TestEnumRadio_OneButtonPerEntry(t *testing.T) {
	rec := sweettest.New()
	current := letterB

	rec.Click("C")
	changed := sweet.EnumRadio(rec, "Letter", &current, letters)

	assert.True(t, changed)
	assert.Equal(t, letterC, current)
	assert.Equal(t, []string{
		`TextUnformatted("Letter")`,
		`RadioButton("A", false)`,
		`RadioButton("B", true)`,
		`RadioButton("C", false)`,
	}, rec.Trace())
}

func TestEnumRadio_LaterButtonsSeeNewValue(t *testing.T) {
	rec := sweettest.New()
	current := letterB

	rec.Click("A")
	assert.True(t, sweet.EnumRadio(rec, "", &current, letters))

	assert.Equal(t, letterA, current)
	assert.Equal(t, []string{
		`RadioButton("A", false)`,
		`RadioButton("B", false)`,
		`RadioButton("C", false)`,
	}, rec.Trace())
}

func TestEnumRadio_EmptyLabelHasNoHeading(t *testing.T) {
	rec := sweettest.New()
	current := letterA

	sweet.EnumRadio(rec, "", &current, letters)

	assert.Zero(t, rec.Count("TextUnformatted"))
	assert.Equal(t, 3, rec.Count("RadioButton"))
}

func TestEnumCheckboxFlags_SkipsZeroEntry(t *testing.T) {
	rec := sweettest.New()
	current := permRead | permWrite

	changed := sweet.EnumCheckboxFlags(rec, "Permissions", &current, perms)

	assert.False(t, changed)
	assert.Equal(t, permRead|permWrite, current)
	assert.Equal(t, []string{
		`TextUnformatted("Permissions")`,
		`Checkbox("Read", true)`,
		`Checkbox("Write", true)`,
		`Checkbox("Exec", false)`,
	}, rec.Trace())
}

func TestEnumCheckboxFlags_Toggle(t *testing.T) {
	rec := sweettest.New()
	current := permRead | permWrite

	rec.Click("Exec")
	assert.True(t, sweet.EnumCheckboxFlags(rec, "", &current, perms))
	assert.Equal(t, perm(7), current)

	rec.Reset()
	rec.Click("Write")
	assert.True(t, sweet.EnumCheckboxFlags(rec, "", &current, perms))
	assert.Equal(t, perm(5), current)

	assert.Zero(t, rec.Count("TextUnformatted"))
}

func TestEnumCheckboxFlags_PreservesUndeclaredBits(t *testing.T) {
	rec := sweettest.New()

	for _, v := range []perm{0, 1, 3, 0x80, 0xFF} {
		rec.Reset()
		current := v
		assert.False(t, sweet.EnumCheckboxFlags(rec, "", &current, perms))
		assert.Equal(t, v, current)
	}
}

func TestEnumCheckboxFlags_WithoutZeroEntry(t *testing.T) {
	noZero := enums.NewFlags(
		enums.E(permRead, "Read"),
		enums.E(permWrite, "Write"),
	)
	rec := sweettest.New()
	current := permNone

	rec.Click("Read")
	changed := sweet.EnumCheckboxFlags(rec, "", &current, noZero)

	assert.True(t, changed)
	assert.Equal(t, permRead, current)
	assert.Equal(t, 2, rec.Count("Checkbox"))
}

func TestEnumWidgets_InsideGuardedWindow(t *testing.T) {
	rec := sweettest.New()
	mode := letterA
	access := permRead

	rec.Click("B", "Exec")
	sweet.Window(rec, "Settings", nil, 0).Do(func() {
		sweet.ItemWidth(rec, 120).Do(func() {
			sweet.EnumCombo(rec, "Mode", "", &mode, letters)
		})
		sweet.EnumCheckboxFlags(rec, "Access", &access, perms)
	})

	require.NoError(t, rec.Err())
	assert.Equal(t, letterB, mode)
	assert.Equal(t, permRead|permExec, access)
}
