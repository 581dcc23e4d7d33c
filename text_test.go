package sweet_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/go-theft-auto/sweet"
	"github.com/go-theft-auto/sweet/sweettest"
)

func TestText_FormatsBeforeForwarding(t *testing.T) {
	rec := sweettest.New()

	sweet.Text(rec, "%s has %d items", "inventory", 1234)
	sweet.BulletText(rec, "level %d", 3)
	sweet.LabelText(rec, "Speed", "%.1f km/h", 12.5)
	sweet.TextWrapped(rec, "%s", "long line")

	assert.Equal(t, []string{
		`TextUnformatted("inventory has 1234 items")`,
		`BulletText("level 3")`,
		`LabelText("Speed", "12.5 km/h")`,
		`TextWrapped("long line")`,
	}, rec.Trace())
}

func TestText_DefaultMatchesSprintf(t *testing.T) {
	rec := sweettest.New()
	const format = "Year %d, port %d, id %v, ratio %.2f"
	args := []any{2026, 8080, 123456, 1234.5}

	sweet.Text(rec, format, args...)

	assert.Equal(t, []string{fmt.Sprintf("TextUnformatted(%q)", fmt.Sprintf(format, args...))}, rec.Trace())
	assert.Equal(t, fmt.Sprintf(format, args...), (&sweet.Formatter{}).Sprintf(format, args...))
}

func TestTextColored_BracketsStyleColor(t *testing.T) {
	rec := sweettest.New()

	sweet.TextColored(rec, sweet.Vec4{X: 1, W: 1}, "warn: %s", "low fuel")

	assert.Equal(t, []string{
		`PushStyleColor(0, (1, 0, 0, 1))`,
		`TextUnformatted("warn: low fuel")`,
		`PopStyleColor(1)`,
	}, rec.Trace())
	assert.NoError(t, rec.Err())
}

func TestTextDisabled_UsesDisabledColor(t *testing.T) {
	gray := sweet.Vec4{X: 0.25, Y: 0.25, Z: 0.25, W: 1}
	rec := sweettest.New(sweettest.WithStyleColor(sweet.ColTextDisabled, gray))

	sweet.TextDisabled(rec, "n/a")

	calls := rec.Calls()
	assert.Equal(t, "PushStyleColor", calls[0].Op)
	assert.Equal(t, []any{sweet.ColText, gray}, calls[0].Args)
	assert.NoError(t, rec.Err())
}

func TestSetTooltip_OnlyWhenHovered(t *testing.T) {
	rec := sweettest.New()

	sweet.SetTooltip(rec, "id %d", 9)
	assert.Empty(t, rec.Calls())

	rec.SetHovered(true)
	sweet.SetTooltip(rec, "id %d", 9)
	assert.Equal(t, []string{
		`BeginTooltip()`,
		`TextUnformatted("id 9")`,
		`EndTooltip()`,
	}, rec.Trace())
	assert.NoError(t, rec.Err())
}

func TestFormatter_Language(t *testing.T) {
	assert.Equal(t, "1.234", sweet.NewFormatter(language.German).Sprintf("%d", 1234))
	assert.Equal(t, "1,234", sweet.NewFormatter(language.English).Sprintf("%d", 1234))
}

func TestSetLanguage(t *testing.T) {
	t.Cleanup(sweet.ResetLanguage)
	rec := sweettest.New()

	sweet.SetLanguage(language.German)
	sweet.Text(rec, "%d", 1234567)
	sweet.ResetLanguage()
	sweet.Text(rec, "%d", 1234567)

	assert.Equal(t, []string{
		`TextUnformatted("1.234.567")`,
		`TextUnformatted("1234567")`,
	}, rec.Trace())
}
