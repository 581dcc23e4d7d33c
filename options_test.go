package sweet

import (
	"strconv"
	"testing"
)

func TestGetOpt_Defaults(t *testing.T) {
	o := applyOptions(nil)

	if got := GetOpt(o, OptHeightInItems); got != 0 {
		t.Errorf("OptHeightInItems default = %d, want 0", got)
	}
	if got := GetOpt(o, OptDefaultFocus); !got {
		t.Error("OptDefaultFocus should default to true")
	}
	if HasOpt(o, OptComboFlags) {
		t.Error("OptComboFlags should not be set")
	}
}

func TestWithOpt_OverridesDefault(t *testing.T) {
	o := applyOptions([]Option{WithHeightInItems(4), WithComboFlags(ComboFlagsNoArrowButton), WithoutDefaultFocus()})

	if got := GetOpt(o, OptHeightInItems); got != 4 {
		t.Errorf("OptHeightInItems = %d, want 4", got)
	}
	if got := GetOpt(o, OptComboFlags); got != ComboFlagsNoArrowButton {
		t.Errorf("OptComboFlags = %d, want %d", got, ComboFlagsNoArrowButton)
	}
	if GetOpt(o, OptDefaultFocus) {
		t.Error("OptDefaultFocus should be false")
	}
}

func TestGetOpt_WrongTypeFallsBackToDefault(t *testing.T) {
	clash := NewOptKey("heightInItems", "tall")
	o := applyOptions([]Option{WithHeightInItems(3)})

	if got := GetOpt(o, clash); got != "tall" {
		t.Errorf("GetOpt with mismatched type = %q, want default", got)
	}
}

func TestApplyAndGet(t *testing.T) {
	if got := ApplyAndGet([]Option{WithHeightInItems(2)}, OptHeightInItems); got != 2 {
		t.Errorf("ApplyAndGet = %d, want 2", got)
	}
}

func TestHashID_Stable(t *testing.T) {
	if HashID("frame") != HashID("frame") {
		t.Error("HashID should be stable for the same label")
	}
	if HashID("a") == HashID("b") {
		t.Error("HashID should differ for different labels")
	}
	if HashIDInt("rows", 1) == HashIDInt("rows", 2) {
		t.Error("HashIDInt should differ for different indices")
	}
}

func TestHashIDInt_UsesWholeIndex(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("int is 32 bits")
	}
	shift := 32
	if HashIDInt("rows", 1) == HashIDInt("rows", 1+1<<shift) {
		t.Error("HashIDInt should differ for indices that differ above bit 31")
	}
}

func TestColorVec4(t *testing.T) {
	got := ColorVec4(ColorRed)
	want := Vec4{X: 1, Y: 0, Z: 0, W: 1}
	if got != want {
		t.Errorf("ColorVec4 = %v, want %v", got, want)
	}
}
