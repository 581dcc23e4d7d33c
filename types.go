package sweet

import "fmt"

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Vec4 is a color with float components in the 0.0-1.0 range.
type Vec4 struct {
	X, Y, Z, W float32
}

func (v Vec4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}

// Color constants (RGBA packed as 0xAABBGGRR, the toolkit's packed layout)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorRed         uint32 = 0xFF0000FF
	ColorGreen       uint32 = 0xFF00FF00
	ColorBlue        uint32 = 0xFFFF0000
	ColorYellow      uint32 = 0xFF00FFFF
	ColorGray        uint32 = 0xFF808080
	ColorTransparent uint32 = 0x00000000
)

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// ColorVec4 converts a packed color to the float form taken by PushStyleColor.
func ColorVec4(c uint32) Vec4 {
	r, g, b, a := UnpackRGBA(c)
	return Vec4{
		X: float32(r) / 255,
		Y: float32(g) / 255,
		Z: float32(b) / 255,
		W: float32(a) / 255,
	}
}

// Font is an opaque font handle owned by the toolkit.
type Font uintptr

// Flag sets passed straight through to the toolkit's begin calls.
// Values follow Dear ImGui's bit layout.
type (
	WindowFlags   int
	ComboFlags    int
	PopupFlags    int
	TreeNodeFlags int
	TabBarFlags   int
	TabItemFlags  int
	TableFlags    int
	DragDropFlags int
)

const (
	WindowFlagsNone             WindowFlags = 0
	WindowFlagsNoTitleBar       WindowFlags = 1 << 0
	WindowFlagsNoResize         WindowFlags = 1 << 1
	WindowFlagsNoMove           WindowFlags = 1 << 2
	WindowFlagsAlwaysAutoResize WindowFlags = 1 << 6
	WindowFlagsMenuBar          WindowFlags = 1 << 10
)

const (
	ComboFlagsNone           ComboFlags = 0
	ComboFlagsPopupAlignLeft ComboFlags = 1 << 0
	ComboFlagsHeightSmall    ComboFlags = 1 << 1
	ComboFlagsHeightLarge    ComboFlags = 1 << 3
	ComboFlagsNoArrowButton  ComboFlags = 1 << 5
)

const (
	PopupFlagsMouseButtonLeft   PopupFlags = 0
	PopupFlagsMouseButtonRight  PopupFlags = 1
	PopupFlagsMouseButtonMiddle PopupFlags = 2
)

const (
	TreeNodeFlagsNone        TreeNodeFlags = 0
	TreeNodeFlagsSelected    TreeNodeFlags = 1 << 0
	TreeNodeFlagsFramed      TreeNodeFlags = 1 << 1
	TreeNodeFlagsDefaultOpen TreeNodeFlags = 1 << 5
	TreeNodeFlagsLeaf        TreeNodeFlags = 1 << 8
)

const (
	TableFlagsNone      TableFlags = 0
	TableFlagsResizable TableFlags = 1 << 0
	TableFlagsRowBg     TableFlags = 1 << 6
	TableFlagsBorders   TableFlags = 0xF << 7
)

// StyleColor identifies a color slot in the toolkit style.
type StyleColor int

const (
	ColText StyleColor = iota
	ColTextDisabled
	ColWindowBg
	ColChildBg
	ColPopupBg
	ColBorder
	ColBorderShadow
	ColFrameBg
	ColFrameBgHovered
	ColFrameBgActive
	ColTitleBg
	ColTitleBgActive
	ColTitleBgCollapsed
	ColMenuBarBg
	ColScrollbarBg
	ColScrollbarGrab
	ColScrollbarGrabHovered
	ColScrollbarGrabActive
	ColCheckMark
	ColSliderGrab
	ColSliderGrabActive
	ColButton
	ColButtonHovered
	ColButtonActive
	ColHeader
	ColHeaderHovered
	ColHeaderActive
)

// StyleVar identifies a scalar or Vec2 style variable.
type StyleVar int

const (
	StyleVarAlpha StyleVar = iota
	StyleVarDisabledAlpha
	StyleVarWindowPadding
	StyleVarWindowRounding
	StyleVarWindowBorderSize
	StyleVarWindowMinSize
	StyleVarWindowTitleAlign
	StyleVarChildRounding
	StyleVarChildBorderSize
	StyleVarPopupRounding
	StyleVarPopupBorderSize
	StyleVarFramePadding
	StyleVarFrameRounding
	StyleVarFrameBorderSize
	StyleVarItemSpacing
	StyleVarItemInnerSpacing
	StyleVarIndentSpacing
)
