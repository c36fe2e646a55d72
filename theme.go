package glimgui

import (
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"
)

// Theme names accepted by ThemeByName.
const (
	ThemeCorporateGray = "corporate-gray"
	ThemeDefault       = "default"
)

// StyleTarget receives theme colors. imgui.Style satisfies it.
type StyleTarget interface {
	SetColor(id imgui.StyleColorID, value imgui.Vec4)
}

// StyleVarStack receives theme sizes. Sizes are pushed at the start of
// each frame and popped before rendering.
type StyleVarStack interface {
	PushStyleVarFloat(id imgui.StyleVarID, value float32)
	PushStyleVarVec2(id imgui.StyleVarID, value imgui.Vec2)
	PopStyleVar(count int)
}

// StyleFloat is a scalar style size.
type StyleFloat struct {
	ID    imgui.StyleVarID
	Value float32
}

// StyleVec2 is a two-component style size.
type StyleVec2 struct {
	ID    imgui.StyleVarID
	Value imgui.Vec2
}

// Theme is a static set of style colors and sizes.
type Theme struct {
	Name   string
	Colors map[imgui.StyleColorID]imgui.Vec4
	Floats []StyleFloat
	Vec2s  []StyleVec2
}

// ThemeByName returns a named theme. An empty name selects the corporate
// gray theme.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", ThemeCorporateGray:
		return CorporateGray(), nil
	case ThemeDefault:
		return Theme{Name: ThemeDefault}, nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

// Apply sets every theme color on the style.
func (t Theme) Apply(style StyleTarget) {
	for id, c := range t.Colors {
		style.SetColor(id, c)
	}
}

// Push pushes every theme size and returns how many entries were pushed.
func (t Theme) Push(stack StyleVarStack) int {
	for _, v := range t.Floats {
		stack.PushStyleVarFloat(v.ID, v.Value)
	}
	for _, v := range t.Vec2s {
		stack.PushStyleVarVec2(v.ID, v.Value)
	}
	return len(t.Floats) + len(t.Vec2s)
}

func rgba(r, g, b, a float32) imgui.Vec4 {
	return imgui.Vec4{X: r, Y: g, Z: b, W: a}
}

// CorporateGray is a flat gray theme with a slight 3D look on frames.
func CorporateGray() Theme {
	// 0 for a flat appearance, 1 for framed widgets.
	const is3D = 1

	return Theme{
		Name: ThemeCorporateGray,
		Colors: map[imgui.StyleColorID]imgui.Vec4{
			imgui.StyleColorText:                  rgba(1.00, 1.00, 1.00, 1.00),
			imgui.StyleColorTextDisabled:          rgba(0.40, 0.40, 0.40, 1.00),
			imgui.StyleColorChildBg:               rgba(0.25, 0.25, 0.25, 1.00),
			imgui.StyleColorWindowBg:              rgba(0.25, 0.25, 0.25, 1.00),
			imgui.StyleColorPopupBg:               rgba(0.25, 0.25, 0.25, 1.00),
			imgui.StyleColorBorder:                rgba(0.12, 0.12, 0.12, 0.71),
			imgui.StyleColorBorderShadow:          rgba(1.00, 1.00, 1.00, 0.06),
			imgui.StyleColorFrameBg:               rgba(0.42, 0.42, 0.42, 0.54),
			imgui.StyleColorFrameBgHovered:        rgba(0.42, 0.42, 0.42, 0.40),
			imgui.StyleColorFrameBgActive:         rgba(0.56, 0.56, 0.56, 0.67),
			imgui.StyleColorTitleBg:               rgba(0.19, 0.19, 0.19, 1.00),
			imgui.StyleColorTitleBgActive:         rgba(0.22, 0.22, 0.22, 1.00),
			imgui.StyleColorTitleBgCollapsed:      rgba(0.17, 0.17, 0.17, 0.90),
			imgui.StyleColorMenuBarBg:             rgba(0.335, 0.335, 0.335, 1.000),
			imgui.StyleColorScrollbarBg:           rgba(0.24, 0.24, 0.24, 0.53),
			imgui.StyleColorScrollbarGrab:         rgba(0.41, 0.41, 0.41, 1.00),
			imgui.StyleColorScrollbarGrabHovered:  rgba(0.52, 0.52, 0.52, 1.00),
			imgui.StyleColorScrollbarGrabActive:   rgba(0.76, 0.76, 0.76, 1.00),
			imgui.StyleColorCheckMark:             rgba(0.65, 0.65, 0.65, 1.00),
			imgui.StyleColorSliderGrab:            rgba(0.52, 0.52, 0.52, 1.00),
			imgui.StyleColorSliderGrabActive:      rgba(0.64, 0.64, 0.64, 1.00),
			imgui.StyleColorButton:                rgba(0.54, 0.54, 0.54, 0.35),
			imgui.StyleColorButtonHovered:         rgba(0.52, 0.52, 0.52, 0.59),
			imgui.StyleColorButtonActive:          rgba(0.76, 0.76, 0.76, 1.00),
			imgui.StyleColorHeader:                rgba(0.38, 0.38, 0.38, 1.00),
			imgui.StyleColorHeaderHovered:         rgba(0.47, 0.47, 0.47, 1.00),
			imgui.StyleColorHeaderActive:          rgba(0.76, 0.76, 0.76, 0.77),
			imgui.StyleColorSeparator:             rgba(0.700, 0.671, 0.600, 0.290),
			imgui.StyleColorSeparatorHovered:      rgba(0.700, 0.671, 0.600, 0.290),
			imgui.StyleColorSeparatorActive:       rgba(0.702, 0.671, 0.600, 0.674),
			imgui.StyleColorResizeGrip:            rgba(0.26, 0.59, 0.98, 0.25),
			imgui.StyleColorResizeGripHovered:     rgba(0.26, 0.59, 0.98, 0.67),
			imgui.StyleColorResizeGripActive:      rgba(0.26, 0.59, 0.98, 0.95),
			imgui.StyleColorPlotLines:             rgba(0.61, 0.61, 0.61, 1.00),
			imgui.StyleColorPlotLinesHovered:      rgba(1.00, 0.43, 0.35, 1.00),
			imgui.StyleColorPlotHistogram:         rgba(0.90, 0.70, 0.00, 1.00),
			imgui.StyleColorPlotHistogramHovered:  rgba(1.00, 0.60, 0.00, 1.00),
			imgui.StyleColorTextSelectedBg:        rgba(0.73, 0.73, 0.73, 0.35),
			imgui.StyleColorModalWindowDarkening:  rgba(0.80, 0.80, 0.80, 0.35),
			imgui.StyleColorDragDropTarget:        rgba(1.00, 1.00, 0.00, 0.90),
			imgui.StyleColorNavHighlight:          rgba(0.26, 0.59, 0.98, 1.00),
			imgui.StyleColorNavWindowingHighlight: rgba(1.00, 1.00, 1.00, 0.70),
			imgui.StyleColorNavWindowingDarkening: rgba(0.80, 0.80, 0.80, 0.20),
		},
		Floats: []StyleFloat{
			{imgui.StyleVarPopupRounding, 3},
			{imgui.StyleVarScrollbarSize, 18},
			{imgui.StyleVarWindowBorderSize, 1},
			{imgui.StyleVarChildBorderSize, 1},
			{imgui.StyleVarPopupBorderSize, 1},
			{imgui.StyleVarFrameBorderSize, is3D},
			{imgui.StyleVarWindowRounding, 3},
			{imgui.StyleVarChildRounding, 3},
			{imgui.StyleVarFrameRounding, 3},
			{imgui.StyleVarScrollbarRounding, 2},
			{imgui.StyleVarGrabRounding, 3},
		},
		Vec2s: []StyleVec2{
			{imgui.StyleVarWindowPadding, imgui.Vec2{X: 4, Y: 4}},
			{imgui.StyleVarFramePadding, imgui.Vec2{X: 6, Y: 4}},
			{imgui.StyleVarItemSpacing, imgui.Vec2{X: 6, Y: 2}},
		},
	}
}
