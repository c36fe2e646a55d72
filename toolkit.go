package glimgui

import "github.com/inkyblackness/imgui-go/v4"

// Toolkit is the immediate-mode GUI library driven by the backend.
type Toolkit interface {
	StyleVarStack
	FontLoader

	// CreateContext creates the GUI context and makes it current.
	CreateContext(iniFilename string) imgui.IO
	DestroyContext()

	// Style returns the current context's style.
	Style() StyleTarget

	NewFrame()
	// Render finalizes the frame and returns its draw data.
	Render() imgui.DrawData
}

// ImGuiToolkit binds Dear ImGui.
type ImGuiToolkit struct {
	context *imgui.Context
}

// NewImGuiToolkit returns a Toolkit backed by Dear ImGui.
func NewImGuiToolkit() *ImGuiToolkit {
	return &ImGuiToolkit{}
}

func (t *ImGuiToolkit) CreateContext(iniFilename string) imgui.IO {
	t.context = imgui.CreateContext(nil)
	io := imgui.CurrentIO()
	io.SetIniFilename(iniFilename)
	return io
}

func (t *ImGuiToolkit) DestroyContext() {
	if t.context == nil {
		return
	}
	t.context.Destroy()
	t.context = nil
}

func (t *ImGuiToolkit) Style() StyleTarget {
	return imgui.CurrentStyle()
}

func (t *ImGuiToolkit) AddFontFromFileTTF(path string, sizePixels float32) bool {
	return imgui.CurrentIO().Fonts().AddFontFromFileTTF(path, sizePixels) != imgui.DefaultFont
}

func (t *ImGuiToolkit) PushStyleVarFloat(id imgui.StyleVarID, value float32) {
	imgui.PushStyleVarFloat(id, value)
}

func (t *ImGuiToolkit) PushStyleVarVec2(id imgui.StyleVarID, value imgui.Vec2) {
	imgui.PushStyleVarVec2(id, value)
}

func (t *ImGuiToolkit) PopStyleVar(count int) {
	if count > 0 {
		imgui.PopStyleVarV(count)
	}
}

func (t *ImGuiToolkit) NewFrame() {
	imgui.NewFrame()
}

func (t *ImGuiToolkit) Render() imgui.DrawData {
	imgui.Render()
	return imgui.RenderedDrawData()
}
