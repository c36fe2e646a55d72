package opengl

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

// Errors from platform and renderer setup.
var (
	ErrGLFWInit     = errors.New("glimgui: failed to initialize GLFW")
	ErrWindowCreate = errors.New("glimgui: failed to create window")
	ErrLoaderInit   = errors.New("glimgui: failed to initialize OpenGL loader")
)

// GL context version requested from GLFW. Matches the bound gl package and
// GLSLVersion.
const (
	contextVersionMajor = 3
	contextVersionMinor = 2
)

// WindowConfig describes the window created by NewGLFW.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

// GLFW feeds window and input state from GLFW into a GUI context.
type GLFW struct {
	io     imgui.IO
	window *glfw.Window

	time             float64
	mouseJustPressed [3]bool
}

// NewGLFW initializes GLFW, creates a window with a current OpenGL
// context and installs the input callbacks. It must be called on the main
// thread, which the caller keeps locked for the window's lifetime.
func NewGLFW(io imgui.IO, cfg WindowConfig) (*GLFW, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGLFWInit, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, contextVersionMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, contextVersionMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrWindowCreate, err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	p := &GLFW{
		io:     io,
		window: window,
	}
	p.setKeyMapping()
	p.installCallbacks()
	io.SetClipboard(clipboard{window: window})

	return p, nil
}

// Window returns the underlying GLFW window.
func (p *GLFW) Window() *glfw.Window {
	return p.window
}

// Dispose destroys the window and terminates GLFW.
func (p *GLFW) Dispose() {
	if p.window != nil {
		p.window.Destroy()
		p.window = nil
	}
	glfw.Terminate()
}

// ShouldClose reports whether the user asked to close the window.
func (p *GLFW) ShouldClose() bool {
	return p.window.ShouldClose()
}

// SetShouldClose sets or clears the window's close request.
func (p *GLFW) SetShouldClose(value bool) {
	p.window.SetShouldClose(value)
}

// ProcessEvents polls pending OS events. Input reaches the GUI through the
// installed callbacks.
func (p *GLFW) ProcessEvents() {
	glfw.PollEvents()
}

// SetTitle changes the window title.
func (p *GLFW) SetTitle(title string) {
	p.window.SetTitle(title)
}

// DisplaySize returns the window size in screen coordinates.
func (p *GLFW) DisplaySize() [2]float32 {
	w, h := p.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

// FramebufferSize returns the framebuffer size in pixels.
func (p *GLFW) FramebufferSize() [2]float32 {
	w, h := p.window.GetFramebufferSize()
	return [2]float32{float32(w), float32(h)}
}

// NewFrame passes display size, elapsed time and mouse state to the GUI.
func (p *GLFW) NewFrame() {
	displaySize := p.DisplaySize()
	p.io.SetDisplaySize(imgui.Vec2{X: displaySize[0], Y: displaySize[1]})

	// The first frame keeps the GUI's default delta time.
	currentTime := glfw.GetTime()
	if p.time > 0 {
		p.io.SetDeltaTime(float32(currentTime - p.time))
	}
	p.time = currentTime

	if p.window.GetAttrib(glfw.Focused) != 0 {
		x, y := p.window.GetCursorPos()
		p.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	} else {
		p.io.SetMousePosition(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
	}

	for i := 0; i < len(p.mouseJustPressed); i++ {
		down := p.mouseJustPressed[i] || p.window.GetMouseButton(glfwButtonIDByIndex[i]) == glfw.Press
		p.io.SetMouseButtonDown(i, down)
		p.mouseJustPressed[i] = false
	}
}

// MakeContextCurrent makes the window's OpenGL context current.
func (p *GLFW) MakeContextCurrent() {
	p.window.MakeContextCurrent()
}

// PostRender presents the rendered frame.
func (p *GLFW) PostRender() {
	p.window.MakeContextCurrent()
	p.window.SwapBuffers()
}

func (p *GLFW) installCallbacks() {
	p.window.SetKeyCallback(p.keyCallback)
	p.window.SetCharCallback(p.charCallback)
	p.window.SetMouseButtonCallback(p.mouseButtonCallback)
	p.window.SetScrollCallback(p.scrollCallback)
}

func (p *GLFW) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		p.io.KeyPress(int(key))
	case glfw.Release:
		p.io.KeyRelease(int(key))
	}

	// Modifier state from mods is unreliable across systems, so the
	// GUI derives it from the individual keys.
	p.io.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
	p.io.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
	p.io.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
	p.io.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))
}

func (p *GLFW) charCallback(w *glfw.Window, char rune) {
	p.io.AddInputCharacters(string(char))
}

func (p *GLFW) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	index := mouseButtonIndex(button)
	if index < 0 {
		return
	}
	if action == glfw.Press {
		p.mouseJustPressed[index] = true
	}
}

func (p *GLFW) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	p.io.AddMouseWheelDelta(float32(xoff), float32(yoff))
}

// setKeyMapping tells the GUI which native key codes mean its navigation
// and editing keys.
func (p *GLFW) setKeyMapping() {
	for guiKey, key := range keyMap {
		p.io.KeyMap(guiKey, int(key))
	}
}

// keyMap maps GUI key indices to GLFW keys.
var keyMap = map[int]glfw.Key{
	imgui.KeyTab:        glfw.KeyTab,
	imgui.KeyLeftArrow:  glfw.KeyLeft,
	imgui.KeyRightArrow: glfw.KeyRight,
	imgui.KeyUpArrow:    glfw.KeyUp,
	imgui.KeyDownArrow:  glfw.KeyDown,
	imgui.KeyPageUp:     glfw.KeyPageUp,
	imgui.KeyPageDown:   glfw.KeyPageDown,
	imgui.KeyHome:       glfw.KeyHome,
	imgui.KeyEnd:        glfw.KeyEnd,
	imgui.KeyInsert:     glfw.KeyInsert,
	imgui.KeyDelete:     glfw.KeyDelete,
	imgui.KeyBackspace:  glfw.KeyBackspace,
	imgui.KeySpace:      glfw.KeySpace,
	imgui.KeyEnter:      glfw.KeyEnter,
	imgui.KeyEscape:     glfw.KeyEscape,
	imgui.KeyA:          glfw.KeyA,
	imgui.KeyC:          glfw.KeyC,
	imgui.KeyV:          glfw.KeyV,
	imgui.KeyX:          glfw.KeyX,
	imgui.KeyY:          glfw.KeyY,
	imgui.KeyZ:          glfw.KeyZ,
}

var glfwButtonIDByIndex = [3]glfw.MouseButton{
	glfw.MouseButtonLeft,
	glfw.MouseButtonRight,
	glfw.MouseButtonMiddle,
}

// mouseButtonIndex maps GLFW mouse buttons to GUI button indices.
// It returns -1 for buttons the GUI does not track.
func mouseButtonIndex(button glfw.MouseButton) int {
	switch button {
	case glfw.MouseButtonLeft:
		return 0
	case glfw.MouseButtonRight:
		return 1
	case glfw.MouseButtonMiddle:
		return 2
	default:
		return -1
	}
}
