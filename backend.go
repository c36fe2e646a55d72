package glimgui

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/go-theft-auto/glimgui/backend/opengl"
)

// Platform is the windowing and input layer.
type Platform interface {
	// ProcessEvents polls OS events and feeds input to the GUI.
	ProcessEvents()
	ShouldClose() bool
	SetShouldClose(value bool)
	// NewFrame updates display size, timing and mouse state for the GUI.
	NewFrame()
	SetTitle(title string)
	DisplaySize() [2]float32
	FramebufferSize() [2]float32
	MakeContextCurrent()
	// PostRender presents the frame.
	PostRender()
	Dispose()
}

// Renderer is the graphics layer that presents GUI draw data.
type Renderer interface {
	// NewFrame creates device objects (font texture, shaders) on first use.
	NewFrame() error
	PreRender(framebufferSize [2]float32, clearColor [4]float32)
	Render(displaySize, framebufferSize [2]float32, drawData imgui.DrawData)
	Dispose()
}

// PlatformFactory creates the Platform once the GUI context exists.
type PlatformFactory func(io imgui.IO, cfg Config) (Platform, error)

// RendererFactory creates the Renderer once a graphics context is current.
type RendererFactory func(io imgui.IO) (Renderer, error)

// Action tells a Run handler what is expected of it.
type Action int

const (
	// ActionDraw is sent once per frame, between StartFrame and EndFrame.
	ActionDraw Action = iota
	// ActionCloseRequested is sent outside a frame when the user asked
	// to close the window.
	ActionCloseRequested
)

func (a Action) String() string {
	switch a {
	case ActionDraw:
		return "draw"
	case ActionCloseRequested:
		return "close-requested"
	default:
		return "unknown"
	}
}

// active is set while a Backend owns the GUI context and GLFW. Both are
// process-wide, so only one Backend may be live at a time.
var active atomic.Bool

// Backend ties a window, a graphics context and a GUI context together.
// All methods must be called from the thread that called New. Only one
// Backend may exist between New and Destroy.
type Backend struct {
	cfg   Config
	log   *slog.Logger
	theme Theme
	font  FontInfo

	toolkit  Toolkit
	platform Platform
	renderer Renderer

	owner          bool
	contextCreated bool
	inFrame        bool
	pushed         int
}

// New initializes GLFW, the OpenGL loader and the GUI context, applies the
// theme and loads the configured font. Failures are logged and returned;
// anything created before the failure is released. A font that cannot be
// loaded is logged and the built-in font is used instead.
//
// New returns ErrBackendActive while another Backend has not been
// destroyed.
func New(opts ...Option) (*Backend, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	log := cfg.logger()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "err", err)
		return nil, err
	}
	theme, _ := ThemeByName(cfg.Theme)

	if !active.CompareAndSwap(false, true) {
		log.Error("backend already active")
		return nil, ErrBackendActive
	}
	b := &Backend{
		cfg:     cfg,
		log:     log,
		theme:   theme,
		toolkit: cfg.Toolkit,
		owner:   true,
	}
	if b.toolkit == nil {
		b.toolkit = NewImGuiToolkit()
	}

	if err := b.init(); err != nil {
		b.log.Error("init failed", "err", err)
		b.Destroy()
		return nil, err
	}
	return b, nil
}

func (b *Backend) init() error {
	io := b.toolkit.CreateContext(b.cfg.IniFilename)
	b.contextCreated = true
	b.theme.Apply(b.toolkit.Style())

	newPlatform := b.cfg.NewPlatform
	if newPlatform == nil {
		newPlatform = newGLFWPlatform
	}
	platform, err := newPlatform(io, b.cfg)
	if err != nil {
		return err
	}
	b.platform = platform

	newRenderer := b.cfg.NewRenderer
	if newRenderer == nil {
		newRenderer = newOpenGL3Renderer
	}
	renderer, err := newRenderer(io)
	if err != nil {
		return err
	}
	b.renderer = renderer

	if err := b.loadFont(); err != nil {
		b.log.Error("font not loaded, using built-in font", "err", err)
	}

	b.log.Debug("backend initialized",
		"title", b.cfg.Title, "width", b.cfg.Width, "height", b.cfg.Height,
		"theme", b.theme.Name, "vsync", b.cfg.VSync)
	return nil
}

// loadFont adds the configured font file, or the system font of the
// configured family, to the font atlas.
func (b *Backend) loadFont() error {
	path := b.cfg.FontFile
	if path == "" && b.cfg.FontFamily != "" {
		find := b.cfg.FindFont
		if find == nil {
			find = SystemFontFinder(b.log)
		}
		found, err := find(b.cfg.FontFamily)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFontLoad, err)
		}
		path = found
	}
	if path == "" {
		return nil
	}

	info, err := LoadFont(b.toolkit, path, b.cfg.FontSize)
	if err != nil {
		return err
	}
	b.font = info
	b.log.Info("font loaded",
		"path", info.Path, "family", info.Family,
		"glyphs", info.NumGlyphs, "size", b.cfg.FontSize)
	return nil
}

func newGLFWPlatform(io imgui.IO, cfg Config) (Platform, error) {
	p, err := opengl.NewGLFW(io, opengl.WindowConfig{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		VSync:  cfg.VSync,
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func newOpenGL3Renderer(io imgui.IO) (Renderer, error) {
	r, err := opengl.NewOpenGL3(io)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (b *Backend) initialized() bool {
	return b.platform != nil && b.renderer != nil
}

// Config returns the configuration the backend was created with.
func (b *Backend) Config() Config {
	return b.cfg
}

// Font returns the loaded font file, or the zero FontInfo when the
// built-in font is in use.
func (b *Backend) Font() FontInfo {
	return b.font
}

// ClearColor returns the framebuffer clear color.
func (b *Backend) ClearColor() [4]float32 {
	return b.cfg.ClearColor
}

// SetClearColor changes the framebuffer clear color from the next frame on.
func (b *Backend) SetClearColor(c [4]float32) {
	b.cfg.ClearColor = c
}

// SetWindowTitle changes the window title. It does nothing before New or
// after Destroy.
func (b *Backend) SetWindowTitle(title string) {
	if !b.initialized() {
		return
	}
	b.cfg.Title = title
	b.platform.SetTitle(title)
}

// HandleEvents polls OS events. It reports whether the user asked to close
// the window since the last call and clears the request, leaving the
// decision to quit to the caller.
func (b *Backend) HandleEvents() (closeRequested bool) {
	if !b.initialized() {
		return false
	}
	if b.platform.ShouldClose() {
		closeRequested = true
		b.platform.SetShouldClose(false)
	}
	b.platform.ProcessEvents()
	return closeRequested
}

// PollEvents polls OS events without looking at close requests.
func (b *Backend) PollEvents() {
	if !b.initialized() {
		return
	}
	b.platform.ProcessEvents()
}

// StartFrame begins a GUI frame. Widgets may be submitted until EndFrame.
func (b *Backend) StartFrame() error {
	if !b.initialized() {
		return ErrNotInitialized
	}
	if b.inFrame {
		return ErrFrameInProgress
	}

	if err := b.renderer.NewFrame(); err != nil {
		b.log.Error("renderer setup failed", "err", err)
		return err
	}
	b.platform.NewFrame()
	b.toolkit.NewFrame()
	b.pushed = b.theme.Push(b.toolkit)
	b.inFrame = true
	return nil
}

// EndFrame renders the GUI frame over a cleared framebuffer and swaps
// buffers.
func (b *Backend) EndFrame() error {
	if !b.initialized() {
		return ErrNotInitialized
	}
	if !b.inFrame {
		return ErrFrameNotStarted
	}

	b.toolkit.PopStyleVar(b.pushed)
	b.pushed = 0
	b.inFrame = false
	drawData := b.toolkit.Render()

	b.platform.MakeContextCurrent()
	fbSize := b.platform.FramebufferSize()
	b.renderer.PreRender(fbSize, b.cfg.ClearColor)
	b.renderer.Render(b.platform.DisplaySize(), fbSize, drawData)
	b.platform.PostRender()
	return nil
}

// Destroy releases the renderer, the GUI context and the window, and
// terminates GLFW. Calling it again is a no-op.
func (b *Backend) Destroy() {
	if b.renderer != nil {
		b.renderer.Dispose()
		b.renderer = nil
	}
	if b.contextCreated {
		b.toolkit.DestroyContext()
		b.contextCreated = false
	}
	if b.platform != nil {
		b.platform.Dispose()
		b.platform = nil
	}
	b.inFrame = false
	b.pushed = 0
	if b.owner {
		b.owner = false
		active.Store(false)
	}
}

// Run drives the frame loop until handle returns false, then destroys the
// backend. handle receives ActionCloseRequested when the user asks to
// close the window, and ActionDraw once per frame with a frame started.
func (b *Backend) Run(handle func(Action) bool) error {
	defer b.Destroy()

	for {
		if b.HandleEvents() && !handle(ActionCloseRequested) {
			return nil
		}
		if err := b.StartFrame(); err != nil {
			return err
		}
		if !handle(ActionDraw) {
			return nil
		}
		if err := b.EndFrame(); err != nil {
			return err
		}
	}
}
