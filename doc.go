/*
Package glimgui wires GLFW and OpenGL into Dear ImGui.

It owns the lifecycle around the GUI toolkit and nothing else: window and
context creation, a static theme, optional font loading, per-frame event
polling, frame begin/end and buffer swapping. Widgets are drawn with
github.com/inkyblackness/imgui-go/v4 directly.

# Quick Start

	backend, err := glimgui.New(
	    glimgui.WithTitle("my tool"),
	    glimgui.WithFont("DejaVuSans.ttf", 15),
	)
	if err != nil {
	    return err
	}
	defer backend.Destroy()

	for running {
	    if backend.HandleEvents() {
	        running = false // or ask the user first
	    }
	    backend.StartFrame()
	    imgui.Text("Hello World")
	    backend.EndFrame()
	}

Run wraps the same loop around a callback.

# Threading

GLFW and OpenGL calls must happen on one OS thread. Lock the main
goroutine to its thread in an init function and call every Backend method
from it. GLFW and the GUI context are process-wide, so New refuses to
create a second Backend until the first is destroyed.

# Fonts

WithFont loads a font file. WithFontFamily looks a family up among the
installed system fonts instead. A font that cannot be found or loaded is
logged and the toolkit's built-in font is used.

# Configuration

Options override DefaultConfig. LoadConfig reads the same settings from a
YAML file:

	title: my tool
	width: 1280
	height: 720
	vsync: true
	theme: corporate-gray
	clear_color: [0.45, 0.55, 0.60, 1.00]
	font_file: DejaVuSans.ttf   # or font_family: DejaVu Sans
	font_size: 15
	log_level: info

# C callers

cmd/glimgui-capi builds a shared library exporting glfw_opengl3_Init,
glfw_opengl3_HandleEvents, glfw_opengl3_StartFrame, glfw_opengl3_EndFrame,
glfw_opengl3_Destroy and glfw_opengl3_SetWindowTitle.
*/
package glimgui
