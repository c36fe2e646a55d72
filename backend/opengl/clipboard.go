package opengl

import "github.com/go-gl/glfw/v3.3/glfw"

// clipboard exposes the system clipboard to the GUI through GLFW.
type clipboard struct {
	window *glfw.Window
}

func (c clipboard) Text() (string, error) {
	return c.window.GetClipboardString(), nil
}

func (c clipboard) SetText(text string) {
	c.window.SetClipboardString(text)
}
