// Example opens a window with a few widgets and asks for confirmation
// before quitting.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//	go run ./example/ -config example/glimgui.yaml
//
// The example loads an optional YAML config, creates the backend and
// drives it with Run.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/go-theft-auto/glimgui"
)

const quitPopup = "Quit?"

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "glimgui.yaml", "path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// demo holds the application state drawn each frame.
type demo struct {
	backend    *glimgui.Backend
	clickCount int
	sliderVal  float32
	clearColor [3]float32
	showDemo   bool
	askQuit    bool
	quit       bool
}

func run(configPath string) error {
	cfg, err := glimgui.LoadConfig(configPath)
	if err != nil {
		return err
	}

	backend, err := glimgui.New(glimgui.WithConfig(cfg))
	if err != nil {
		return fmt.Errorf("init backend: %w", err)
	}

	cc := backend.ClearColor()
	d := &demo{
		backend:    backend,
		sliderVal:  0.5,
		clearColor: [3]float32{cc[0], cc[1], cc[2]},
	}

	return backend.Run(func(a glimgui.Action) bool {
		switch a {
		case glimgui.ActionCloseRequested:
			d.askQuit = true
		case glimgui.ActionDraw:
			d.draw()
		}
		return !d.quit
	})
}

func (d *demo) draw() {
	imgui.Begin("Example")

	imgui.Text("Hello from glimgui!")
	if imgui.Button(fmt.Sprintf("Click me (%d)", d.clickCount)) {
		d.clickCount++
		d.backend.SetWindowTitle(fmt.Sprintf("glimgui example - %d clicks", d.clickCount))
	}

	imgui.SliderFloat("slider", &d.sliderVal, 0, 1)
	if imgui.ColorEdit3("clear color", &d.clearColor) {
		d.backend.SetClearColor([4]float32{d.clearColor[0], d.clearColor[1], d.clearColor[2], 1})
	}
	imgui.Checkbox("Demo window", &d.showDemo)

	framerate := imgui.CurrentIO().Framerate()
	imgui.Text(fmt.Sprintf("%.3f ms/frame (%.1f FPS)", 1000/framerate, framerate))

	if imgui.Button("Quit") {
		d.askQuit = true
	}
	imgui.End()

	if d.showDemo {
		imgui.ShowDemoWindow(&d.showDemo)
	}

	d.drawQuitPopup()
}

func (d *demo) drawQuitPopup() {
	if d.askQuit {
		imgui.OpenPopup(quitPopup)
		d.askQuit = false
	}
	if !imgui.BeginPopupModal(quitPopup) {
		return
	}
	imgui.Text("Really quit?")
	if imgui.ButtonV("Yes", imgui.Vec2{X: 80}) {
		d.quit = true
	}
	imgui.SameLine()
	if imgui.ButtonV("No", imgui.Vec2{X: 80}) {
		imgui.CloseCurrentPopup()
	}
	imgui.EndPopup()
}
