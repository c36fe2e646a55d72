//go:build smoke

package glimgui_test

import (
	"runtime"
	"testing"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/go-theft-auto/glimgui"
)

// TestSmokeWindow opens a real window and draws a few frames.
// Run with: go test -tags smoke -run Smoke .
func TestSmokeWindow(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	backend, err := glimgui.New(
		glimgui.WithTitle("glimgui smoke"),
		glimgui.WithWindowSize(400, 300),
		glimgui.WithFont(writeGoFont(t), 15),
	)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	defer backend.Destroy()

	for i := 0; i < 10; i++ {
		if backend.HandleEvents() {
			break
		}
		if err := backend.StartFrame(); err != nil {
			t.Fatalf("StartFrame() returned error: %v", err)
		}
		imgui.Text("smoke")
		if i == 5 {
			backend.SetWindowTitle("glimgui smoke (retitled)")
		}
		if err := backend.EndFrame(); err != nil {
			t.Fatalf("EndFrame() returned error: %v", err)
		}
	}

	if backend.Font().Family != "Go" {
		t.Errorf("font family = %q, want %q", backend.Font().Family, "Go")
	}
}
