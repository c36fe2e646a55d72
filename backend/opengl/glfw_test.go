package opengl

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

func TestMouseButtonIndex(t *testing.T) {
	tests := []struct {
		button glfw.MouseButton
		want   int
	}{
		{glfw.MouseButtonLeft, 0},
		{glfw.MouseButtonRight, 1},
		{glfw.MouseButtonMiddle, 2},
		{glfw.MouseButton4, -1},
		{glfw.MouseButtonLast, -1},
	}

	for _, tt := range tests {
		if got := mouseButtonIndex(tt.button); got != tt.want {
			t.Errorf("mouseButtonIndex(%v) = %d, want %d", tt.button, got, tt.want)
		}
	}
}

func TestMouseButtonIndexRoundTrip(t *testing.T) {
	for i, button := range glfwButtonIDByIndex {
		if got := mouseButtonIndex(button); got != i {
			t.Errorf("mouseButtonIndex(glfwButtonIDByIndex[%d]) = %d", i, got)
		}
	}
}

func TestKeyMapCoversNavigationAndShortcuts(t *testing.T) {
	required := map[int]glfw.Key{
		imgui.KeyTab:        glfw.KeyTab,
		imgui.KeyLeftArrow:  glfw.KeyLeft,
		imgui.KeyRightArrow: glfw.KeyRight,
		imgui.KeyUpArrow:    glfw.KeyUp,
		imgui.KeyDownArrow:  glfw.KeyDown,
		imgui.KeyBackspace:  glfw.KeyBackspace,
		imgui.KeyEnter:      glfw.KeyEnter,
		imgui.KeyEscape:     glfw.KeyEscape,
		imgui.KeyA:          glfw.KeyA,
		imgui.KeyC:          glfw.KeyC,
		imgui.KeyV:          glfw.KeyV,
		imgui.KeyX:          glfw.KeyX,
		imgui.KeyZ:          glfw.KeyZ,
	}

	for guiKey, want := range required {
		got, ok := keyMap[guiKey]
		if !ok {
			t.Errorf("key %d not mapped", guiKey)
			continue
		}
		if got != want {
			t.Errorf("keyMap[%d] = %v, want %v", guiKey, got, want)
		}
	}
}

func TestKeyMapIsInjective(t *testing.T) {
	seen := make(map[glfw.Key]int, len(keyMap))
	for guiKey, key := range keyMap {
		if prev, ok := seen[key]; ok {
			t.Errorf("glfw key %v mapped from both %d and %d", key, prev, guiKey)
		}
		seen[key] = guiKey
	}
}
