package opengl

import (
	"strings"
	"testing"

	"github.com/inkyblackness/imgui-go/v4"
)

func TestScissorRect(t *testing.T) {
	tests := []struct {
		name     string
		clip     imgui.Vec4
		fbHeight float32
		want     [4]int32
	}{
		{
			name:     "full framebuffer",
			clip:     imgui.Vec4{X: 0, Y: 0, Z: 1280, W: 720},
			fbHeight: 720,
			want:     [4]int32{0, 0, 1280, 720},
		},
		{
			name:     "top left panel",
			clip:     imgui.Vec4{X: 10, Y: 20, Z: 110, W: 70},
			fbHeight: 720,
			want:     [4]int32{10, 650, 100, 50},
		},
		{
			name:     "hidpi framebuffer",
			clip:     imgui.Vec4{X: 200, Y: 400, Z: 600, W: 1000},
			fbHeight: 1440,
			want:     [4]int32{200, 440, 400, 600},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scissorRect(tt.clip, tt.fbHeight); got != tt.want {
				t.Errorf("scissorRect(%v, %g) = %v, want %v", tt.clip, tt.fbHeight, got, tt.want)
			}
		})
	}
}

func TestShaderSourcesShareVersion(t *testing.T) {
	for name, src := range map[string]string{
		"vertex":   vertexShaderSource,
		"fragment": fragmentShaderSource,
	} {
		if !strings.HasPrefix(src, GLSLVersion+"\n") {
			t.Errorf("%s shader does not start with %q", name, GLSLVersion)
		}
		if !strings.HasSuffix(src, "\x00") {
			t.Errorf("%s shader is not NUL terminated", name)
		}
	}
}
