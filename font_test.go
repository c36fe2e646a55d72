package glimgui_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/go-theft-auto/glimgui"
)

type atlasStub struct {
	accept bool
	paths  []string
	sizes  []float32
}

func (a *atlasStub) AddFontFromFileTTF(path string, sizePixels float32) bool {
	a.paths = append(a.paths, path)
	a.sizes = append(a.sizes, sizePixels)
	return a.accept
}

func TestInspectFont(t *testing.T) {
	path := writeGoFont(t)

	info, err := glimgui.InspectFont(path)
	if err != nil {
		t.Fatalf("InspectFont() returned error: %v", err)
	}
	if info.Family != "Go" {
		t.Errorf("family = %q, want %q", info.Family, "Go")
	}
	if info.NumGlyphs == 0 {
		t.Error("expected glyphs in the Go font")
	}
	if info.Path != path {
		t.Errorf("path = %q, want %q", info.Path, path)
	}
}

func TestInspectFontMono(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Go-Mono.ttf")
	if err := os.WriteFile(path, gomono.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	info, err := glimgui.InspectFont(path)
	if err != nil {
		t.Fatalf("InspectFont() returned error: %v", err)
	}
	if info.Family != "Go Mono" {
		t.Errorf("family = %q, want %q", info.Family, "Go Mono")
	}
}

func TestInspectFontErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.ttf")
	if err := os.WriteFile(garbage, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{filepath.Join(dir, "missing.ttf"), garbage} {
		if _, err := glimgui.InspectFont(path); !errors.Is(err, glimgui.ErrFontLoad) {
			t.Errorf("InspectFont(%s) error = %v, want ErrFontLoad", filepath.Base(path), err)
		}
	}
}

func TestLoadFont(t *testing.T) {
	path := writeGoFont(t)
	atlas := &atlasStub{accept: true}

	info, err := glimgui.LoadFont(atlas, path, 16)
	if err != nil {
		t.Fatalf("LoadFont() returned error: %v", err)
	}
	if info.Family != "Go" {
		t.Errorf("family = %q, want %q", info.Family, "Go")
	}
	if len(atlas.paths) != 1 || atlas.paths[0] != path || atlas.sizes[0] != 16 {
		t.Errorf("atlas got %v @ %v, want [%s] @ [16]", atlas.paths, atlas.sizes, path)
	}
}

func TestLoadFontErrors(t *testing.T) {
	path := writeGoFont(t)

	tests := []struct {
		name    string
		path    string
		size    float32
		accept  bool
		toAtlas bool
	}{
		{"zero size", path, 0, true, false},
		{"negative size", path, -3, true, false},
		{"missing file", filepath.Join(t.TempDir(), "missing.ttf"), 14, true, false},
		{"rejected by atlas", path, 14, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			atlas := &atlasStub{accept: tt.accept}
			_, err := glimgui.LoadFont(atlas, tt.path, tt.size)
			if !errors.Is(err, glimgui.ErrFontLoad) {
				t.Errorf("LoadFont() error = %v, want ErrFontLoad", err)
			}
			if got := len(atlas.paths) > 0; got != tt.toAtlas {
				t.Errorf("reached atlas = %v, want %v", got, tt.toAtlas)
			}
		})
	}
}
