package glimgui

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-text/typesetting/fontscan"
	"golang.org/x/image/font/sfnt"
)

// FontInfo describes a font file before it is handed to the font atlas.
type FontInfo struct {
	Path      string
	Family    string
	NumGlyphs int
}

// InspectFont parses a TrueType/OpenType font or collection file.
// For collections the first font is described, which is the one the font
// atlas loads.
func InspectFont(path string) (FontInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FontInfo{}, fmt.Errorf("%w: %v", ErrFontLoad, err)
	}

	f, err := sfnt.Parse(data)
	if err != nil {
		c, cerr := sfnt.ParseCollection(data)
		if cerr != nil || c.NumFonts() == 0 {
			return FontInfo{}, fmt.Errorf("%w: %s: %v", ErrFontLoad, path, err)
		}
		if f, err = c.Font(0); err != nil {
			return FontInfo{}, fmt.Errorf("%w: %s: %v", ErrFontLoad, path, err)
		}
	}

	info := FontInfo{Path: path, NumGlyphs: f.NumGlyphs()}
	var buf sfnt.Buffer
	if family, err := f.Name(&buf, sfnt.NameIDFamily); err == nil {
		info.Family = family
	}
	return info, nil
}

// FontLoader adds a font file to the GUI font atlas. It reports false when
// the atlas rejects the file.
type FontLoader interface {
	AddFontFromFileTTF(path string, sizePixels float32) bool
}

// LoadFont validates a font file and adds it to the atlas at size pixels.
func LoadFont(atlas FontLoader, path string, size float32) (FontInfo, error) {
	if size <= 0 {
		return FontInfo{}, fmt.Errorf("%w: %s: size %g", ErrFontLoad, path, size)
	}
	info, err := InspectFont(path)
	if err != nil {
		return FontInfo{}, err
	}
	if !atlas.AddFontFromFileTTF(path, size) {
		return FontInfo{}, fmt.Errorf("%w: %s rejected by font atlas", ErrFontLoad, path)
	}
	return info, nil
}

// FontFinder resolves a font family name to a font file.
type FontFinder func(family string) (path string, err error)

// SystemFontFinder returns a FontFinder that searches the fonts installed
// on the system. The font index is built on first use and cached in the
// user cache directory.
func SystemFontFinder(log *slog.Logger) FontFinder {
	var fm *fontscan.FontMap
	return func(family string) (string, error) {
		if fm == nil {
			m := fontscan.NewFontMap(slog.NewLogLogger(log.Handler(), slog.LevelDebug))
			if err := m.UseSystemFonts(""); err != nil {
				return "", fmt.Errorf("scan system fonts: %w", err)
			}
			fm = m
		}
		loc, ok := fm.FindSystemFont(family)
		if !ok {
			return "", fmt.Errorf("no system font for family %q", family)
		}
		return loc.File, nil
	}
}
