package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Face wraps the named font for ebiten's text drawing.
func (f FontName) Face() text.Face {
	if face, ok := faces[f]; ok {
		return face
	}
	face := text.NewGoXFace(getFont(f))
	faces[f] = face
	return face
}

var (
	fonts = map[FontName]font.Face{}
	faces = map[FontName]text.Face{}
)

// LoadDefaults loads the embedded Go fonts under every name.
func LoadDefaults() error {
	for _, f := range []struct {
		name FontName
		ttf  []byte
		size float64
	}{
		{Regular, goregular.TTF, 10},
		{Bold, gobold.TTF, 14},
		{Title, gobold.TTF, 32},
		{Small, goregular.TTF, 8},
	} {
		if err := LoadFontWithSize(f.name, f.ttf, f.size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parsing font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	delete(faces, name)
	return nil
}

// Loaded reports whether name has been loaded.
func Loaded(name FontName) bool {
	_, ok := fonts[name]
	return ok
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
