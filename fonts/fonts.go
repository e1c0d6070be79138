package fonts

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Small   FontName = "small"
)

func (f FontName) Get() text.Face {
	return getFont(f)
}

var (
	source *text.GoTextFaceSource
	fonts  = map[FontName]text.Face{}
)

// LoadDefaults registers the bundled Go Regular faces used by the HUD.
func LoadDefaults(size float64) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load goregular: %w", err)
	}
	source = src

	LoadFontWithSize(Regular, size)
	LoadFontWithSize(Small, size*0.8)
	return nil
}

func LoadFontWithSize(name FontName, size float64) {
	fonts[name] = &text.GoTextFace{Source: source, Size: size}
}

func getFont(name FontName) text.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
