package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Counter FontName = "counter"
	Body    FontName = "body"
	Small   FontName = "small"
	Title   FontName = "title"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
	sized = map[float64]font.Face{}
)

// LoadDefaults registers the faces the renderers use, at the given counter size.
func LoadDefaults(counterSize float64) error {
	if err := LoadFontWithSize(Counter, gobold.TTF, counterSize); err != nil {
		return err
	}
	if err := LoadFontWithSize(Title, gobold.TTF, 32); err != nil {
		return err
	}
	if err := LoadFontWithSize(Body, goregular.TTF, 18); err != nil {
		return err
	}
	return LoadFontWithSize(Small, goregular.TTF, 12)
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// Sized returns a regular face of the given size, parsing it on first use.
func Sized(size float64) font.Face {
	if f, ok := sized[size]; ok {
		return f
	}
	fontData, err := truetype.Parse(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("Font goregular unusable: %v", err))
	}
	f := truetype.NewFace(fontData, &truetype.Options{Size: size})
	sized[size] = f
	return f
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
