package fonts

import (
	"fmt"
	"io/fs"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

type FontName string

const (
	Title  FontName = "title"
	Score  FontName = "score"
	Info   FontName = "info"
	Prompt FontName = "prompt"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var fonts = map[FontName]font.Face{}

// Load parses a TTF and registers a face under the given name.
func Load(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// LoadAll reads one TTF from the assets FS and registers every face the
// game draws with. A missing or malformed font file is a fatal condition
// for the caller.
func LoadAll(fsys fs.FS, path string) error {
	ttf, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read font file %s: %w", path, err)
	}

	sizes := map[FontName]float64{
		Title:  80,
		Score:  100,
		Info:   20,
		Prompt: 40,
	}
	for name, size := range sizes {
		if err := Load(name, ttf, size); err != nil {
			return err
		}
	}
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
