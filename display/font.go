// Package display runs the game in a desktop window through Ebiten.
package display

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ErrAssetLoad is returned when a required asset cannot be read or parsed.
var ErrAssetLoad = errors.New("asset load failed")

// Font is a TrueType face ready for text.Draw.
type Font struct {
	Face *text.GoTextFace
	Path string
}

// LoadFont reads the TrueType font at path and builds a face of the given
// pixel size.
func LoadFont(path string, size float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssetLoad, err)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrAssetLoad, path, err)
	}

	return &Font{
		Face: &text.GoTextFace{Source: source, Size: size},
		Path: path,
	}, nil
}
