package game

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
)

// snapshot grabs the rendered frame in Draw and saves it from Update, where
// blocking on the save dialog is acceptable.
type snapshot struct {
	requested bool
	pending   *image.RGBA
}

func (s *snapshot) request() { s.requested = true }

func (s *snapshot) ready() bool { return s.pending != nil }

func (s *snapshot) capture(screen *ebiten.Image) {
	if !s.requested {
		return
	}
	s.requested = false
	img := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(img.Pix)
	s.pending = img
}

func (s *snapshot) save() error {
	img := s.pending
	s.pending = nil

	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Snapshot"),
		zenity.Filename("card.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if !strings.EqualFold(filepath.Ext(filename), ".png") {
		filename += ".png"
	}
	return writePNG(filename, img)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return f.Close()
}
