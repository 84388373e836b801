// SPDX-License-Identifier: MIT

package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/ndlabel/labeled"
	"github.com/katalvlaran/ndlabel/ndarray"
)

// ErrNotTwoDimensional indicates an array that cannot be drawn as an image.
var ErrNotTwoDimensional = errors.New("imageio: array must be 2-D")

// goldenAngle spreads successive palette hues evenly around the wheel.
const goldenAngle = 137.50776405003785

// Load decodes the image at path.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}

	return img, nil
}

// Save encodes img to path; the extension picks the format.
func Save(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("Save(%q): %w", path, err)
	}

	return nil
}

// Binarize thresholds the luminance of img: 1 where it is ≥ threshold, else 0.
// The result has shape (Height, Width).
func Binarize(img image.Image, threshold uint8) *ndarray.Array[uint8] {
	g := segment.Threshold(img, threshold)
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	out := make([]uint8, 0, w*h)
	for y := 0; y < h; y++ {
		row := g.Pix[y*g.Stride : y*g.Stride+w]
		for _, v := range row {
			if v != 0 {
				out = append(out, 1)
			} else {
				out = append(out, 0)
			}
		}
	}

	return ndarray.MustFromSlice(out, h, w)
}

// LoadBinary is Load followed by Binarize.
func LoadBinary(path string, threshold uint8) (*ndarray.Array[uint8], error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}

	return Binarize(img, threshold), nil
}

// Invert swaps foreground and background of a binary array in place, for
// images with dark objects on a light background.
func Invert(a *ndarray.Array[uint8]) {
	data := a.Data()
	for i, v := range data {
		if v == 0 {
			data[i] = 1
		} else {
			data[i] = 0
		}
	}
}

// dims returns (width, height) of a 2-D array.
func dims(op string, a ndarray.Shaped) (int, int, error) {
	if err := ndarray.ValidateNdim(a, 2); err != nil {
		return 0, 0, fmt.Errorf("%s: %w: %w", op, ErrNotTwoDimensional, err)
	}
	shape := a.Shape()

	return shape[1], shape[0], nil
}

// MaskImage draws a boolean mask: white where true, black elsewhere.
func MaskImage(m *ndarray.Array[bool]) (*image.Gray, error) {
	if err := ndarray.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("MaskImage: %w", err)
	}
	w, h, err := dims("MaskImage", m)
	if err != nil {
		return nil, err
	}
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i, on := range m.Data() {
		if on {
			img.Pix[(i/w)*img.Stride+i%w] = 0xff
		}
	}

	return img, nil
}

// Palette returns n distinct opaque colours. Hues advance by the golden angle,
// so the first colours are far apart and the sequence is reproducible.
func Palette(n int) []color.NRGBA {
	out := make([]color.NRGBA, n)
	for i := range out {
		hue := math.Mod(float64(i)*goldenAngle, 360)
		sat := 0.65 + 0.3*float64(i%3)/2
		c := colorful.Hsv(hue, sat, 0.95)
		r, g, b := c.Clamped().RGB255()
		out[i] = color.NRGBA{R: r, G: g, B: b, A: 0xff}
	}

	return out
}

// Colorize draws a label map with one palette colour per label; label 0 is
// black. Labels must be non-negative.
func Colorize(L *labeled.LabelMap) (*image.NRGBA, error) {
	const op = "Colorize"
	sizes, err := labeled.Size(L)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	w, h, err := dims(op, L)
	if err != nil {
		return nil, err
	}
	pal := Palette(len(sizes) - 1)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, l := range L.Data() {
		c := color.NRGBA{A: 0xff}
		if l > 0 {
			c = pal[l-1]
		}
		img.SetNRGBA(i%w, i/w, c)
	}

	return img, nil
}
