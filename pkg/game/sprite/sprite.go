// Package sprite turns the player's walk strip into the frames the renderer
// draws: one per animation step, in both facings, plus solid silhouettes for
// the inverted palette.
package sprite

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"loopescape/pkg/engine/assets"
	"loopescape/pkg/engine/logging"
	"loopescape/pkg/engine/world"
)

// Padding is the transparent margin added on each side of a frame before
// scaling, so neighbouring frames never bleed in.
const Padding = 2

// Sheet holds every frame of the player in both facings.
type Sheet struct {
	right, left         []image.Image
	rightMask, leftMask []image.Image
}

// NewSheet slices a horizontal strip of frames and scales each to height.
func NewSheet(strip image.Image, frames, height int) (*Sheet, error) {
	sliced, err := Slice(strip, frames, height)
	if err != nil {
		return nil, err
	}
	s := &Sheet{}
	for _, f := range sliced {
		l := Mirror(f)
		s.right = append(s.right, f)
		s.left = append(s.left, l)
		s.rightMask = append(s.rightMask, Silhouette(f))
		s.leftMask = append(s.leftMask, Silhouette(l))
	}
	return s, nil
}

// FallbackSheet is a plain white rectangle for every frame.
func FallbackSheet(w, h, frames int) *Sheet {
	img := assets.Placeholder(w, h, color.White)
	mask := Silhouette(img)
	s := &Sheet{}
	for i := 0; i < frames; i++ {
		s.right = append(s.right, img)
		s.left = append(s.left, img)
		s.rightMask = append(s.rightMask, mask)
		s.leftMask = append(s.leftMask, mask)
	}
	return s
}

// Load builds the player sheet from the named strip in the cache, falling
// back to a white rectangle the size of the player.
func Load(cache *assets.Cache, name string, m world.Metrics) *Sheet {
	h := int(m.PlayerHeight)
	if strip, ok := cache.Image(name); ok {
		s, err := NewSheet(strip, world.TotalFrames, h)
		if err == nil {
			return s
		}
		l := logging.New("sprite")
		l.Warn().Err(err).Str("sheet", name).Msg("unusable player sheet")
	}
	return FallbackSheet(int(m.PlayerWidth), h, world.TotalFrames)
}

// Len returns the number of frames.
func (s *Sheet) Len() int {
	return len(s.right)
}

// Frame returns frame i for the given facing. The silhouette variant is
// used on the inverted palette. Out of range indices wrap.
func (s *Sheet) Frame(i int, left, silhouette bool) image.Image {
	frames := s.right
	switch {
	case left && silhouette:
		frames = s.leftMask
	case left:
		frames = s.left
	case silhouette:
		frames = s.rightMask
	}
	n := len(frames)
	return frames[((i%n)+n)%n]
}

// Slice cuts strip into frames equal-width frames, pads each one and scales
// it so it is height pixels tall.
func Slice(strip image.Image, frames, height int) ([]*image.RGBA, error) {
	b := strip.Bounds()
	if frames < 1 || b.Dx() < frames || b.Dy() == 0 {
		return nil, fmt.Errorf("slice %dx%d strip into %d frames: too small", b.Dx(), b.Dy(), frames)
	}
	if height < 1 {
		return nil, fmt.Errorf("slice strip: bad height %d", height)
	}
	fw, fh := b.Dx()/frames, b.Dy()
	scale := float64(height) / float64(fh)
	sw := int(float64(fw) * scale)
	if sw < 1 {
		sw = 1
	}

	out := make([]*image.RGBA, frames)
	for i := range out {
		padded := image.NewRGBA(image.Rect(0, 0, fw+2*Padding, fh))
		src := image.Pt(b.Min.X+i*fw, b.Min.Y)
		draw.Draw(padded, image.Rect(Padding, 0, Padding+fw, fh), strip, src, draw.Src)

		dst := image.NewRGBA(image.Rect(0, 0, sw, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), padded, padded.Bounds(), draw.Over, nil)
		out[i] = dst
	}
	return out, nil
}

// Mirror flips an image horizontally.
func Mirror(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(b.Dx()-1-x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

// Silhouette paints every non-transparent pixel opaque black.
func Silhouette(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if _, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA(); a > 0 {
				dst.Set(x, y, color.Black)
			}
		}
	}
	return dst
}
