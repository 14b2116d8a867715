package densegrid

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Image renders g one pixel per cell through f. Pixel (0, 0) is the grid
// origin, so negative coordinates are shifted into view.
func (g *Grid[V]) Image(f func(V) color.Color) image.Image {
	return g.render(f).Image()
}

// SavePNG renders g like Image and writes it to path as a PNG file.
func (g *Grid[V]) SavePNG(path string, f func(V) color.Color) error {
	if err := g.render(f).SavePNG(path); err != nil {
		return fmt.Errorf("densegrid: save %s: %w", path, err)
	}
	return nil
}

// ScaledImage renders g like Image with every cell drawn as a scale×scale
// block. A scale below 1 reports ErrBadScale.
func (g *Grid[V]) ScaledImage(f func(V) color.Color, scale int) (image.Image, error) {
	if scale < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadScale, scale)
	}
	img := g.render(f).Image()
	if scale == 1 {
		return img, nil
	}
	return imaging.Resize(img, g.width*scale, g.height*scale, imaging.NearestNeighbor), nil
}

// SavePNGScaled writes ScaledImage to path. The format follows the file
// extension, so path should end in ".png".
func (g *Grid[V]) SavePNGScaled(path string, scale int, f func(V) color.Color) error {
	img, err := g.ScaledImage(f, scale)
	if err != nil {
		return err
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("densegrid: save %s: %w", path, err)
	}
	return nil
}

func (g *Grid[V]) render(f func(V) color.Color) *gg.Context {
	dc := gg.NewContext(g.width, g.height)
	for p, v := range g.All() {
		dc.SetColor(f(v))
		dc.SetPixel(p.X-g.minX, p.Y-g.minY)
	}
	return dc
}
