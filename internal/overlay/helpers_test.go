package overlay

import (
	"image"
	"image/color"
	"image/draw"
)

var black = color.RGBA{0, 0, 0, 255}

// newFrame returns an opaque black frame of the given size.
func newFrame(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(black), image.Point{}, draw.Src)
	return img
}

func clonePix(img *image.RGBA) []byte {
	pix := make([]byte, len(img.Pix))
	copy(pix, img.Pix)
	return pix
}

func detection(x, y, w, h int, name string, score float64) Detection {
	return Detection{
		BoundingBox: BoundingBox{OriginX: x, OriginY: y, Width: w, Height: h},
		Categories:  []Category{{CategoryName: name, Score: score}},
	}
}

// countingFrame counts the pixel writes that reach the frame.
type countingFrame struct {
	*image.RGBA
	writes int
}

func (f *countingFrame) Set(x, y int, c color.Color) {
	f.writes++
	f.RGBA.Set(x, y, c)
}

func (f *countingFrame) SetRGBA64(x, y int, c color.RGBA64) {
	f.writes++
	f.RGBA.SetRGBA64(x, y, c)
}

// referenceLine stamps the full brush at every Bresenham step.
func referenceLine(dst draw.Image, p0, p1 image.Point, c color.Color, thickness int) {
	lo, hi := brushSpan(thickness)
	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}

	dx := abs(p1.X - p0.X)
	dy := -abs(p1.Y - p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}

	err := dx + dy
	x, y := p0.X, p0.Y
	for {
		for oy := lo; oy <= hi; oy++ {
			for ox := lo; ox <= hi; ox++ {
				setPixel(dst, x+ox, y+oy, c)
			}
		}
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}
