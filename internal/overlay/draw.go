package overlay

import (
	"image"
	"image/color"
	"image/draw"
	"math/bits"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// labelFace is the fixed-width bitmap face used for labels.
var labelFace = basicfont.Face7x13

// Rectangle draws the outline of the rectangle with corners start and end.
// Both corners are painted; the rectangle is not normalised.
func Rectangle(dst draw.Image, start, end image.Point, c color.Color, thickness int) {
	topRight := image.Pt(end.X, start.Y)
	bottomLeft := image.Pt(start.X, end.Y)

	Line(dst, start, topRight, c, thickness)
	Line(dst, topRight, end, c, thickness)
	Line(dst, end, bottomLeft, c, thickness)
	Line(dst, bottomLeft, start, c, thickness)
}

// Line draws a solid segment from p0 to p1 inclusive using Bresenham's
// algorithm. Thickness greater than one stamps a square brush at every
// step.
//
// Only the steps whose brush can reach dst are visited, so the cost is
// bounded by the frame and brush size however far the segment extends off
// the canvas. Step k along the major axis is computed directly, which
// yields exactly the points the incremental form would reach.
func Line(dst draw.Image, p0, p1 image.Point, c color.Color, thickness int) {
	bounds := dst.Bounds()
	if bounds.Empty() {
		return
	}
	lo, hi := brushSpan(thickness)

	dx, sx := span(p0.X, p1.X)
	dy, sy := span(p0.Y, p1.Y)
	xMajor := dx >= dy

	var first, last uint64
	var ok bool
	if xMajor {
		first, last, ok = stepWindow(p0.X, sx, dx, bounds.Min.X-hi, bounds.Max.X-1-lo)
	} else {
		first, last, ok = stepWindow(p0.Y, sy, dy, bounds.Min.Y-hi, bounds.Max.Y-1-lo)
	}
	if !ok {
		return
	}

	src := image.NewUniform(c)
	var prev image.Point
	for k := first; ; k++ {
		var p image.Point
		if xMajor {
			p = image.Pt(p0.X+sx*int(k), p0.Y+sy*int(minorOffset(k, dy, dx)))
		} else {
			p = image.Pt(p0.X+sx*int(minorOffset(k, dx, dy)), p0.Y+sy*int(k))
		}

		if k == first {
			fill(dst, image.Rect(p.X+lo, p.Y+lo, p.X+hi+1, p.Y+hi+1), src)
		} else {
			// Consecutive stamps overlap; only the leading edge is new.
			if p.X != prev.X {
				edge := p.X + hi
				if sx < 0 {
					edge = p.X + lo
				}
				fill(dst, image.Rect(edge, p.Y+lo, edge+1, p.Y+hi+1), src)
			}
			if p.Y != prev.Y {
				edge := p.Y + hi
				if sy < 0 {
					edge = p.Y + lo
				}
				fill(dst, image.Rect(p.X+lo, edge, p.X+hi+1, edge+1), src)
			}
		}
		prev = p

		if k == last {
			return
		}
	}
}

// FilledCircle paints every pixel whose distance from center is at most
// radius.
func FilledCircle(dst draw.Image, center image.Point, radius int, c color.Color) {
	if radius < 0 {
		return
	}
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				setPixel(dst, center.X+dx, center.Y+dy, c)
			}
		}
	}
}

// PutText draws text with its baseline starting at org. Scale enlarges the
// glyphs by an integer factor; thickness repeats each stroke that many
// pixels to the right.
func PutText(dst draw.Image, text string, org image.Point, c color.Color, scale, thickness int) {
	if scale < 1 {
		scale = 1
	}
	if thickness < 1 {
		thickness = 1
	}
	src := image.NewUniform(c)

	if scale == 1 {
		for t := 0; t < thickness; t++ {
			d := &font.Drawer{
				Dst:  dst,
				Src:  src,
				Face: labelFace,
				Dot:  fixed.P(org.X+t, org.Y),
			}
			d.DrawString(text)
		}
		return
	}

	// Render once at native size into a mask, then enlarge the mask.
	metrics := labelFace.Metrics()
	ascent := metrics.Ascent.Ceil()
	width := font.MeasureString(labelFace, text).Ceil() + thickness - 1
	height := ascent + metrics.Descent.Ceil()
	if width <= 0 || height <= 0 {
		return
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	for t := 0; t < thickness; t++ {
		d := &font.Drawer{
			Dst:  mask,
			Src:  image.Opaque,
			Face: labelFace,
			Dot:  fixed.P(t, ascent),
		}
		d.DrawString(text)
	}

	scaled := imaging.Resize(mask, width*scale, height*scale, imaging.NearestNeighbor)
	topLeft := image.Pt(org.X, org.Y-ascent*scale)
	r := image.Rectangle{Min: topLeft, Max: topLeft.Add(scaled.Bounds().Size())}
	draw.DrawMask(dst, r, src, image.Point{}, scaled, image.Point{}, draw.Over)
}

// brushSpan returns the inclusive offsets covered by a square brush of the
// given thickness.
func brushSpan(thickness int) (lo, hi int) {
	if thickness < 1 {
		thickness = 1
	}
	lo = -(thickness / 2)
	return lo, lo + thickness - 1
}

// span returns |b-a| and the unit step from a towards b. The distance is
// exact even when b-a overflows int.
func span(a, b int) (uint64, int) {
	if a <= b {
		return uint64(b) - uint64(a), 1
	}
	return uint64(a) - uint64(b), -1
}

// stepWindow returns the range of steps k in [0, n] for which
// origin+dir*k lies within [lo, hi].
func stepWindow(origin, dir int, n uint64, lo, hi int) (first, last uint64, ok bool) {
	if lo > hi {
		return 0, 0, false
	}
	if dir > 0 {
		if origin > hi {
			return 0, 0, false
		}
		if origin < lo {
			first = uint64(lo) - uint64(origin)
		}
		last = uint64(hi) - uint64(origin)
	} else {
		if origin < lo {
			return 0, 0, false
		}
		if origin > hi {
			first = uint64(origin) - uint64(hi)
		}
		last = uint64(origin) - uint64(lo)
	}
	if last > n {
		last = n
	}
	return first, last, first <= last
}

// minorOffset is the minor-axis offset at major step k of a line spanning
// major by minor pixels: floor((2*k*minor + major) / (2*major)). Requires
// k <= major and minor <= major.
func minorOffset(k, minor, major uint64) uint64 {
	if major == 0 {
		return 0
	}
	hi, lo := bits.Mul64(k, minor)
	q, r := bits.Div64(hi, lo, major)
	if r >= major-r {
		q++
	}
	return q
}

// fill paints the part of r that lies within dst.
func fill(dst draw.Image, r image.Rectangle, src image.Image) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, src, image.Point{}, draw.Src)
}

func setPixel(dst draw.Image, x, y int, c color.Color) {
	if !image.Pt(x, y).In(dst.Bounds()) {
		return
	}
	dst.Set(x, y, c)
}
