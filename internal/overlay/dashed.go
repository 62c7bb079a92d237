package overlay

import (
	"image"
	"image/color"
	"image/draw"
)

// dashResolution is the number of phase steps the line is divided into
// before sampling. It is fixed, so the sample count never depends on the
// length of the line.
const dashResolution = 1000

// DashSamples returns the points DrawDashedLine joins between start and
// end.
//
// Samples are taken at phase i/1000 for i = 0, 2*dashLength, 4*dashLength,
// ... while i < 1000. Coordinates are truncated toward zero, not rounded.
// The default dash length of 5 always yields 100 samples. A dashLength
// below 1 is replaced by DefaultDashLength.
func DashSamples(start, end image.Point, dashLength int) []image.Point {
	if dashLength < 1 {
		dashLength = DefaultDashLength
	}
	step := dashLength * 2
	dX := float64(end.X - start.X)
	dY := float64(end.Y - start.Y)

	samples := make([]image.Point, 0, (dashResolution+step-1)/step)
	for i := 0; i < dashResolution; i += step {
		phase := float64(i) / dashResolution
		x := int(float64(start.X) + dX*phase)
		y := int(float64(start.Y) + dY*phase)
		samples = append(samples, image.Pt(x, y))
	}
	return samples
}

// DrawDashedLine draws the line from start to end as a chain of short
// segments joining consecutive DashSamples.
//
// Every consecutive pair is joined, including the pairs a true dash pattern
// would leave blank, so the visible result is a continuous polyline that
// stops at the last sample (phase 0.99 with the default dash length) rather
// than exactly at end.
func DrawDashedLine(dst draw.Image, start, end image.Point, c color.Color, thickness, dashLength int) {
	samples := DashSamples(start, end, dashLength)
	for i := 0; i+1 < len(samples); i++ {
		Line(dst, samples[i], samples[i+1], c, thickness)
	}
}
