package overlay

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The dashed line is a fixed-point-count polyline, not a true dash
// pattern: the number of samples never depends on the line's length.
func TestDashSamples_FixedCount(t *testing.T) {
	pairs := []struct {
		name       string
		start, end image.Point
	}{
		{"one pixel", image.Pt(5, 5), image.Pt(6, 5)},
		{"short diagonal", image.Pt(0, 0), image.Pt(3, 4)},
		{"long diagonal", image.Pt(0, 0), image.Pt(1000, 1000)},
		{"reversed", image.Pt(640, 360), image.Pt(12, 7)},
		{"negative", image.Pt(-50, 20), image.Pt(30, -90)},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			samples := DashSamples(p.start, p.end, DefaultDashLength)
			require.Len(t, samples, 100)
			assert.Equal(t, p.start, samples[0])
		})
	}
}

func TestDashSamples_DashLength(t *testing.T) {
	tests := []struct {
		dashLength int
		want       int
	}{
		{1, 500},
		{3, 167},
		{5, 100},
		{7, 72},
		{499, 2},
		{500, 1},
		{0, 100},  // falls back to the default
		{-4, 100}, // falls back to the default
	}

	for _, tt := range tests {
		samples := DashSamples(image.Pt(0, 0), image.Pt(100, 0), tt.dashLength)
		assert.Len(t, samples, tt.want, "dashLength %d", tt.dashLength)
	}
}

func TestDashSamples_Truncates(t *testing.T) {
	samples := DashSamples(image.Pt(0, 0), image.Pt(3, 0), DefaultDashLength)
	require.Len(t, samples, 100)

	for i, s := range samples {
		phase := float64(i*10) / 1000
		assert.Equal(t, int(0+3*phase), s.X, "sample %d", i)
		assert.Equal(t, 0, s.Y)
	}

	assert.Equal(t, 0, samples[33].X) // 0.99
	assert.Equal(t, 1, samples[34].X) // 1.02
	assert.Equal(t, 1, samples[66].X) // 1.98
	assert.Equal(t, 2, samples[67].X) // 2.01
	assert.Equal(t, 2, samples[99].X) // 2.97, the end point is never sampled
}

func TestDashSamples_TruncatesTowardZero(t *testing.T) {
	samples := DashSamples(image.Pt(0, 0), image.Pt(-3, 0), DefaultDashLength)

	assert.Equal(t, 0, samples[1].X, "-0.03 truncates to 0, not -1")
	assert.Equal(t, -1, samples[34].X, "-1.02 truncates to -1, not -2")
	assert.Equal(t, -2, samples[99].X)
}

func TestDrawDashedLine_JoinsEverySample(t *testing.T) {
	start, end := image.Pt(50, 50), image.Pt(7, 91)

	got := newFrame(100, 100)
	DrawDashedLine(got, start, end, Green, 1, DefaultDashLength)

	want := newFrame(100, 100)
	samples := DashSamples(start, end, DefaultDashLength)
	for i := 0; i < len(samples)-1; i++ {
		Line(want, samples[i], samples[i+1], Green, 1)
	}

	assert.Equal(t, want.Pix, got.Pix)
}

func TestDrawDashedLine_NoGaps(t *testing.T) {
	frame := newFrame(100, 10)
	DrawDashedLine(frame, image.Pt(0, 5), image.Pt(99, 5), Green, 1, DefaultDashLength)

	// Continuous up to the last sample at phase 0.99 (x = 98).
	for x := 0; x <= 98; x++ {
		assert.Equal(t, Green, frame.RGBAAt(x, 5), "x=%d", x)
	}
	assert.Equal(t, black, frame.RGBAAt(99, 5), "end point lies past the last sample")
}

func TestDrawDashedLine_ShortLineCollapses(t *testing.T) {
	frame := newFrame(20, 20)
	DrawDashedLine(frame, image.Pt(10, 10), image.Pt(11, 10), Green, 1, DefaultDashLength)

	assert.Equal(t, Green, frame.RGBAAt(10, 10))
	assert.Equal(t, black, frame.RGBAAt(11, 10))
}
