package overlay

import "image/color"

// Default drawing parameters.
const (
	DefaultBoxThickness  = 2
	DefaultLineThickness = 1
	DefaultMargin        = 10 // pixels
	DefaultRowSize       = 10 // pixels
	DefaultFontScale     = 1
	DefaultFontThickness = 1
	DefaultMarkerRadius  = 5
	DefaultDashLength    = 5
)

var (
	// Green is used for boxes, labels, the frame centre dot and the line.
	Green = color.RGBA{R: 0, G: 255, B: 0, A: 255}

	// Red marks the centre of the highest-probability detection.
	Red = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Style holds the colors and measurements used by an Annotator.
type Style struct {
	BoxColor       color.RGBA
	LabelColor     color.RGBA
	HighlightColor color.RGBA // dot at the best detection's centre
	CenterColor    color.RGBA // dot at the frame centre
	LineColor      color.RGBA

	BoxThickness  int
	LineThickness int

	// Labels are drawn at (origin_x+Margin, origin_y+Margin+RowSize).
	Margin  int
	RowSize int

	FontScale     int
	FontThickness int

	MarkerRadius int
	DashLength   int
}

// DefaultStyle returns the standard overlay style.
func DefaultStyle() Style {
	return Style{
		BoxColor:       Green,
		LabelColor:     Green,
		HighlightColor: Red,
		CenterColor:    Green,
		LineColor:      Green,
		BoxThickness:   DefaultBoxThickness,
		LineThickness:  DefaultLineThickness,
		Margin:         DefaultMargin,
		RowSize:        DefaultRowSize,
		FontScale:      DefaultFontScale,
		FontThickness:  DefaultFontThickness,
		MarkerRadius:   DefaultMarkerRadius,
		DashLength:     DefaultDashLength,
	}
}

// labelOrigin returns the baseline origin for a detection's label.
func (s Style) labelOrigin(b BoundingBox) (x, y int) {
	return b.OriginX + s.Margin, b.OriginY + s.Margin + s.RowSize
}
