package overlay

import (
	"fmt"
	"image"
)

// BoundingBox is an axis-aligned box described by its top-left origin and
// its size, in pixels.
type BoundingBox struct {
	OriginX int `json:"origin_x"`
	OriginY int `json:"origin_y"`
	Width   int `json:"width"`
	Height  int `json:"height"`
}

// Start returns the top-left corner of the box.
func (b BoundingBox) Start() image.Point {
	return image.Pt(b.OriginX, b.OriginY)
}

// End returns the corner opposite the origin.
func (b BoundingBox) End() image.Point {
	return image.Pt(b.OriginX+b.Width, b.OriginY+b.Height)
}

// Rect returns the box as an image.Rectangle spanning Start to End.
func (b BoundingBox) Rect() image.Rectangle {
	return image.Rectangle{Min: b.Start(), Max: b.End()}
}

// Center returns the midpoint of the box using floor division, so boxes
// with negative coordinates round toward negative infinity.
func (b BoundingBox) Center() image.Point {
	s, e := b.Start(), b.End()
	return image.Pt(floorDiv(s.X+e.X, 2), floorDiv(s.Y+e.Y, 2))
}

// Category is one ranked class guess for a detection.
type Category struct {
	Index        int     `json:"index"`
	Score        float64 `json:"score"`
	DisplayName  string  `json:"display_name,omitempty"`
	CategoryName string  `json:"category_name"`
}

// Detection is one detected object: a box and its categories ranked from
// most to least likely.
type Detection struct {
	BoundingBox BoundingBox `json:"bounding_box"`
	Categories  []Category  `json:"categories"`
}

// TopCategory returns the highest-ranked category. Only this category is
// ever rendered. A detection without categories violates the input
// contract and yields ErrInvalidInput.
func (d Detection) TopCategory() (Category, error) {
	if len(d.Categories) == 0 {
		return Category{}, ErrInvalidInput
	}
	return d.Categories[0], nil
}

// DetectionResult is the ordered output of one detector invocation.
type DetectionResult struct {
	Detections []Detection `json:"detections"`
}

// Label formats the text drawn next to a detection box, e.g. "cat (0.83)".
func Label(c Category) string {
	return fmt.Sprintf("%s (%s)", c.CategoryName, FormatScore(RoundScore(c.Score)))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
