package overlay

import (
	"image"
	"image/draw"
)

// Annotator draws detection overlays using a fixed Style.
//
// An Annotator holds no per-frame state and may be shared between
// goroutines as long as each goroutine draws into its own frame.
type Annotator struct {
	style Style
}

// NewAnnotator returns an Annotator that draws with style.
func NewAnnotator(style Style) *Annotator {
	if style.DashLength < 1 {
		style.DashLength = DefaultDashLength
	}
	return &Annotator{style: style}
}

// Style returns the style the Annotator draws with.
func (a *Annotator) Style() Style {
	return a.style
}

// Visualize draws result onto frame and returns frame.
//
// Each detection gets an outlined box and a "<name> (<score>)" label.
// When at least one detection has a rounded score above zero, the centre
// of the best one is marked with a dot, the centre of the frame is marked
// with another, and the two are joined with DrawDashedLine. The best
// detection is the first one whose rounded score is strictly greater than
// every score before it, so ties keep the earlier detection.
//
// The frame is modified in place. A detection without categories stops the
// pass with an *InvalidInputError; detections before it stay drawn and no
// markers are added.
func (a *Annotator) Visualize(frame draw.Image, result DetectionResult) (draw.Image, error) {
	s := a.style
	var best highest

	for i, det := range result.Detections {
		box := det.BoundingBox
		Rectangle(frame, box.Start(), box.End(), s.BoxColor, s.BoxThickness)

		category, err := det.TopCategory()
		if err != nil {
			return nil, &InvalidInputError{Index: i, Reason: "no categories"}
		}

		x, y := s.labelOrigin(box)
		PutText(frame, Label(category), image.Pt(x, y), s.LabelColor, s.FontScale, s.FontThickness)

		best.observe(i, RoundScore(category.Score), box)
	}

	if !best.found {
		return frame, nil
	}

	target := best.box.Center()
	FilledCircle(frame, target, s.MarkerRadius, s.HighlightColor)

	origin := FrameCenter(frame)
	FilledCircle(frame, origin, s.MarkerRadius, s.CenterColor)
	DrawDashedLine(frame, origin, target, s.LineColor, s.LineThickness, s.DashLength)

	return frame, nil
}

// FrameCenter returns the geometric centre of the frame, (width/2,
// height/2) offset by the frame's origin.
func FrameCenter(frame image.Image) image.Point {
	b := frame.Bounds()
	return image.Pt(b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2)
}

// Highlighted describes the detection that Visualize marks.
type Highlighted struct {
	Index       int         `json:"index"`
	Label       string      `json:"label"`
	Probability float64     `json:"probability"`
	Box         BoundingBox `json:"bounding_box"`
	Center      image.Point `json:"center"`
}

// Highlight reports which detection Visualize would mark in result. It
// returns false when result is empty or no rounded score exceeds zero.
// Detections without categories produce an *InvalidInputError.
func Highlight(result DetectionResult) (*Highlighted, bool, error) {
	var best highest
	for i, det := range result.Detections {
		category, err := det.TopCategory()
		if err != nil {
			return nil, false, &InvalidInputError{Index: i, Reason: "no categories"}
		}
		best.observe(i, RoundScore(category.Score), det.BoundingBox)
	}
	if !best.found {
		return nil, false, nil
	}

	det := result.Detections[best.index]
	return &Highlighted{
		Index:       best.index,
		Label:       Label(det.Categories[0]),
		Probability: best.probability,
		Box:         best.box,
		Center:      best.box.Center(),
	}, true, nil
}

// highest tracks the strictly greatest rounded score seen so far.
type highest struct {
	found       bool
	index       int
	probability float64
	box         BoundingBox
}

func (h *highest) observe(index int, probability float64, box BoundingBox) {
	if probability > h.probability {
		h.found = true
		h.index = index
		h.probability = probability
		h.box = box
	}
}
