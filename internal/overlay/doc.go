// Package overlay draws detection results onto image frames.
//
// The package renders an annotation layer over a frame that a detection
// pipeline has already analysed: one outlined box and one text label per
// detection, plus a pair of marker dots and a connecting line that relate
// the highest-confidence detection to the centre of the frame.
//
// # Ownership
//
// Frames are borrowed, not copied. Annotator.Visualize writes into the
// draw.Image it is given and returns that same value so calls can be
// chained. Callers that need the original pixels must clone the frame
// first (see imaging.FrameCache.Frame). Concurrent writers to the same
// frame must be serialised by the caller.
//
// # Coordinate System
//
// Coordinates follow the image package convention: (0,0) is the top-left
// corner, X grows rightward and Y grows downward. Bounding boxes are given
// as an origin plus width and height. Pixel writes outside the frame are
// silently clipped.
//
// # Colors
//
// Style colors are RGBA. The BGR tuples used by OpenCV-based pipelines map
// as follows: green (0,255,0) stays green, red (0,0,255) becomes
// color.RGBA{255, 0, 0, 255}.
//
// # Dashed Lines
//
// DrawDashedLine samples a fixed 1000-step phase range at 2*dashLength
// intervals and joins every consecutive sample. The result is a continuous
// polyline of short segments whose count does not depend on the distance
// between the end points. Renderers that compare output against frames
// produced by the OpenCV overlay rely on this, so it is kept as is.
package overlay
