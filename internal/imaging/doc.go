// Package imaging loads, copies, encodes and saves the frames the overlay
// server annotates.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward.
//
// # Thread Safety
//
// FrameCache is safe for concurrent use. Frames handed out by
// FrameCache.Frame are private copies and may be drawn on without
// synchronisation; the cached originals are never modified.
//
// # Formats
//
// Frames are decoded from PNG, JPEG or BMP by content. When saving, the
// encoder is chosen from the output file extension.
//
// # Memory
//
// Cached frames stay in memory until Evict or Clear is called.
package imaging
