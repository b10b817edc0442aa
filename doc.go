// Package sliderpic draws pictures with the body of a single slider.
//
// A slider body is rendered as a tube around the slider path, shaded by
// the distance from the path. By placing path segments at suitable
// distances from the sample points of a fine grid, every grid point can be
// given one of the colours of the body gradient, the border colour, or
// black. [Encoder.Picturate] computes such a path for a picture, and
// [Recolor] shows how the picture will look.
//
// When the slider has a duration, the path also has to carry the slider
// ball to prescribed positions at every time unit. The encoder then splits
// the picture into chunks and pads every time unit to the same path
// length.
package sliderpic

//go:generate go run ./testcases/export
