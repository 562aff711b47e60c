// Package calx provides interpolation primitives over numeric ranges:
// linear and cyclic bounds, lazy fraction sequence generators, and the
// small scalar helpers the color and terminal glue is built on.
//
// Angles are degrees throughout; one revolution is FullCircle (360).
package calx
