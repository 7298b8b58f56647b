// Package world provides the geometric primitives shared by every room:
// rectangles in logical screen space, door sides, item kinds and the
// screen-proportional metrics all gameplay geometry is derived from.
package world
