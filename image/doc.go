// Package image provides the address spaces the engine reads code from.
//
// Memory maps one borrowed buffer at a base address; Map stitches several
// regions (executable sections) together. Both answer fill requests for any
// address: positions outside the mapped ranges are zero filled and the
// backing slices are never indexed out of bounds.
package image
