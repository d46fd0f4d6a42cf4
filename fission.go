package fission

// Image is the address space the engine reads instruction bytes from.
// Implementations answer byte-fill requests for absolute addresses and must
// never fail: bytes the image does not back are reported as zero.
type Image interface {
	// LoadFill fills dst with the bytes starting at addr.
	LoadFill(dst []byte, addr uint64)
	// ArchType names the kind of image, used in diagnostics.
	ArchType() string
	// AdjustVMA shifts the image's base address.
	AdjustVMA(adjust int64)
}

// Bounded is an Image that knows which addresses it backs.
type Bounded interface {
	Image
	// Contains reports whether addr maps to a backing byte.
	Contains(addr uint64) bool
	// Base returns the address of the first backing byte.
	Base() uint64
	// Len returns the number of backing bytes.
	Len() int
}
