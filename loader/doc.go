// Package loader parses ELF, PE and Mach-O executables into a Binary: its
// language id, entry point, image base, sections and known functions.
//
// The format is chosen by magic bytes. A Binary keeps the file contents and
// exposes them by virtual address, either as the executable code range
// (Code) or as an image.Map over every loaded section (Image):
//
//	bin, err := loader.Open("a.out")
//	if err != nil {
//	    return err
//	}
//	code, base, err := bin.Code()
//
// Missing symbol tables are not errors; the entry point is always listed as
// a function.
package loader
