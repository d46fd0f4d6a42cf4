package image

import (
	"sort"
)

// Region is one contiguous mapped range of a Map.
type Region struct {
	Name string
	Addr uint64
	Data []byte
}

func (r Region) end() uint64 { return r.Addr + uint64(len(r.Data)) }

// Map is an image assembled from several non-overlapping regions, such as
// the sections of an executable. Unmapped addresses read as zero.
type Map struct {
	regions []Region
	name    string
}

// NewMap builds a map from regions. Empty regions are dropped and the rest
// are ordered by address; where two regions overlap the earlier one wins.
func NewMap(name string, regions ...Region) *Map {
	rs := make([]Region, 0, len(regions))
	for _, r := range regions {
		if len(r.Data) == 0 || r.end() < r.Addr {
			continue
		}
		rs = append(rs, r)
	}
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].Addr < rs[j].Addr })

	out := rs[:0]
	for _, r := range rs {
		if n := len(out); n > 0 && r.Addr < out[n-1].end() {
			prev := out[n-1]
			if r.end() <= prev.end() {
				continue
			}
			cut := prev.end() - r.Addr
			r = Region{Name: r.Name, Addr: prev.end(), Data: r.Data[cut:]}
		}
		out = append(out, r)
	}
	return &Map{regions: out, name: name}
}

// Regions returns the mapped regions in address order.
func (m *Map) Regions() []Region { return m.regions }

// find returns the index of the region containing addr, or -1.
func (m *Map) find(addr uint64) int {
	i := sort.Search(len(m.regions), func(i int) bool { return m.regions[i].end() > addr })
	if i < len(m.regions) && m.regions[i].Addr <= addr {
		return i
	}
	return -1
}

// LoadFill implements fission.Image.
func (m *Map) LoadFill(dst []byte, addr uint64) {
	clear(dst)
	for _, r := range m.regions {
		NewMemory(r.Data, r.Addr).fillInto(dst, addr)
	}
}

// ArchType implements fission.Image.
func (m *Map) ArchType() string { return m.name }

// AdjustVMA implements fission.Image by sliding every region.
func (m *Map) AdjustVMA(adjust int64) {
	for i := range m.regions {
		mem := NewMemory(m.regions[i].Data, m.regions[i].Addr)
		mem.AdjustVMA(adjust)
		m.regions[i].Addr = mem.Base()
	}
}

// Contains reports whether any region backs addr.
func (m *Map) Contains(addr uint64) bool { return m.find(addr) >= 0 }

// Base returns the lowest mapped address.
func (m *Map) Base() uint64 {
	if len(m.regions) == 0 {
		return 0
	}
	return m.regions[0].Addr
}

// Len returns the span from Base to the end of the last region.
func (m *Map) Len() int {
	if len(m.regions) == 0 {
		return 0
	}
	return int(m.regions[len(m.regions)-1].end() - m.regions[0].Addr)
}

// Slice returns the bytes backing [addr, addr+n) when a single region covers
// the start address; the result is cut at the region's end.
func (m *Map) Slice(addr uint64, n int) ([]byte, bool) {
	i := m.find(addr)
	if i < 0 {
		return nil, false
	}
	r := m.regions[i]
	data := r.Data[addr-r.Addr:]
	if n >= 0 && n < len(data) {
		data = data[:n]
	}
	return data, true
}
