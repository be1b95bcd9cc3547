package buffer

const (
	// PageSize is the number of file bytes held by one cached page.
	PageSize = 256
	// LineSize is the number of bytes shown on one dump line.
	LineSize = 10
)

// Page is an immutable snapshot of PageSize contiguous file bytes.
type Page struct {
	id    int64
	start int64
	data  [PageSize]byte
}

// PageID returns the id of the page covering addr.
func PageID(addr int64) int64 {
	return addr / PageSize
}

func (p *Page) ID() int64 {
	return p.id
}

// Start is the absolute offset of the first byte in the page.
func (p *Page) Start() int64 {
	return p.start
}

func (p *Page) Len() int {
	return len(p.data)
}

// ByteAt returns the byte at absolute offset addr, or false when addr lies
// outside the page.
func (p *Page) ByteAt(addr int64) (byte, bool) {
	if addr < p.start || addr >= p.start+PageSize {
		return 0, false
	}
	return p.data[addr-p.start], true
}

// Bytes returns a copy of the page contents.
func (p *Page) Bytes() []byte {
	out := make([]byte, PageSize)
	copy(out, p.data[:])
	return out
}
