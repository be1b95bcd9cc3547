package buffer

import (
	"fmt"
	"os"
)

// ScrollKind selects the step applied by Window.Scroll.
type ScrollKind int

const (
	UpLine ScrollKind = iota
	DownLine
	UpPage
	DownPage
)

// Window is a movable view over a file, addressed by absolute offset.
type Window struct {
	filename string
	offset   int64
	cache    *Cache
	fault    error
}

// Open prepares a window over filename and loads its first page.
func Open(filename string, cachePages int) (*Window, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	c, err := NewCache(filename, cachePages)
	if err != nil {
		return nil, err
	}
	if _, err := c.Get(0); err != nil {
		return nil, err
	}
	return &Window{filename: filename, cache: c}, nil
}

func (w *Window) Filename() string {
	return w.filename
}

// Offset is the absolute address of the first byte on screen.
func (w *Window) Offset() int64 {
	return w.offset
}

func (w *Window) Size() int64 {
	return w.cache.Size()
}

func (w *Window) Cache() *Cache {
	return w.cache
}

// SetAddress moves the window to addr, clamped to [0, Size], and warms the
// page covering it.
func (w *Window) SetAddress(addr int64) {
	if addr < 0 {
		addr = 0
	}
	if addr > w.Size() {
		addr = w.Size()
	}
	w.offset = addr
	if _, err := w.cache.Get(addr); err != nil {
		w.fault = err
	}
}

func (w *Window) Scroll(kind ScrollKind) {
	switch kind {
	case UpLine:
		w.back(LineSize)
	case DownLine:
		w.forward(LineSize)
	case UpPage:
		w.back(PageSize)
	case DownPage:
		w.forward(PageSize)
	}
}

func (w *Window) back(step int64) {
	if w.offset >= step {
		w.SetAddress(w.offset - step)
	} else {
		w.SetAddress(0)
	}
}

// forward never moves past the end of the file; a file shorter than step
// cannot scroll at all.
func (w *Window) forward(step int64) {
	if w.offset+step <= w.Size() {
		w.SetAddress(w.offset + step)
	}
}

// Page returns the page covering addr, loading it on demand.
func (w *Window) Page(addr int64) (*Page, error) {
	p, err := w.cache.Get(addr)
	if err != nil {
		w.fault = err
		return nil, err
	}
	return p, nil
}

// ByteAt returns the byte at addr. Bytes past the end of the file read as
// zero. A failed load is remembered and reported by TakeFault.
func (w *Window) ByteAt(addr int64) (byte, error) {
	p, err := w.Page(addr)
	if err != nil {
		return 0, err
	}
	b, _ := p.ByteAt(addr)
	return b, nil
}

// TakeFault returns and clears the last page load failure.
func (w *Window) TakeFault() error {
	err := w.fault
	w.fault = nil
	return err
}
