package buffer

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrIO marks failures to open, stat or read the viewed file.
var ErrIO = errors.New("i/o failure")

type pageStore interface {
	Get(id int64) (*Page, bool)
	Add(id int64, p *Page) bool
	Contains(id int64) bool
	Len() int
}

type mapStore map[int64]*Page

func (m mapStore) Get(id int64) (*Page, bool) {
	p, ok := m[id]
	return p, ok
}

func (m mapStore) Add(id int64, p *Page) bool {
	m[id] = p
	return false
}

func (m mapStore) Contains(id int64) bool {
	_, ok := m[id]
	return ok
}

func (m mapStore) Len() int {
	return len(m)
}

// Cache loads pages of a file on demand and keeps them keyed by page id.
// With a limit of zero pages are kept for the lifetime of the cache;
// a positive limit evicts the least recently used page.
type Cache struct {
	path  string
	size  int64
	pages pageStore
	loads int
}

func NewCache(path string, limit int) (*Cache, error) {
	c := &Cache{path: path}
	if limit <= 0 {
		c.pages = mapStore{}
		return c, nil
	}
	l, err := lru.New[int64, *Page](limit)
	if err != nil {
		return nil, fmt.Errorf("page cache: %w", err)
	}
	c.pages = l
	return c, nil
}

// Size is the file length observed by the most recent load.
func (c *Cache) Size() int64 {
	return c.size
}

func (c *Cache) Contains(id int64) bool {
	return c.pages.Contains(id)
}

func (c *Cache) Len() int {
	return c.pages.Len()
}

// Loads counts the pages read from disk so far.
func (c *Cache) Loads() int {
	return c.loads
}

// Get returns the page covering addr, reading it from the file if needed.
func (c *Cache) Get(addr int64) (*Page, error) {
	if addr < 0 {
		return nil, fmt.Errorf("page cache: negative address %d", addr)
	}
	id := PageID(addr)
	if p, ok := c.pages.Get(id); ok {
		return p, nil
	}

	p, err := c.load(id)
	if err != nil {
		return nil, err
	}
	c.pages.Add(id, p)
	return p, nil
}

func (c *Cache) load(id int64) (*Page, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	c.size = info.Size()

	p := &Page{id: id, start: id * PageSize}
	n, err := f.ReadAt(p.data[:], p.start)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: reading page %d: %v", ErrIO, id, err)
	}
	c.loads++
	log.Printf("loaded page %d (%d bytes) from %s", id, n, c.path)
	return p, nil
}
