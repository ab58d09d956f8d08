package audio

import "sync"

// Cursor streams a buffer to the audio thread. Fill is called from the
// device callback while the main thread only watches Remaining.
type Cursor struct {
	mtx            sync.Mutex
	data           []byte
	pos, remaining int
}

func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data, remaining: len(data)}
}

// Fill copies as much of the remaining buffer as fits into dst and zeroes
// the rest of dst. It returns the number of bytes copied.
func (c *Cursor) Fill(dst []byte) int {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	n := 0
	if c.remaining > 0 {
		n = len(dst)
		if n > c.remaining {
			n = c.remaining
		}
		copy(dst, c.data[c.pos:c.pos+n])
		c.pos += n
		c.remaining -= n
	}
	clear(dst[n:])
	return n
}

func (c *Cursor) Remaining() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.remaining
}

func (c *Cursor) Position() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.pos
}

func (c *Cursor) Done() bool {
	return c.Remaining() == 0
}
