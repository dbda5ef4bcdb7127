package core

import "crypto/md5"

// DefaultHistory is the number of generations remembered for cycle detection.
const DefaultHistory = 6

// History remembers hashes of recent generations so still lifes and short
// oscillators can be recognised.
type History struct {
	size   int
	hashes [][md5.Size]byte
}

// NewHistory returns a History keeping the last size generations.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistory
	}
	return &History{size: size, hashes: make([][md5.Size]byte, 0, size)}
}

// Observe records a generation and returns the period of the cycle it closes,
// or 0 when the generation has not been seen in the remembered window. A
// still life reports 1, a blinker 2.
func (h *History) Observe(cells []uint8) int {
	sum := md5.Sum(cells)
	period := 0
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] == sum {
			period = len(h.hashes) - i
			break
		}
	}
	if len(h.hashes) == h.size {
		copy(h.hashes, h.hashes[1:])
		h.hashes = h.hashes[:h.size-1]
	}
	h.hashes = append(h.hashes, sum)
	return period
}

// Reset forgets all recorded generations.
func (h *History) Reset() { h.hashes = h.hashes[:0] }
