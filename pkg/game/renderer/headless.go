// Package renderer defines the consumers of placement commands and the
// session shared by the interactive viewers.
package renderer

import (
	"log"

	"cavegen/pkg/game/placement"
)

// Headless counts placements and draws nothing.
type Headless struct {
	Counts map[placement.Kind]int
	Total  int
}

// NewHeadless creates a headless renderer
func NewHeadless() *Headless {
	return &Headless{Counts: map[placement.Kind]int{}}
}

// Init is a no-op
func (h *Headless) Init() {}

// Reset clears the counters
func (h *Headless) Reset() {
	h.Counts = map[placement.Kind]int{}
	h.Total = 0
}

// Place counts one command
func (h *Headless) Place(cmd placement.Command) {
	h.Counts[cmd.Kind]++
	h.Total++
}

// Flush logs the totals
func (h *Headless) Flush() error {
	log.Printf("headless: %d placements, %d floor, %d obstacles", h.Total,
		h.Counts[placement.KindFloor], h.Counts[placement.KindObstacle])
	return nil
}
