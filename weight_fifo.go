// weight_fifo.go - Weight FIFO: a zero-latency queue of weight tiles awaiting MMC.

package main

// WeightFIFO has no busy/cycles-remaining state of its own (see the Open
// Question decision in SPEC_FULL.md §11) — it only ever reports idle, and
// Tick is a no-op kept so the simulator can advance it alongside the other
// components without a type switch.
type WeightFIFO struct {
	tiles [][]byte
}

func NewWeightFIFO() *WeightFIFO {
	return &WeightFIFO{}
}

// Load enqueues a weight tile, most often the RW opcode's host-read result.
func (f *WeightFIFO) Load(tile []byte) {
	f.tiles = append(f.tiles, tile)
}

// Read dequeues the oldest tile. An empty FIFO returns an empty (not nil)
// slice, matching the reference's empty-queue read.
func (f *WeightFIFO) Read() []byte {
	if len(f.tiles) == 0 {
		return []byte{}
	}
	tile := f.tiles[0]
	f.tiles = f.tiles[1:]
	return tile
}

func (f *WeightFIFO) Len() int {
	return len(f.tiles)
}

func (f *WeightFIFO) Idle() bool {
	return true
}

func (f *WeightFIFO) Tick() {}
