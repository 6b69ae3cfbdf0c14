// stats.go - the counters the controller and simulator maintain as they run.

package main

// Stats is pure state: a snapshot of cycle-accurate bookkeeping. Formatting
// it into the performance report is report.go's job, not this struct's.
type Stats struct {
	TotalCycles      uint64
	InstructionCount uint64
	StallCycles      uint64
	HostBusyCycles   uint64
	UBBusyCycles     uint64
	ACCBusyCycles    uint64
	MXUBusyCycles    uint64
	MMCCount         uint64
}

func NewStats() *Stats {
	return &Stats{}
}
