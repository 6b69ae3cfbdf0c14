// simulator.go - top-level tick loop wiring the datapath and the controller together.

package main

// DefaultMaxCycles is the reference 5,000,000-cycle safety cap.
const DefaultMaxCycles = 5_000_000

// SimulatorConfig carries the construction-time knobs spec.md §6 calls out
// as build-time or construction-time constants: the host memory size and the
// cycle safety cap. Zero values are replaced with the reference defaults by
// NewSimulator.
type SimulatorConfig struct {
	HostMemorySize int
	MaxCycles      uint64
}

// Simulator owns every component plus the controller that drives them, and
// exposes the single-threaded, cooperative tick loop.
type Simulator struct {
	Host  *HostMemory
	UB    *UnifiedBuffer
	Fifo  *WeightFIFO
	MXU   *SystolicArray
	ACC   *Accumulator
	Stats *Stats

	Controller *Controller
	MaxCycles  uint64
}

func NewSimulator(cfg SimulatorConfig) *Simulator {
	if cfg.HostMemorySize <= 0 {
		cfg.HostMemorySize = DefaultHostMemorySize
	}
	if cfg.MaxCycles == 0 {
		cfg.MaxCycles = DefaultMaxCycles
	}

	host := NewHostMemory(cfg.HostMemorySize)
	ub := NewUnifiedBuffer()
	fifo := NewWeightFIFO()
	mxu := NewSystolicArray()
	acc := NewAccumulator()
	st := NewStats()

	return &Simulator{
		Host:       host,
		UB:         ub,
		Fifo:       fifo,
		MXU:        mxu,
		ACC:        acc,
		Stats:      st,
		Controller: NewController(host, ub, fifo, mxu, acc, st),
		MaxCycles:  cfg.MaxCycles,
	}
}

// Tick advances the simulator exactly one cycle, in three phases:
//  1. sample busy flags (observes the state left over from the previous tick)
//  2. advance every component one cycle
//  3. advance the controller one step (observes the state components just
//     settled into this tick)
func (s *Simulator) Tick() {
	s.Stats.TotalCycles++

	if !s.Host.Idle() {
		s.Stats.HostBusyCycles++
	}
	if !s.UB.Idle() {
		s.Stats.UBBusyCycles++
	}
	if !s.MXU.Idle() {
		s.Stats.MXUBusyCycles++
	}
	if !s.ACC.Idle() {
		s.Stats.ACCBusyCycles++
	}

	s.UB.Tick()
	s.Fifo.Tick()
	s.MXU.Tick()
	s.ACC.Tick()
	s.Host.Tick()

	s.Controller.Step()
}

// Run drives the tick loop until the controller halts or the cycle cap is
// exceeded, whichever comes first. A timeout is reported as an error but the
// caller is expected to still print the report, matching the reference's
// "break, then report anyway" behavior.
func (s *Simulator) Run() error {
	for !s.Controller.Halted() {
		s.Tick()
		if s.Stats.TotalCycles > s.MaxCycles {
			return newSimError("Run", KindSimulationTimeout, "simulation exceeded the maximum cycle count", nil)
		}
	}
	return nil
}
