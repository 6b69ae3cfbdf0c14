// controller.go - the Controller state machine that fetches, decodes and
// dispatches instructions against the datapath components.

/*
controller.go - instruction-stream sequencing

The controller is a single enum plus a step() function, not a set of
per-opcode objects: FETCH advances the instruction pointer and loads
current, DECODE routes to the opcode's first execute sub-state (or halts),
and each execute sub-state either issues a request against exactly one
component this cycle or, if that component is still busy from a previous
request, counts a stall and tries again next cycle. Every state transition
out of an execute sub-state happens in the same cycle the request is
issued - the latency is entirely inside the component, not the controller.
*/

package main

import (
	"encoding/binary"
	"fmt"
)

type controllerState uint8

const (
	stFetch controllerState = iota
	stDecode
	stExecRHMReadHost
	stExecRHMWriteUB
	stExecRWReadHost
	stExecMMCReadUB
	stExecMMCReadFIFO
	stExecMMCExecute
	stExecMMCWriteACC
	stExecACTRun
	stExecWHMReadACC
	stExecWHMWriteHost
	stHalted
)

// Controller owns the instruction stream and the execute-state sequencing.
// It holds pointers to the datapath components it dispatches against rather
// than implementing a generic "component" interface - the dispatch table is
// by opcode and sub-state, not by a shared request/response contract.
type Controller struct {
	host *HostMemory
	ub   *UnifiedBuffer
	fifo *WeightFIFO
	mxu  *SystolicArray
	acc  *Accumulator
	st   *Stats

	program []Instruction
	state   controllerState
	ip      uint32
	current Instruction

	dataBufferA []byte
	dataBufferB []byte
}

func NewController(host *HostMemory, ub *UnifiedBuffer, fifo *WeightFIFO, mxu *SystolicArray, acc *Accumulator, st *Stats) *Controller {
	return &Controller{host: host, ub: ub, fifo: fifo, mxu: mxu, acc: acc, st: st, state: stFetch}
}

func (c *Controller) LoadProgram(program []Instruction) {
	c.program = program
}

func (c *Controller) Halted() bool {
	return c.state == stHalted
}

// Step advances the controller exactly one cycle.
func (c *Controller) Step() {
	switch c.state {
	case stFetch:
		c.tickFetch()
	case stDecode:
		c.tickDecode()
	case stHalted:
		// terminal
	default:
		c.tickExecute()
	}
}

func (c *Controller) tickFetch() {
	if c.ip >= uint32(len(c.program)) {
		c.state = stHalted
		return
	}
	c.current = c.program[c.ip]
	c.ip++
	c.st.InstructionCount++
	c.state = stDecode
}

func (c *Controller) tickDecode() {
	switch c.current.Opcode {
	case OpRHM:
		c.state = stExecRHMReadHost
	case OpWHM:
		c.state = stExecWHMReadACC
	case OpRW:
		c.state = stExecRWReadHost
	case OpMMC:
		c.state = stExecMMCReadUB
		c.st.MMCCount++
	case OpACT:
		c.state = stExecACTRun
	case OpHLT:
		fmt.Printf("CYCLE %d: DECODE -> HLT\n", c.st.TotalCycles)
		c.state = stHalted
	default:
		fmt.Printf("CYCLE %d: ERROR: Unknown opcode\n", c.st.TotalCycles)
		c.state = stHalted
	}
}

func (c *Controller) tickExecute() {
	switch c.state {
	case stExecRHMReadHost:
		if c.host.Idle() {
			data, _ := c.host.ReadRequest(c.current.HostAddr, c.current.Length)
			c.dataBufferA = data
			c.state = stExecRHMWriteUB
		} else {
			c.st.StallCycles++
		}

	case stExecRHMWriteUB:
		if c.host.Idle() && c.ub.Idle() {
			c.ub.WriteRequest(c.current.DataAddr, c.dataBufferA)
			c.state = stFetch
		} else {
			c.st.StallCycles++
		}

	case stExecRWReadHost:
		if c.host.Idle() {
			data, _ := c.host.ReadRequest(c.current.HostAddr, c.current.Length)
			c.dataBufferA = data
			c.fifo.Load(c.dataBufferA)
			c.state = stFetch
		} else {
			c.st.StallCycles++
		}

	case stExecMMCReadUB:
		if c.ub.Idle() {
			c.ub.ReadRequest(c.current.DataAddr, c.current.Length)
			c.state = stExecMMCReadFIFO
		} else {
			c.st.StallCycles++
		}

	case stExecMMCReadFIFO:
		if c.ub.Idle() {
			c.dataBufferA = c.ub.GetReadResult()
			c.dataBufferB = c.fifo.Read()
			c.state = stExecMMCExecute
		} else {
			c.st.StallCycles++
		}

	case stExecMMCExecute:
		if c.mxu.Idle() {
			c.mxu.ExecuteRequest(c.dataBufferA, c.dataBufferB)
			c.state = stExecMMCWriteACC
		} else {
			c.st.StallCycles++
		}

	case stExecMMCWriteACC:
		if c.mxu.Idle() && c.acc.Idle() {
			c.dataBufferA = c.mxu.GetResult()
			c.acc.WriteRequest(c.current.HostAddr, c.dataBufferA)
			c.state = stFetch
		} else {
			c.st.StallCycles++
		}

	case stExecACTRun:
		if c.acc.Idle() {
			c.acc.ActivateRequest(c.current.DataAddr, c.current.Length)
			c.state = stFetch
		} else {
			c.st.StallCycles++
		}

	case stExecWHMReadACC:
		if c.acc.Idle() {
			c.acc.ReadRequest(c.current.DataAddr, c.current.Length)
			c.state = stExecWHMWriteHost
		} else {
			c.st.StallCycles++
		}

	case stExecWHMWriteHost:
		if c.acc.Idle() && c.host.Idle() {
			c.dataBufferA = c.acc.GetReadResult()
			c.host.WriteRequest(c.current.HostAddr, c.dataBufferA)
			if len(c.dataBufferA) >= 4 {
				first := int32(binary.LittleEndian.Uint32(c.dataBufferA[:4]))
				fmt.Printf("CYCLE %d: WHM Issued. First 32-bit result: %d\n", c.st.TotalCycles, first)
			}
			c.state = stFetch
		} else {
			c.st.StallCycles++
		}

	default:
		c.state = stHalted
	}
}
