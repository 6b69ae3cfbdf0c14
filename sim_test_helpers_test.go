package main

import (
	"encoding/binary"
	"testing"
)

// newSimRig builds a Simulator with the given program already loaded and
// the given bytes preloaded into host memory at address 0.
func newSimRig(program []Instruction, hostMem []byte, memSize int) *Simulator {
	if memSize <= 0 {
		memSize = DefaultHostMemorySize
	}
	sim := NewSimulator(SimulatorConfig{HostMemorySize: memSize})
	sim.Controller.LoadProgram(program)
	sim.Host.Preload(hostMem)
	return sim
}

func runToHalt(t *testing.T, sim *Simulator) {
	t.Helper()
	if err := sim.Run(); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if !sim.Controller.Halted() {
		t.Fatalf("simulator did not halt")
	}
}

func putBytesAt(buf []byte, addr int, data []byte) {
	copy(buf[addr:], data)
}

func int32sToBytes(vals []int32) []byte {
	out := make([]byte, len(vals)*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(out[i*4:], uint32(v))
	}
	return out
}

func bytesToInt32s(data []byte) []int32 {
	out := make([]int32, len(data)/4)
	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return out
}

// identityTile16 builds a 16x16 int8 identity matrix, serialized row-major.
func identityTile16() []byte {
	out := make([]byte, mxuInputBytes)
	for i := 0; i < mxuTileDim; i++ {
		out[i*mxuTileDim+i] = 1
	}
	return out
}

func filledTile16(v byte) []byte {
	out := make([]byte, mxuInputBytes)
	for i := range out {
		out[i] = v
	}
	return out
}
