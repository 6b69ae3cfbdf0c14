// loader.go - loads program.bin and memory.bin into a fresh Simulator.

package main

import (
	"fmt"
	"os"
)

// LoadProgram reads a program binary and decodes it into an instruction
// stream. A missing file or a size that is not a multiple of the record size
// both print an error and return an empty program - the caller still gets a
// valid (zero-length) program, which makes the controller halt on its very
// first FETCH rather than crash.
func LoadProgram(path string) ([]Instruction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Bad program file: %s\n", path)
		return nil, newSimError("LoadProgram", KindLoaderMissingFile, fmt.Sprintf("cannot open %s", path), err)
	}
	if len(data)%InstructionRecordSize != 0 {
		fmt.Fprintln(os.Stderr, "ERROR: Program file size is wrong!")
		return nil, newSimError("LoadProgram", KindLoaderSizeMismatch, "program file size is not a multiple of the instruction record size", nil)
	}

	n := len(data) / InstructionRecordSize
	program := make([]Instruction, n)
	for i := 0; i < n; i++ {
		record := data[i*InstructionRecordSize : (i+1)*InstructionRecordSize]
		inst, err := DecodeInstruction(record)
		if err != nil {
			return nil, newSimError("LoadProgram", KindLoaderSizeMismatch, "malformed instruction record", err)
		}
		program[i] = inst
	}
	return program, nil
}

// LoadHostMemory reads a memory image into host. A missing file leaves host
// zeroed; an oversized file is rejected and host is left zeroed too, rather
// than silently truncating the image.
func LoadHostMemory(path string, host *HostMemory) error {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Bad memory file: %s\n", path)
		return newSimError("LoadHostMemory", KindLoaderMissingFile, fmt.Sprintf("cannot open %s", path), err)
	}
	if len(data) > host.Size() {
		fmt.Fprintln(os.Stderr, "ERROR: Memory file too big!")
		return newSimError("LoadHostMemory", KindLoaderOverflow, "memory file exceeds host memory capacity", nil)
	}
	host.Preload(data)
	return nil
}
