package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProgramMissingFileReturnsEmptyProgramAndError(t *testing.T) {
	program, err := LoadProgram(filepath.Join(t.TempDir(), "does-not-exist.bin"))
	if err == nil {
		t.Fatalf("expected an error for a missing program file")
	}
	se, ok := err.(*SimError)
	if !ok || se.Kind != KindLoaderMissingFile {
		t.Fatalf("expected KindLoaderMissingFile, got %v", err)
	}
	if len(program) != 0 {
		t.Fatalf("program should be empty on load failure, got %d instructions", len(program))
	}
}

func TestLoadProgramRejectsWrongSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.bin")
	if err := os.WriteFile(path, make([]byte, InstructionRecordSize+1), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := LoadProgram(path)
	se, ok := err.(*SimError)
	if !ok || se.Kind != KindLoaderSizeMismatch {
		t.Fatalf("expected KindLoaderSizeMismatch, got %v", err)
	}
}

func TestLoadProgramDecodesEveryRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.bin")
	want := []Instruction{
		{Opcode: OpRHM, DataAddr: 1, HostAddr: 2, Length: 3},
		{Opcode: OpHLT},
	}
	var buf []byte
	for _, inst := range want {
		buf = append(buf, EncodeInstruction(inst)...)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := LoadProgram(path)
	if err != nil {
		t.Fatalf("LoadProgram returned error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("decoded %d instructions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("instruction %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLoadHostMemoryMissingFileLeavesMemoryZeroed(t *testing.T) {
	host := NewHostMemory(16)
	err := LoadHostMemory(filepath.Join(t.TempDir(), "missing.bin"), host)
	if err == nil {
		t.Fatalf("expected an error for a missing memory file")
	}
	for _, b := range host.mem {
		if b != 0 {
			t.Fatalf("host memory should remain zeroed, got %v", host.mem)
		}
	}
}

func TestLoadHostMemoryRejectsOversizedImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.bin")
	if err := os.WriteFile(path, make([]byte, 32), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	host := NewHostMemory(16)
	err := LoadHostMemory(path, host)
	se, ok := err.(*SimError)
	if !ok || se.Kind != KindLoaderOverflow {
		t.Fatalf("expected KindLoaderOverflow, got %v", err)
	}
}

func TestLoadHostMemoryLoadsImageBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.bin")
	data := []byte{9, 8, 7, 6}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	host := NewHostMemory(16)
	if err := LoadHostMemory(path, host); err != nil {
		t.Fatalf("LoadHostMemory returned error: %v", err)
	}
	for i, b := range data {
		if host.mem[i] != b {
			t.Fatalf("host.mem[%d] = %d, want %d", i, host.mem[i], b)
		}
	}
}
