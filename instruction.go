// instruction.go - ISA definition and on-disk instruction decode.

/*
instruction.go - instruction stream format

The program binary is a flat array of 16-byte fixed-width records: one byte
of opcode, three bytes of padding (kept for alignment with the reference
record layout), and three little-endian uint32 fields. Every opcode uses the
same three fields but gives them different meanings — see controller.go for
how each opcode interprets DataAddr/HostAddr/Length.
*/

package main

import "encoding/binary"

// OpCode tags the six operations the controller understands.
type OpCode byte

const (
	OpRHM OpCode = 0x01 // Read Host Memory -> Unified Buffer
	OpWHM OpCode = 0x02 // Write Host Memory <- Accumulator
	OpRW  OpCode = 0x03 // Read Weights -> Weight FIFO
	OpMMC OpCode = 0x04 // Matrix Multiply Compute
	OpACT OpCode = 0x05 // Activate (ReLU)
	OpHLT OpCode = 0xFF // Halt
)

// InstructionRecordSize is the fixed width, in bytes, of one on-disk
// instruction record.
const InstructionRecordSize = 16

// Instruction is one decoded instruction-stream entry. All three operand
// fields are present regardless of opcode; each opcode's micro-sequence in
// controller.go reads only the fields it needs.
type Instruction struct {
	Opcode   OpCode
	DataAddr uint32
	HostAddr uint32
	Length   uint32
}

// DecodeInstruction parses one 16-byte record: opcode (1 byte), 3 bytes of
// padding, then DataAddr, HostAddr, Length as little-endian uint32s.
func DecodeInstruction(record []byte) (Instruction, error) {
	if len(record) != InstructionRecordSize {
		return Instruction{}, newSimError("DecodeInstruction", KindLoaderSizeMismatch,
			"instruction record is not 16 bytes", nil)
	}
	return Instruction{
		Opcode:   OpCode(record[0]),
		DataAddr: binary.LittleEndian.Uint32(record[4:8]),
		HostAddr: binary.LittleEndian.Uint32(record[8:12]),
		Length:   binary.LittleEndian.Uint32(record[12:16]),
	}, nil
}

// EncodeInstruction is the inverse of DecodeInstruction, used by tests that
// build program.bin images in memory.
func EncodeInstruction(inst Instruction) []byte {
	record := make([]byte, InstructionRecordSize)
	record[0] = byte(inst.Opcode)
	binary.LittleEndian.PutUint32(record[4:8], inst.DataAddr)
	binary.LittleEndian.PutUint32(record[8:12], inst.HostAddr)
	binary.LittleEndian.PutUint32(record[12:16], inst.Length)
	return record
}
