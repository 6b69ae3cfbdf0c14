// main.go - entry point for the TPU simulator.

/*
main.go - driver

License: GPLv3 or later
*/

package main

import (
	"fmt"
	"os"
)

func boilerPlate() {
	fmt.Println("--- Booting TPU Simulator ---")
}

func usage() {
	fmt.Println("Usage: tpu [-step] <program.bin> <memory.bin> [host-mem-bytes] [max-cycles]")
}

func main() {
	boilerPlate()

	args := os.Args[1:]

	step := false
	if len(args) > 0 && args[0] == "-step" {
		step = true
		args = args[1:]
	}

	if len(args) < 2 {
		usage()
		os.Exit(1)
	}

	programPath := args[0]
	memoryPath := args[1]

	cfg := SimulatorConfig{}
	if len(args) >= 3 {
		fmt.Sscanf(args[2], "%d", &cfg.HostMemorySize)
	}
	if len(args) >= 4 {
		fmt.Sscanf(args[3], "%d", &cfg.MaxCycles)
	}

	sim := NewSimulator(cfg)

	loaderFailed := false

	program, err := LoadProgram(programPath)
	if err != nil {
		loaderFailed = true
	}
	sim.Controller.LoadProgram(program)

	if err := LoadHostMemory(memoryPath, sim.Host); err != nil {
		loaderFailed = true
	}

	fmt.Println("\n--- RUNNING CYCLE-ACCURATE SIMULATION ---")

	var runErr error
	if step {
		runErr = RunInteractive(sim)
	} else {
		runErr = sim.Run()
	}
	if runErr != nil {
		fmt.Printf("ERROR: %v\n", runErr)
	}

	fmt.Println("--- SIMULATION HALTED ---")

	PrintReport(sim.Stats)

	if loaderFailed {
		os.Exit(1)
	}
}
