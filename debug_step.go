// debug_step.go - interactive single-step mode for the -step driver flag.

/*
debug_step.go - single-tick debugging

RunInteractive puts stdin into raw mode so single keystrokes reach the
program without waiting on a newline, then drives the same Simulator.Tick
loop main.go uses for unattended runs, one keystroke at a time:

	n, space or enter   step one cycle
	r                    run to completion (or timeout) without further prompts
	q                    quit, leaving the simulation wherever it stopped

This mirrors the run/step/quit shape of a debug REPL without pulling in a
line-editing library - raw mode plus single-byte reads is enough for a
three-command loop.
*/

package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// RunInteractive drives sim one keystroke at a time until it halts, the
// cycle cap is exceeded, or the user quits.
func RunInteractive(sim *Simulator) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "debug_step: failed to set raw mode, falling back to run-to-completion: %v\n", err)
		return sim.Run()
	}
	defer term.Restore(fd, oldState)

	fmt.Print("\r\nCommands: n/space/enter = step, r = run to completion, q = quit\r\n")
	printControllerState(sim)

	buf := make([]byte, 1)
	for !sim.Controller.Halted() {
		if _, err := os.Stdin.Read(buf); err != nil {
			return nil
		}
		switch buf[0] {
		case 'n', ' ', '\r', '\n':
			sim.Tick()
			if sim.Stats.TotalCycles > sim.MaxCycles {
				return newSimError("RunInteractive", KindSimulationTimeout, "simulation exceeded the maximum cycle count", nil)
			}
			printControllerState(sim)
		case 'r':
			for !sim.Controller.Halted() {
				sim.Tick()
				if sim.Stats.TotalCycles > sim.MaxCycles {
					return newSimError("RunInteractive", KindSimulationTimeout, "simulation exceeded the maximum cycle count", nil)
				}
			}
			printControllerState(sim)
		case 'q':
			return nil
		}
	}
	return nil
}

func printControllerState(sim *Simulator) {
	fmt.Printf("\rcycle=%d ip=%d instr=%d stall=%d halted=%v\r\n",
		sim.Stats.TotalCycles, sim.Controller.ip, sim.Stats.InstructionCount,
		sim.Stats.StallCycles, sim.Controller.Halted())
}
