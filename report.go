// report.go - turns a Stats snapshot into the printed performance report.

package main

import "fmt"

const (
	opsPerMMC     = 16.0 * 16.0 * 16.0 * 2.0 // multiply + add per MAC, 16x16x16 MACs per tile
	clockSpeedMHz = 500.0
)

// PrintReport prints the performance report in the same section order and
// wording as the reference implementation. A run with zero cycles or zero
// instructions prints a one-line "no operations" report instead of dividing
// by zero.
func PrintReport(st *Stats) {
	fmt.Println("\n--- PERFORMANCE REPORT ---")
	if st.TotalCycles == 0 || st.InstructionCount == 0 {
		fmt.Println("No operations performed.")
		return
	}

	cpi := float64(st.TotalCycles) / float64(st.InstructionCount)
	fmt.Println("Core Metrics:")
	fmt.Printf("  Total Cycles:       %d\n", st.TotalCycles)
	fmt.Printf("  Instructions Exec:  %d\n", st.InstructionCount)
	fmt.Printf("  Cycles Per Instr (CPI): %.2f\n", cpi)

	stallPercent := float64(st.StallCycles) / float64(st.TotalCycles) * 100.0
	fmt.Println("\nStall Analysis:")
	fmt.Printf("  Controller Stall Cycles: %d (%.2f %% of total)\n", st.StallCycles, stallPercent)

	hostUtil := float64(st.HostBusyCycles) / float64(st.TotalCycles) * 100.0
	ubUtil := float64(st.UBBusyCycles) / float64(st.TotalCycles) * 100.0
	accUtil := float64(st.ACCBusyCycles) / float64(st.TotalCycles) * 100.0
	mxuUtil := float64(st.MXUBusyCycles) / float64(st.TotalCycles) * 100.0
	fmt.Println("\nComponent Utilization:")
	fmt.Printf("  Host Memory Bus:  %d cycles (%.2f %%)\n", st.HostBusyCycles, hostUtil)
	fmt.Printf("  Unified Buffer (UB): %d cycles (%.2f %%)\n", st.UBBusyCycles, ubUtil)
	fmt.Printf("  Accumulator (ACC): %d cycles (%.2f %%)\n", st.ACCBusyCycles, accUtil)
	fmt.Printf("  Matrix Unit (MXU): %d cycles (%.2f %%)\n", st.MXUBusyCycles, mxuUtil)

	totalOps := float64(st.MMCCount) * opsPerMMC
	totalTimeSec := float64(st.TotalCycles) / (clockSpeedMHz * 1e6)
	gops := (totalOps / totalTimeSec) / 1e9

	fmt.Printf("\nPerformance (Assuming %.1f MHz Clock):\n", clockSpeedMHz)
	fmt.Printf("  Total Operations (MACs): %.2f\n", totalOps/2.0)
	fmt.Printf("  Total Time:          %.2f us\n", totalTimeSec*1e6)
	fmt.Printf("  Effective GOPS:      %.2f\n", gops)
	fmt.Println("--- END OF REPORT ---")
}
