package system

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// RecommendedWorkers sizes the render pool: one worker per logical CPU, but
// never more frame buffers in flight than a quarter of the available memory.
func RecommendedWorkers(frameBytes int) int {
	workers, err := cpu.Counts(true)
	if err != nil || workers <= 0 {
		workers = runtime.NumCPU()
	}

	if frameBytes > 0 {
		if vm, err := mem.VirtualMemory(); err == nil && vm.Available > 0 {
			// Each worker holds its frame plus roughly one queued frame.
			budget := vm.Available / 4
			limit := int(budget / uint64(frameBytes*2))
			if limit < workers {
				workers = limit
			}
		}
	}

	if workers < 1 {
		workers = 1
	}
	return workers
}
