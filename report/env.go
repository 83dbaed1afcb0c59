package report

import (
	"log"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Environment describes the machine a report was produced on.
type Environment struct {
	GoVersion  string
	GOOS       string
	GOARCH     string
	GOMAXPROCS int
	NumCPU     int

	CPUBrand      string
	PhysicalCores int
	LogicalCores  int
	CPUFeatures   []string // SIMD features relevant to float math

	Platform      string
	KernelVersion string
	TotalMemory   uint64 // bytes
}

var simdFeatures = []cpuid.FeatureID{
	cpuid.SSE2, cpuid.SSE4, cpuid.AVX, cpuid.AVX2, cpuid.FMA3, cpuid.AVX512F,
	cpuid.ASIMD, cpuid.FPHP,
}

// CollectEnvironment probes the Go runtime, the CPU and the host. Host probe
// failures are logged to logger, when given, and leave those fields empty.
func CollectEnvironment(logger *log.Logger) Environment {
	env := Environment{
		GoVersion:     runtime.Version(),
		GOOS:          runtime.GOOS,
		GOARCH:        runtime.GOARCH,
		GOMAXPROCS:    runtime.GOMAXPROCS(0),
		NumCPU:        runtime.NumCPU(),
		CPUBrand:      cpuid.CPU.BrandName,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
	}
	for _, f := range simdFeatures {
		if cpuid.CPU.Supports(f) {
			env.CPUFeatures = append(env.CPUFeatures, f.String())
		}
	}

	if info, err := host.Info(); err != nil {
		logf(logger, "Failed to read host info: %v", err)
	} else {
		env.Platform = strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
		env.KernelVersion = info.KernelVersion
	}

	if vm, err := mem.VirtualMemory(); err != nil {
		logf(logger, "Failed to read memory info: %v", err)
	} else {
		env.TotalMemory = vm.Total
	}
	return env
}

func logf(logger *log.Logger, format string, args ...any) {
	if logger != nil {
		logger.Printf(format, args...)
	}
}
