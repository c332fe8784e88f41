// Package sysmon describes the host natcalc runs on: CPU model, core count,
// memory and the instruction set extensions that matter to multi-precision
// arithmetic. Calibration profiles and run headers record this description.
package sysmon

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	xcpu "golang.org/x/sys/cpu"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Host describes the machine. Fields gopsutil cannot read are left zero.
type Host struct {
	CPUModel     string   `json:"cpu_model,omitempty"`
	LogicalCores int      `json:"logical_cores"`
	TotalMemory  uint64   `json:"total_memory,omitempty"`
	Features     []string `json:"features,omitempty"`
}

// Describe reads the host description.
func Describe() Host {
	h := Host{LogicalCores: runtime.NumCPU(), Features: CPUFeatures()}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		h.CPUModel = infos[0].ModelName
	}
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		h.LogicalCores = n
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		h.TotalMemory = vmem.Total
	}
	return h
}

// CPUFeatures lists the detected extensions that speed up word
// multiplication and carry chains.
func CPUFeatures() []string {
	var f []string
	add := func(ok bool, name string) {
		if ok {
			f = append(f, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(xcpu.X86.HasBMI2, "bmi2")
		add(xcpu.X86.HasADX, "adx")
		add(xcpu.X86.HasAVX2, "avx2")
		add(xcpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		add(xcpu.ARM64.HasASIMD, "asimd")
		add(xcpu.ARM64.HasATOMICS, "atomics")
		add(xcpu.ARM64.HasSHA512, "sha512")
	}
	return f
}

// Fingerprint hashes the fields that affect arithmetic speed: the
// architecture, CPU model, logical core count and features. Total memory
// is left out.
func (h Host) Fingerprint() uint64 {
	d := xxhash.New()
	for _, s := range []string{runtime.GOARCH, h.CPUModel, strconv.Itoa(h.LogicalCores), strings.Join(h.Features, ",")} {
		d.WriteString(s)
		d.WriteString("\x00")
	}
	return d.Sum64()
}
