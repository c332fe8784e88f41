package metrics

import rtmetrics "runtime/metrics"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc  uint64 // bytes of live and unswept heap objects
	TotalAlloc uint64 // cumulative bytes allocated
	Sys        uint64 // bytes mapped from the OS
	NumGC      uint32
}

var memorySamples = []string{
	"/memory/classes/heap/objects:bytes",
	"/gc/heap/allocs:bytes",
	"/memory/classes/total:bytes",
	"/gc/cycles/total:gc-cycles",
}

// MemoryCollector samples runtime memory statistics without stopping the
// world. The verbose run summary and the heap gauge read through it.
type MemoryCollector struct{}

// NewMemoryCollector returns a MemoryCollector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads the current statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	samples := make([]rtmetrics.Sample, len(memorySamples))
	for i, name := range memorySamples {
		samples[i].Name = name
	}
	rtmetrics.Read(samples)

	value := func(i int) uint64 {
		if samples[i].Value.Kind() != rtmetrics.KindUint64 {
			return 0
		}
		return samples[i].Value.Uint64()
	}
	return MemorySnapshot{
		HeapAlloc:  value(0),
		TotalAlloc: value(1),
		Sys:        value(2),
		NumGC:      uint32(value(3)),
	}
}

// Delta returns the allocation made and GC cycles run between two
// snapshots.
func (s MemorySnapshot) Delta(before MemorySnapshot) (allocated uint64, gcCycles uint32) {
	return s.TotalAlloc - before.TotalAlloc, s.NumGC - before.NumGC
}
