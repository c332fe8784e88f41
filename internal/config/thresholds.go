package config

import "github.com/agbru/natcalc/internal/nat"

// Threshold resolution chain (highest priority first):
//   1. CLI flags (--dc-threshold, --barrett-threshold, ...)
//   2. Environment variables (NATCALC_DC_THRESHOLD, ...)
//   3. Cached calibration profile (~/.natcalc_calibration.json)
//   4. Adaptive estimate (this file)
//   5. nat.DefaultThresholds

// ApplyAdaptiveThresholds fills every threshold still at zero with the
// estimate for the build's word size.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	est := EstimateThresholds()
	fill := func(dst *int, v int) {
		if *dst == 0 {
			*dst = v
		}
	}
	fill(&cfg.DCThreshold, est.DivDCThreshold)
	fill(&cfg.BarrettThreshold, est.DivMU)
	fill(&cfg.BarrettBalanceThreshold, est.DivMUPI)
	fill(&cfg.InvNewtonThreshold, est.InvNewton)
	fill(&cfg.KaratsubaThreshold, est.Karatsuba)
	return cfg
}

// EstimateThresholds returns crossovers in words without benchmarking.
// Crossovers in bits are roughly independent of the word size, so 32-bit
// builds double the 64-bit word counts.
func EstimateThresholds() nat.Thresholds {
	th := nat.Thresholds{
		DivDCThreshold: EstimateDCThreshold(),
		DivMU:          2094,
		DivMUPI:        74,
		InvNewton:      789,
		Karatsuba:      32,
	}
	if nat.W == 32 {
		th.DivMU *= 2
		th.DivMUPI *= 2
		th.InvNewton *= 2
		th.Karatsuba *= 2
	}
	return th
}

// EstimateDCThreshold returns the schoolbook to divide-and-conquer
// crossover in words.
func EstimateDCThreshold() int {
	if nat.W == 64 {
		return 85
	}
	return 170
}
