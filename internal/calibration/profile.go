// Package calibration measures the kernel crossovers on the current host
// and persists them as a JSON profile that later runs reload.
package calibration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/agbru/natcalc/internal/config"
	"github.com/agbru/natcalc/internal/nat"
	"github.com/agbru/natcalc/internal/sysmon"
)

// CurrentProfileVersion is bumped whenever the profile layout or the
// meaning of a threshold changes; older profiles are then ignored.
const CurrentProfileVersion = 1

// DefaultProfileFileName is the profile's file name in the home directory.
const DefaultProfileFileName = ".natcalc_calibration.json"

// CalibrationProfile records measured crossovers together with the host
// they were measured on.
type CalibrationProfile struct {
	ProfileVersion int       `json:"profile_version"`
	CalibratedAt   time.Time `json:"calibrated_at"`

	NumCPU    int         `json:"num_cpu"`
	GOARCH    string      `json:"goarch"`
	GOOS      string      `json:"goos"`
	GoVersion string      `json:"go_version"`
	WordSize  int         `json:"word_size"`
	Host      sysmon.Host `json:"host"`

	// HostFingerprint identifies the CPU; zero skips the check.
	HostFingerprint uint64 `json:"host_fingerprint,omitempty"`
	// HostCPUPercent is the system CPU usage when measuring started.
	HostCPUPercent float64 `json:"host_cpu_percent"`

	// Crossovers in words.
	DCThreshold             int `json:"dc_threshold"`
	BarrettThreshold        int `json:"barrett_threshold"`
	BarrettBalanceThreshold int `json:"barrett_balance_threshold"`
	InvNewtonThreshold      int `json:"inv_newton_threshold"`
	KaratsubaThreshold      int `json:"karatsuba_threshold"`

	// CalibrationTime is the wall time the measurement took.
	CalibrationTime string `json:"calibration_time"`
}

// NewProfile returns an empty profile stamped with the current host.
func NewProfile() *CalibrationProfile {
	host := sysmon.Describe()
	return &CalibrationProfile{
		ProfileVersion:  CurrentProfileVersion,
		CalibratedAt:    time.Now(),
		NumCPU:          runtime.NumCPU(),
		GOARCH:          runtime.GOARCH,
		GOOS:            runtime.GOOS,
		GoVersion:       runtime.Version(),
		WordSize:        nat.W,
		Host:            host,
		HostFingerprint: host.Fingerprint(),
	}
}

// IsValid reports whether the profile was measured on a host like this one
// with the current layout. A nil profile is invalid.
func (p *CalibrationProfile) IsValid() bool {
	return p != nil &&
		p.ProfileVersion == CurrentProfileVersion &&
		p.NumCPU == runtime.NumCPU() &&
		p.GOARCH == runtime.GOARCH &&
		p.WordSize == nat.W &&
		(p.HostFingerprint == 0 || p.HostFingerprint == sysmon.Describe().Fingerprint())
}

// IsStale reports whether the profile is older than maxAge. A nil profile
// is stale.
func (p *CalibrationProfile) IsStale(maxAge time.Duration) bool {
	return p == nil || time.Since(p.CalibratedAt) > maxAge
}

// Thresholds returns the profile's crossovers over the defaults; zero
// fields keep the default.
func (p *CalibrationProfile) Thresholds() nat.Thresholds {
	return p.apply(config.AppConfig{Algo: "auto"}).Thresholds()
}

// apply fills the thresholds of cfg that are still zero.
func (p *CalibrationProfile) apply(cfg config.AppConfig) config.AppConfig {
	fill := func(dst *int, v int) {
		if *dst == 0 && v > 0 {
			*dst = v
		}
	}
	fill(&cfg.DCThreshold, p.DCThreshold)
	fill(&cfg.BarrettThreshold, p.BarrettThreshold)
	fill(&cfg.BarrettBalanceThreshold, p.BarrettBalanceThreshold)
	fill(&cfg.InvNewtonThreshold, p.InvNewtonThreshold)
	fill(&cfg.KaratsubaThreshold, p.KaratsubaThreshold)
	return cfg
}

func (p *CalibrationProfile) String() string {
	return fmt.Sprintf("calibration profile v%d (%s/%s, %d CPUs, %d-bit words, %s): dc=%d barrett=%d barrett-balance=%d inv-newton=%d karatsuba=%d words",
		p.ProfileVersion, p.GOOS, p.GOARCH, p.NumCPU, p.WordSize, p.CalibratedAt.Format(time.RFC3339),
		p.DCThreshold, p.BarrettThreshold, p.BarrettBalanceThreshold, p.InvNewtonThreshold, p.KaratsubaThreshold)
}

// SaveProfile writes the profile as indented JSON, creating the directory
// if needed.
func (p *CalibrationProfile) SaveProfile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create profile directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

func loadProfile(path string) (*CalibrationProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p CalibrationProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", path, err)
	}
	return &p, nil
}

// LoadOrCreateProfile loads the profile at path, or returns a fresh one and
// false when it is missing, unreadable or invalid for this host.
func LoadOrCreateProfile(path string) (*CalibrationProfile, bool) {
	if p, err := loadProfile(path); err == nil && p.IsValid() {
		return p, true
	}
	return NewProfile(), false
}

// GetDefaultProfilePath returns ~/.natcalc_calibration.json, or the file
// name alone when the home directory is unknown.
func GetDefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultProfileFileName
	}
	return filepath.Join(home, DefaultProfileFileName)
}

// LoadCachedCalibration fills the unset thresholds of cfg from a valid
// profile at path (the default path when empty). It reports whether a
// profile was applied.
func LoadCachedCalibration(cfg config.AppConfig, path string) (config.AppConfig, bool) {
	if path == "" {
		path = GetDefaultProfilePath()
	}
	p, err := loadProfile(path)
	if err != nil || !p.IsValid() {
		return cfg, false
	}
	return p.apply(cfg), true
}
