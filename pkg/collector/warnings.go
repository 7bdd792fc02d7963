// Copyright 2025 The syscheck Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package collector

// Fixed warning thresholds. Comparisons are strict: a disk at exactly
// 80% used or memory at exactly 500 MiB free does not warn.
const (
	diskWarnPercentUsed = 80.0
	cpuWarnPercent      = 80.0
	memWarnFreeBytes    = 500 * 1024 * 1024
)

// Warning messages, one per thresholded metric group. Network usage
// is purely informational and never warns.
const (
	WarnDiskSpaceLow = "available disk space below 20%"
	WarnCPUUsageHigh = "CPU usage exceeds 80%"
	WarnMemoryLow    = "available memory below 500MB"
)

// Warning reports whether the volume is more than 80% full. An
// undefined percentage (zero total capacity) never warns.
func (s *DiskUsageSample) Warning() (string, bool) {
	pct, err := s.PercentUsed()
	if err != nil || pct <= diskWarnPercentUsed {
		return "", false
	}
	return WarnDiskSpaceLow, true
}

// Warning reports whether the sampled CPU usage exceeds 80%.
func (s *CpuUsageSample) Warning() (string, bool) {
	if s.UsagePercent <= cpuWarnPercent {
		return "", false
	}
	return WarnCPUUsageHigh, true
}

// Warning reports whether less than 500 MiB of memory remains free.
func (s *MemoryUsageSample) Warning() (string, bool) {
	if s.FreeBytes() >= memWarnFreeBytes {
		return "", false
	}
	return WarnMemoryLow, true
}
