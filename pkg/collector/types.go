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

import "time"

// SystemIdentity describes the host as seen at snapshot time.
// CurrentUser is empty when the user lookup failed; the rest of the
// identity comes from a single host query and is always populated.
type SystemIdentity struct {
	OSDescription string    `json:"os_description"`
	MachineName   string    `json:"machine_name"`
	CurrentUser   string    `json:"current_user,omitempty"`
	BootTime      time.Time `json:"boot_time"`
}

// DiskUsageSample holds raw byte counters for one mounted volume.
// Invariant: 0 <= UsedBytes <= TotalBytes.
type DiskUsageSample struct {
	RootPath   string `json:"root_path"`
	TotalBytes uint64 `json:"total_bytes"`
	UsedBytes  uint64 `json:"used_bytes"`
}

// FreeBytes derives the unused capacity.
func (s *DiskUsageSample) FreeBytes() uint64 {
	return s.TotalBytes - s.UsedBytes
}

// PercentUsed derives the used fraction in [0,100]. It returns
// ErrDivisionUndefined when the total capacity is zero.
func (s *DiskUsageSample) PercentUsed() (float64, error) {
	return percentUsed(s.TotalBytes, s.UsedBytes)
}

// CpuUsageSample holds one blocking-window CPU reading. FrequencyMHz
// and PhysicalCores are nil when the platform does not expose them.
type CpuUsageSample struct {
	FrequencyMHz  *float64 `json:"frequency_mhz,omitempty"`
	PhysicalCores *int     `json:"physical_cores,omitempty"`
	UsagePercent  float64  `json:"usage_percent"`
}

// MemoryUsageSample holds raw virtual-memory byte counters.
// Invariant: 0 <= UsedBytes <= TotalBytes.
type MemoryUsageSample struct {
	TotalBytes uint64 `json:"total_bytes"`
	UsedBytes  uint64 `json:"used_bytes"`
}

// FreeBytes derives the unused capacity.
func (s *MemoryUsageSample) FreeBytes() uint64 {
	return s.TotalBytes - s.UsedBytes
}

// PercentUsed derives the used fraction in [0,100]. It returns
// ErrDivisionUndefined when the total capacity is zero.
func (s *MemoryUsageSample) PercentUsed() (float64, error) {
	return percentUsed(s.TotalBytes, s.UsedBytes)
}

// NetworkUsageSample holds counters cumulative since the OS network
// stack initialized, not since process start. Two snapshots are not
// comparable without differencing, which this tool does not perform.
type NetworkUsageSample struct {
	BytesSent   uint64 `json:"bytes_sent"`
	BytesRecv   uint64 `json:"bytes_recv"`
	PacketsSent uint64 `json:"packets_sent"`
	PacketsRecv uint64 `json:"packets_recv"`
}

func percentUsed(total, used uint64) (float64, error) {
	if total == 0 {
		return 0, ErrDivisionUndefined
	}
	return float64(used) / float64(total) * 100, nil
}
