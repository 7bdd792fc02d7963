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

package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/opensnap/syscheck/pkg/collector"
)

// document is the JSON shape of one snapshot. Failed groups carry an
// error string instead of sample fields; derived values and warnings
// are included so consumers do not recompute the threshold rules.
type document struct {
	SnapshotID string      `json:"snapshot_id"`
	Taken      time.Time   `json:"taken"`
	Identity   identityDoc `json:"identity"`
	Disk       capacityDoc `json:"disk"`
	CPU        cpuDoc      `json:"cpu"`
	Memory     capacityDoc `json:"memory"`
	Network    networkDoc  `json:"network"`
}

type identityDoc struct {
	*collector.SystemIdentity
	Error string `json:"error,omitempty"`
}

// capacityDoc serves both disk and memory: raw counters plus the
// derived free-byte and percent-used values.
type capacityDoc struct {
	RootPath    string   `json:"root_path,omitempty"`
	TotalBytes  uint64   `json:"total_bytes,omitempty"`
	UsedBytes   uint64   `json:"used_bytes,omitempty"`
	FreeBytes   *uint64  `json:"free_bytes,omitempty"`
	PercentUsed *float64 `json:"percent_used,omitempty"`
	Warning     string   `json:"warning,omitempty"`
	Error       string   `json:"error,omitempty"`
}

type cpuDoc struct {
	*collector.CpuUsageSample
	Warning string `json:"warning,omitempty"`
	Error   string `json:"error,omitempty"`
}

type networkDoc struct {
	*collector.NetworkUsageSample
	Error string `json:"error,omitempty"`
}

// WriteJSON encodes the snapshot as an indented JSON document.
func WriteJSON(w io.Writer, snap *collector.Snapshot) error {
	doc := document{
		SnapshotID: snap.ID,
		Taken:      snap.Taken,
	}

	if snap.IdentityErr != nil {
		doc.Identity.Error = snap.IdentityErr.Error()
	} else {
		doc.Identity.SystemIdentity = snap.Identity
	}

	if snap.DiskErr != nil {
		doc.Disk.Error = snap.DiskErr.Error()
	} else {
		d := snap.Disk
		doc.Disk = capacityDoc{
			RootPath:   d.RootPath,
			TotalBytes: d.TotalBytes,
			UsedBytes:  d.UsedBytes,
		}
		free := d.FreeBytes()
		doc.Disk.FreeBytes = &free
		if pct, err := d.PercentUsed(); err == nil {
			doc.Disk.PercentUsed = &pct
		}
		doc.Disk.Warning, _ = d.Warning()
	}

	if snap.CPUErr != nil {
		doc.CPU.Error = snap.CPUErr.Error()
	} else {
		doc.CPU.CpuUsageSample = snap.CPU
		doc.CPU.Warning, _ = snap.CPU.Warning()
	}

	if snap.MemoryErr != nil {
		doc.Memory.Error = snap.MemoryErr.Error()
	} else {
		m := snap.Memory
		doc.Memory = capacityDoc{
			TotalBytes: m.TotalBytes,
			UsedBytes:  m.UsedBytes,
		}
		free := m.FreeBytes()
		doc.Memory.FreeBytes = &free
		if pct, err := m.PercentUsed(); err == nil {
			doc.Memory.PercentUsed = &pct
		}
		doc.Memory.Warning, _ = m.Warning()
	}

	if snap.NetworkErr != nil {
		doc.Network.Error = snap.NetworkErr.Error()
	} else {
		doc.Network.NetworkUsageSample = snap.Network
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
