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

// Package collector queries the operating system for five metric
// groups (identity, disk, CPU, memory, network), derives percentages
// and free-space values, and evaluates fixed warning thresholds. All
// queries are read-only and each group is an independent, stateless
// step: a failure in one group never prevents the others from
// collecting.
package collector

import (
	"time"

	"github.com/google/uuid"

	"github.com/opensnap/syscheck/pkg/log"
)

// Snapshot is one single-shot collection pass. A nil sample means the
// group failed; the matching error field carries the cause. Only an
// identity failure is considered fatal by the caller.
type Snapshot struct {
	ID    string
	Taken time.Time

	Identity *SystemIdentity
	Disk     *DiskUsageSample
	CPU      *CpuUsageSample
	Memory   *MemoryUsageSample
	Network  *NetworkUsageSample

	IdentityErr error
	DiskErr     error
	CPUErr      error
	MemoryErr   error
	NetworkErr  error
}

// Collect runs every metric group once and returns the aggregate.
// Identity runs first so the disk root-path convention can use the
// detected OS name; diskRoot, when non-empty, overrides that
// convention. Group errors are recorded on the snapshot and logged,
// never propagated.
func Collect(window time.Duration, diskRoot string) *Snapshot {
	snap := &Snapshot{
		ID:    uuid.NewString(),
		Taken: time.Now(),
	}
	log.Info("collecting host snapshot %s", snap.ID)

	snap.Identity, snap.IdentityErr = CollectIdentity()
	if snap.IdentityErr != nil {
		log.Error("identity collection failed: %v", snap.IdentityErr)
	}

	if diskRoot == "" {
		osName := ""
		if snap.Identity != nil {
			osName = snap.Identity.OSDescription
		}
		diskRoot = RootPath(osName)
	}
	snap.Disk, snap.DiskErr = CollectDisk(diskRoot)
	if snap.DiskErr != nil {
		log.Warn("disk collection failed: %v", snap.DiskErr)
	}

	snap.CPU, snap.CPUErr = CollectCPU(window)
	if snap.CPUErr != nil {
		log.Warn("cpu collection failed: %v", snap.CPUErr)
	}

	snap.Memory, snap.MemoryErr = CollectMemory()
	if snap.MemoryErr != nil {
		log.Warn("memory collection failed: %v", snap.MemoryErr)
	}

	snap.Network, snap.NetworkErr = CollectNetwork()
	if snap.NetworkErr != nil {
		log.Warn("network collection failed: %v", snap.NetworkErr)
	}

	return snap
}
