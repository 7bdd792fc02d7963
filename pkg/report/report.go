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

// Package report formats a collector.Snapshot for standard output,
// either as the classic five text blocks or as a JSON document.
package report

import (
	"fmt"
	"io"

	"github.com/opensnap/syscheck/pkg/collector"
)

// WriteText prints the metric blocks in presentation order: identity,
// disk, CPU, memory, network. A failed group prints a one-line
// explanatory message in place of its body; absent fields print N/A.
func WriteText(w io.Writer, snap *collector.Snapshot) {
	writeIdentity(w, snap)
	writeDisk(w, snap)
	writeCPU(w, snap)
	writeMemory(w, snap)
	writeNetwork(w, snap)
}

func writeIdentity(w io.Writer, snap *collector.Snapshot) {
	fmt.Fprintln(w, "------SYSTEM INFORMATION------")
	if snap.IdentityErr != nil {
		fmt.Fprintf(w, "system information unavailable: %v\n\n", snap.IdentityErr)
		return
	}
	id := snap.Identity
	fmt.Fprintf(w, "OS: %s\n", id.OSDescription)
	fmt.Fprintf(w, "Machine Name: %s\n", id.MachineName)
	fmt.Fprintf(w, "Logged in User: %s\n", orNA(id.CurrentUser))
	fmt.Fprintf(w, "Boot Time: %s\n", id.BootTime.Format(bootTimeLayout))
	fmt.Fprintln(w)
}

func writeDisk(w io.Writer, snap *collector.Snapshot) {
	fmt.Fprintln(w, "----------DISK USAGE----------")
	if snap.DiskErr != nil {
		fmt.Fprintf(w, "%v\n\n", snap.DiskErr)
		return
	}
	d := snap.Disk
	fmt.Fprintf(w, "Disk: %s\n", d.RootPath)
	fmt.Fprintf(w, "Total: %sGB\n", formatFloat(toGB(d.TotalBytes)))
	fmt.Fprintf(w, "Used: %sGB\n", formatFloat(toGB(d.UsedBytes)))
	fmt.Fprintf(w, "Free: %sGB\n", formatFloat(toGB(d.FreeBytes())))
	if pct, err := d.PercentUsed(); err != nil {
		fmt.Fprintln(w, "% Disk used: N/A")
	} else {
		fmt.Fprintf(w, "%% Disk used: %s%%\n", formatFloat(pct))
	}
	if msg, warn := d.Warning(); warn {
		fmt.Fprintf(w, "Warning: %s\n", msg)
	}
	fmt.Fprintln(w)
}

func writeCPU(w io.Writer, snap *collector.Snapshot) {
	fmt.Fprintln(w, "-----------CPU USAGE-----------")
	if snap.CPUErr != nil {
		fmt.Fprintf(w, "cpu usage unavailable: %v\n\n", snap.CPUErr)
		return
	}
	c := snap.CPU
	if c.FrequencyMHz != nil {
		fmt.Fprintf(w, "CPU Frequency: %sMHz\n", formatFloat(*c.FrequencyMHz))
	} else {
		fmt.Fprintln(w, "CPU Frequency: N/A")
	}
	if c.PhysicalCores != nil {
		fmt.Fprintf(w, "Physical Cores: %d\n", *c.PhysicalCores)
	} else {
		fmt.Fprintln(w, "Physical Cores: N/A")
	}
	fmt.Fprintf(w, "CPU Usage: %s%%\n", formatFloat(c.UsagePercent))
	if msg, warn := c.Warning(); warn {
		fmt.Fprintf(w, "Warning: %s\n", msg)
	}
	fmt.Fprintln(w)
}

func writeMemory(w io.Writer, snap *collector.Snapshot) {
	fmt.Fprintln(w, "---------MEMORY USAGE---------")
	if snap.MemoryErr != nil {
		fmt.Fprintf(w, "memory usage unavailable: %v\n\n", snap.MemoryErr)
		return
	}
	m := snap.Memory
	fmt.Fprintf(w, "Total: %sMB\n", formatFloat(toMB(m.TotalBytes)))
	fmt.Fprintf(w, "Used: %sMB\n", formatFloat(toMB(m.UsedBytes)))
	fmt.Fprintf(w, "Free: %sMB\n", formatFloat(toMB(m.FreeBytes())))
	if pct, err := m.PercentUsed(); err != nil {
		fmt.Fprintln(w, "% Memory used: N/A")
	} else {
		fmt.Fprintf(w, "%% Memory used: %s%%\n", formatFloat(pct))
	}
	if msg, warn := m.Warning(); warn {
		fmt.Fprintf(w, "Warning: %s\n", msg)
	}
	fmt.Fprintln(w)
}

func writeNetwork(w io.Writer, snap *collector.Snapshot) {
	fmt.Fprintln(w, "---------NETWORK USAGE---------")
	if snap.NetworkErr != nil {
		fmt.Fprintf(w, "network usage unavailable: %v\n\n", snap.NetworkErr)
		return
	}
	n := snap.Network
	fmt.Fprintf(w, "MB sent: %s\n", formatFloat(toMB(n.BytesSent)))
	fmt.Fprintf(w, "MB received: %s\n", formatFloat(toMB(n.BytesRecv)))
	fmt.Fprintf(w, "Packets sent: %s\n", formatCount(n.PacketsSent))
	fmt.Fprintf(w, "Packets received: %s\n", formatCount(n.PacketsRecv))
	fmt.Fprintln(w)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
