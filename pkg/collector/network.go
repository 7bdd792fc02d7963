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

import (
	"errors"

	"github.com/shirou/gopsutil/net"
)

// CollectNetwork reads counters aggregated across all interfaces,
// cumulative since the network stack initialized.
func CollectNetwork() (*NetworkUsageSample, error) {
	counters, err := net.IOCounters(false)
	if err != nil {
		return nil, &PlatformQueryError{Facility: "network counters", Err: err}
	}
	if len(counters) == 0 {
		return nil, &PlatformQueryError{Facility: "network counters", Err: errors.New("no aggregate counters returned")}
	}

	agg := counters[0]
	return &NetworkUsageSample{
		BytesSent:   agg.BytesSent,
		BytesRecv:   agg.BytesRecv,
		PacketsSent: agg.PacketsSent,
		PacketsRecv: agg.PacketsRecv,
	}, nil
}
