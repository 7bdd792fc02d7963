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
	"time"

	"github.com/shirou/gopsutil/cpu"

	"github.com/opensnap/syscheck/pkg/log"
)

// CollectCPU samples aggregate CPU usage by blocking for the given
// window and comparing busy-time deltas, matching OS-utilization
// semantics. A zero window takes an instantaneous, less stable
// reading and should be avoided. Frequency and physical core count
// are best-effort: when the platform does not expose them they are
// reported absent, never defaulted.
func CollectCPU(window time.Duration) (*CpuUsageSample, error) {
	percents, err := cpu.Percent(window, false)
	if err != nil {
		return nil, &PlatformQueryError{Facility: "cpu usage", Err: err}
	}
	if len(percents) == 0 {
		return nil, &PlatformQueryError{Facility: "cpu usage", Err: errors.New("no aggregate reading returned")}
	}

	sample := &CpuUsageSample{UsagePercent: percents[0]}

	if cores, err := cpu.Counts(false); err != nil {
		log.Warn("physical core count unavailable: %v", err)
	} else if cores > 0 {
		sample.PhysicalCores = &cores
	}

	if infos, err := cpu.Info(); err != nil {
		log.Warn("cpu frequency unavailable: %v", err)
	} else if len(infos) > 0 && infos[0].Mhz > 0 {
		mhz := infos[0].Mhz
		sample.FrequencyMHz = &mhz
	}

	return sample, nil
}
