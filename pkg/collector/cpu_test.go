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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestCollectCPULive samples the real host with a short window.
func TestCollectCPULive(t *testing.T) {
	start := time.Now()
	sample, err := CollectCPU(100 * time.Millisecond)
	elapsed := time.Since(start)

	assert.NoError(t, err)
	assert.NotNil(t, sample)

	// The reading must block for the sampling window.
	assert.GreaterOrEqual(t, elapsed, 100*time.Millisecond)

	assert.GreaterOrEqual(t, sample.UsagePercent, 0.0)
	assert.Less(t, sample.UsagePercent, 100.1) // small float tolerance

	// Frequency and core count may legitimately be absent (containers,
	// stripped-down kernels); when present they must be positive.
	if sample.FrequencyMHz != nil {
		assert.Greater(t, *sample.FrequencyMHz, 0.0)
	}
	if sample.PhysicalCores != nil {
		assert.Greater(t, *sample.PhysicalCores, 0)
	}
}
