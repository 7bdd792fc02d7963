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
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opensnap/syscheck/pkg/collector"
)

// TestWriteJSONDocument checks the structured form carries raw
// counters, derived values and warnings.
func TestWriteJSONDocument(t *testing.T) {
	var buf bytes.Buffer
	err := WriteJSON(&buf, fixtureSnapshot())
	assert.NoError(t, err)

	var doc map[string]any
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "2b1c0f1e-9a9d-4a44-a6dd-3e2f5a3f9a01", doc["snapshot_id"])

	identity := doc["identity"].(map[string]any)
	assert.Equal(t, "build-01", identity["machine_name"])
	assert.Equal(t, "ci", identity["current_user"])
	assert.NotContains(t, identity, "error")

	disk := doc["disk"].(map[string]any)
	assert.Equal(t, "/", disk["root_path"])
	assert.InDelta(t, 85.0, disk["percent_used"].(float64), 1e-9)
	assert.Equal(t, collector.WarnDiskSpaceLow, disk["warning"])

	cpu := doc["cpu"].(map[string]any)
	assert.InDelta(t, 80.1, cpu["usage_percent"].(float64), 1e-9)
	assert.InDelta(t, 2400.0, cpu["frequency_mhz"].(float64), 1e-9)
	assert.Equal(t, collector.WarnCPUUsageHigh, cpu["warning"])

	memory := doc["memory"].(map[string]any)
	assert.Equal(t, collector.WarnMemoryLow, memory["warning"])
	assert.InDelta(t, float64(424<<20), memory["free_bytes"].(float64), 1e-3)

	network := doc["network"].(map[string]any)
	assert.InDelta(t, 1234567, network["packets_sent"].(float64), 1e-9)
	assert.NotContains(t, network, "warning")
}

// TestWriteJSONFailedGroup: a failed group carries only an error
// string.
func TestWriteJSONFailedGroup(t *testing.T) {
	snap := fixtureSnapshot()
	snap.Disk = nil
	snap.DiskErr = &collector.NotFoundError{Path: "/nonexistent"}

	var buf bytes.Buffer
	assert.NoError(t, WriteJSON(&buf, snap))

	var doc map[string]any
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	disk := doc["disk"].(map[string]any)
	assert.Equal(t, "/nonexistent does not exist", disk["error"])
	assert.NotContains(t, disk, "total_bytes")
	assert.NotContains(t, disk, "warning")
}

// TestWriteJSONBoundaryOmitsWarnings: boundary values produce no
// warning keys.
func TestWriteJSONBoundaryOmitsWarnings(t *testing.T) {
	snap := fixtureSnapshot()
	snap.Disk.UsedBytes = 80 << 30
	snap.CPU.UsagePercent = 80.0
	snap.Memory.UsedBytes = 524 << 20

	var buf bytes.Buffer
	assert.NoError(t, WriteJSON(&buf, snap))

	var doc map[string]any
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.NotContains(t, doc["disk"].(map[string]any), "warning")
	assert.NotContains(t, doc["cpu"].(map[string]any), "warning")
	assert.NotContains(t, doc["memory"].(map[string]any), "warning")
}
