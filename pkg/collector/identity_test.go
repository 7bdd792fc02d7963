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

// TestCollectIdentityLive reads the real host identity.
func TestCollectIdentityLive(t *testing.T) {
	id, err := CollectIdentity()

	assert.NoError(t, err)
	assert.NotNil(t, id)
	assert.NotEmpty(t, id.OSDescription)
	assert.NotEmpty(t, id.MachineName)

	// Boot time precedes now and postdates any plausible epoch glitch.
	assert.True(t, id.BootTime.Before(time.Now()))
	assert.True(t, id.BootTime.After(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)))
}
