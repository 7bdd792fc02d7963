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
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFormatFloat pins two-decimal precision with explicit thousands
// grouping.
func TestFormatFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{85, "85.00"},
		{80.1, "80.10"},
		{1234.5, "1,234.50"},
		{1234567.891, "1,234,567.89"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatFloat(tc.in))
	}
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", formatCount(0))
	assert.Equal(t, "999", formatCount(999))
	assert.Equal(t, "1,234,567", formatCount(1234567))
	assert.Equal(t, "7,654,321", formatCount(7654321))
}

// TestByteConversions: divisors are binary even though labels say
// MB/GB.
func TestByteConversions(t *testing.T) {
	assert.Equal(t, 1.0, toMB(1<<20))
	assert.Equal(t, 424.0, toMB(424<<20))
	assert.Equal(t, 1.0, toGB(1<<30))
	assert.Equal(t, 100.0, toGB(100<<30))
}
