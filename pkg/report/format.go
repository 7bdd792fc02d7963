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

import "github.com/dustin/go-humanize"

// Divisors are binary (1024-based) even though labels read "MB"/"GB";
// the mismatch is inherited behavior and must not be silently fixed.
const (
	bytesPerMB = 1 << 20
	bytesPerGB = 1 << 30
)

const bootTimeLayout = "02/01/2006 15:04:05"

// formatFloat renders a value with fixed two-decimal precision and
// explicit thousands grouping, e.g. 1234567.891 -> "1,234,567.89".
func formatFloat(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

// formatCount renders an integer counter with thousands grouping.
func formatCount(v uint64) string {
	return humanize.Comma(int64(v))
}

func toMB(v uint64) float64 {
	return float64(v) / bytesPerMB
}

func toGB(v uint64) float64 {
	return float64(v) / bytesPerGB
}
