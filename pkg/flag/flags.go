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

package flag

import "time"

var (
	// SampleWindow is the blocking window used for the CPU usage reading.
	SampleWindow time.Duration

	// DiskRoot overrides the platform root-path convention when non-empty.
	DiskRoot string

	// OutputJSON switches the report from text blocks to a JSON document.
	OutputJSON bool

	// LogLevel controls log verbosity.
	LogLevel int
)
