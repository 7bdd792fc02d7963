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

import (
	"flag"
	"time"

	"github.com/opensnap/syscheck/pkg/log"
)

// InitFlags registers CLI flags and parses the command line.
func InitFlags() {
	// Set default values
	SampleWindow = time.Second
	DiskRoot = ""
	OutputJSON = false
	LogLevel = 6

	flag.DurationVar(&SampleWindow, "cpu-window", SampleWindow, "CPU usage sampling window; 0 takes an instantaneous, less stable reading (default: 1s)")
	flag.StringVar(&DiskRoot, "disk-root", DiskRoot, "Disk root path to inspect (default: C: on Windows, / elsewhere)")
	flag.BoolVar(&OutputJSON, "json", OutputJSON, "Write the snapshot as JSON instead of text blocks")
	flag.IntVar(&LogLevel, "log-level", LogLevel, "Log level (0=LevelEmergency, 1=LevelAlert, 2=LevelCritical, 3=LevelError, 4=LevelWarning, 5=LevelNotice, 6=LevelInformational, 7=LevelDebug, default: 6)")

	flag.Parse()

	log.Debug("cpu sample window is: %s", SampleWindow)
	if DiskRoot != "" {
		log.Debug("disk root override is: %s", DiskRoot)
	}
}
