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

package main

import (
	"os"

	_ "go.uber.org/automaxprocs/maxprocs"

	"github.com/opensnap/syscheck/pkg/collector"
	"github.com/opensnap/syscheck/pkg/flag"
	"github.com/opensnap/syscheck/pkg/log"
	"github.com/opensnap/syscheck/pkg/report"
)

// main takes one host metrics snapshot, prints it to stdout and
// exits. Only a failed identity collection makes the exit non-zero;
// every other group failure is reported inside the snapshot.
func main() {
	flag.InitFlags()
	log.SetLevel(flag.LogLevel)

	snap := collector.Collect(flag.SampleWindow, flag.DiskRoot)

	if flag.OutputJSON {
		if err := report.WriteJSON(os.Stdout, snap); err != nil {
			log.Error("failed to write JSON report: %v", err)
		}
	} else {
		report.WriteText(os.Stdout, snap)
	}

	log.Sync()
	if snap.IdentityErr != nil {
		os.Exit(1)
	}
}
