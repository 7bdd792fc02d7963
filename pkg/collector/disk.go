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
	"io/fs"
	"os"
	"strings"

	"github.com/shirou/gopsutil/disk"
)

// RootPath selects the disk root to inspect for the given OS
// description: any platform name containing "Windows" maps to C:,
// everything else (including an unknown platform) maps to /.
// The detected OS name is passed in rather than stored globally.
func RootPath(osName string) string {
	if strings.Contains(osName, "Windows") {
		return "C:"
	}
	return "/"
}

// CollectDisk reads usage counters for the volume mounted at root.
// A missing root yields a NotFoundError; any other query failure is a
// PlatformQueryError.
func CollectDisk(root string) (*DiskUsageSample, error) {
	if _, err := os.Stat(root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: root}
		}
		return nil, &PlatformQueryError{Facility: "disk usage", Err: err}
	}

	usage, err := disk.Usage(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: root}
		}
		return nil, &PlatformQueryError{Facility: "disk usage", Err: err}
	}

	return &DiskUsageSample{
		RootPath:   root,
		TotalBytes: usage.Total,
		UsedBytes:  usage.Used,
	}, nil
}
