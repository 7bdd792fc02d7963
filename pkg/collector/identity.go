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
	"fmt"
	"os/user"
	"strings"
	"time"

	"github.com/shirou/gopsutil/host"

	"github.com/opensnap/syscheck/pkg/log"
)

// CollectIdentity reads the OS description, machine name, logged-in
// user and boot time. The host query failing is a PlatformQueryError;
// a failed user lookup alone leaves CurrentUser empty and is only
// logged, since the rest of the identity is still usable.
func CollectIdentity() (*SystemIdentity, error) {
	info, err := host.Info()
	if err != nil {
		return nil, &PlatformQueryError{Facility: "host identity", Err: err}
	}

	id := &SystemIdentity{
		OSDescription: describePlatform(info),
		MachineName:   info.Hostname,
		BootTime:      time.Unix(int64(info.BootTime), 0),
	}

	if u, err := user.Current(); err != nil {
		log.Warn("current user lookup failed, reporting user as absent: %v", err)
	} else {
		id.CurrentUser = u.Username
	}

	return id, nil
}

// describePlatform builds a one-line OS description from the host
// info, e.g. "Microsoft Windows 10 Pro 10.0.19045 x86_64" or
// "ubuntu 22.04 x86_64".
func describePlatform(info *host.InfoStat) string {
	desc := strings.TrimSpace(fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion))
	if desc == "" {
		desc = info.OS
	}
	if info.KernelArch != "" {
		desc = desc + " " + info.KernelArch
	}
	return desc
}
