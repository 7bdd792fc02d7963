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
	"fmt"
)

// PlatformQueryError reports that the OS could not supply a requested
// identity value or counter. It is recoverable: the affected group is
// skipped and the remaining groups still collect.
type PlatformQueryError struct {
	Facility string
	Err      error
}

func (e *PlatformQueryError) Error() string {
	return fmt.Sprintf("platform query for %s failed: %v", e.Facility, e.Err)
}

func (e *PlatformQueryError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a referenced resource, such as a disk root
// path, that does not exist or is not a mounted volume.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist", e.Path)
}

// ErrDivisionUndefined marks a percentage that cannot be computed
// because the total capacity is zero.
var ErrDivisionUndefined = errors.New("percentage undefined: total capacity is zero")
