// Copyright The smartscompiler Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package util

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats captures a snapshot of elapsed time and memory allocation at some
// point, such that the cost of whatever happens next can be reported.
type PerfStats struct {
	start time.Time
	// Total bytes allocated at the start
	alloc uint64
	// Number of GC cycles at the start
	gcs uint32
}

// NewPerfStats takes a snapshot of the current time and memory allocation.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	return &PerfStats{time.Now(), m.TotalAlloc, m.NumGC}
}

// Elapsed returns the time since the snapshot was taken.
func (p *PerfStats) Elapsed() time.Duration {
	return time.Since(p.start)
}

// Log reports, at debug level, the time taken and memory allocated since the
// snapshot was taken.  Nothing is measured unless debug logging is enabled.
func (p *PerfStats) Log(prefix string) {
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}
	//
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	alloc := float64(m.TotalAlloc-p.alloc) / (1024 * 1024)
	//
	log.Debugf("%s took %s allocating %0.2fMb (%d GC events)", prefix, p.Elapsed().Round(time.Microsecond),
		alloc, m.NumGC-p.gcs)
}
