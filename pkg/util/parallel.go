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
	"context"
	"runtime"
)

// ParMap applies a function to every item of a worklist using a fixed number of
// goroutines, returning the results in worklist order.  A workers value of zero
// means one worker per CPU.  Once the context is cancelled, no further items
// are dispatched and the error of the context is returned alongside whatever
// results were completed (others being left as zero values).
func ParMap[T any, R any](ctx context.Context, workers uint, worklist []T, fn func(T) R) ([]R, error) {
	var (
		results = make([]R, len(worklist))
		// Construct communication channels for jobs and their outcomes.
		jobs = make(chan uint)
		ch   = make(chan parResult[R], len(worklist))
		// Number of jobs dispatched
		ndone = 0
		err   error
	)
	//
	if workers == 0 {
		workers = uint(runtime.NumCPU())
	}
	// Start workers
	for w := uint(0); w < min(workers, uint(len(worklist))); w++ {
		go func() {
			for index := range jobs {
				// Send outcome back
				ch <- parResult[R]{index, fn(worklist[index])}
			}
		}()
	}
	// Dispatch jobs until done, or cancelled.
	for i := 0; i < len(worklist) && err == nil; i++ {
		if err = ctx.Err(); err != nil {
			break
		}
		//
		select {
		case jobs <- uint(i):
			ndone++
		case <-ctx.Done():
			err = ctx.Err()
		}
	}
	//
	close(jobs)
	// Collect up all the results
	for i := 0; i < ndone; i++ {
		r := <-ch
		results[r.index] = r.value
	}
	//
	return results, err
}

// Result of a single job, along with its position in the worklist.
type parResult[R any] struct {
	index uint
	value R
}
