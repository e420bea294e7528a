// Copyright Consensys Software Inc.
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
	"sync"
)

// ParMap applies a function to every item of a worklist using go-routines,
// with at most GOMAXPROCS running at any one time.  Results are returned in
// worklist order.  If any job fails, the error of the earliest failing job (in
// worklist order) is returned.
func ParMap[T any, R any](worklist []T, fn func(uint, T) (R, error)) ([]R, error) {
	var (
		wg      sync.WaitGroup
		slots   = make(chan struct{}, runtime.GOMAXPROCS(0))
		results = make([]R, len(worklist))
		errs    = make([]error, len(worklist))
	)
	//
	for i, item := range worklist {
		wg.Add(1)
		// Wait for a free slot
		slots <- struct{}{}
		//
		go func() {
			defer wg.Done()
			results[i], errs[i] = fn(uint(i), item)
			<-slots
		}()
	}
	//
	wg.Wait()
	// Report first error (if any)
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	//
	return results, nil
}
