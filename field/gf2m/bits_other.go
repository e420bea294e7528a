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
//go:build !amd64 || !gc || purego

package gf2m

const (
	hasCLMUL = false
	hasBMI2  = false
)

func clmul64Asm(x, y uint64) (hi, lo uint64) {
	panic("carry-less multiply instruction unavailable")
}

func pdep64Asm(x, mask uint64) uint64 {
	panic("pdep instruction unavailable")
}

func pext64Asm(x, mask uint64) uint64 {
	panic("pext instruction unavailable")
}
