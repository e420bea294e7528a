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
package field

import "github.com/pkg/errors"

// ErrInvalidElement is returned when an integer does not represent an element
// of the field in question (e.g. it is negative, or not reduced).
var ErrInvalidElement = errors.New("invalid field element")

// ErrNoSquareRoot is returned when a square root is requested for a non-square.
var ErrNoSquareRoot = errors.New("no square root")

// ErrNoSolution is returned when a quadratic equation z² + z = x has no solution.
var ErrNoSolution = errors.New("no solution")

// ErrDivisionByZero is returned when zero is inverted.
var ErrDivisionByZero = errors.New("division by zero")

// ErrUnsupportedOp is returned when an operation is unknown, or not available
// for the given kind of field.
var ErrUnsupportedOp = errors.New("unsupported operation")
