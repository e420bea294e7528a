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
package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/consensys/go-ecfield/field"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseInteger(t *testing.T) {
	for _, arg := range []string{"255", "0xff", "0XFF"} {
		val, err := parseInteger(arg)
		require.NoError(t, err)
		assert.Equal(t, int64(255), val.Int64(), arg)
	}
	//
	for _, arg := range []string{"", "0x", "12a", "0xzz", "one"} {
		_, err := parseInteger(arg)
		assert.Error(t, err, arg)
	}
}

func Test_Evaluate(t *testing.T) {
	tests := []struct {
		field, op string
		args      []string
		expected  string
	}{
		{"secp256r1", "mul", []string{"2", "3"}, "0x6"},
		{"p256", "ADD", []string{"0xffffffff00000001000000000000000000000000fffffffffffffffffffffffe", "1"}, "0x0"},
		{"secp256k1", "inv", []string{"1"}, "0x1"},
		{"curve25519", "neg", []string{"1"}, "0x7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffec"},
		{"secp192r1", "half", []string{"2"}, "0x1"},
		{"sect163k1", "mul", []string{"0x2", "0x3"}, "0x6"},
		{"sect233", "sqr", []string{"3"}, "0x5"},
		{"sect113", "trace", []string{"0"}, "0x0"},
		{"secp256k1/gnark", "sqr", []string{"4"}, "0x10"},
	}
	//
	for _, test := range tests {
		actual, err := evaluate(test.field, test.op, test.args)
		require.NoError(t, err, test.field)
		assert.Equal(t, test.expected, actual, test.field)
	}
}

func Test_Evaluate_Errors(t *testing.T) {
	_, err := evaluate("secp999", "mul", []string{"1", "2"})
	assert.ErrorContains(t, err, "unknown field")
	//
	_, err = evaluate("secp256r1", "inv", []string{"0"})
	assert.True(t, errors.Is(err, field.ErrDivisionByZero), err)
	//
	_, err = evaluate("secp256r1", "sqrt", []string{"3"})
	assert.True(t, errors.Is(err, field.ErrNoSquareRoot), err)
	//
	_, err = evaluate("secp256r1", "neg", []string{"-1"})
	assert.True(t, errors.Is(err, field.ErrInvalidElement), err)
	//
	_, err = evaluate("sect163", "trace", []string{"0x" + strings.Repeat("f", 41)})
	assert.True(t, errors.Is(err, field.ErrInvalidElement), err)
	//
	_, err = evaluate("secp256r1", "trace", []string{"1"})
	assert.True(t, errors.Is(err, field.ErrUnsupportedOp), err)
	//
	_, err = evaluate("secp256r1", "add", []string{"1"})
	assert.Error(t, err)
	//
	_, err = evaluate("secp256r1", "add", []string{"1", "x"})
	assert.ErrorContains(t, err, "invalid integer")
}

func Test_LookupFields(t *testing.T) {
	all, err := lookupFields(nil)
	require.NoError(t, err)
	assert.Equal(t, len(field.Fields()), len(all))
	//
	some, err := lookupFields([]string{"p384", "sect571"})
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "secp384r1", some[0].Config().Name)
	assert.Equal(t, "sect571", some[1].Config().Name)
	//
	_, err = lookupFields([]string{"p384", "nope"})
	assert.Error(t, err)
}

func Test_NewRng(t *testing.T) {
	var a, b [16]byte
	//
	r1, s1 := newRng(42)
	r2, s2 := newRng(42)
	//
	assert.Equal(t, uint64(42), s1)
	assert.Equal(t, s1, s2)
	_, _ = r1.Read(a[:])
	_, _ = r2.Read(b[:])
	assert.Equal(t, a, b)
	//
	_, s3 := newRng(0)
	assert.NotZero(t, s3)
}

func Test_ListFields(t *testing.T) {
	var buf bytes.Buffer
	//
	listFields(&buf, field.Fields(), false, 200)
	//
	out := buf.String()
	assert.Contains(t, out, "secp256r1")
	assert.Contains(t, out, "sect571")
	assert.Contains(t, out, "pentanomial (7,6,3)")
	assert.NotContains(t, out, "inversion")
	//
	buf.Reset()
	listFields(&buf, field.Fields(), true, 1000)
	assert.Contains(t, buf.String(), "inversion")
	assert.Contains(t, buf.String(), "1,2,4,5,10,20,40,80,81,162")
}

func Test_CheckFields(t *testing.T) {
	var buf bytes.Buffer
	//
	fields, err := lookupFields([]string{"secp224r1", "sect131"})
	require.NoError(t, err)
	//
	ok, err := checkFields(&buf, fields, checkConfig{seed: 7, rounds: 10, gnark: true})
	require.NoError(t, err)
	assert.True(t, ok, buf.String())
	assert.Contains(t, buf.String(), "secp256k1~secp256k1/gnark")
	assert.Contains(t, buf.String(), "gf2m implementations")
}

func Test_BenchFields(t *testing.T) {
	var buf bytes.Buffer
	//
	fields, err := lookupFields([]string{"secp256k1", "sect163"})
	require.NoError(t, err)
	//
	rng, _ := newRng(8)
	require.NoError(t, benchFields(&buf, fields, rng, 10))
	//
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "inv (ns/op)")
	assert.True(t, strings.HasPrefix(lines[2], "sect163"))
}
