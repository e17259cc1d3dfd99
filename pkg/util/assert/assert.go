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
package assert

import (
	"math"
	"reflect"
	"testing"
)

// Equal fails the test immediately unless expected and actual are equal.  Two
// integers of different types compare by value, so that untyped constants can
// be checked against (say) a uint or a named integer type.  An optional format
// string and arguments describe the failure.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()
	//
	if intEqual(expected, actual) || reflect.DeepEqual(expected, actual) {
		return
	}

	t.Errorf("expected: %v, actual: %v", expected, actual)

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}

// True fails the test immediately unless condition holds.
func True(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if condition {
		return
	}

	t.Errorf("condition is false")

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}

// False fails the test immediately if condition holds.
func False(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if !condition {
		return
	}

	t.Errorf("condition is true")

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}

func intEqual(expected, actual any) bool {
	a, aok := asInt64(expected)
	b, bok := asInt64(actual)
	//
	if aok && bok {
		return a == b
	}
	// Both may still be (large) uint64 values
	x, xok := expected.(uint64)
	y, yok := actual.(uint64)
	//
	return xok && yok && x == y
}

// asInt64 converts any integer (including named integer types) into an int64,
// failing for values which do not fit (i.e. uint64 values beyond MaxInt64).
func asInt64(x any) (int64, bool) {
	if x == nil {
		return 0, false
	}
	//
	v := reflect.ValueOf(x)
	//
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if v.Uint() > math.MaxInt64 {
			return 0, false
		}
		//
		return int64(v.Uint()), true
	default:
		return 0, false
	}
}
