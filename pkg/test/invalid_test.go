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
package test

import (
	"testing"

	"github.com/consensys/go-linkir/pkg/test/util"
)

func Test_Invalid_MissingSemicolon(t *testing.T) {
	util.CheckInvalid(t, "missing_semicolon")
}

func Test_Invalid_MissingComma(t *testing.T) {
	util.CheckInvalid(t, "missing_comma")
}

func Test_Invalid_MissingPrimary(t *testing.T) {
	util.CheckInvalid(t, "missing_primary")
}

func Test_Invalid_MissingCaseNumber(t *testing.T) {
	util.CheckInvalid(t, "missing_case_number")
}

func Test_Invalid_UnknownComparator(t *testing.T) {
	util.CheckInvalid(t, "unknown_comparator")
}

func Test_Invalid_UnknownStatement(t *testing.T) {
	util.CheckInvalid(t, "unknown_statement")
}

func Test_Invalid_UnknownText(t *testing.T) {
	util.CheckInvalid(t, "unknown_text")
}

func Test_Invalid_TrailingText(t *testing.T) {
	util.CheckInvalid(t, "trailing_text")
}
