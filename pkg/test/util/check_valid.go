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
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/consensys/go-linkir/pkg/compiler"
	"github.com/consensys/go-linkir/pkg/util/source"
	"github.com/consensys/go-linkir/pkg/vm"
)

// MAX_STEPS bounds the execution of any valid test, such that a test which
// fails to terminate is reported rather than hanging.
const MAX_STEPS = 1_000_000

// CheckValid checks that a given source file compiles without errors and that,
// when executed, it outputs exactly the values given at the start of the file.
func CheckValid(t *testing.T, test string) {
	var filename = fmt.Sprintf("%s/valid/%s.%s", TestDir, test, EXTENSION)
	// Enable testing each file in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	// Extract expected outputs
	expected, errs := ExtractAttributes(srcfile, extractOutputs)
	//
	if len(errs) > 0 {
		t.Fatal(errors.Join(errs...))
	} else if len(expected) != 1 {
		t.Fatalf("%s should have exactly one output attribute", filename)
	}
	// Compile source file
	program, syntaxErrors := compiler.Compile(srcfile)
	//
	for _, err := range syntaxErrors {
		t.Errorf("unexpected error %s", errorToString(err))
	}
	//
	if len(syntaxErrors) > 0 {
		t.FailNow()
	}
	// Execute program
	machine := vm.New(program)
	//
	if _, err := vm.ExecuteWithin(machine, 1024, MAX_STEPS); err != nil {
		t.Fatalf("%s failed: %s", filename, err)
	} else if actual := machine.Outputs(); !slices.Equal(expected[0], actual) {
		t.Fatalf("%s output %v, expected %v", filename, actual, expected[0])
	}
}

// Extract the expected outputs from a given line in the source file, such as
// "//output: 1 2 3".
func extractOutputs(lineno int, lines []source.Line, _ *source.File) (bool, []int, error) {
	var (
		line     = lines[lineno]
		contents = line.String()
		outputs  []int
	)
	//
	if !strings.HasPrefix(contents, "//output:") {
		return false, nil, nil
	}
	//
	for _, field := range strings.Fields(strings.TrimPrefix(contents, "//output:")) {
		val, err := strconv.Atoi(field)
		//
		if err != nil {
			return true, nil, fmt.Errorf("invalid output \"%s\" on line %d", field, line.Number())
		}
		//
		outputs = append(outputs, val)
	}
	//
	return true, outputs, nil
}
