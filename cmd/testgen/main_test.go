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
package main

import (
	"math/rand"
	"testing"

	"github.com/consensys/go-linkir/pkg/compiler"
	"github.com/consensys/go-linkir/pkg/vm"
)

func Test_Generator_01(t *testing.T) {
	checkGenerator(t, TestGenConfig{depth: 0, statements: 4, maxConst: 5}, 50)
}

func Test_Generator_02(t *testing.T) {
	checkGenerator(t, TestGenConfig{depth: 2, statements: 3, maxConst: 3}, 50)
}

func Test_Generator_03(t *testing.T) {
	checkGenerator(t, TestGenConfig{depth: 3, statements: 2, maxConst: 4}, 20)
}

// Check generated programs are well-formed and always terminate.
func checkGenerator(t *testing.T, cfg TestGenConfig, n int) {
	rng := rand.New(rand.NewSource(42))
	//
	for i := 0; i < n; i++ {
		text := NewGenerator(cfg, rng).Program()
		program, errs := compiler.CompileString("test", text)
		//
		if len(errs) != 0 {
			t.Fatalf("malformed program (%s):\n%s", errs[0].Message(), text)
		}
		//
		machine := vm.New(program)
		//
		if _, err := vm.ExecuteWithin(machine, 1024, 10_000_000); err != nil {
			t.Fatalf("program failed (%s):\n%s", err, text)
		}
	}
}
