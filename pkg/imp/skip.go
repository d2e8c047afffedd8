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
package imp

import (
	"github.com/consensys/go-imp/pkg/sexp"
	"github.com/consensys/go-imp/pkg/util"
)

// Skip represents the command which does nothing.  Evaluating it still costs
// one unit of fuel, like every other node.
type Skip struct{}

// DoNothing constructs the skip command.
func DoNothing() Com {
	return &Skip{}
}

// EvalIn implementation for the Com interface.
func (p *Skip) EvalIn(store Store, fuel Fuel) util.Option[Store] {
	if fuel == 0 {
		return util.None[Store]()
	}
	//
	return util.Some(store)
}

// Lisp implementation for the Com interface.
func (p *Skip) Lisp() sexp.SExp {
	return sexp.NewSymbol("skip")
}

func (p *Skip) String() string { return p.Lisp().String() }
