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

// IfElse represents a conditional command with mandatory branches.
type IfElse struct {
	// Branch condition.
	Cond BExp
	// Branch taken when the condition holds.
	Then Com
	// Branch taken otherwise.
	Else Com
}

// If constructs a conditional command from a condition and two branches.
func If(cond BExp, then Com, els Com) Com {
	return &IfElse{cond, then, els}
}

// EvalIn implementation for the Com interface.
func (p *IfElse) EvalIn(store Store, fuel Fuel) util.Option[Store] {
	if fuel == 0 {
		return util.None[Store]()
	}
	// Evaluate condition
	cond := p.Cond.EvalIn(store, fuel-1)
	if cond.IsEmpty() {
		return util.None[Store]()
	}
	// Dispatch on condition
	if cond.Unwrap() {
		return p.Then.EvalIn(store, fuel-1)
	}
	//
	return p.Else.EvalIn(store, fuel-1)
}

// Lisp implementation for the Com interface.
func (p *IfElse) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{
		sexp.NewSymbol("if"), p.Cond.Lisp(), p.Then.Lisp(), p.Else.Lisp(),
	})
}

func (p *IfElse) String() string { return p.Lisp().String() }
