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

// And represents the conjunction of two boolean expressions.  Both operands
// are always evaluated; conjunction does not short-circuit on a false left
// operand, so the fuel consumed is independent of the values involved.
type And struct{ Lhs, Rhs BExp }

// Conjunct constructs a boolean expression representing the conjunction of two
// expressions.
func Conjunct(lhs BExp, rhs BExp) BExp {
	return &And{lhs, rhs}
}

// EvalIn implementation for the BExp interface.
func (p *And) EvalIn(store Store, fuel Fuel) util.Option[bool] {
	if fuel == 0 {
		return util.None[bool]()
	}
	// Evaluate left operand
	lhs := p.Lhs.EvalIn(store, fuel-1)
	if lhs.IsEmpty() {
		return lhs
	}
	// Evaluate right operand
	rhs := p.Rhs.EvalIn(store, fuel-1)
	if rhs.IsEmpty() {
		return rhs
	}
	// Done
	return util.Some(lhs.Unwrap() && rhs.Unwrap())
}

// Lisp implementation for the BExp interface.
func (p *And) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{sexp.NewSymbol("&&"), p.Lhs.Lisp(), p.Rhs.Lisp()})
}

func (p *And) String() string { return p.Lisp().String() }
