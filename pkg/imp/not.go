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

// Not represents the logical negation of a boolean expression.
type Not struct{ Arg BExp }

// Negate constructs a boolean expression representing the negation of a given
// expression.
func Negate(arg BExp) BExp {
	return &Not{arg}
}

// EvalIn implementation for the BExp interface.
func (p *Not) EvalIn(store Store, fuel Fuel) util.Option[bool] {
	if fuel == 0 {
		return util.None[bool]()
	}
	// Evaluate operand
	arg := p.Arg.EvalIn(store, fuel-1)
	if arg.IsEmpty() {
		return arg
	}
	// Done
	return util.Some(!arg.Unwrap())
}

// Lisp implementation for the BExp interface.
func (p *Not) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{sexp.NewSymbol("!"), p.Arg.Lisp()})
}

func (p *Not) String() string { return p.Lisp().String() }
