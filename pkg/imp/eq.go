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

// Eq represents an equality test between two arithmetic expressions.
type Eq struct{ Lhs, Rhs AExp }

// Equals constructs a boolean expression testing two arithmetic expressions
// for equality.
func Equals(lhs AExp, rhs AExp) BExp {
	return &Eq{lhs, rhs}
}

// EvalIn implementation for the BExp interface.
func (p *Eq) EvalIn(store Store, fuel Fuel) util.Option[bool] {
	if fuel == 0 {
		return util.None[bool]()
	}
	// Evaluate left operand
	lhs := p.Lhs.EvalIn(store, fuel-1)
	if lhs.IsEmpty() {
		return util.None[bool]()
	}
	// Evaluate right operand
	rhs := p.Rhs.EvalIn(store, fuel-1)
	if rhs.IsEmpty() {
		return util.None[bool]()
	}
	// Done
	return util.Some(lhs.Unwrap().Cmp(rhs.Unwrap()) == 0)
}

// Lisp implementation for the BExp interface.
func (p *Eq) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{sexp.NewSymbol("=="), p.Lhs.Lisp(), p.Rhs.Lisp()})
}

func (p *Eq) String() string { return p.Lisp().String() }
