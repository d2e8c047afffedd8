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
	"math/big"

	"github.com/consensys/go-imp/pkg/sexp"
	"github.com/consensys/go-imp/pkg/util"
)

// Sub represents the subtraction of one expression from another.  Subtraction
// is over the integers; it can go negative, unlike the natural-number
// truncation found in some presentations of this language.
type Sub struct{ Lhs, Rhs AExp }

// Minus constructs an arithmetic expression representing the difference of two
// expressions.
func Minus(lhs AExp, rhs AExp) AExp {
	return &Sub{lhs, rhs}
}

// EvalIn implementation for the AExp interface.
func (p *Sub) EvalIn(store Store, fuel Fuel) util.Option[*big.Int] {
	if fuel == 0 {
		return util.None[*big.Int]()
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
	return util.Some(new(big.Int).Sub(lhs.Unwrap(), rhs.Unwrap()))
}

// Lisp implementation for the AExp interface.
func (p *Sub) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{sexp.NewSymbol("-"), p.Lhs.Lisp(), p.Rhs.Lisp()})
}

func (p *Sub) String() string { return p.Lisp().String() }
