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

// While represents a loop which runs its body for as long as its condition
// holds.  Looping is evaluated by unrolling one step at a time into a Seq of
// the body and the loop itself; since every step costs fuel, evaluation always
// terminates, returning an empty option for loops which would need more steps
// than the budget allows.
type While struct {
	// Loop condition.
	Cond BExp
	// Loop body.
	Body Com
}

// Loop constructs a while loop from a condition and a body.
func Loop(cond BExp, body Com) Com {
	return &While{cond, body}
}

// EvalIn implementation for the Com interface.
func (p *While) EvalIn(store Store, fuel Fuel) util.Option[Store] {
	if fuel == 0 {
		return util.None[Store]()
	}
	// Evaluate condition
	cond := p.Cond.EvalIn(store, fuel-1)
	if cond.IsEmpty() {
		return util.None[Store]()
	}
	// Loop finished?
	if !cond.Unwrap() {
		return util.Some(store)
	}
	// One-step unrolling: while b do c  ==>  c ; while b do c.  The unrolled
	// command shares this node, so the tree never grows.
	unrolled := &Seq{p.Body, p}
	//
	return unrolled.EvalIn(store, fuel-1)
}

// Lisp implementation for the Com interface.
func (p *While) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{sexp.NewSymbol("while"), p.Cond.Lisp(), p.Body.Lisp()})
}

func (p *While) String() string { return p.Lisp().String() }
