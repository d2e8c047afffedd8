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
	"fmt"

	"github.com/consensys/go-imp/pkg/sexp"
	"github.com/consensys/go-imp/pkg/util"
)

// Assign represents the assignment of an arithmetic expression's value to a
// variable.  The resulting store is a fresh value; the input store is left
// untouched.
type Assign struct {
	// Variable being assigned.
	Target Variable
	// Expression whose value is assigned.
	Rhs AExp
}

// Let constructs a command assigning a given expression to a given variable.
func Let(target Variable, rhs AExp) Com {
	return &Assign{target, rhs}
}

// EvalIn implementation for the Com interface.
func (p *Assign) EvalIn(store Store, fuel Fuel) util.Option[Store] {
	if fuel == 0 {
		return util.None[Store]()
	}
	// Evaluate right-hand side
	val := p.Rhs.EvalIn(store, fuel-1)
	if val.IsEmpty() {
		return util.None[Store]()
	}
	// Done
	return util.Some(store.Update(p.Target, val.Unwrap()))
}

// Lisp implementation for the Com interface.
func (p *Assign) Lisp() sexp.SExp {
	target := sexp.NewSymbol(fmt.Sprintf("x%d", p.Target))
	return sexp.NewList([]sexp.SExp{sexp.NewSymbol(":="), target, p.Rhs.Lisp()})
}

func (p *Assign) String() string { return p.Lisp().String() }
