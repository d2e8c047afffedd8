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

// Seq represents the sequential composition of two commands.  Both commands
// run under the same decremented budget; fuel is a single ceiling on total
// recursion depth, not a per-statement allowance.
type Seq struct{ First, Second Com }

// Sequence composes two or more commands into a right-nested sequence.
func Sequence(first Com, rest ...Com) Com {
	if len(rest) == 0 {
		return first
	}
	//
	return &Seq{first, Sequence(rest[0], rest[1:]...)}
}

// EvalIn implementation for the Com interface.
func (p *Seq) EvalIn(store Store, fuel Fuel) util.Option[Store] {
	if fuel == 0 {
		return util.None[Store]()
	}
	// Evaluate first command
	first := p.First.EvalIn(store, fuel-1)
	if first.IsEmpty() {
		return first
	}
	// Evaluate second command on the resulting store
	return p.Second.EvalIn(first.Unwrap(), fuel-1)
}

// Lisp implementation for the Com interface.
func (p *Seq) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{sexp.NewSymbol("seq"), p.First.Lisp(), p.Second.Lisp()})
}

func (p *Seq) String() string { return p.Lisp().String() }
