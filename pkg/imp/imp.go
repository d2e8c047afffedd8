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

// Variable identifies a program variable by a small unsigned index.  Variables
// have identity only; no ordering or scoping is implied, and all variables are
// global.
type Variable = uint

// Fuel bounds the number of recursive evaluation steps available to a single
// top-level evaluation.  It is supplied fresh by the caller, decremented on
// every recursive descent, and never replenished.  Loops are evaluated by
// unrolling, hence fuel (not the shape of the tree) is what makes evaluation
// terminate.
type Fuel = uint

// AExp represents an arithmetic expression over integer-valued variables.
// The variant set is closed: Constant, VarAccess, Add, Sub and Mul.
type AExp interface {
	// EvalIn evaluates this expression in a given store under a given fuel
	// budget.  An empty option indicates the budget was exhausted before a
	// value could be produced; there is no other failure mode.
	EvalIn(store Store, fuel Fuel) util.Option[*big.Int]
	// Lisp converts this expression into its canonical s-expression form.
	Lisp() sexp.SExp
	// String returns the canonical s-expression form as a string.
	String() string
}

// BExp represents a boolean expression.  The variant set is closed: Truth, Eq,
// Le, Not and And.
type BExp interface {
	// EvalIn evaluates this expression in a given store under a given fuel
	// budget.
	EvalIn(store Store, fuel Fuel) util.Option[bool]
	// Lisp converts this expression into its canonical s-expression form.
	Lisp() sexp.SExp
	// String returns the canonical s-expression form as a string.
	String() string
}

// Com represents a structured command.  The variant set is closed: Skip,
// Assign, Seq, IfElse and While.
type Com interface {
	// EvalIn evaluates this command in a given store under a given fuel
	// budget, yielding the final store on success.  Stores are persistent
	// values; the input store is never modified.
	EvalIn(store Store, fuel Fuel) util.Option[Store]
	// Lisp converts this command into its canonical s-expression form.
	Lisp() sexp.SExp
	// String returns the canonical s-expression form as a string.
	String() string
}

// EvalAExp evaluates an arithmetic expression in a given store under a given
// fuel budget.  Exposed for expression-only callers; equivalent to calling
// EvalIn directly.
func EvalAExp(expr AExp, store Store, fuel Fuel) util.Option[*big.Int] {
	return expr.EvalIn(store, fuel)
}

// EvalBExp evaluates a boolean expression in a given store under a given fuel
// budget.
func EvalBExp(expr BExp, store Store, fuel Fuel) util.Option[bool] {
	return expr.EvalIn(store, fuel)
}

// EvalCom evaluates a command in a given store under a given fuel budget.
// This is the primary entry point of the interpreter.
func EvalCom(cmd Com, store Store, fuel Fuel) util.Option[Store] {
	return cmd.EvalIn(store, fuel)
}
