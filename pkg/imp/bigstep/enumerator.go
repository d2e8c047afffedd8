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
package bigstep

import (
	"github.com/consensys/go-imp/pkg/imp"
)

// Expressions returns a pool of arithmetic expressions over the given
// variables, covering every arithmetic variant: small constants, each
// variable, and one of each operator applied to a variable and a constant.
func Expressions(vars []imp.Variable) []imp.AExp {
	pool := []imp.AExp{imp.Const(0), imp.Const(1), imp.Const(2)}
	//
	for _, x := range vars {
		pool = append(pool,
			imp.Var(x),
			imp.Plus(imp.Var(x), imp.Const(1)),
			imp.Minus(imp.Var(x), imp.Const(1)),
			imp.Mult(imp.Var(x), imp.Const(2)),
		)
	}
	//
	return pool
}

// Conditions returns a pool of boolean expressions over the given variables,
// covering every boolean variant.
func Conditions(vars []imp.Variable) []imp.BExp {
	pool := []imp.BExp{imp.True(), imp.False()}
	//
	for _, x := range vars {
		le := imp.AtMost(imp.Var(x), imp.Const(2))
		//
		pool = append(pool,
			imp.Equals(imp.Var(x), imp.Const(1)),
			le,
			imp.Negate(le),
			imp.Conjunct(le, imp.Equals(imp.Var(x), imp.Var(x))),
		)
	}
	//
	return pool
}

// Programs enumerates commands over the given variables up to a given nesting
// depth: at depth zero only skips and assignments, with each further level
// adding one layer of sequencing, branching and looping around the level
// below.  The enumeration grows very quickly with depth; depth one already
// yields several thousand commands, which is ample for replaying the rule
// table.
func Programs(vars []imp.Variable, depth uint) []imp.Com {
	var (
		aexps = Expressions(vars)
		bexps = Conditions(vars)
		pool  = atoms(vars, aexps)
	)
	//
	for ; depth > 0; depth-- {
		pool = compounds(pool, bexps)
	}
	//
	return pool
}

// Leaf commands: skip, plus every assignment of a pool expression to a
// variable.
func atoms(vars []imp.Variable, aexps []imp.AExp) []imp.Com {
	pool := []imp.Com{imp.DoNothing()}
	//
	for _, x := range vars {
		for _, e := range aexps {
			pool = append(pool, imp.Let(x, e))
		}
	}
	//
	return pool
}

// Wrap one layer of compound commands around a given pool, keeping the pool
// itself.
func compounds(pool []imp.Com, bexps []imp.BExp) []imp.Com {
	next := pool
	//
	for _, first := range pool {
		for _, second := range pool {
			next = append(next, &imp.Seq{First: first, Second: second})
		}
	}
	//
	for _, cond := range bexps {
		for _, then := range pool {
			for _, els := range pool {
				next = append(next, &imp.IfElse{Cond: cond, Then: then, Else: els})
			}
		}
	}
	//
	for _, cond := range bexps {
		for _, body := range pool {
			next = append(next, &imp.While{Cond: cond, Body: body})
		}
	}
	//
	return next
}
