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
	"fmt"
	"math/big"

	"github.com/consensys/go-imp/pkg/imp"
	"github.com/consensys/go-imp/pkg/util"
)

// AExpRules returns the rule table for arithmetic expressions: one rule per
// variant, each covering its variant unconditionally apart from the zero-fuel
// floor, which every rule shares.
func AExpRules() []AExpRule {
	return []AExpRule{
		{
			Name:   "const",
			Match:  func(e imp.AExp) bool { _, ok := e.(*imp.Constant); return ok },
			Unfold: unfoldConstant,
		},
		{
			Name:   "var",
			Match:  func(e imp.AExp) bool { _, ok := e.(*imp.VarAccess); return ok },
			Unfold: unfoldVarAccess,
		},
		{
			Name:   "add",
			Match:  func(e imp.AExp) bool { _, ok := e.(*imp.Add); return ok },
			Unfold: unfoldAdd,
		},
		{
			Name:   "sub",
			Match:  func(e imp.AExp) bool { _, ok := e.(*imp.Sub); return ok },
			Unfold: unfoldSub,
		},
		{
			Name:   "mul",
			Match:  func(e imp.AExp) bool { _, ok := e.(*imp.Mul); return ok },
			Unfold: unfoldMul,
		},
	}
}

// Determine the rule covering a given arithmetic expression.  Since the
// variant set is closed, exactly one rule always matches.
func aexpRuleFor(expr imp.AExp) AExpRule {
	for _, rule := range AExpRules() {
		if rule.Match(expr) {
			return rule
		}
	}
	//
	panic(fmt.Sprintf("unknown arithmetic expression %s", expr))
}

func unfoldConstant(e imp.AExp, st imp.Store, fuel imp.Fuel) util.Option[*big.Int] {
	if fuel == 0 {
		return util.None[*big.Int]()
	}
	//
	return util.Some(e.(*imp.Constant).Value)
}

func unfoldVarAccess(e imp.AExp, st imp.Store, fuel imp.Fuel) util.Option[*big.Int] {
	if fuel == 0 {
		return util.None[*big.Int]()
	}
	//
	return util.Some(st.Lookup(e.(*imp.VarAccess).Index))
}

func unfoldAdd(e imp.AExp, st imp.Store, fuel imp.Fuel) util.Option[*big.Int] {
	node := e.(*imp.Add)
	//
	return unfoldBinary(node.Lhs, node.Rhs, st, fuel, func(l *big.Int, r *big.Int) *big.Int {
		return new(big.Int).Add(l, r)
	})
}

func unfoldSub(e imp.AExp, st imp.Store, fuel imp.Fuel) util.Option[*big.Int] {
	node := e.(*imp.Sub)
	//
	return unfoldBinary(node.Lhs, node.Rhs, st, fuel, func(l *big.Int, r *big.Int) *big.Int {
		return new(big.Int).Sub(l, r)
	})
}

func unfoldMul(e imp.AExp, st imp.Store, fuel imp.Fuel) util.Option[*big.Int] {
	node := e.(*imp.Mul)
	//
	return unfoldBinary(node.Lhs, node.Rhs, st, fuel, func(l *big.Int, r *big.Int) *big.Int {
		return new(big.Int).Mul(l, r)
	})
}

// Shared shape of every binary arithmetic rule: evaluate both operands at
// fuel-1, short-circuit an exhausted operand, combine otherwise.
func unfoldBinary(lhs imp.AExp, rhs imp.AExp, st imp.Store, fuel imp.Fuel,
	combine func(*big.Int, *big.Int) *big.Int) util.Option[*big.Int] {
	if fuel == 0 {
		return util.None[*big.Int]()
	}
	//
	l := imp.EvalAExp(lhs, st, fuel-1)
	if l.IsEmpty() {
		return l
	}
	//
	r := imp.EvalAExp(rhs, st, fuel-1)
	if r.IsEmpty() {
		return r
	}
	//
	return util.Some(combine(l.Unwrap(), r.Unwrap()))
}
