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

	"github.com/consensys/go-imp/pkg/imp"
	"github.com/consensys/go-imp/pkg/util"
)

// BExpRules returns the rule table for boolean expressions.
func BExpRules() []BExpRule {
	return []BExpRule{
		{
			Name:   "bool",
			Match:  func(e imp.BExp) bool { _, ok := e.(*imp.Truth); return ok },
			Unfold: unfoldTruth,
		},
		{
			Name:   "eq",
			Match:  func(e imp.BExp) bool { _, ok := e.(*imp.Eq); return ok },
			Unfold: unfoldEq,
		},
		{
			Name:   "le",
			Match:  func(e imp.BExp) bool { _, ok := e.(*imp.Le); return ok },
			Unfold: unfoldLe,
		},
		{
			Name:   "not",
			Match:  func(e imp.BExp) bool { _, ok := e.(*imp.Not); return ok },
			Unfold: unfoldNot,
		},
		{
			Name:   "and",
			Match:  func(e imp.BExp) bool { _, ok := e.(*imp.And); return ok },
			Unfold: unfoldAnd,
		},
	}
}

// Determine the rule covering a given boolean expression.
func bexpRuleFor(expr imp.BExp) BExpRule {
	for _, rule := range BExpRules() {
		if rule.Match(expr) {
			return rule
		}
	}
	//
	panic(fmt.Sprintf("unknown boolean expression %s", expr))
}

func unfoldTruth(e imp.BExp, st imp.Store, fuel imp.Fuel) util.Option[bool] {
	if fuel == 0 {
		return util.None[bool]()
	}
	//
	return util.Some(e.(*imp.Truth).Value)
}

func unfoldEq(e imp.BExp, st imp.Store, fuel imp.Fuel) util.Option[bool] {
	node := e.(*imp.Eq)
	//
	return unfoldComparison(node.Lhs, node.Rhs, st, fuel, func(c int) bool { return c == 0 })
}

func unfoldLe(e imp.BExp, st imp.Store, fuel imp.Fuel) util.Option[bool] {
	node := e.(*imp.Le)
	//
	return unfoldComparison(node.Lhs, node.Rhs, st, fuel, func(c int) bool { return c <= 0 })
}

func unfoldNot(e imp.BExp, st imp.Store, fuel imp.Fuel) util.Option[bool] {
	node := e.(*imp.Not)
	//
	if fuel == 0 {
		return util.None[bool]()
	}
	//
	arg := imp.EvalBExp(node.Arg, st, fuel-1)
	if arg.IsEmpty() {
		return arg
	}
	//
	return util.Some(!arg.Unwrap())
}

func unfoldAnd(e imp.BExp, st imp.Store, fuel imp.Fuel) util.Option[bool] {
	node := e.(*imp.And)
	//
	if fuel == 0 {
		return util.None[bool]()
	}
	// Both operands always evaluated; no short-circuit on a false left
	// operand.
	lhs := imp.EvalBExp(node.Lhs, st, fuel-1)
	if lhs.IsEmpty() {
		return lhs
	}
	//
	rhs := imp.EvalBExp(node.Rhs, st, fuel-1)
	if rhs.IsEmpty() {
		return rhs
	}
	//
	return util.Some(lhs.Unwrap() && rhs.Unwrap())
}

// Shared shape of the comparison rules: evaluate both arithmetic operands at
// fuel-1 and compare the results.
func unfoldComparison(lhs imp.AExp, rhs imp.AExp, st imp.Store, fuel imp.Fuel,
	accept func(int) bool) util.Option[bool] {
	if fuel == 0 {
		return util.None[bool]()
	}
	//
	l := imp.EvalAExp(lhs, st, fuel-1)
	if l.IsEmpty() {
		return util.None[bool]()
	}
	//
	r := imp.EvalAExp(rhs, st, fuel-1)
	if r.IsEmpty() {
		return util.None[bool]()
	}
	//
	return util.Some(accept(l.Unwrap().Cmp(r.Unwrap())))
}
