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

// Package bigstep restates the evaluator as a flat table of rewrite rules, one
// per AST variant.  Each rule gives the expected result of evaluating its
// variant in terms of sub-evaluations only, mirroring how a declarative
// big-step semantics characterises an evaluation relation equation by
// equation.  The rules are trusted specifications; their agreement with the
// direct evaluator across every variant (including the zero-fuel boundary) is
// established by the checks in this package, which are exercised both by unit
// tests and by the check subcommand.
package bigstep

import (
	"math/big"

	"github.com/consensys/go-imp/pkg/imp"
	"github.com/consensys/go-imp/pkg/util"
)

// AExpRule specifies the expected one-step unfolding for one arithmetic
// expression variant.
type AExpRule struct {
	// Name of the variant this rule covers.
	Name string
	// Match determines whether this rule applies to a given expression.
	Match func(imp.AExp) bool
	// Unfold gives the asserted result of evaluating a matching expression,
	// written in terms of sub-evaluations at fuel-1 only.
	Unfold func(imp.AExp, imp.Store, imp.Fuel) util.Option[*big.Int]
}

// BExpRule specifies the expected one-step unfolding for one boolean
// expression variant.
type BExpRule struct {
	// Name of the variant this rule covers.
	Name string
	// Match determines whether this rule applies to a given expression.
	Match func(imp.BExp) bool
	// Unfold gives the asserted result of evaluating a matching expression.
	Unfold func(imp.BExp, imp.Store, imp.Fuel) util.Option[bool]
}

// ComRule specifies the expected one-step unfolding for one command variant.
type ComRule struct {
	// Name of the variant this rule covers.
	Name string
	// Match determines whether this rule applies to a given command.
	Match func(imp.Com) bool
	// Unfold gives the asserted result of evaluating a matching command.
	Unfold func(imp.Com, imp.Store, imp.Fuel) util.Option[imp.Store]
}

// UnfoldAExp applies the (unique) matching rule to a given arithmetic
// expression.  The variant set is closed, hence a rule always exists.
func UnfoldAExp(expr imp.AExp, store imp.Store, fuel imp.Fuel) util.Option[*big.Int] {
	return aexpRuleFor(expr).Unfold(expr, store, fuel)
}

// UnfoldBExp applies the (unique) matching rule to a given boolean expression.
func UnfoldBExp(expr imp.BExp, store imp.Store, fuel imp.Fuel) util.Option[bool] {
	return bexpRuleFor(expr).Unfold(expr, store, fuel)
}

// UnfoldCom applies the (unique) matching rule to a given command.
func UnfoldCom(cmd imp.Com, store imp.Store, fuel imp.Fuel) util.Option[imp.Store] {
	return comRuleFor(cmd).Unfold(cmd, store, fuel)
}
