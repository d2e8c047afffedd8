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

// ComRules returns the rule table for commands.  The while rule states the
// one-step unrolling exactly as the evaluator performs it: a true condition
// steps to evaluating the sequence of the body and the loop itself, a false
// condition returns the store unchanged.
func ComRules() []ComRule {
	return []ComRule{
		{
			Name:   "skip",
			Match:  func(c imp.Com) bool { _, ok := c.(*imp.Skip); return ok },
			Unfold: unfoldSkip,
		},
		{
			Name:   "assign",
			Match:  func(c imp.Com) bool { _, ok := c.(*imp.Assign); return ok },
			Unfold: unfoldAssign,
		},
		{
			Name:   "seq",
			Match:  func(c imp.Com) bool { _, ok := c.(*imp.Seq); return ok },
			Unfold: unfoldSeq,
		},
		{
			Name:   "if",
			Match:  func(c imp.Com) bool { _, ok := c.(*imp.IfElse); return ok },
			Unfold: unfoldIfElse,
		},
		{
			Name:   "while",
			Match:  func(c imp.Com) bool { _, ok := c.(*imp.While); return ok },
			Unfold: unfoldWhile,
		},
	}
}

// Determine the rule covering a given command.
func comRuleFor(cmd imp.Com) ComRule {
	for _, rule := range ComRules() {
		if rule.Match(cmd) {
			return rule
		}
	}
	//
	panic(fmt.Sprintf("unknown command %s", cmd))
}

func unfoldSkip(c imp.Com, st imp.Store, fuel imp.Fuel) util.Option[imp.Store] {
	if fuel == 0 {
		return util.None[imp.Store]()
	}
	//
	return util.Some(st)
}

func unfoldAssign(c imp.Com, st imp.Store, fuel imp.Fuel) util.Option[imp.Store] {
	node := c.(*imp.Assign)
	//
	if fuel == 0 {
		return util.None[imp.Store]()
	}
	//
	val := imp.EvalAExp(node.Rhs, st, fuel-1)
	if val.IsEmpty() {
		return util.None[imp.Store]()
	}
	//
	return util.Some(st.Update(node.Target, val.Unwrap()))
}

func unfoldSeq(c imp.Com, st imp.Store, fuel imp.Fuel) util.Option[imp.Store] {
	node := c.(*imp.Seq)
	//
	if fuel == 0 {
		return util.None[imp.Store]()
	}
	// Both commands run under the same decremented budget.
	first := imp.EvalCom(node.First, st, fuel-1)
	if first.IsEmpty() {
		return first
	}
	//
	return imp.EvalCom(node.Second, first.Unwrap(), fuel-1)
}

func unfoldIfElse(c imp.Com, st imp.Store, fuel imp.Fuel) util.Option[imp.Store] {
	node := c.(*imp.IfElse)
	//
	if fuel == 0 {
		return util.None[imp.Store]()
	}
	//
	cond := imp.EvalBExp(node.Cond, st, fuel-1)
	if cond.IsEmpty() {
		return util.None[imp.Store]()
	}
	//
	if cond.Unwrap() {
		return imp.EvalCom(node.Then, st, fuel-1)
	}
	//
	return imp.EvalCom(node.Else, st, fuel-1)
}

func unfoldWhile(c imp.Com, st imp.Store, fuel imp.Fuel) util.Option[imp.Store] {
	node := c.(*imp.While)
	//
	if fuel == 0 {
		return util.None[imp.Store]()
	}
	//
	cond := imp.EvalBExp(node.Cond, st, fuel-1)
	if cond.IsEmpty() {
		return util.None[imp.Store]()
	}
	//
	if !cond.Unwrap() {
		return util.Some(st)
	}
	//
	return imp.EvalCom(&imp.Seq{First: node.Body, Second: node}, st, fuel-1)
}
