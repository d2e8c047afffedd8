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

// CheckAExp checks the rule table and the direct evaluator agree on a given
// arithmetic expression, store and fuel.
func CheckAExp(expr imp.AExp, store imp.Store, fuel imp.Fuel) error {
	var (
		rule     = aexpRuleFor(expr)
		asserted = rule.Unfold(expr, store, fuel)
		actual   = imp.EvalAExp(expr, store, fuel)
	)
	//
	if !sameValue(asserted, actual) {
		return fmt.Errorf("rule %q disagrees with evaluator on %s at fuel %d (%s vs %s)",
			rule.Name, expr, fuel, describeValue(asserted), describeValue(actual))
	}
	//
	return nil
}

// CheckBExp checks the rule table and the direct evaluator agree on a given
// boolean expression, store and fuel.
func CheckBExp(expr imp.BExp, store imp.Store, fuel imp.Fuel) error {
	var (
		rule     = bexpRuleFor(expr)
		asserted = rule.Unfold(expr, store, fuel)
		actual   = imp.EvalBExp(expr, store, fuel)
	)
	//
	if !sameTruth(asserted, actual) {
		return fmt.Errorf("rule %q disagrees with evaluator on %s at fuel %d (%s vs %s)",
			rule.Name, expr, fuel, describeTruth(asserted), describeTruth(actual))
	}
	//
	return nil
}

// CheckCom checks the rule table and the direct evaluator agree on a given
// command, store and fuel.
func CheckCom(cmd imp.Com, store imp.Store, fuel imp.Fuel) error {
	var (
		rule     = comRuleFor(cmd)
		asserted = rule.Unfold(cmd, store, fuel)
		actual   = imp.EvalCom(cmd, store, fuel)
	)
	//
	if !sameStore(asserted, actual) {
		return fmt.Errorf("rule %q disagrees with evaluator on %s at fuel %d (%s vs %s)",
			rule.Name, cmd, fuel, describeStore(asserted), describeStore(actual))
	}
	//
	return nil
}

// CheckProgram checks rule/evaluator agreement for a command and all of its
// subterms (arithmetic, boolean and command alike), at every fuel value from
// zero up to the given bound.  This covers the zero-fuel boundary of every
// rule reachable from the program.
func CheckProgram(cmd imp.Com, store imp.Store, maxFuel imp.Fuel) error {
	aexps, bexps, coms := Subterms(cmd)
	//
	for fuel := imp.Fuel(0); fuel <= maxFuel; fuel++ {
		for _, e := range aexps {
			if err := CheckAExp(e, store, fuel); err != nil {
				return err
			}
		}
		//
		for _, e := range bexps {
			if err := CheckBExp(e, store, fuel); err != nil {
				return err
			}
		}
		//
		for _, c := range coms {
			if err := CheckCom(c, store, fuel); err != nil {
				return err
			}
		}
	}
	//
	return nil
}

// ============================================================================
// Helpers
// ============================================================================

func sameValue(l util.Option[*big.Int], r util.Option[*big.Int]) bool {
	if l.IsEmpty() || r.IsEmpty() {
		return l.IsEmpty() == r.IsEmpty()
	}
	//
	return l.Unwrap().Cmp(r.Unwrap()) == 0
}

func sameTruth(l util.Option[bool], r util.Option[bool]) bool {
	if l.IsEmpty() || r.IsEmpty() {
		return l.IsEmpty() == r.IsEmpty()
	}
	//
	return l.Unwrap() == r.Unwrap()
}

func sameStore(l util.Option[imp.Store], r util.Option[imp.Store]) bool {
	if l.IsEmpty() || r.IsEmpty() {
		return l.IsEmpty() == r.IsEmpty()
	}
	//
	return l.Unwrap().Equals(r.Unwrap())
}

func describeValue(o util.Option[*big.Int]) string {
	if o.IsEmpty() {
		return "exhausted"
	}
	//
	return o.Unwrap().String()
}

func describeTruth(o util.Option[bool]) string {
	if o.IsEmpty() {
		return "exhausted"
	}
	//
	return fmt.Sprintf("%t", o.Unwrap())
}

func describeStore(o util.Option[imp.Store]) string {
	if o.IsEmpty() {
		return "exhausted"
	}
	//
	return o.Unwrap().String()
}
