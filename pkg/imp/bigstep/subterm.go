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
)

// Subterms returns every subterm of a given command, grouped by family and
// including the command itself.  Terms are reported in evaluation order
// (parents before children, left operands before right).
func Subterms(cmd imp.Com) ([]imp.AExp, []imp.BExp, []imp.Com) {
	collector := subtermCollector{}
	collector.com(cmd)
	//
	return collector.aexps, collector.bexps, collector.coms
}

type subtermCollector struct {
	aexps []imp.AExp
	bexps []imp.BExp
	coms  []imp.Com
}

func (p *subtermCollector) com(cmd imp.Com) {
	p.coms = append(p.coms, cmd)
	//
	switch node := cmd.(type) {
	case *imp.Skip:
		// Leaf
	case *imp.Assign:
		p.aexp(node.Rhs)
	case *imp.Seq:
		p.com(node.First)
		p.com(node.Second)
	case *imp.IfElse:
		p.bexp(node.Cond)
		p.com(node.Then)
		p.com(node.Else)
	case *imp.While:
		p.bexp(node.Cond)
		p.com(node.Body)
	default:
		panic(fmt.Sprintf("unknown command %s", cmd))
	}
}

func (p *subtermCollector) bexp(expr imp.BExp) {
	p.bexps = append(p.bexps, expr)
	//
	switch node := expr.(type) {
	case *imp.Truth:
		// Leaf
	case *imp.Eq:
		p.aexp(node.Lhs)
		p.aexp(node.Rhs)
	case *imp.Le:
		p.aexp(node.Lhs)
		p.aexp(node.Rhs)
	case *imp.Not:
		p.bexp(node.Arg)
	case *imp.And:
		p.bexp(node.Lhs)
		p.bexp(node.Rhs)
	default:
		panic(fmt.Sprintf("unknown boolean expression %s", expr))
	}
}

func (p *subtermCollector) aexp(expr imp.AExp) {
	p.aexps = append(p.aexps, expr)
	//
	switch node := expr.(type) {
	case *imp.Constant, *imp.VarAccess:
		// Leaf
	case *imp.Add:
		p.aexp(node.Lhs)
		p.aexp(node.Rhs)
	case *imp.Sub:
		p.aexp(node.Lhs)
		p.aexp(node.Rhs)
	case *imp.Mul:
		p.aexp(node.Lhs)
		p.aexp(node.Rhs)
	default:
		panic(fmt.Sprintf("unknown arithmetic expression %s", expr))
	}
}
