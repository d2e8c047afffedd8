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
package binfile

import (
	"fmt"
	"math/big"

	"github.com/consensys/go-imp/pkg/imp"
)

// Node is the raw form an AST node takes on disk.  Exactly one op applies per
// node, with only the fields that op calls for populated; everything else is
// omitted.  This is a structural encoding of the tree, not a concrete syntax.
type Node struct {
	// Op discriminates the variant: const, var, add, sub, mul, bool, eq, le,
	// not, and, skip, assign, seq, if or while.
	Op string `json:"op" yaml:"op"`
	// Literal value (const).
	Value int64 `json:"value,omitempty" yaml:"value,omitempty"`
	// Literal truth value (bool).
	Truth bool `json:"truth,omitempty" yaml:"truth,omitempty"`
	// Variable index (var).
	Index uint `json:"index,omitempty" yaml:"index,omitempty"`
	// Assigned variable index (assign).
	Target uint `json:"target,omitempty" yaml:"target,omitempty"`
	// Operands of binary operators (add, sub, mul, eq, le, and).
	Lhs *Node `json:"lhs,omitempty" yaml:"lhs,omitempty"`
	Rhs *Node `json:"rhs,omitempty" yaml:"rhs,omitempty"`
	// Operand of negation (not), and right-hand side of assignment (assign).
	Arg *Node `json:"arg,omitempty" yaml:"arg,omitempty"`
	// Components of sequential composition (seq).
	First  *Node `json:"first,omitempty" yaml:"first,omitempty"`
	Second *Node `json:"second,omitempty" yaml:"second,omitempty"`
	// Condition of branching and looping (if, while).
	Cond *Node `json:"cond,omitempty" yaml:"cond,omitempty"`
	// Branches (if).
	Then *Node `json:"then,omitempty" yaml:"then,omitempty"`
	Else *Node `json:"else,omitempty" yaml:"else,omitempty"`
	// Loop body (while).
	Body *Node `json:"body,omitempty" yaml:"body,omitempty"`
}

// ============================================================================
// Decoding
// ============================================================================

// ToCom converts a raw node into a command, rejecting unknown ops and missing
// children.
func (p *Node) ToCom() (imp.Com, error) {
	switch p.Op {
	case "skip":
		return &imp.Skip{}, nil
	case "assign":
		rhs, err := childAExp(p.Arg, "assign", "arg")
		if err != nil {
			return nil, err
		}
		//
		return &imp.Assign{Target: p.Target, Rhs: rhs}, nil
	case "seq":
		first, err := childCom(p.First, "seq", "first")
		if err != nil {
			return nil, err
		}
		//
		second, err := childCom(p.Second, "seq", "second")
		if err != nil {
			return nil, err
		}
		//
		return &imp.Seq{First: first, Second: second}, nil
	case "if":
		cond, err := childBExp(p.Cond, "if", "cond")
		if err != nil {
			return nil, err
		}
		//
		then, err := childCom(p.Then, "if", "then")
		if err != nil {
			return nil, err
		}
		//
		els, err := childCom(p.Else, "if", "else")
		if err != nil {
			return nil, err
		}
		//
		return &imp.IfElse{Cond: cond, Then: then, Else: els}, nil
	case "while":
		cond, err := childBExp(p.Cond, "while", "cond")
		if err != nil {
			return nil, err
		}
		//
		body, err := childCom(p.Body, "while", "body")
		if err != nil {
			return nil, err
		}
		//
		return &imp.While{Cond: cond, Body: body}, nil
	default:
		return nil, fmt.Errorf("unknown command op %q", p.Op)
	}
}

// ToAExp converts a raw node into an arithmetic expression.
func (p *Node) ToAExp() (imp.AExp, error) {
	switch p.Op {
	case "const":
		return imp.ConstBig(big.NewInt(p.Value)), nil
	case "var":
		return imp.Var(p.Index), nil
	case "add", "sub", "mul":
		lhs, err := childAExp(p.Lhs, p.Op, "lhs")
		if err != nil {
			return nil, err
		}
		//
		rhs, err := childAExp(p.Rhs, p.Op, "rhs")
		if err != nil {
			return nil, err
		}
		//
		switch p.Op {
		case "add":
			return imp.Plus(lhs, rhs), nil
		case "sub":
			return imp.Minus(lhs, rhs), nil
		default:
			return imp.Mult(lhs, rhs), nil
		}
	default:
		return nil, fmt.Errorf("unknown arithmetic op %q", p.Op)
	}
}

// ToBExp converts a raw node into a boolean expression.
func (p *Node) ToBExp() (imp.BExp, error) {
	switch p.Op {
	case "bool":
		return imp.Bool(p.Truth), nil
	case "eq", "le":
		lhs, err := childAExp(p.Lhs, p.Op, "lhs")
		if err != nil {
			return nil, err
		}
		//
		rhs, err := childAExp(p.Rhs, p.Op, "rhs")
		if err != nil {
			return nil, err
		}
		//
		if p.Op == "eq" {
			return imp.Equals(lhs, rhs), nil
		}
		//
		return imp.AtMost(lhs, rhs), nil
	case "not":
		arg, err := childBExp(p.Arg, "not", "arg")
		if err != nil {
			return nil, err
		}
		//
		return imp.Negate(arg), nil
	case "and":
		lhs, err := childBExp(p.Lhs, "and", "lhs")
		if err != nil {
			return nil, err
		}
		//
		rhs, err := childBExp(p.Rhs, "and", "rhs")
		if err != nil {
			return nil, err
		}
		//
		return imp.Conjunct(lhs, rhs), nil
	default:
		return nil, fmt.Errorf("unknown boolean op %q", p.Op)
	}
}

func childCom(child *Node, op string, field string) (imp.Com, error) {
	if child == nil {
		return nil, fmt.Errorf("%s node missing %q", op, field)
	}
	//
	return child.ToCom()
}

func childBExp(child *Node, op string, field string) (imp.BExp, error) {
	if child == nil {
		return nil, fmt.Errorf("%s node missing %q", op, field)
	}
	//
	return child.ToBExp()
}

func childAExp(child *Node, op string, field string) (imp.AExp, error) {
	if child == nil {
		return nil, fmt.Errorf("%s node missing %q", op, field)
	}
	//
	return child.ToAExp()
}

// ============================================================================
// Encoding
// ============================================================================

// FromCom converts a command into its raw on-disk form.
func FromCom(cmd imp.Com) (*Node, error) {
	switch node := cmd.(type) {
	case *imp.Skip:
		return &Node{Op: "skip"}, nil
	case *imp.Assign:
		rhs, err := FromAExp(node.Rhs)
		if err != nil {
			return nil, err
		}
		//
		return &Node{Op: "assign", Target: node.Target, Arg: rhs}, nil
	case *imp.Seq:
		first, err := FromCom(node.First)
		if err != nil {
			return nil, err
		}
		//
		second, err := FromCom(node.Second)
		if err != nil {
			return nil, err
		}
		//
		return &Node{Op: "seq", First: first, Second: second}, nil
	case *imp.IfElse:
		cond, err := FromBExp(node.Cond)
		if err != nil {
			return nil, err
		}
		//
		then, err := FromCom(node.Then)
		if err != nil {
			return nil, err
		}
		//
		els, err := FromCom(node.Else)
		if err != nil {
			return nil, err
		}
		//
		return &Node{Op: "if", Cond: cond, Then: then, Else: els}, nil
	case *imp.While:
		cond, err := FromBExp(node.Cond)
		if err != nil {
			return nil, err
		}
		//
		body, err := FromCom(node.Body)
		if err != nil {
			return nil, err
		}
		//
		return &Node{Op: "while", Cond: cond, Body: body}, nil
	default:
		return nil, fmt.Errorf("unsupported command %s", cmd)
	}
}

// FromBExp converts a boolean expression into its raw on-disk form.
func FromBExp(expr imp.BExp) (*Node, error) {
	switch node := expr.(type) {
	case *imp.Truth:
		return &Node{Op: "bool", Truth: node.Value}, nil
	case *imp.Eq:
		return fromComparison("eq", node.Lhs, node.Rhs)
	case *imp.Le:
		return fromComparison("le", node.Lhs, node.Rhs)
	case *imp.Not:
		arg, err := FromBExp(node.Arg)
		if err != nil {
			return nil, err
		}
		//
		return &Node{Op: "not", Arg: arg}, nil
	case *imp.And:
		lhs, err := FromBExp(node.Lhs)
		if err != nil {
			return nil, err
		}
		//
		rhs, err := FromBExp(node.Rhs)
		if err != nil {
			return nil, err
		}
		//
		return &Node{Op: "and", Lhs: lhs, Rhs: rhs}, nil
	default:
		return nil, fmt.Errorf("unsupported boolean expression %s", expr)
	}
}

// FromAExp converts an arithmetic expression into its raw on-disk form.
func FromAExp(expr imp.AExp) (*Node, error) {
	switch node := expr.(type) {
	case *imp.Constant:
		if !node.Value.IsInt64() {
			return nil, fmt.Errorf("constant %s exceeds encodable range", node.Value)
		}
		//
		return &Node{Op: "const", Value: node.Value.Int64()}, nil
	case *imp.VarAccess:
		return &Node{Op: "var", Index: node.Index}, nil
	case *imp.Add:
		return fromArithmetic("add", node.Lhs, node.Rhs)
	case *imp.Sub:
		return fromArithmetic("sub", node.Lhs, node.Rhs)
	case *imp.Mul:
		return fromArithmetic("mul", node.Lhs, node.Rhs)
	default:
		return nil, fmt.Errorf("unsupported arithmetic expression %s", expr)
	}
}

func fromComparison(op string, lhs imp.AExp, rhs imp.AExp) (*Node, error) {
	l, err := FromAExp(lhs)
	if err != nil {
		return nil, err
	}
	//
	r, err := FromAExp(rhs)
	if err != nil {
		return nil, err
	}
	//
	return &Node{Op: op, Lhs: l, Rhs: r}, nil
}

func fromArithmetic(op string, lhs imp.AExp, rhs imp.AExp) (*Node, error) {
	return fromComparison(op, lhs, rhs)
}
