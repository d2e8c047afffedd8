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

// Constant represents a literal integer value within an expression.
type Constant struct{ Value *big.Int }

// Const constructs an arithmetic expression representing a given constant.
func Const(val int64) AExp {
	return &Constant{big.NewInt(val)}
}

// ConstBig constructs an arithmetic expression representing a given (unbounded)
// constant.
func ConstBig(val *big.Int) AExp {
	return &Constant{val}
}

// EvalIn implementation for the AExp interface.
func (p *Constant) EvalIn(store Store, fuel Fuel) util.Option[*big.Int] {
	if fuel == 0 {
		return util.None[*big.Int]()
	}
	//
	return util.Some(p.Value)
}

// Lisp implementation for the AExp interface.
func (p *Constant) Lisp() sexp.SExp {
	return sexp.NewSymbol(p.Value.String())
}

func (p *Constant) String() string { return p.Lisp().String() }
