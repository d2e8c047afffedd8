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
	"fmt"
	"math/big"

	"github.com/consensys/go-imp/pkg/sexp"
	"github.com/consensys/go-imp/pkg/util"
)

// VarAccess represents reading the value currently held by a given variable in
// the store.
type VarAccess struct{ Index Variable }

// Var constructs an arithmetic expression which reads a given variable.
func Var(x Variable) AExp {
	return &VarAccess{x}
}

// EvalIn implementation for the AExp interface.
func (p *VarAccess) EvalIn(store Store, fuel Fuel) util.Option[*big.Int] {
	if fuel == 0 {
		return util.None[*big.Int]()
	}
	//
	return util.Some(store.Lookup(p.Index))
}

// Lisp implementation for the AExp interface.
func (p *VarAccess) Lisp() sexp.SExp {
	return sexp.NewSymbol(fmt.Sprintf("x%d", p.Index))
}

func (p *VarAccess) String() string { return p.Lisp().String() }
