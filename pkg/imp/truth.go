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

	"github.com/consensys/go-imp/pkg/sexp"
	"github.com/consensys/go-imp/pkg/util"
)

// Truth represents a literal boolean value within an expression.
type Truth struct{ Value bool }

// Bool constructs a boolean expression representing a given literal.
func Bool(val bool) BExp {
	return &Truth{val}
}

// True constructs the boolean expression representing truth.
func True() BExp { return Bool(true) }

// False constructs the boolean expression representing falsehood.
func False() BExp { return Bool(false) }

// EvalIn implementation for the BExp interface.
func (p *Truth) EvalIn(store Store, fuel Fuel) util.Option[bool] {
	if fuel == 0 {
		return util.None[bool]()
	}
	//
	return util.Some(p.Value)
}

// Lisp implementation for the BExp interface.
func (p *Truth) Lisp() sexp.SExp {
	return sexp.NewSymbol(fmt.Sprintf("%t", p.Value))
}

func (p *Truth) String() string { return p.Lisp().String() }
