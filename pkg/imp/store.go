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
	"slices"
	"strings"
)

// Store maps variables to integer values.  It is a persistent value: Update
// returns a fresh store and never modifies its receiver, so stores held by
// earlier evaluation steps remain valid.  Variables outside the explicitly
// bound domain read as the store's default value.  Values held in a store are
// treated as immutable; they must not be mutated through the returned pointer.
type Store struct {
	// Explicitly bound variables.
	bindings map[Variable]*big.Int
	// Value read for any unbound variable.
	defaultValue *big.Int
}

// NewStore constructs an empty store with a given default value for unbound
// variables.
func NewStore(defaultValue *big.Int) Store {
	return Store{nil, defaultValue}
}

// EmptyStore constructs an empty store whose unbound variables read as zero.
func EmptyStore() Store {
	return NewStore(big.NewInt(0))
}

// Lookup returns the value bound to a given variable, or the store's default
// if the variable is unbound.
func (p Store) Lookup(x Variable) *big.Int {
	if v, ok := p.bindings[x]; ok {
		return v
	}
	//
	return p.defaultValue
}

// Update binds a given variable to a given value, returning the resulting
// store.  The receiver is left untouched.
func (p Store) Update(x Variable, v *big.Int) Store {
	bindings := make(map[Variable]*big.Int, len(p.bindings)+1)
	//
	for y, w := range p.bindings {
		bindings[y] = w
	}
	//
	bindings[x] = v
	//
	return Store{bindings, p.defaultValue}
}

// Bound returns the explicitly bound variables of this store, in ascending
// order.
func (p Store) Bound() []Variable {
	vars := make([]Variable, 0, len(p.bindings))
	for x := range p.bindings {
		vars = append(vars, x)
	}
	//
	slices.Sort(vars)
	//
	return vars
}

// DefaultValue returns the value read for unbound variables.
func (p Store) DefaultValue() *big.Int {
	return p.defaultValue
}

// Equals checks whether two stores are observably identical, i.e. they agree
// on every variable.  Stores with different defaults are never equal, since
// they disagree on some unbound variable.
func (p Store) Equals(other Store) bool {
	if p.defaultValue.Cmp(other.defaultValue) != 0 {
		return false
	}
	// Check over the union of both domains.  A binding equal to the default
	// is observably the same as no binding at all.
	for _, x := range p.Bound() {
		if p.Lookup(x).Cmp(other.Lookup(x)) != 0 {
			return false
		}
	}
	//
	for _, x := range other.Bound() {
		if p.Lookup(x).Cmp(other.Lookup(x)) != 0 {
			return false
		}
	}
	//
	return true
}

func (p Store) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, x := range p.Bound() {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(fmt.Sprintf("x%d=%s", x, p.bindings[x]))
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}
