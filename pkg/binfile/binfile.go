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

// Package binfile reads and writes programs in a structural JSON (or YAML)
// encoding of the abstract syntax tree.  The language itself has no concrete
// syntax; these files exist so that programs can be handed to the command-line
// tools without constructing trees in code.
package binfile

import (
	"encoding/json"

	"github.com/consensys/go-imp/pkg/imp"
	"gopkg.in/yaml.v3"
)

// ProgramFromJson parses a command from its JSON encoding.
func ProgramFromJson(data []byte) (imp.Com, error) {
	var node Node
	//
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	//
	return node.ToCom()
}

// ProgramFromYaml parses a command from its YAML encoding.
func ProgramFromYaml(data []byte) (imp.Com, error) {
	var node Node
	//
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	//
	return node.ToCom()
}

// ProgramToJson converts a command into its (indented) JSON encoding.
func ProgramToJson(cmd imp.Com) ([]byte, error) {
	node, err := FromCom(cmd)
	if err != nil {
		return nil, err
	}
	//
	return json.MarshalIndent(node, "", "  ")
}

// ProgramToYaml converts a command into its YAML encoding.
func ProgramToYaml(cmd imp.Com) ([]byte, error) {
	node, err := FromCom(cmd)
	if err != nil {
		return nil, err
	}
	//
	return yaml.Marshal(node)
}
