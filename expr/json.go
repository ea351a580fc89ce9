// SPDX-License-Identifier: MIT
// Package: dcpgen/expr
//
// json.go: JSON export of a tree for tooling (CLI --json).

package expr

import "encoding/json"

// jsonNode is the exported shape of one node.
type jsonNode struct {
	Name      string  `json:"name"`
	Text      string  `json:"text"`
	Curvature string  `json:"curvature"`
	Sign      string  `json:"sign"`
	Children  []*Node `json:"children,omitempty"`
}

// MarshalJSON encodes the node with its rendered text and the curvature and
// sign of its production signature. Children are encoded recursively.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n == nil || n.Production == nil {
		return []byte("null"), nil
	}
	return json.Marshal(jsonNode{
		Name:      n.Production.Name,
		Text:      Render(n),
		Curvature: n.Production.Signature.Curvature().String(),
		Sign:      n.Production.Signature.Sign().String(),
		Children:  n.Children,
	})
}
