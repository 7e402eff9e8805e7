// SPDX-License-Identifier: MIT
package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/socnet/core"
)

// ID is a node identifier that accepts JSON strings and integers.
type ID string

// UnmarshalJSON accepts "abc" and 123.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)

		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("%w: node id %s", ErrBadDocument, b)
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return fmt.Errorf("%w: node id %s is not an integer", ErrBadDocument, b)
	}
	*id = ID(n.String())

	return nil
}

// Node is one member of a Document.
type Node struct {
	ID         ID                     `json:"id" yaml:"id"`
	Attributes map[string]interface{} `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Link is one edge of a Document.
type Link struct {
	From ID `json:"from" yaml:"from"`
	To   ID `json:"to" yaml:"to"`
}

// Document is the serialized form of a graph.
type Document struct {
	Directed bool   `json:"directed" yaml:"directed"`
	Loops    bool   `json:"loops,omitempty" yaml:"loops,omitempty"`
	Nodes    []Node `json:"nodes,omitempty" yaml:"nodes,omitempty"`
	Edges    []Link `json:"edges" yaml:"edges"`
}

// Graph builds a core.Graph from d. Edge endpoints missing from Nodes are
// created on the fly.
func (d *Document) Graph() (*core.Graph, error) {
	opts := []core.GraphOption{core.WithDirected(d.Directed)}
	if d.Loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)

	for i, n := range d.Nodes {
		if err := g.AddVertex(string(n.ID)); err != nil {
			return nil, fmt.Errorf("%w: node #%d: %v", ErrBadDocument, i, err)
		}
		for k, v := range n.Attributes {
			if err := g.SetAttribute(string(n.ID), k, v); err != nil {
				return nil, err
			}
		}
	}
	for i, e := range d.Edges {
		if _, err := g.AddEdge(string(e.From), string(e.To)); err != nil {
			return nil, fmt.Errorf("%w: edge #%d %q→%q: %v", ErrBadDocument, i, e.From, e.To, err)
		}
	}

	return g, nil
}

// FromGraph serializes g. Nodes and edges keep the graph's sorted order.
func FromGraph(g *core.Graph) *Document {
	d := &Document{Directed: g.Directed(), Loops: g.Looped(), Edges: []Link{}}
	for _, id := range g.Vertices() {
		n := Node{ID: ID(id)}
		if v, err := g.Vertex(id); err == nil && len(v.Metadata) > 0 {
			n.Attributes = v.Metadata
		}
		d.Nodes = append(d.Nodes, n)
	}
	for _, e := range g.Edges() {
		d.Edges = append(d.Edges, Link{From: ID(e.From), To: ID(e.To)})
	}

	return d
}

func decodeJSON(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrBadDocument, err)
	}

	return &d, nil
}

func decodeYAML(data []byte) (*Document, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: yaml: %v", ErrBadDocument, err)
	}

	return &d, nil
}
