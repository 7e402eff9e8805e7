// SPDX-License-Identifier: MIT
package loader

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/socnet/core"
)

// Sentinel errors.
var (
	// ErrUnknownFormat is returned for an unsupported format or file extension.
	ErrUnknownFormat = errors.New("loader: unknown format")

	// ErrBadDocument is returned when input cannot be decoded into a graph.
	ErrBadDocument = errors.New("loader: malformed input")
)

// Format names an input encoding.
type Format string

// Supported formats.
const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatEdgeList Format = "edgelist"
)

// Option configures edge-list decoding; JSON and YAML carry their own flags.
type Option func(*Options)

// Options for Decode and Load.
type Options struct {
	// Directed applies to edge lists.
	Directed bool
	// Loops applies to edge lists; without it self-loop lines are skipped.
	Loops bool
}

// WithDirected marks edge-list input as a follower graph.
func WithDirected(directed bool) Option {
	return func(o *Options) { o.Directed = directed }
}

// WithLoops keeps self-loop lines of edge-list input.
func WithLoops() Option {
	return func(o *Options) { o.Loops = true }
}

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".txt", ".edges", ".csv", ".tsv", ".el":
		return FormatEdgeList, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// ParseFormat validates a format name; "" means infer from the path.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML, FormatEdgeList, "":
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Load reads the file at path. format "" infers it from the extension.
func Load(path string, format Format, opts ...Option) (*core.Graph, error) {
	if format == "" {
		var err error
		if format, err = FormatFromPath(path); err != nil {
			return nil, err
		}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %q: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(f, format, opts...)
	if err != nil {
		return nil, fmt.Errorf("loader: %q: %w", path, err)
	}

	return g, nil
}

// Decode reads one graph from r.
func Decode(r io.Reader, format Format, opts ...Option) (*core.Graph, error) {
	var d *Document
	switch format {
	case FormatEdgeList:
		o := Options{}
		for _, opt := range opts {
			opt(&o)
		}

		return decodeEdgeList(r, o)
	case FormatJSON, FormatYAML:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if format == FormatJSON {
			d, err = decodeJSON(data)
		} else {
			d, err = decodeYAML(data)
		}
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return d.Graph()
}

func decodeEdgeList(r io.Reader, o Options) (*core.Graph, error) {
	gopts := []core.GraphOption{core.WithDirected(o.Directed)}
	if o.Loops {
		gopts = append(gopts, core.WithLoops())
	}
	g := core.NewGraph(gopts...)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := bytes.TrimSpace(sc.Bytes())
		if len(text) == 0 || text[0] == '#' || text[0] == '%' {
			continue
		}
		fields := strings.FieldsFunc(string(text), func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		switch len(fields) {
		case 1:
			if err := g.AddVertex(fields[0]); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrBadDocument, line, err)
			}
		case 0:
			continue
		default:
			from, to := fields[0], fields[1]
			if from == to && !o.Loops {
				if err := g.AddVertex(from); err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrBadDocument, line, err)
				}

				continue
			}
			if _, err := g.AddEdge(from, to); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrBadDocument, line, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return g, nil
}
