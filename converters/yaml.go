package converters

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathfind/core"
)

// ErrDecode indicates a document that is not a mapping of vertex IDs to
// neighbor sequences.
var ErrDecode = errors.New("converters: malformed graph document")

// yamlIndent is the block indentation used by ToYAML.
const yamlIndent = 2

// FromYAML decodes an adjacency document into a Graph.
// Duplicate keys, non-sequence values and empty IDs are rejected with
// ErrDecode (empty IDs additionally match core.ErrEmptyVertexID).
// An empty document yields an empty Graph.
func FromYAML(data []byte) (*core.Graph, error) {
	var adj map[string][]string
	if err := yaml.Unmarshal(data, &adj); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	g, err := core.NewGraphStrict(adj)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return g, nil
}

// ToYAML encodes g as an adjacency document with keys sorted and each
// neighbor sequence in flow style, e.g. "A: [B, C]".
// Neighbor-only vertices are not emitted as keys.
func ToYAML(g *core.Graph) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, id := range g.Keys() {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, to := range g.Neighbors(id) {
			seq.Content = append(seq.Content, strNode(to))
		}
		root.Content = append(root.Content, strNode(id), seq)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("converters: ToYAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("converters: ToYAML: %w", err)
	}

	return buf.Bytes(), nil
}

// LoadFile reads and decodes the YAML adjacency document at path.
func LoadFile(path string) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("converters: LoadFile(%q): %w", path, err)
	}
	g, err := FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("converters: LoadFile(%q): %w", path, err)
	}

	return g, nil
}

// strNode returns a scalar explicitly tagged as a string, so IDs such as
// "1" or "yes" survive a round trip unchanged.
func strNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
