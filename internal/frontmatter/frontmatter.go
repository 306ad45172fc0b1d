// Package frontmatter splits note files into a metadata mapping and a body,
// and renders them back into canonical file text.
//
// The recognized layout is a leading "---" line, a YAML mapping, a closing
// "---" line, an optional blank separator, then the body. Files without such
// a block, or with a block that is not a YAML mapping, degrade to an empty
// mapping with the whole input as body; parsing never fails on malformed
// metadata.
package frontmatter

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jamalhansen/quill/internal/dates"
	"github.com/jamalhansen/quill/internal/note"
)

// Parse splits raw file text into metadata and body.
func Parse(text string) *note.Note {
	lines := strings.Split(text, "\n")

	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return &note.Note{Body: text}
	}

	endLine := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			endLine = i
			break
		}
	}
	if endLine == -1 {
		// Unclosed block: treat the whole file as body.
		return &note.Note{Body: text}
	}

	var doc yaml.Node
	raw := strings.Join(lines[1:endLine], "\n")
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return &note.Note{Body: text}
	}

	n := &note.Note{Body: bodyAfter(lines, endLine)}

	// An empty document (comments/whitespace only) has no content node.
	if len(doc.Content) == 0 {
		return n
	}
	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return &note.Note{Body: text}
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode := mapping.Content[i]
		if keyNode.Kind != yaml.ScalarNode {
			continue
		}
		n.Meta.Set(keyNode.Value, valueFromNode(mapping.Content[i+1]))
	}
	return n
}

// bodyAfter joins the lines following the closing delimiter, dropping the
// single blank separator line the canonical layout inserts.
func bodyAfter(lines []string, endLine int) string {
	rest := lines[endLine+1:]
	if len(rest) > 0 && strings.TrimSpace(rest[0]) == "" {
		rest = rest[1:]
	}
	return strings.Join(rest, "\n")
}

// valueFromNode maps a YAML node to the tagged scalar model. Non-scalar
// nodes are carried through untouched.
func valueFromNode(n *yaml.Node) note.Value {
	if n.Kind != yaml.ScalarNode {
		return note.Raw(n)
	}
	switch n.Tag {
	case "!!timestamp":
		if dates.IsValid(n.Value) {
			return note.Date(n.Value)
		}
		return note.String(n.Value)
	case "!!int", "!!float":
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return note.Number(f)
		}
		return note.String(n.Value)
	case "!!bool":
		if b, err := strconv.ParseBool(n.Value); err == nil {
			return note.Bool(b)
		}
		return note.String(n.Value)
	case "!!null":
		return note.Null()
	default:
		return note.String(n.Value)
	}
}

// Serialize renders the metadata block followed by the body. Notes with no
// metadata serialize to the body alone.
//
// For any note produced by enrichment, Parse(Serialize(n)) yields metadata
// and body equal to n.
func Serialize(n *note.Note) (string, error) {
	if n.Meta.Len() == 0 {
		return n.Body, nil
	}

	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range n.Meta.Fields() {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(f.Key); err != nil {
			return "", fmt.Errorf("encode key %q: %w", f.Key, err)
		}
		valNode, err := nodeForValue(f.Value)
		if err != nil {
			return "", fmt.Errorf("encode value for %q: %w", f.Key, err)
		}
		mapping.Content = append(mapping.Content, keyNode, valNode)
	}

	out, err := yaml.Marshal(mapping)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(out)
	b.WriteString("---\n")
	if n.Body != "" {
		b.WriteString("\n")
		b.WriteString(n.Body)
	}
	return b.String(), nil
}

// nodeForValue builds the YAML node for a scalar value. Strings go through
// the encoder, which quotes anything that would re-resolve as another type.
// Everything else is emitted as a plain scalar of its string form, so dates
// come out as bare YYYY-MM-DD and numbers keep their shortest rendering.
func nodeForValue(v note.Value) (*yaml.Node, error) {
	if raw, ok := v.AsRaw(); ok {
		return raw, nil
	}
	if v.IsString() {
		s, _ := v.AsString()
		node := &yaml.Node{}
		if err := node.Encode(s); err != nil {
			return nil, err
		}
		return node, nil
	}
	if v.IsNull() {
		return &yaml.Node{Kind: yaml.ScalarNode, Value: "null"}, nil
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Value: v.StringForm()}, nil
}
