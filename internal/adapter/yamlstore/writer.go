// Package yamlstore writes merged dictionary records as one YAML file per
// word under <root>/<first letter>/<word>.yaml.
package yamlstore

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/jbovlaste-export/internal/domain"
)

// Writer stores records on disk, overwriting existing files.
type Writer struct {
	root    string
	favored []string
}

// NewWriter creates a Writer rooted at root. Languages in favored are
// written first, in that order.
func NewWriter(root string, favored []string) *Writer {
	return &Writer{
		root:    root,
		favored: favored,
	}
}

// PathFor returns the file a word is stored in.
func (w *Writer) PathFor(word string) (string, error) {
	if !domain.SafeFileName(word) {
		return "", domain.NewValidationError("word", fmt.Sprintf("cannot be stored as a file name: %q", word))
	}

	first, _ := utf8.DecodeRuneInString(word)
	return filepath.Join(w.root, string(first), word+".yaml"), nil
}

// Write serializes rec to its file and returns the path.
func (w *Writer) Write(rec domain.Record) (string, error) {
	path, err := w.PathFor(rec.Word)
	if err != nil {
		return "", fmt.Errorf("yamlstore: %w", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, rec, w.favored); err != nil {
		return "", fmt.Errorf("yamlstore: encode %s: %w", rec.Word, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("yamlstore: create dir: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("yamlstore: write %s: %w", path, err)
	}

	return path, nil
}

// Encode writes rec as a YAML document with keys in a fixed order:
// word, rafsi, examples, definitions. Definitions are ordered by
// domain.OrderLanguages.
func Encode(out io.Writer, rec domain.Record, favored []string) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(recordNode(rec, favored)); err != nil {
		return err
	}
	return enc.Close()
}

func recordNode(rec domain.Record, favored []string) *yaml.Node {
	defs := mappingNode()
	for _, lang := range domain.OrderLanguages(favored, rec.Languages()) {
		d := rec.Definitions[lang]

		def := mappingNode()
		addPair(def, "place structure", scalarNode(d.PlaceStructure))
		addPair(def, "notes", sequenceNode(d.Notes))
		addPair(def, "glosses", sequenceNode(d.Glosses))

		addPair(defs, lang, def)
	}

	doc := mappingNode()
	addPair(doc, "word", scalarNode(rec.Word))
	addPair(doc, "rafsi", sequenceNode(rec.Rafsi))
	addPair(doc, "examples", scalarNode(rec.Examples))
	addPair(doc, "definitions", defs)
	return doc
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func scalarNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func sequenceNode(items []string) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, it := range items {
		seq.Content = append(seq.Content, scalarNode(it))
	}
	return seq
}

func addPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, scalarNode(key), value)
}
