package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseError reports that a source's text is not syntactically valid. It is
// fatal for that source; the loader chain may still try another one.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes a text blob into generic node trees, one per document in the
// stream. It knows nothing about the prompt schemas; validation is the
// normalizers' job. YAML is a superset of JSON, so JSON sources parse too.
func Parse(name string, data []byte) ([]*yaml.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var docs []*yaml.Node
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Source: name, Err: err}
		}
		docs = append(docs, &node)
	}

	return docs, nil
}
