package transfer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Importer parses an export document in one format
type Importer interface {
	Parse(r io.Reader) (*Payload, error)
	Format() string
}

// Exporter writes an export document in one format
type Exporter interface {
	Export(p *Payload, w io.Writer) error
	Format() string
}

// Codec handles both directions for one format
type Codec interface {
	Importer
	Exporter
}

// Formats lists the supported format names
var Formats = []string{"json", "yaml"}

// CodecFor returns the codec for a format name. "yml" is accepted for yaml.
func CodecFor(format string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return NewJSONCodec(), nil
	case "yaml", "yml":
		return NewYAMLCodec(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// fromDocument validates a generic document and decodes it into a Payload.
// Both codecs funnel through here so the schema sees the same shape whatever
// the input format.
func fromDocument(doc any) (*Payload, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("re-encode document: %w", err)
	}
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &ImportError{Message: err.Error()}
	}
	p.normalize()
	return &p, nil
}

// toDocument renders a payload as a generic JSON value, flattening each task's
// free-form fields the same way persistence does
func toDocument(p *Payload) (any, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return doc, nil
}
