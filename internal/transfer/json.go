package transfer

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONCodec reads and writes indented JSON, the original export format
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Parse imports a payload from JSON
func (c *JSONCodec) Parse(r io.Reader) (*Payload, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &ImportError{Message: fmt.Sprintf("failed to parse JSON: %v", err)}
	}
	return fromDocument(doc)
}

// Export writes the payload as indented JSON
func (c *JSONCodec) Export(p *Payload, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
