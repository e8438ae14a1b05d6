package transfer

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLCodec reads and writes the export document as YAML
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// Parse imports a payload from YAML. The document is normalised through JSON
// so schema validation sees JSON numbers and string-keyed objects.
func (c *YAMLCodec) Parse(r io.Reader) (*Payload, error) {
	var raw any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, &ImportError{Message: fmt.Sprintf("failed to parse YAML: %v", err)}
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, &ImportError{Message: fmt.Sprintf("unsupported YAML value: %v", err)}
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ImportError{Message: err.Error()}
	}
	return fromDocument(doc)
}

// Export writes the payload as YAML
func (c *YAMLCodec) Export(p *Payload, w io.Writer) error {
	doc, err := toDocument(p)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
