package describe

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format represents descriptor output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned by Encode for unknown formats.
var ErrUnsupportedFormat = errors.New("unsupported descriptor format")

// ToJSON renders v (a *Descriptor or a field mapping of them) as indented JSON.
func ToJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// ToYAML renders v as YAML.
func ToYAML(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Encode writes v to w in the given format.
func Encode(w io.Writer, format Format, v any) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = ToJSON(v)
	case FormatYAML:
		data, err = ToYAML(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	return err
}
