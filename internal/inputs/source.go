package inputs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AngelCh415/ROI_GO/internal/models"
)

// ErrMalformed marks a payload that could not be decoded at all.
var ErrMalformed = errors.New("malformed inputs")

// FromQuery overlays query parameters named after the JSON keys onto base.
// Parameters that are not calculator fields are ignored.
func FromQuery(v url.Values, base models.Inputs) (models.Inputs, error) {
	in := base
	var bad []FieldError
	for _, f := range catalog {
		raw := strings.TrimSpace(v.Get(f.Key))
		if raw == "" {
			continue
		}
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			bad = append(bad, FieldError{Field: f.Key, Rule: "number", Value: raw})
			continue
		}
		f.set(&in, n)
	}
	if len(bad) > 0 {
		return base, &ValidationError{Fields: bad}
	}
	return in, nil
}

// DecodeJSON overlays a (possibly partial) JSON object onto base.
// Unknown keys are rejected.
func DecodeJSON(r io.Reader, base models.Inputs) (models.Inputs, error) {
	in := base
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return base, nil
		}
		return base, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return in, nil
}

// LoadYAML overlays a YAML scenario file onto base.
func LoadYAML(path string, base models.Inputs) (models.Inputs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read scenario %s: %w", path, err)
	}
	in := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return base, nil
		}
		return base, fmt.Errorf("%w: scenario %s: %v", ErrMalformed, path, err)
	}
	return in, nil
}
