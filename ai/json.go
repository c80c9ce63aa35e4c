package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ParseWeights decodes a JSON object of weight overrides on top of
// DefaultWeights. Unknown keys are an error.
func ParseWeights(s string) (Weights, error) {
	w := DefaultWeights
	if s == "" {
		return w, nil
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.DisallowUnknownFields()
	if e := dec.Decode(&w); e != nil {
		return DefaultWeights, fmt.Errorf("parse weights: %w", e)
	}
	return w, nil
}
