package model

import (
	"encoding/json"
	"fmt"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON string

// ValidateBytes validates a serialized canonical document against the
// embedded resume schema.
func ValidateBytes(doc []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	docLoader := gojsonschema.NewBytesLoader(doc)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	// collect errors
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}

// ValidateResume serializes r and validates the result. The lossless Extra
// maps are merged in before validation, so preserved unknown fields are
// checked at the same object level as modeled ones.
func ValidateResume(r *Resume) error {
	b, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return ValidateBytes(b)
}
