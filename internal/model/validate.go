package model

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/*.json
var schemaFS embed.FS

// ValidateCV validates a raw CV document against cv.schema.json.
func ValidateCV(doc []byte) error { return validate("schema/cv.schema.json", doc) }

// ValidatePortfolio validates a raw portfolio document against
// portfolio.schema.json and checks that slugs are unique.
func ValidatePortfolio(doc []byte) error {
	if err := validate("schema/portfolio.schema.json", doc); err != nil {
		return err
	}
	var p Portfolio
	if err := json.Unmarshal(doc, &p); err != nil {
		return fmt.Errorf("decode portfolio: %w", err)
	}
	seen := make(map[string]struct{}, len(p.Projects))
	for _, cs := range p.Projects {
		if _, dup := seen[cs.Slug]; dup {
			return fmt.Errorf("duplicate case study slug %q", cs.Slug)
		}
		seen[cs.Slug] = struct{}{}
	}
	return nil
}

func validate(schemaPath string, doc []byte) error {
	schema, err := schemaFS.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("load schema %s: %w", schemaPath, err)
	}
	schemaLoader := gojsonschema.NewBytesLoader(schema)
	docLoader := gojsonschema.NewBytesLoader(doc)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
