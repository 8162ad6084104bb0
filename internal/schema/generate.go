// Package schema describes the packetguard TOML config as JSON Schema, for
// editors that validate config.toml.
package schema

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"

	"github.com/smykla-skalski/packetguard/pkg/config"
)

const draft = "https://json-schema.org/draft/2020-12/schema"

// Document reflects config.Config into a schema with top-level properties.
func Document() *jsonschema.Schema {
	reflector := jsonschema.Reflector{ExpandedStruct: true}

	doc := reflector.Reflect(&config.Config{})
	doc.Version = draft
	doc.Title = "packetguard configuration"
	doc.Description = "Settings read from ~/.packetguard/config.toml and PACKETGUARD_* variables."

	return doc
}

// Write encodes Document to w, one property per line unless compact.
func Write(w io.Writer, compact bool) error {
	enc := json.NewEncoder(w)
	if !compact {
		enc.SetIndent("", "  ")
	}

	return errors.Wrap(enc.Encode(Document()), "encode config schema")
}
