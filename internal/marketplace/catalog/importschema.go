package catalog

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/seismiclabs/marketplace/internal/common/apperrors"
)

// listingSchemaDoc is the record shape enforced in strict import mode. The
// permissive default trusts imported records as-is; strict mode requires at
// least the fields the query and ranking engines depend on.
const listingSchemaDoc = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["id", "name", "createdAt", "rating"],
	"properties": {
		"id":          {"type": "string", "minLength": 1},
		"name":        {"type": "string", "minLength": 1},
		"description": {"type": "string"},
		"category":    {"type": "string"},
		"author":      {"type": "string"},
		"website":     {"type": "string"},
		"tags":        {"type": "array", "items": {"type": "string"}},
		"license":     {"type": "string"},
		"fee": {
			"type": "object",
			"properties": {
				"type":   {"type": "string"},
				"amount": {"type": "number", "minimum": 0}
			}
		},
		"address":   {"type": "string"},
		"verified":  {"type": "boolean"},
		"createdAt": {"type": "number", "minimum": 0},
		"versions": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["version"],
				"properties": {
					"version":  {"type": "string", "pattern": "^\\d+\\.\\d+\\.\\d+$"},
					"url":      {"type": "string"},
					"checksum": {"type": "string"}
				}
			}
		},
		"rating": {
			"type": "object",
			"required": ["avg", "count"],
			"properties": {
				"avg":   {"type": "number", "minimum": 0, "maximum": 5},
				"count": {"type": "integer", "minimum": 0}
			}
		}
	}
}`

var listingSchema = mustCompileListingSchema()

func mustCompileListingSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("listing.json", strings.NewReader(listingSchemaDoc)); err != nil {
		panic(err)
	}
	return compiler.MustCompile("listing.json")
}

// validateImportedRecords runs the listing schema over every record of a
// strict import. The first failure aborts the import.
func validateImportedRecords(records []map[string]any) apperrors.Error {
	for i, record := range records {
		if err := listingSchema.Validate(map[string]any(record)); err != nil {
			return ErrImportSchema.MsgErr(fmt.Sprintf("record %d failed schema validation", i), err)
		}
	}
	return nil
}
