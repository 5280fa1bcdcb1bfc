/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package policy

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"

	"github.com/trustbloc/did-verifier/internal/pkg/log"
)

//go:embed vppolicy.schema.json
var policySchema []byte

// SchemaValidator validates documents against JSON schemas that are compiled once per schema id.
type SchemaValidator struct {
	cache   map[string]*gojsonschema.Schema
	compile func(schema []byte) (*gojsonschema.Schema, error)
	mutex   sync.RWMutex
}

// NewSchemaValidator returns a new caching schema validator.
func NewSchemaValidator() *SchemaValidator {
	return &SchemaValidator{
		cache:   make(map[string]*gojsonschema.Schema),
		compile: compileSchema,
	}
}

// Validate validates the raw JSON document against the schema.
func (v *SchemaValidator) Validate(doc, schema []byte) error {
	s, err := v.get(schema)
	if err != nil {
		return fmt.Errorf("get schema validator from cache: %w", err)
	}

	result, err := s.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("loader error: %w", err)
	}

	if !result.Valid() {
		return fmt.Errorf("validation error: %w", validationErrors(result.Errors()))
	}

	return nil
}

func (v *SchemaValidator) get(schema []byte) (*gojsonschema.Schema, error) {
	id := gjson.GetBytes(schema, "\\$id")
	if !id.Exists() {
		return nil, fmt.Errorf("field '$id' not found in JSON schema")
	}

	if id.Type != gjson.String {
		return nil, fmt.Errorf("expecting the value of field '$id' in JSON schema to be a string type but was %s",
			id.Type)
	}

	schemaID := id.String()

	v.mutex.RLock()
	s, ok := v.cache[schemaID]
	v.mutex.RUnlock()

	if ok {
		return s, nil
	}

	v.mutex.Lock()
	defer v.mutex.Unlock()

	s, err := v.compile(schema)
	if err != nil {
		return nil, fmt.Errorf("compile schema [%s]: %w", schemaID, err)
	}

	v.cache[schemaID] = s

	logger.Debug("Compiled JSON schema", log.WithURL(schemaID))

	return s, nil
}

func compileSchema(schema []byte) (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchemaLoader().Compile(gojsonschema.NewBytesLoader(schema))
}

type validationErrors []gojsonschema.ResultError

func (e validationErrors) Error() string {
	msgs := make([]string, 0, len(e))

	for _, re := range e {
		msgs = append(msgs, re.String())
	}

	return "[" + strings.Join(msgs, "; ") + "]"
}
