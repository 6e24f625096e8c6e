// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package fieldsplit

import (
	"bytes"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// CheckDocument compiles doc as a JSON Schema located at loc. Relative
// references are loaded from the file system.
func CheckDocument(doc []byte, loc string) error {
	if loc == "" {
		loc = "memory:"
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(doc))
	if err != nil {
		return err
	}
	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource(loc, inst); err != nil {
		return err
	}
	if _, err = compiler.Compile(loc); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}
	return nil
}
