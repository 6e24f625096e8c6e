// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package fieldsplit

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"sync"

	jsonc "github.com/DisposaBoy/JsonConfigReader"
	"github.com/elliotchance/orderedmap/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Catalog lists the field types to generate, grouped by family.
type Catalog struct {
	Schema       string             `json:"$schema,omitzero"`
	TextFields   []*FieldDescriptor `json:"text_fields"`
	NumberFields []*FieldDescriptor `json:"number_fields"`
}

// All yields every descriptor with its family, text field types first.
func (c *Catalog) All() iter.Seq2[Family, *FieldDescriptor] {
	return func(yield func(Family, *FieldDescriptor) bool) {
		for _, d := range c.TextFields {
			if !yield(Text, d) {
				return
			}
		}
		for _, d := range c.NumberFields {
			if !yield(Number, d) {
				return
			}
		}
	}
}

func (c *Catalog) Len() int {
	return len(c.TextFields) + len(c.NumberFields)
}

type Entry struct {
	Family     Family
	Descriptor *FieldDescriptor
}

// Index maps type codes to their catalog entries in catalog order.
func (c *Catalog) Index() (*orderedmap.OrderedMap[string, Entry], error) {
	index := orderedmap.NewOrderedMap[string, Entry]()
	for f, d := range c.All() {
		if prev, ok := index.Get(d.Type); ok {
			return nil, &DuplicateTypeError{Type: d.Type, Families: [2]Family{prev.Family, f}}
		}
		index.Set(d.Type, Entry{Family: f, Descriptor: d})
	}
	return index, nil
}

func (c *Catalog) UnmarshalJSON(data []byte) error {
	sch, err := compiledCatalogSchema()
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if err = sch.Validate(inst); err != nil {
		return err
	}
	type rawCatalog Catalog
	return json.Unmarshal(data, (*rawCatalog)(c))
}

var compiledCatalogSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	data, err := CatalogSchemaJSON()
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource("memory:", doc); err != nil {
		return nil, err
	}
	return compiler.Compile("memory:")
})

// LoadCatalog reads a JSONC catalog and checks it against the catalog schema.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(jsonc.New(r))
	if err != nil {
		return nil, err
	}
	var c Catalog
	if err = json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	if _, err = c.Index(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadCatalogFile is like [LoadCatalog] but reads from path, "-" being stdin.
func LoadCatalogFile(path string) (*Catalog, error) {
	var f *os.File
	var err error
	if path != "-" {
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close() //nolint:errcheck
	} else {
		f = os.Stdin
	}

	c, err := LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

//go:embed catalog.jsonc
var defaultCatalog string

// DefaultCatalog returns a fresh copy of the built-in catalog.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(strings.NewReader(defaultCatalog))
}
