// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package fieldsplit

import (
	"fmt"
	"slices"

	"github.com/antoniszymanski/fieldsplit-go/internal/jsonenc"
)

// DefinitionsRef is the location of the shared definitions document,
// relative to the document being rewritten.
const DefinitionsRef = "../common/definitions.schema.json#/definitions/"

var requiredProperties = []string{"id", "name", "type"}

var idUserStories = []string{
	"GIVEN a new entity is created WHEN the system assigns an ID THEN it should be unique within the parent collection",
	"GIVEN an entity exists WHEN attempting to modify its ID THEN the system should prevent changes (read-only constraint)",
	"GIVEN a client requests an entity by ID WHEN the ID is valid THEN the entity should be retrieved successfully",
}

var nameUserStories = []string{
	"GIVEN new field is created WHEN saving configuration THEN field name should follow database naming conventions",
	"GIVEN field with duplicate name WHEN validating table schema THEN error should prevent conflicts",
	"GIVEN field name is set WHEN querying data THEN field should be accessible by its name",
}

const (
	fallbackRule   = "Defaults to false when not specified, providing sensible fallback behavior without requiring explicit configuration"
	uniquenessRule = "Uniqueness constraint prevents conflicts and ensures each unique can be unambiguously referenced"
)

// Synthesize builds the schema of the field type described by d.
func Synthesize(d *FieldDescriptor, f Family) *FieldTypeSchema {
	props := NewProperties()
	props.Set("id", &Property{
		Ref:         DefinitionsRef + "id",
		UserStories: slices.Clone(idUserStories),
	})
	props.Set("name", &Property{
		Ref:         DefinitionsRef + "name",
		UserStories: slices.Clone(nameUserStories),
	})
	props.Set("required", flagProperty("required", ""))
	props.Set("unique", flagProperty(
		"unique",
		"Whether this field must contain unique values across all rows",
		uniquenessRule,
	))
	props.Set("indexed", flagProperty(
		"indexed",
		"Whether to create a database index on this field for faster queries",
	))
	props.Set("type", discriminatorProperty(d))
	if f.hasRange() {
		props.Set("min", numberProperty("min", "Minimum value"))
		props.Set("max", numberProperty("max", "Maximum value"))
	}
	props.Set("default", defaultProperty(f))

	if d.ExtraProperties != nil {
		for pair := d.ExtraProperties.Oldest(); pair != nil; pair = pair.Next() {
			props.Set(pair.Key, pair.Value.clone())
		}
	}

	s := &FieldTypeSchema{
		Title:                d.Title,
		Description:          d.Description,
		Type:                 "object",
		Properties:           props,
		Required:             slices.Clone(requiredProperties),
		AdditionalProperties: false,
		BusinessRules:        append(jsonenc.Array[string]{}, d.BusinessRules...),
	}
	if f.annotatesUserStories() {
		s.UserStories = append(jsonenc.Array[string]{}, d.UserStories...)
	}
	return s
}

// SynthesizeCatalog builds the schemas of all field types in c, text
// field types first.
func SynthesizeCatalog(c *Catalog) []*FieldTypeSchema {
	schemas := make([]*FieldTypeSchema, 0, len(c.TextFields)+len(c.NumberFields))
	for f, d := range c.All() {
		schemas = append(schemas, Synthesize(d, f))
	}
	return schemas
}

func flagProperty(name, description string, rules ...string) *Property {
	return &Property{
		Type:          "boolean",
		Default:       false,
		Description:   description,
		BusinessRules: append(rules, fallbackRule),
		UserStories: []string{
			fmt.Sprintf("GIVEN %s is true WHEN processing entity THEN corresponding behavior should be enforced", name),
			fmt.Sprintf("GIVEN %s is false (default: False) WHEN processing entity THEN corresponding behavior should not be enforced", name),
			fmt.Sprintf("GIVEN configuration with %s WHEN validating settings THEN boolean value should be accepted", name),
		},
	}
}

func discriminatorProperty(d *FieldDescriptor) *Property {
	return &Property{
		Const: d.Type,
		BusinessRules: []string{
			fmt.Sprintf("Constant value '%s' ensures type safety and enables discriminated unions for field type validation", d.Type),
		},
		UserStories: []string{
			fmt.Sprintf("GIVEN a %s is configured WHEN validating schema THEN type must be '%s'", d.Title, d.Type),
			fmt.Sprintf("GIVEN type is set to '%s' WHEN processing field THEN it should be treated as a %s", d.Type, d.Title),
		},
	}
}

func numberProperty(name, description string) *Property {
	return &Property{
		Type:        "number",
		Description: description,
		UserStories: []string{
			fmt.Sprintf("GIVEN user provides %s WHEN validating input THEN numeric value should be accepted", name),
			fmt.Sprintf("GIVEN user provides non-numeric %s WHEN validating input THEN error should require number", name),
		},
	}
}

func defaultProperty(f Family) *Property {
	if f.valueType() == "number" {
		return numberProperty("default", "")
	}
	return &Property{
		Type: "string",
		UserStories: []string{
			"GIVEN user provides default WHEN validating input THEN string value should be accepted",
			"GIVEN default is empty string WHEN validating input THEN behavior should follow optional/required rules",
		},
	}
}
