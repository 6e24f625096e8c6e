// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package fieldsplit

import "strconv"

// FieldDescriptor describes one concrete field type to generate.
type FieldDescriptor struct {
	Type            string      `json:"type" jsonschema:"required,pattern=^[a-z][a-z0-9]*(-[a-z0-9]+)*$"`
	Title           string      `json:"title" jsonschema:"required,minLength=1"`
	Description     string      `json:"description"`
	BusinessRules   []string    `json:"business_rules"`
	UserStories     []string    `json:"user_stories"`
	ExtraProperties *Properties `json:"extra_properties,omitzero"`
}

// Family selects the base template a descriptor is synthesized from.
type Family uint8

const (
	Text Family = iota
	Number
)

func (f Family) String() string {
	switch f {
	case Text:
		return "text"
	case Number:
		return "number"
	default:
		return "Family(" + strconv.Itoa(int(f)) + ")"
	}
}

// valueType is the JSON type of the "default" property.
func (f Family) valueType() string {
	if f == Number {
		return "number"
	}
	return "string"
}

// hasRange reports whether "min" and "max" are part of the template.
func (f Family) hasRange() bool {
	return f == Number
}

// annotatesUserStories reports whether the descriptor's user stories are
// copied to the top level of the generated schema. Number field types only
// carry their business rules there.
func (f Family) annotatesUserStories() bool {
	return f == Text
}
