// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package fieldsplit

import (
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Property is the schema of a single key of a generated field type.
// Keys are serialized in declaration order.
type Property struct {
	Ref           string   `json:"$ref,omitempty"`
	Type          string   `json:"type,omitempty"`
	Const         any      `json:"const,omitempty"`
	Description   string   `json:"description,omitempty"`
	Minimum       *float64 `json:"minimum,omitempty"`
	Maximum       *float64 `json:"maximum,omitempty"`
	Default       any      `json:"default,omitempty"`
	Examples      []any    `json:"examples,omitempty"`
	BusinessRules []string `json:"x-business-rules,omitempty"`
	UserStories   []string `json:"x-user-stories,omitempty"`
}

func (p *Property) clone() *Property {
	c := *p
	if p.Minimum != nil {
		c.Minimum = ptr(*p.Minimum)
	}
	if p.Maximum != nil {
		c.Maximum = ptr(*p.Maximum)
	}
	c.Examples = slices.Clone(p.Examples)
	c.BusinessRules = slices.Clone(p.BusinessRules)
	c.UserStories = slices.Clone(p.UserStories)
	return &c
}

// Properties maps property names to their schemas in insertion order.
type Properties = orderedmap.OrderedMap[string, *Property]

func NewProperties() *Properties {
	return orderedmap.New[string, *Property]()
}

func ptr[T any](v T) *T {
	return &v
}
