// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package fieldsplit

import "github.com/antoniszymanski/fieldsplit-go/internal/jsonenc"

// FieldTypeSchema is the closed object schema generated for one field type.
type FieldTypeSchema struct {
	Title                string                `json:"title"`
	Description          string                `json:"description"`
	Type                 string                `json:"type"`
	Properties           *Properties           `json:"properties"`
	Required             []string              `json:"required"`
	AdditionalProperties bool                  `json:"additionalProperties"`
	UserStories          jsonenc.Array[string] `json:"x-user-stories,omitzero"`
	BusinessRules        jsonenc.Array[string] `json:"x-business-rules"`
}

// PropertyNames returns the declared property names in order.
func (s *FieldTypeSchema) PropertyNames() []string {
	names := make([]string, 0, s.Properties.Len())
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Property returns the schema of the named property.
func (s *FieldTypeSchema) Property(name string) (*Property, bool) {
	return s.Properties.Get(name)
}
