// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package fieldsplit_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/antoniszymanski/fieldsplit-go/fieldsplit"
	"github.com/buger/jsonparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := defaultCatalog(t)
	require.Len(t, c.TextFields, 5)
	require.Len(t, c.NumberFields, 4)
	assert.Equal(t, 9, c.Len())

	var codes []string
	for _, d := range c.TextFields {
		codes = append(codes, d.Type)
	}
	assert.Equal(t, []string{"single-line-text", "long-text", "phone-number", "email", "url"}, codes)

	codes = codes[:0]
	for _, d := range c.NumberFields {
		codes = append(codes, d.Type)
	}
	assert.Equal(t, []string{"integer", "decimal", "currency", "percentage"}, codes)

	for _, d := range append(c.TextFields, c.NumberFields...) {
		assert.NotEmpty(t, d.Title, d.Type)
		assert.NotEmpty(t, d.Description, d.Type)
		assert.NotEmpty(t, d.BusinessRules, d.Type)
		assert.NotEmpty(t, d.UserStories, d.Type)
	}
}

func TestDefaultCatalogCollisionFree(t *testing.T) {
	c := defaultCatalog(t)
	index, err := c.Index()
	require.NoError(t, err)
	assert.Equal(t, c.Len(), index.Len())

	seen := make(map[string]bool)
	for f, d := range c.All() {
		assert.False(t, seen[d.Type], "duplicate type %q", d.Type)
		seen[d.Type] = true

		entry, ok := index.Get(d.Type)
		require.True(t, ok)
		assert.Equal(t, f, entry.Family)
		assert.Same(t, d, entry.Descriptor)
	}
}

func TestDefaultCatalogFresh(t *testing.T) {
	a := defaultCatalog(t)
	a.TextFields[0].Title = "changed"
	b := defaultCatalog(t)
	assert.Equal(t, "Single Line Text Field", b.TextFields[0].Title)
}

func TestCatalogIndexDuplicate(t *testing.T) {
	c := &fieldsplit.Catalog{
		TextFields:   []*fieldsplit.FieldDescriptor{{Type: "amount", Title: "Amount"}},
		NumberFields: []*fieldsplit.FieldDescriptor{{Type: "amount", Title: "Amount"}},
	}
	_, err := c.Index()
	var dupErr *fieldsplit.DuplicateTypeError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "amount", dupErr.Type)
	assert.Equal(t, [2]fieldsplit.Family{fieldsplit.Text, fieldsplit.Number}, dupErr.Families)
	assert.EqualError(t, err, `duplicate field type "amount" (text, number)`)
}

const sampleCatalog = `{
	// comments are allowed
	"$schema": "catalog.schema.json",
	"text_fields": [
		{
			"type": "slug",
			"title": "Slug Field",
			"description": "URL-safe identifier, see https://example.com/slugs",
			"business_rules": ["Lowercase only"],
			"user_stories": []
		}
	],
	"number_fields": [
		{
			"type": "rating",
			"title": "Rating Field",
			"description": "",
			"business_rules": [],
			"user_stories": [],
			"extra_properties": {
				"scale": {"type": "integer", "minimum": 1, "maximum": 10, "default": 5},
				"icon": {"type": "string", "examples": ["star", "heart"]}
			}
		}
	]
}`

func TestLoadCatalog(t *testing.T) {
	c, err := fieldsplit.LoadCatalog(strings.NewReader(sampleCatalog))
	require.NoError(t, err)
	assert.Equal(t, "catalog.schema.json", c.Schema)
	require.Len(t, c.TextFields, 1)
	assert.Equal(t, "URL-safe identifier, see https://example.com/slugs", c.TextFields[0].Description)
	assert.Nil(t, c.TextFields[0].ExtraProperties)

	require.Len(t, c.NumberFields, 1)
	extra := c.NumberFields[0].ExtraProperties
	require.NotNil(t, extra)
	require.Equal(t, 2, extra.Len())
	assert.Equal(t, "scale", extra.Oldest().Key)
	assert.Equal(t, "icon", extra.Newest().Key)

	scale := extra.Oldest().Value
	require.NotNil(t, scale.Minimum)
	assert.InDelta(t, 1, *scale.Minimum, 0)
	assert.Equal(t, float64(5), scale.Default)

	s := fieldsplit.Synthesize(c.NumberFields[0], fieldsplit.Number)
	assert.Equal(t, append(append([]string(nil), numberProperties...), "scale", "icon"), s.PropertyNames())
}

func TestLoadCatalogInvalid(t *testing.T) {
	tests := map[string]string{
		"missing title":   `{"text_fields": [{"type": "slug"}]}`,
		"bad type code":   `{"text_fields": [{"type": "Slug Field", "title": "Slug"}]}`,
		"unknown key":     `{"text_fields": [], "date_fields": []}`,
		"unknown keyword": `{"number_fields": [{"type": "n", "title": "N", "extra_properties": {"x": {"format": "date"}}}]}`,
		"not an object":   `[]`,
		"syntax":          `{"text_fields": [`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := fieldsplit.LoadCatalog(strings.NewReader(data))
			require.Error(t, err)
		})
	}
}

func TestLoadCatalogDuplicate(t *testing.T) {
	data := `{
		"text_fields": [{"type": "slug", "title": "Slug"}],
		"number_fields": [{"type": "slug", "title": "Slug number"}]
	}`
	_, err := fieldsplit.LoadCatalog(strings.NewReader(data))
	var dupErr *fieldsplit.DuplicateTypeError
	require.ErrorAs(t, err, &dupErr)
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0600))

	c, err := fieldsplit.LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	_, err = fieldsplit.LoadCatalogFile(filepath.Join(t.TempDir(), "missing.jsonc"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestCatalogSchema(t *testing.T) {
	data, err := fieldsplit.CatalogSchemaJSON()
	require.NoError(t, err)

	assert.Contains(t, objectKeys(t, data, "properties"), "text_fields")
	assert.Contains(t, objectKeys(t, data, "properties"), "number_fields")

	descriptorKeys := objectKeys(t, data, "properties", "text_fields", "items", "properties")
	assert.Equal(t, []string{"type", "title", "description", "business_rules", "user_stories", "extra_properties"}, descriptorKeys)

	typ, err := jsonparser.GetString(data, "properties", "number_fields", "items", "properties", "extra_properties", "type")
	require.NoError(t, err)
	assert.Equal(t, "object", typ)
	assert.Contains(t,
		objectKeys(t, data, "properties", "number_fields", "items", "properties", "extra_properties", "additionalProperties", "properties"),
		"x-business-rules",
	)
}
