/*
This Source Code Form is subject to the terms of the Mozilla Public
License, v. 2.0. If a copy of the MPL was not distributed with this
file, You can obtain one at https://mozilla.org/MPL/2.0/.
*/

package fieldsplit

import (
	"reflect"

	"github.com/antoniszymanski/fieldsplit-go/internal/jsonenc"
	"github.com/invopop/jsonschema"
)

// CatalogSchema describes the catalog file format.
func CatalogSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		Anonymous:                  true,
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	r.Mapper = func(t reflect.Type) *jsonschema.Schema {
		if t == reflect.TypeFor[Properties]() {
			item := r.ReflectFromType(reflect.TypeFor[Property]())
			item.Version = ""
			return &jsonschema.Schema{
				Type:                 "object",
				AdditionalProperties: item,
			}
		}
		return nil
	}
	return r.ReflectFromType(reflect.TypeFor[Catalog]())
}

func CatalogSchemaJSON() ([]byte, error) {
	return jsonenc.Marshal(CatalogSchema())
}
