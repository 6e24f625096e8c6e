// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/antoniszymanski/fieldsplit-go/fieldsplit"
)

type cmdInit struct {
	Path       string `arg:"" type:"path" default:"catalog.jsonc"`
	SchemaPath string `arg:"" type:"path" default:"catalog.schema.json"`
	NoSchema   bool   `short:"S" help:"Do not reference the catalog schema."`
}

func (c *cmdInit) Run() error {
	var f *os.File
	var err error
	if c.Path != "-" {
		dir := filepath.Dir(c.Path)
		if err = os.MkdirAll(dir, 0750); err != nil {
			return err
		}
		f, err = os.Create(c.Path)
		if err != nil {
			return err
		}
		defer f.Close() //nolint:errcheck

		if !c.NoSchema {
			relpath, err := filepath.Rel(dir, c.SchemaPath)
			if err == nil {
				c.SchemaPath = filepath.ToSlash(relpath)
			}
		}
	} else {
		f = os.Stdout
	}

	catalog, err := fieldsplit.DefaultCatalog()
	if err != nil {
		return err
	}
	if !c.NoSchema {
		catalog.Schema = c.SchemaPath
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(catalog)
}
