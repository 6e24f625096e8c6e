// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/antoniszymanski/fieldsplit-go/fieldsplit"
)

type cmdSplit struct {
	Path        string   `arg:"" type:"path" help:"Schema document to rewrite, - for stdin."`
	Catalog     string   `short:"c" type:"path" help:"Field type catalog (JSONC). The built-in catalog is used when empty."`
	Output      string   `short:"o" type:"path" help:"Write the result here instead of overwriting the input, - for stdout."`
	Check       bool     `help:"Compile the result as a JSON Schema before writing it."`
	ExpectTitle []string `name:"expect-title" sep:"none" help:"Title the replaced members must have, in order."`
}

func (c *cmdSplit) Run(ctx *kong.Context, logger *slog.Logger) error {
	if c.Path == "-" && c.Catalog == "-" {
		return errors.New("document and catalog cannot both be read from stdin")
	}

	opts := fieldsplit.Options{
		ExpectTitles: c.ExpectTitle,
		Check:        c.Check,
		Logger:       logger,
	}
	if c.Catalog != "" {
		catalog, err := fieldsplit.LoadCatalogFile(c.Catalog)
		if err != nil {
			return err
		}
		opts.Catalog = catalog
	}

	report, err := fieldsplit.ExpandFile(c.Path, c.Output, opts)
	if err != nil {
		return err
	}

	w := ctx.Stdout
	if c.Output == "-" || (c.Output == "" && c.Path == "-") {
		w = ctx.Stderr
	}
	return writeSummary(w, report)
}

func writeSummary(w io.Writer, report *fieldsplit.Report) error {
	var buf bytes.Buffer
	fmt.Fprintf(
		&buf,
		"✓ Successfully split generic fields into %d text field types and %d number field types\n",
		len(report.TextFields), len(report.NumberFields),
	)
	fmt.Fprintf(&buf, "✓ Total field types in schema: %d\n", report.Total())

	buf.WriteString("\nText field types created:\n")
	for _, d := range report.TextFields {
		fmt.Fprintf(&buf, "  - %s (type: %s)\n", d.Title, d.Type)
	}
	buf.WriteString("\nNumber field types created:\n")
	for _, d := range report.NumberFields {
		fmt.Fprintf(&buf, "  - %s (type: %s)\n", d.Title, d.Type)
	}

	_, err := w.Write(buf.Bytes())
	return err
}
