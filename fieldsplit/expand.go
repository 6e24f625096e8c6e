// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package fieldsplit

import (
	"log/slog"

	"github.com/antoniszymanski/fieldsplit-go/internal/jsonenc"
)

type Options struct {
	// Catalog defaults to [DefaultCatalog].
	Catalog *Catalog
	// ExpectTitles is passed to [Splice].
	ExpectTitles []string
	// Check compiles the result before it is returned, see [CheckDocument].
	Check bool
	// BaseURL is the location of the document used by Check.
	BaseURL string
	Logger  *slog.Logger
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// Report summarizes one expansion.
type Report struct {
	TextFields   []*FieldDescriptor
	NumberFields []*FieldDescriptor
	SpliceStats
}

// Expand replaces the generic field types of doc with the field types of
// the catalog and returns the indented document.
func Expand(doc []byte, opts Options) ([]byte, *Report, error) {
	logger := opts.logger()
	catalog := opts.Catalog
	if catalog == nil {
		var err error
		if catalog, err = DefaultCatalog(); err != nil {
			return nil, nil, err
		}
	}
	index, err := catalog.Index()
	if err != nil {
		return nil, nil, err
	}

	report := &Report{}
	fragments := make([][]byte, 0, index.Len())
	for code, entry := range index.AllFromFront() {
		schema := Synthesize(entry.Descriptor, entry.Family)
		data, err := jsonenc.Marshal(schema)
		if err != nil {
			return nil, nil, err
		}
		fragments = append(fragments, data)

		switch entry.Family {
		case Text:
			report.TextFields = append(report.TextFields, entry.Descriptor)
		case Number:
			report.NumberFields = append(report.NumberFields, entry.Descriptor)
		}
		logger.Debug("synthesized field type",
			"type", code,
			"family", entry.Family,
			"properties", schema.Properties.Len(),
		)
	}

	out, stats, err := Splice(doc, fragments, SpliceOptions{ExpectTitles: opts.ExpectTitles})
	if err != nil {
		return nil, nil, err
	}
	report.SpliceStats = stats
	logger.Debug("spliced union",
		"original", stats.Original,
		"generated", stats.Generated,
		"preserved", stats.Preserved,
	)

	if out, err = jsonenc.Indent(out); err != nil {
		return nil, nil, err
	}
	if opts.Check {
		if err = CheckDocument(out, opts.BaseURL); err != nil {
			return nil, nil, err
		}
		logger.Debug("checked document", "location", opts.BaseURL)
	}
	return out, report, nil
}

// ExpandFile runs [Expand] on the document at in and writes the result to
// out. An empty out overwrites in. Nothing is written if any step fails.
func ExpandFile(in, out string, opts Options) (*Report, error) {
	doc, err := ReadDocument(in)
	if err != nil {
		return nil, err
	}
	if out == "" {
		out = in
	}
	if opts.Check && opts.BaseURL == "" && in != "-" {
		if opts.BaseURL, err = fileURL(in); err != nil {
			return nil, &InputError{Path: in, Err: err}
		}
	}

	data, report, err := Expand(doc, opts)
	if err != nil {
		return nil, err
	}
	if err = WriteDocument(out, data); err != nil {
		return nil, err
	}
	opts.logger().Info("wrote document", "path", out, "field_types", report.Total())
	return report, nil
}
