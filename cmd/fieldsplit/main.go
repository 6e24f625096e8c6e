// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"os"

	"github.com/alecthomas/kong"
)

type cliApp struct {
	LogLevel  string `enum:"debug,info,warn,error" default:"warn" help:"Log level (${enum})."`
	LogFormat string `enum:"text,json" default:"text" help:"Log format (${enum})."`

	Split   cmdSplit   `cmd:"" help:"Replace the generic field types of a schema document."`
	Init    cmdInit    `cmd:"" help:"Write the built-in field type catalog."`
	Schema  cmdSchema  `cmd:"" help:"Write the JSON Schema of catalog files."`
	Version cmdVersion `cmd:""`
}

func newParser(app *cliApp, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("fieldsplit"),
		kong.Description("Split generic field types of a JSON Schema into concrete ones"),
		kong.UsageOnError(),
	}, options...)
	return kong.New(app, options...)
}

func main() {
	var app cliApp
	parser, err := newParser(&app)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	logger, err := newLogger(ctx.Stderr, app.LogLevel, app.LogFormat)
	ctx.FatalIfErrorf(err)
	ctx.FatalIfErrorf(ctx.Run(logger))
}
