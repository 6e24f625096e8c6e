// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"runtime/debug"

	"github.com/alecthomas/kong"
)

type cmdVersion struct{}

func (cmdVersion) Run(ctx *kong.Context) error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return errors.New("build info not found")
	}
	ctx.Printf("%s", versionString(info))
	return nil
}

func versionString(info *debug.BuildInfo) string {
	revision, time := "unknown", "unknown"
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if len(setting.Value) >= 8 {
				revision = setting.Value[:8]
			}
		case "vcs.time":
			time = setting.Value
		}
	}
	return "version " + info.Main.Version + " built with " + info.GoVersion +
		" from " + revision + " on " + time
}
