/*
This Source Code Form is subject to the terms of the Mozilla Public
License, v. 2.0. If a copy of the MPL was not distributed with this
file, You can obtain one at https://mozilla.org/MPL/2.0/.
*/

package fieldsplit

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// InputError reports a document that is missing, unreadable or not JSON.
type InputError struct {
	Path string
	Err  error
}

func (err *InputError) Error() string {
	return "read " + err.Path + ": " + err.Err.Error()
}

func (err *InputError) Unwrap() error {
	return err.Err
}

// NotFound reports whether the document does not exist.
func (err *InputError) NotFound() bool {
	return errors.Is(err.Err, fs.ErrNotExist)
}

// StructureError reports a document whose field type union cannot be
// spliced. The document is left unchanged.
type StructureError struct {
	Path   []string
	Reason string
	Err    error
}

func (err *StructureError) Error() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(err.Path, "."))
	sb.WriteString(": ")
	sb.WriteString(err.Reason)
	if err.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(err.Err.Error())
	}
	return sb.String()
}

func (err *StructureError) Unwrap() error {
	return err.Err
}

// OutputError reports a document that could not be written.
type OutputError struct {
	Path string
	Err  error
}

func (err *OutputError) Error() string {
	return "write " + err.Path + ": " + err.Err.Error()
}

func (err *OutputError) Unwrap() error {
	return err.Err
}

// DuplicateTypeError reports two catalog entries sharing a type code.
type DuplicateTypeError struct {
	Type     string
	Families [2]Family
}

func (err *DuplicateTypeError) Error() string {
	return fmt.Sprintf(
		"duplicate field type %q (%s, %s)",
		err.Type, err.Families[0], err.Families[1],
	)
}
