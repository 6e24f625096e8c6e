// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package fieldsplit

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/buger/jsonparser"
)

// UnionPath is the location of the field type union inside the document.
var UnionPath = []string{"items", "properties", "fields", "items", "anyOf"}

// ReplacedMembers is the number of leading union members (the generic text
// and number field types) removed by [Splice].
const ReplacedMembers = 2

type SpliceOptions struct {
	// ExpectTitles, when not empty, must equal the titles of the replaced
	// members in order.
	ExpectTitles []string
}

type SpliceStats struct {
	Original  int // union length before splicing
	Generated int
	Preserved int
}

func (s SpliceStats) Total() int {
	return s.Generated + s.Preserved
}

// Splice replaces the first [ReplacedMembers] members of the union at
// [UnionPath] with fragments. Remaining members keep their original text.
// Apart from the union, doc is returned unchanged.
func Splice(doc []byte, fragments [][]byte, opts SpliceOptions) ([]byte, SpliceStats, error) {
	var stats SpliceStats
	members, err := UnionMembers(doc)
	if err != nil {
		return nil, stats, err
	}
	stats.Original = len(members)
	if len(members) < ReplacedMembers {
		return nil, stats, &StructureError{
			Path: UnionPath,
			Reason: fmt.Sprintf(
				"expected at least %d members, found %d",
				ReplacedMembers, len(members),
			),
		}
	}
	if err = checkTitles(members[:ReplacedMembers], opts.ExpectTitles); err != nil {
		return nil, stats, err
	}

	preserved := members[ReplacedMembers:]
	stats.Generated = len(fragments)
	stats.Preserved = len(preserved)

	var union bytes.Buffer
	union.WriteByte('[')
	for i, member := range slices.Concat(fragments, preserved) {
		if i > 0 {
			union.WriteByte(',')
		}
		union.Write(member)
	}
	union.WriteByte(']')

	out, err := jsonparser.Set(doc, union.Bytes(), UnionPath...)
	if err != nil {
		return nil, stats, &StructureError{Path: UnionPath, Reason: "cannot replace union", Err: err}
	}
	return out, stats, nil
}

// UnionMembers returns the raw members of the union at [UnionPath].
func UnionMembers(doc []byte) ([][]byte, error) {
	value, typ, _, err := jsonparser.Get(doc, UnionPath...)
	if err != nil {
		if errors.Is(err, jsonparser.KeyPathNotFoundError) {
			return nil, &StructureError{Path: UnionPath, Reason: "not found"}
		}
		return nil, &StructureError{Path: UnionPath, Reason: "cannot read union", Err: err}
	}
	if typ != jsonparser.Array {
		return nil, &StructureError{
			Path:   UnionPath,
			Reason: "expected an array, found " + typ.String(),
		}
	}

	var members [][]byte
	var memberErr error
	_, err = jsonparser.ArrayEach(value, func(member []byte, typ jsonparser.ValueType, _ int, err error) {
		if err != nil {
			memberErr = err
			return
		}
		if typ == jsonparser.String {
			// string values are returned without their quotes
			member = append(append([]byte{'"'}, member...), '"')
		}
		members = append(members, member)
	})
	if err == nil {
		err = memberErr
	}
	if err != nil {
		return nil, &StructureError{Path: UnionPath, Reason: "cannot read union", Err: err}
	}
	return members, nil
}

func checkTitles(replaced [][]byte, titles []string) error {
	if len(titles) == 0 {
		return nil
	}
	if len(titles) != len(replaced) {
		return fmt.Errorf("expected %d titles, got %d", len(replaced), len(titles))
	}
	for i, member := range replaced {
		title, err := jsonparser.GetString(member, "title")
		if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
			return &StructureError{Path: UnionPath, Reason: fmt.Sprintf("member %d", i), Err: err}
		}
		if title != titles[i] {
			return &StructureError{
				Path:   UnionPath,
				Reason: fmt.Sprintf("member %d has title %q, expected %q", i, title, titles[i]),
			}
		}
	}
	return nil
}
