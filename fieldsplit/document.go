/*
This Source Code Form is subject to the terms of the Mozilla Public
License, v. 2.0. If a copy of the MPL was not distributed with this
file, You can obtain one at https://mozilla.org/MPL/2.0/.
*/

package fieldsplit

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
)

// ReadDocument reads a JSON object from path, "-" being stdin.
func ReadDocument(path string) ([]byte, error) {
	var data []byte
	var err error
	if path != "-" {
		data, err = os.ReadFile(path)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}

	var obj map[string]json.RawMessage
	if err = json.Unmarshal(data, &obj); err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	return data, nil
}

// WriteDocument replaces the content of path with data, "-" being stdout.
// data goes to a temporary file next to path first, so a failed write never
// leaves path truncated.
func WriteDocument(path string, data []byte) error {
	if path == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			return &OutputError{Path: path, Err: err}
		}
		return nil
	}
	if err := writeFile(path, data); err != nil {
		return &OutputError{Path: path, Err: err}
	}
	return nil
}

func writeFile(path string, data []byte) (err error) {
	perm := fs.FileMode(0600)
	if fi, err := os.Stat(path); err == nil {
		perm = fi.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()           //nolint:errcheck
			os.Remove(f.Name()) //nolint:errcheck
		}
	}()

	if _, err = f.Write(data); err != nil {
		return err
	}
	if err = f.Chmod(perm); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// fileURL is the location relative $refs of the document at path resolve
// against.
func fileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}
