// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package binutils

import (
	"os"

	"github.com/spf13/afero"
)

// CopyFile replaces dest with the contents of src and sets its mode to perm,
// also when dest already existed with another mode.
func CopyFile(fs afero.Fs, src, dest string, perm os.FileMode) error {
	data, err := afero.ReadFile(fs, src)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fs, dest, data, perm); err != nil {
		return err
	}
	return fs.Chmod(dest, perm)
}
