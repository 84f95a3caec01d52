// Copyright ©2024 The Parity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parity

import (
	"runtime/debug"
)

const root = "github.com/LynnColeArt/parity"

// Version returns the module version and checksum. The returned values are
// only valid in binaries built with module support; a source-tree build
// returns empty strings.
func Version() (version, sum string) {
	b, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	if b.Main.Path == root {
		return b.Main.Version, b.Main.Sum
	}
	for _, m := range b.Deps {
		if m.Path == root {
			return m.Version, m.Sum
		}
	}
	return "", ""
}
