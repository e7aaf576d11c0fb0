// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Copyright (c) 2019 The AXEL developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version provides a single location to house the version information
// for the utilities provided in this repository.
package version

import (
	"fmt"
	"strings"
)

// These constants define the application version and follow the semantic
// versioning 2.0.0 spec (http://semver.org/).  Major tracks the protocol
// generation of the networks described by chaincfg.
const (
	Major uint = 3
	Minor uint = 0
	Patch uint = 0
)

var (
	// PreRelease is defined as a variable so it can be overridden during the
	// build process with:
	// '-ldflags "-X github.com/axel-network/axeld/internal/version.PreRelease=foo"'
	// if needed.  Characters outside [0-9A-Za-z-] are dropped.
	PreRelease = "beta"

	// BuildMetadata is defined as a variable so it can be overridden during the
	// build process with:
	// '-ldflags "-X github.com/axel-network/axeld/internal/version.BuildMetadata=foo"'
	// if needed.  Characters outside [0-9A-Za-z-.] are dropped.
	BuildMetadata = ""
)

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec (http://semver.org/).
func String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", Major, Minor, Patch)
	if pre := normalize(PreRelease, false); pre != "" {
		b.WriteString("-" + pre)
	}
	if build := normalize(BuildMetadata, true); build != "" {
		b.WriteString("+" + build)
	}
	return b.String()
}

// normalize strips every character not allowed in a pre-release (or, when
// build is set, a build metadata) identifier.
func normalize(s string, build bool) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z', r == '-':
			return r
		case r == '.' && build:
			return r
		}
		return -1
	}, s)
}
