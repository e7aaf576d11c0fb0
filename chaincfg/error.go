// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 The AXEL developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// AssertError identifies an error that indicates an internal code consistency
// issue and should be treated as a critical and unrecoverable error.  Every
// fatal configuration failure in this package panics with an AssertError.
type AssertError string

// Error returns the assertion error as a human-readable string and satisfies
// the error interface.
func (e AssertError) Error() string {
	return "assertion failed: " + string(e)
}
