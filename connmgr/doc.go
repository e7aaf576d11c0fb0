// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2019 The AXEL developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package connmgr implements peer discovery from the seeds of a network.

SeedFromDNS resolves the DNS seeds of the network parameters and converts the
results into network addresses on the default port of the network.
SeedFromFixed hands out the hard-coded fixed seeds when DNS seeding does not
yield any peers.
*/
package connmgr
