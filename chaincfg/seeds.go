// Copyright (c) 2019 The AXEL developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/rand"
	"net"
	"time"

	"github.com/btcsuite/btcd/wire"
)

// seedSpec6 is a fixed seed node given as an IPv6 (or IPv4-mapped) address and
// port.
type seedSpec6 struct {
	addr [16]byte
	port uint16
}

// mainNetSeedSpecs are the fixed seed nodes of the main network.
//
// TODO: populate from the seeder dump once the mainnet seeders publish one.
var mainNetSeedSpecs []seedSpec6

// seedLastSeenWindow is the width of the window seed node timestamps are
// drawn from.
const seedLastSeenWindow = 7 * 24 * time.Hour

// convertSeeds converts the passed seed specs into network addresses.
//
// Only one or two seed nodes are ever connected to since a connected peer hands
// out a pile of addresses with newer timestamps.  Seed nodes are therefore given
// a random last seen time of between one and two weeks before now.
func convertSeeds(specs []seedSpec6, now time.Time) []*wire.NetAddress {
	if len(specs) == 0 {
		return nil
	}

	addrs := make([]*wire.NetAddress, 0, len(specs))
	for _, spec := range specs {
		ip := make(net.IP, net.IPv6len)
		copy(ip, spec.addr[:])
		jitter := time.Duration(rand.Int63n(int64(seedLastSeenWindow)))
		lastSeen := now.Add(-seedLastSeenWindow - jitter)
		addrs = append(addrs, wire.NewNetAddressTimestamp(lastSeen,
			wire.SFNodeNetwork, ip, spec.port))
	}
	return addrs
}
