// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2019 The AXEL developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package connmgr

import (
	mrand "math/rand"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/axel-network/axeld/chaincfg"
	"github.com/btcsuite/btcd/wire"
)

const (
	// These constants are used by the DNS seed code to pick a random last
	// seen time.
	secondsIn3Days int32 = 24 * 60 * 60 * 3
	secondsIn4Days int32 = 24 * 60 * 60 * 4
)

// OnSeed is the signature of the callback function which is invoked when DNS
// seeding is successful.
type OnSeed func(addrs []*wire.NetAddress)

// LookupFunc is the signature of the DNS lookup function.
type LookupFunc func(string) ([]net.IP, error)

// SeedFromDNS uses DNS seeding to populate the address manager with peers.
// Every seed of the network is queried concurrently and seedFn is invoked once
// per seed that returned addresses, possibly from several goroutines at once.
// The returned channel is closed once every lookup has finished.
func SeedFromDNS(chainParams *chaincfg.Params, reqServices wire.ServiceFlag,
	lookupFn LookupFunc, seedFn OnSeed) <-chan struct{} {

	intPort, _ := strconv.Atoi(chainParams.DefaultPort)

	var wg sync.WaitGroup
	for _, seeder := range chainParams.DNSSeeds {
		wg.Add(1)
		go func(host string) {
			defer wg.Done()

			randSource := mrand.New(mrand.NewSource(time.Now().UnixNano()))

			seedpeers, err := lookupFn(host)
			if err != nil {
				log.Infof("DNS discovery failed on seed %s: %v", host, err)
				return
			}
			numPeers := len(seedpeers)

			log.Infof("%d addresses found from DNS seed %s", numPeers, host)

			if numPeers == 0 {
				return
			}
			addresses := make([]*wire.NetAddress, len(seedpeers))
			for i, peer := range seedpeers {
				// Seed addresses get a time randomly selected
				// between 3 and 7 days ago.
				lastSeen := time.Now().Add(-1 * time.Second *
					time.Duration(secondsIn3Days+
						randSource.Int31n(secondsIn4Days)))
				addresses[i] = wire.NewNetAddressTimestamp(lastSeen,
					reqServices, peer, uint16(intPort))
			}

			seedFn(addresses)
		}(seeder.Host)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	return done
}

// SeedFromFixed hands the hard-coded seed nodes of the network to seedFn.  It
// is the fallback for when DNS seeding does not yield any peers.  seedFn is
// not invoked when the network has no fixed seeds.
func SeedFromFixed(chainParams *chaincfg.Params, seedFn OnSeed) {
	if len(chainParams.FixedSeeds) == 0 {
		log.Debugf("No fixed seeds for network %s", chainParams.Name)
		return
	}

	addresses := make([]*wire.NetAddress, 0, len(chainParams.FixedSeeds))
	for _, seed := range chainParams.FixedSeeds {
		addr := *seed
		addresses = append(addresses, &addr)
	}
	log.Infof("Using %d fixed seed %s", len(addresses),
		pickNoun(len(addresses), "address", "addresses"))
	seedFn(addresses)
}

// pickNoun returns the singular or plural form of a noun depending on the
// count n.
func pickNoun(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
