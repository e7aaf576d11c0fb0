// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 The AXEL developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines chain configuration parameters.
//
// In addition to the main network, which is intended for the transfer of
// monetary value, there exist a public test network, a local regression test
// network and an in-process unit test network.  These networks are
// incompatible with each other (each sharing a different genesis block and
// magic bytes) and software should handle errors where input intended for one
// network is used on an application instance running on a different network.
//
// A node process serves exactly one network.  The startup path selects it once
// with SelectParams and everything else reads it through ActiveParams:
//
//	package main
//
//	import (
//		"flag"
//		"fmt"
//
//		"github.com/axel-network/axeld/chaincfg"
//	)
//
//	var testnet = flag.Bool("testnet", false, "operate on the test network")
//
//	func main() {
//		flag.Parse()
//		network := chaincfg.MainNetID
//		if *testnet {
//			network = chaincfg.TestNetID
//		}
//		chaincfg.SelectParams(network)
//
//		params := chaincfg.ActiveParams()
//		fmt.Printf("%s genesis %v\n", params.Name, params.GenesisHash())
//	}
//
// The parameters of the main, test and regression test networks are never
// modified once built.  Only the unit test network hands out a MutableParams
// through ModifiableParams, so tests can adjust the block version thresholds
// and proof of work checks without rebuilding the parameters.
//
// Every builder verifies the genesis block it produces against a hard-coded
// hash and merkle root and panics with an AssertError on mismatch, so a
// corrupted build never gets to run.
package chaincfg
