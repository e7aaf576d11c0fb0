// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Copyright (c) 2019 The AXEL developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/blockchain"
)

// regTestGenesisHash is the trusted hash of the regression test network
// genesis block.
const regTestGenesisHash = "2aa3f3a27f7148988f6cd1d0328ed2a26a04c0e09701db33155633e1cac7b46a"

// RegTestParams returns the network parameters for the regression test
// network.  They are the test network parameters with every divergence applied
// below.
//
// It panics when the genesis block does not match its trusted identity.
func RegTestParams() *Params {
	params := TestNetParams()

	// regTestPowLimit is the highest proof of work value a block can have
	// for the regression test network.  It is the value 2^255 - 1.
	regTestPowLimit := shiftedPowLimit(1)

	params.ID = RegTestID
	params.Name = RegTestID.String()
	params.Net = netFromMessageStart([4]byte{0xa1, 0xcf, 0x7e, 0xac})
	params.DefaultPort = "51476"
	params.StartWork = shiftedPowLimit(20)
	params.EnforceBlockUpgradeMajority = 750
	params.RejectBlockOutdatedMajority = 950
	params.ToCheckBlockUpgradeMajority = 1000
	params.MinerThreads = 1
	params.TargetTimePerBlock = time.Minute
	params.PowLimit = regTestPowLimit
	params.PowLimitBits = blockchain.BigToCompact(regTestPowLimit)

	params.Genesis = params.Genesis.withHeader(
		time.Unix(1552885200, 0), // Mon, 18 Mar 2019 05:00:00 GMT
		0x207fffff,
		1)
	mustVerifyGenesis(params.Genesis, regTestGenesisHash, genesisMerkleRoot)

	// The regression test network never discovers peers on its own.
	params.FixedSeeds = nil
	params.DNSSeeds = nil

	params.RequireRPCPassword = false
	params.MiningRequiresPeers = false
	params.DefaultConsistencyChecks = true
	params.RequireStandard = false
	params.MineBlocksOnDemand = true
	params.TestnetToBeDeprecatedFieldRPC = false

	params.Checkpoints = newCheckpointData(
		1552885200,
		0,
		100,
		Checkpoint{0, newHashFromStr(regTestGenesisHash)},
	)

	mustValidate(params)
	return params
}
