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

// testNetGenesisHash is the trusted hash of the test network genesis block.
// Like the main network identity it is the double sha256 header hash and
// differs from the one the deployed test network announces
// (41b5a543980937c082165bd908312e16ce900cf97c16c6e3341a6296908fb64c).
const testNetGenesisHash = "f02fd78038a098d2dea7b9c03f43bd68d16ff441733e4b543a1a0cc64a9c5fa7"

// TestNetParams returns the network parameters for the test network.  They are
// the main network parameters with every divergence applied below.
//
// It panics when the genesis block does not match its trusted identity.
func TestNetParams() *Params {
	params := MainNetParams()

	// testNetPowLimit is the highest proof of work value a block can have
	// for the test network.  It is the value 2^255 - 1.
	testNetPowLimit := shiftedPowLimit(1)

	params.ID = TestNetID
	params.Name = TestNetID.String()
	params.Net = netFromMessageStart([4]byte{0x57, 0x72, 0x86, 0xba})
	params.DefaultPort = "25319"
	params.PowLimit = testNetPowLimit
	params.PowLimitBits = blockchain.BigToCompact(testNetPowLimit)
	params.StartWork = testNetPowLimit
	params.EnforceBlockUpgradeMajority = 51
	params.RejectBlockOutdatedMajority = 75
	params.ToCheckBlockUpgradeMajority = 100
	params.MinerThreads = 0
	params.TargetTimePerBlock = time.Minute
	params.LastPoWBlock = 500
	params.CoinbaseMaturity = 60
	params.MasternodeCountDrift = 4
	params.ModifierUpdateBlock = NeverActivate
	params.AlertPubKey = mustParsePubKey("04459DC949A9E2C2E1FA87ED9EE93F8D26CD5" +
		"2F95853EE24BCD4B07D4B7D79458E81F0425D81E52B797ED304A836667A1D2D422C" +
		"D10F485B06CCBE906E1081FBAC")

	// The test genesis block starts later than the main one.
	params.Genesis = params.Genesis.withHeader(
		time.Unix(1552881600, 0), // Mon, 18 Mar 2019 04:00:00 GMT
		params.Genesis.Bits(),
		0)
	mustVerifyGenesis(params.Genesis, testNetGenesisHash, genesisMerkleRoot)

	params.FixedSeeds = nil
	params.DNSSeeds = []DNSSeed{
		{"seedtest-1.axel.network", "seedtest-1.axel.network"},
		{"seedtest-2.axel.network", "seedtest-2.axel.network"},
		{"seedtest-3.axel.network", "seedtest-3.axel.network"},
		{"seedtest-4.axel.network", "seedtest-4.axel.network"},
		{"seedtest-5.axel.network", "seedtest-5.axel.network"},
		{"seedtest-6.axel.network", "seedtest-6.axel.network"},
		{"seedtest-7.axel.network", "seedtest-7.axel.network"},
		{"explorer-test.axel.network", "explorer-test.axel.network"},
	}

	// Address encoding magics
	params.PubKeyHashAddrID = 65 // starts with T
	params.ScriptHashAddrID = 19 // starts with 8 or 9
	params.PrivateKeyID = 239    // starts with 9 or c

	// BIP32 hierarchical deterministic extended key magics
	params.HDPublicKeyID = [4]byte{0x3a, 0x80, 0x61, 0xa0} // starts with DRKV
	params.HDPrivateKeyID = [4]byte{0x3a, 0x80, 0x58, 0x37} // starts with DRKP

	// BIP44 coin type 1 is shared by the test networks of every coin.
	params.HDCoinTypeID = [4]byte{0x80, 0x00, 0x00, 0x01}

	params.RequireRPCPassword = true
	params.MiningRequiresPeers = false
	params.DefaultConsistencyChecks = false
	params.RequireStandard = false
	params.MineBlocksOnDemand = false
	params.TestnetToBeDeprecatedFieldRPC = true

	params.PoolMaxTransactions = 2
	params.SporkPubKey = mustParsePubKey("048ba868caa7608576609ba876a1455520679" +
		"546492e2eb542c2ff8c0f97b9b72d4c8878e84c02a8b3b30823e4e0f164285f37f2" +
		"28aeb796e767927b6ec19029c0")
	params.ObfuscationPoolDummyAddress = "TYDrFzSAKSbxSsuw84AmeXxaGVVgYM37HS"
	params.StartMasternodePayments = time.Unix(1553085000, 0) // Wed, 20 Mar 2019 12:30:00 GMT

	// Checkpoints ordered from oldest to newest.
	params.Checkpoints = newCheckpointData(
		1553255151, // UNIX timestamp of last checkpoint block
		7956,       // total number of transactions up to the last checkpoint
		2000,       // estimated number of transactions per day after it
		Checkpoint{0, newHashFromStr(testNetGenesisHash)},
		Checkpoint{1, newHashFromStr("4f006789dfa2472fbee5f27e01b091179b2f943d80fb4a8466d9fd7422c3428f")},
		Checkpoint{587, newHashFromStr("661a3633aa820b97bee334870b0251acdc32bba4191129b21b1bcb306d8c5ea5")},
		Checkpoint{1915, newHashFromStr("a74cb32ae0b2e914d6e92716212d763a11356baac3dc11c1e4bb877d06257426")},
		Checkpoint{2958, newHashFromStr("08705578042946d1733705f5366b7e01a1e510101a5b2a6c78e113e1e964018b")},
		Checkpoint{4022, newHashFromStr("8c2385aff99d36c20280ed8cbce73171d40338232cd1aba62043a856c4432d65")},
		Checkpoint{9326, newHashFromStr("ebf329df2f7e7b7b6fa421f50dfa5c17d90bac596e1567a6dbfae73875a78be3")},
		Checkpoint{21245, newHashFromStr("968c46f409df306562539d86bd6d3807210ccfb9c9230a6d3869d376ac2ef506")},
		Checkpoint{35429, newHashFromStr("71e8dd177b0cfb278439f29fc277bbaafed91ec07ba889c7f9b9c81948248b72")},
	)

	mustValidate(params)
	return params
}
