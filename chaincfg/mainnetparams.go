// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Copyright (c) 2019 The AXEL developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
)

const (
	// mainNetGenesisHash is the trusted hash of the main network genesis
	// block.  It is the double sha256 header hash of the genesis block
	// built here and differs from the identity the deployed network
	// announces (0000011f88f2b96115058f93bba80ac1b01da8ad0531de456ec6af2666da429b),
	// which uses another block hash function.  The checkpoints above
	// height 0 keep the deployed network's hashes, so no single block hash
	// function reproduces every entry.
	mainNetGenesisHash = "4cb0b4fecf9274b87b60c3093de6ee21fe566e2a8e049e6d8a55b4ab746d385c"

	// genesisMerkleRoot is the trusted merkle root shared by the genesis
	// blocks of every network since they all carry the same coinbase.  The
	// deployed network announces 56463c15d556bae01ec5443ccdc38e9d0f8c25cbfd319b9be75d67f6e1f57a57,
	// which does not follow from the genesis contents.
	genesisMerkleRoot = "5f38c29160f7616019945ca02983876374f435edb1751b03dc1bc8cc4326c832"
)

// MainNetParams returns the network parameters for the main network.  Every
// call builds a fresh value.
//
// It panics when the genesis block does not match its trusted identity.
func MainNetParams() *Params {
	// mainPowLimit is the highest proof of work value a block can have for
	// the main network.  It is the value 2^236 - 1.
	mainPowLimit := shiftedPowLimit(20)

	genesis := newGenesis(genesisCoinbaseMessage, genesisOutputPubKey,
		genesisReward,
		time.Unix(1552885200, 0), // Mon, 18 Mar 2019 05:00:00 GMT
		0x1e0ffff0,
		635206)
	mustVerifyGenesis(genesis, mainNetGenesisHash, genesisMerkleRoot)

	params := &Params{
		ID:          MainNetID,
		Name:        MainNetID.String(),
		Net:         netFromMessageStart([4]byte{0x5b, 0xca, 0x3c, 0xbd}),
		DefaultPort: "15319",
		DNSSeeds: []DNSSeed{
			{"seedmain-1.axel.network", "seedmain-1.axel.network"},
			{"seedmain-2.axel.network", "seedmain-2.axel.network"},
			{"seedmain-3.axel.network", "seedmain-3.axel.network"},
			{"seedmain-4.axel.network", "seedmain-4.axel.network"},
			{"seedmain-5.axel.network", "seedmain-5.axel.network"},
			{"seedmain-6.axel.network", "seedmain-6.axel.network"},
			{"seedmain-7.axel.network", "seedmain-7.axel.network"},
			{"explorer.axel.network", "explorer.axel.network"},
		},
		FixedSeeds: convertSeeds(mainNetSeedSpecs, time.Now()),

		// Chain parameters
		Genesis:                      genesis,
		PowLimit:                     mainPowLimit,
		PowLimitBits:                 blockchain.BigToCompact(mainPowLimit),
		StartWork:                    shiftedPowLimit(24),
		TargetTimePerBlock:           time.Minute,
		TargetTimePerBlockSlowLaunch: time.Minute,
		MaxReorganizationDepth:       100,
		EnforceBlockUpgradeMajority:  750,
		RejectBlockOutdatedMajority:  950,
		ToCheckBlockUpgradeMajority:  1000,
		MinerThreads:                 0,
		CoinbaseMaturity:             60,
		MasternodeCountDrift:         3,
		MaxMoneyOut:                  1000000000 * btcutil.SatoshiPerBitcoin,

		StartMasternodePaymentsBlock: 500,
		StartMasternodePayments:      time.Unix(1553085000, 0), // Wed, 20 Mar 2019 12:30:00 GMT
		PoolMaxTransactions:          3,
		AlertPubKey: mustParsePubKey("0214a345c9add950bc2a23c569c40f029eb8d0385c" +
			"86cfcc830a872737a98e6a5f"),
		SporkPubKey: mustParsePubKey("04c0656cf0cc41544190931243ab8b969e016cd50a" +
			"fdd97ee9b9ae85e2b0e826e5ebf5cfb11658864286a94e0c3c831a5306a9dbda7d" +
			"133b1f5693dfb16c47f067"),
		ObfuscationPoolDummyAddress: "AdCVPY3aiPYuJADZGZm3D6SkzLYdeKdrwj",

		// Height based activations
		LastPoWBlock:        500,
		ModifierUpdateBlock: NeverActivate,

		// Checkpoints ordered from oldest to newest.
		Checkpoints: newCheckpointData(
			1553254838, // UNIX timestamp of last checkpoint block
			7799,       // total number of transactions up to the last checkpoint
			2000,       // estimated number of transactions per day after it
			Checkpoint{0, newHashFromStr(mainNetGenesisHash)},
			Checkpoint{1, newHashFromStr("000000915360e79f8c402fab9aa13f43f24cca2fbe3d1dc4f89ee109ef093e94")},
			Checkpoint{457, newHashFromStr("00000058bc2f4af94eaa9acb0cdb68754d78eb6d2de7b9e2f950c0f6a583d707")},
			Checkpoint{1894, newHashFromStr("0d31623de3a14634fd7a6c99d46fad6de7db2ff963b27848b2f29ac06e8bdb2f")},
			Checkpoint{2531, newHashFromStr("b71112ac836268c956b4772fb138279ea54dcf5a82d3be2ac2d1e3b80b3278ff")},
			Checkpoint{3932, newHashFromStr("988e156fda1edcf6db15cb96c2aff5d92a8eb308aabbb7052349d7c355422607")},
			Checkpoint{9215, newHashFromStr("e7e1608c2fd158b98e5e897121c1a60ab054639ef95911bd799e47db2b96e24b")},
			Checkpoint{18437, newHashFromStr("bf61932847ce2ac2ab7caa1289401048113257abf6df5275811aba2de5964627")},
			Checkpoint{33921, newHashFromStr("d969c2b55ae6cbf174ad3c49dba470a6aa1205f0c325aff9910967f4e4d054a7")},
		),

		RequireRPCPassword:            true,
		MiningRequiresPeers:           true,
		DefaultConsistencyChecks:      true,
		RequireStandard:               true,
		MineBlocksOnDemand:            false,
		SkipProofOfWorkCheck:          false,
		TestnetToBeDeprecatedFieldRPC: false,
		HeadersFirstSyncingActive:     false,

		// Address encoding magics
		PubKeyHashAddrID: 23, // starts with A
		ScriptHashAddrID: 75, // starts with X
		PrivateKeyID:     83, // starts with p

		// BIP32 hierarchical deterministic extended key magics
		HDPublicKeyID:  [4]byte{0x02, 0x2d, 0x25, 0x33},
		HDPrivateKeyID: [4]byte{0x02, 0x21, 0x31, 0x2b},

		// BIP44 coin type 9984 as registered in SLIP-0044.
		HDCoinTypeID: [4]byte{0x80, 0x00, 0x27, 0x00},
	}
	mustValidate(params)
	return params
}
