// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 The AXEL developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

const (
	// genesisCoinbaseMessage is the text committed to by the signature
	// script of the genesis coinbase on every network.
	genesisCoinbaseMessage = "Colorado trooper killed as Bomb Cyclone " +
		"unleashes snow, high winds."

	// genesisCoinbaseBits is the compact difficulty pushed as the first
	// item of the genesis coinbase signature script.
	genesisCoinbaseBits = 486604799 // 0x1d00ffff

	// genesisReward is the value of the single genesis coinbase output.  It
	// can never be spent since it did not originally exist in the database.
	genesisReward = 50 * btcutil.SatoshiPerBitcoin
)

// genesisOutputPubKey is the public key the genesis coinbase output pays to.
var genesisOutputPubKey = hexDecode("044a001040da79684a0544c2254eb6c896fae9" +
	"5a9ea7b51d889475eb57ab2051f1a5858cac61ae400e90ea08015263ad40c65d36f0e" +
	"df19e996972e7d2cbd13c15")

// Genesis describes the literal contents of the genesis block of a network
// along with the block identity derived from them.
type Genesis struct {
	// Message is the text embedded in the coinbase signature script.
	Message string

	// OutputPubKey is the key the coinbase output pays to.
	OutputPubKey []byte

	// Reward is the value of the coinbase output.
	Reward btcutil.Amount

	// Block is the complete genesis block.
	Block *wire.MsgBlock

	// Hash is the block hash of Block.
	Hash chainhash.Hash

	// MerkleRoot is the merkle root of the transactions in Block.
	MerkleRoot chainhash.Hash
}

// genesisSignatureScript returns the coinbase signature script committing to
// the passed message.  The extra nonce 4 is pushed as a single data byte
// rather than with the minimal OP_4 encoding.
func genesisSignatureScript(message string) []byte {
	script, err := txscript.NewScriptBuilder().
		AddInt64(genesisCoinbaseBits).
		AddOps([]byte{txscript.OP_DATA_1, 0x04}).
		AddData([]byte(message)).
		Script()
	if err != nil {
		panic(AssertError(fmt.Sprintf("unable to build genesis "+
			"signature script: %v", err)))
	}
	return script
}

// genesisPkScript returns a pay-to-pubkey script for the passed key.
func genesisPkScript(pubKey []byte) []byte {
	script, err := txscript.NewScriptBuilder().
		AddData(pubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	if err != nil {
		panic(AssertError(fmt.Sprintf("unable to build genesis "+
			"output script: %v", err)))
	}
	return script
}

// newGenesis builds the genesis block for the passed literal contents and
// derives its merkle root and hash.
func newGenesis(message string, pubKey []byte, reward btcutil.Amount,
	timestamp time.Time, bits, nonce uint32) *Genesis {

	coinbase := wire.MsgTx{
		Version: 1,
		TxIn: []*wire.TxIn{{
			PreviousOutPoint: wire.OutPoint{
				Hash:  chainhash.Hash{},
				Index: wire.MaxPrevOutIndex,
			},
			SignatureScript: genesisSignatureScript(message),
			Sequence:        wire.MaxTxInSequenceNum,
		}},
		TxOut: []*wire.TxOut{{
			Value:    int64(reward),
			PkScript: genesisPkScript(pubKey),
		}},
		LockTime: 0,
	}

	block := wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    1,
			PrevBlock:  chainhash.Hash{}, // All zero.
			MerkleRoot: coinbase.TxHash(),
			Timestamp:  timestamp,
			Bits:       bits,
			Nonce:      nonce,
		},
		Transactions: []*wire.MsgTx{&coinbase},
	}

	return &Genesis{
		Message:      message,
		OutputPubKey: pubKey,
		Reward:       reward,
		Block:        &block,
		Hash:         block.BlockHash(),
		MerkleRoot:   block.Header.MerkleRoot,
	}
}

// withHeader returns a copy of the genesis block with the passed header time,
// bits and nonce.  The coinbase, and therefore the merkle root, is unchanged.
// The receiver is not modified.
func (g *Genesis) withHeader(timestamp time.Time, bits, nonce uint32) *Genesis {
	header := g.Block.Header
	header.Timestamp = timestamp
	header.Bits = bits
	header.Nonce = nonce

	block := wire.MsgBlock{
		Header:       header,
		Transactions: []*wire.MsgTx{g.Block.Transactions[0].Copy()},
	}

	return &Genesis{
		Message:      g.Message,
		OutputPubKey: append([]byte(nil), g.OutputPubKey...),
		Reward:       g.Reward,
		Block:        &block,
		Hash:         block.BlockHash(),
		MerkleRoot:   g.MerkleRoot,
	}
}

// Timestamp returns the time recorded in the genesis block header.
func (g *Genesis) Timestamp() time.Time {
	return g.Block.Header.Timestamp
}

// Bits returns the compact difficulty of the genesis block header.
func (g *Genesis) Bits() uint32 {
	return g.Block.Header.Bits
}

// Nonce returns the nonce of the genesis block header.
func (g *Genesis) Nonce() uint32 {
	return g.Block.Header.Nonce
}

// verify returns an AssertError when the derived merkle root or block hash do
// not match the passed trusted values.
func (g *Genesis) verify(wantHash, wantMerkleRoot *chainhash.Hash) error {
	if !g.MerkleRoot.IsEqual(wantMerkleRoot) {
		return AssertError(fmt.Sprintf("genesis merkle root %v does not "+
			"match expected %v", g.MerkleRoot, wantMerkleRoot))
	}
	if !g.Hash.IsEqual(wantHash) {
		return AssertError(fmt.Sprintf("genesis block hash %v does not "+
			"match expected %v", g.Hash, wantHash))
	}
	return nil
}

// mustVerifyGenesis performs the same function as verify with hard-coded hex
// hashes except it panics if there is an error.  A network whose genesis block
// does not match its trusted identity must never be used.
func mustVerifyGenesis(g *Genesis, wantHash, wantMerkleRoot string) {
	err := g.verify(newHashFromStr(wantHash), newHashFromStr(wantMerkleRoot))
	if err != nil {
		panic(err)
	}
}
