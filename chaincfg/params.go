// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Copyright (c) 2019 The AXEL developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)
)

// NeverActivate is the activation height used for rule changes which are not
// scheduled on a network.
const NeverActivate uint32 = math.MaxUint32

// NetworkID identifies one of the mutually exclusive networks a node process
// can run as.
type NetworkID uint8

// These constants define the known networks.
const (
	// MainNetID identifies the main production network.
	MainNetID NetworkID = iota

	// TestNetID identifies the public test network.
	TestNetID

	// RegTestID identifies the local regression test network.
	RegTestID

	// UnitTestID identifies the in-process unit test network.  It is the
	// only network whose parameters may be modified after selection.
	UnitTestID

	// numNetworkIDs is the number of known networks.  It MUST be the last
	// entry.
	numNetworkIDs
)

// networkIDStrings maps each network to the name used on the command line and
// in the Name field of its parameters.
var networkIDStrings = map[NetworkID]string{
	MainNetID:  "main",
	TestNetID:  "test",
	RegTestID:  "regtest",
	UnitTestID: "unittest",
}

// String returns the NetworkID in human-readable form.
func (id NetworkID) String() string {
	if s, ok := networkIDStrings[id]; ok {
		return s
	}
	return fmt.Sprintf("Unknown NetworkID (%d)", uint8(id))
}

// ParseNetworkID returns the network identified by the passed name.  The
// comparison is case insensitive.  ErrUnknownNet is returned for names that do
// not identify a known network.
func ParseNetworkID(name string) (NetworkID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id := MainNetID; id < numNetworkIDs; id++ {
		if networkIDStrings[id] == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNet, name)
}

// PrefixType identifies a kind of base58 encoded object whose version bytes
// are defined per network.
type PrefixType uint8

// These constants define the base58 prefix kinds.
const (
	PubKeyAddress PrefixType = iota
	ScriptAddress
	SecretKey
	ExtendedPublicKey
	ExtendedSecretKey
	ExtendedCoinType
)

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
//
// What makes a good checkpoint block:
//   - it is surrounded by blocks with reasonable timestamps (no blocks before
//     with a timestamp after, none after with a timestamp before)
//   - it contains no strange transactions
type Checkpoint struct {
	Height uint32
	Hash   *chainhash.Hash
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Name is the label the seed is known by.
	Name string

	// Host defines the hostname of the seed.
	Host string
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// Params defines a network by its parameters.  These parameters may be used by
// applications to differentiate networks as well as addresses and keys for one
// network from those intended for use on another network.
//
// Params built for the main, test and regression test networks must be treated
// as read-only.  Only the unit test network may be changed, and only through
// the MutableParams returned by ModifiableParams.
type Params struct {
	// ID identifies which of the known networks the parameters are for.
	ID NetworkID

	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds are hard-coded peer addresses used when DNS seeding does
	// not yield any peers.
	FixedSeeds []*wire.NetAddress

	// Genesis describes the first block of the chain.
	Genesis *Genesis

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// StartWork is the proof of work target used for the first blocks of
	// the chain.  It is never easier than PowLimit.
	StartWork *big.Int

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// TargetTimePerBlockSlowLaunch is the block spacing used while the
	// chain is launching.
	TargetTimePerBlockSlowLaunch time.Duration

	// MaxReorganizationDepth is the maximum number of blocks a competing
	// chain may diverge from the best chain by.
	MaxReorganizationDepth uint32

	// These fields define the block version supermajority window.  A new
	// block version is enforced once EnforceBlockUpgradeMajority of the
	// last ToCheckBlockUpgradeMajority blocks carry it, and older versions
	// are rejected once RejectBlockOutdatedMajority of them do.
	EnforceBlockUpgradeMajority int
	RejectBlockOutdatedMajority int
	ToCheckBlockUpgradeMajority int

	// MinerThreads is the default number of internal miner threads.
	MinerThreads int

	// CoinbaseMaturity is the number of blocks required before newly mined
	// coins can be spent.
	CoinbaseMaturity uint32

	// MasternodeCountDrift is the tolerated difference between the local
	// and the network masternode count.
	MasternodeCountDrift int

	// MaxMoneyOut is the maximum amount of money that can exist.
	MaxMoneyOut btcutil.Amount

	// StartMasternodePaymentsBlock is the first height paying masternodes.
	StartMasternodePaymentsBlock uint32

	// StartMasternodePayments is the time masternode payments start.
	StartMasternodePayments time.Time

	// LastPoWBlock is the last height that may be mined with proof of work.
	LastPoWBlock uint32

	// ModifierUpdateBlock is the height of the stake modifier upgrade.
	ModifierUpdateBlock uint32

	// PoolMaxTransactions is the maximum number of transactions in an
	// obfuscation pool.
	PoolMaxTransactions int

	// AlertPubKey is the key network alerts are signed with.
	AlertPubKey *btcec.PublicKey

	// SporkPubKey is the key spork messages are signed with.
	SporkPubKey *btcec.PublicKey

	// ObfuscationPoolDummyAddress is the address used as a placeholder
	// output by obfuscation pool transactions.
	ObfuscationPoolDummyAddress string

	// Checkpoints ordered from oldest to newest.
	Checkpoints *CheckpointData

	// Behavioral flags.
	RequireRPCPassword            bool
	MiningRequiresPeers           bool
	DefaultConsistencyChecks      bool
	RequireStandard               bool
	MineBlocksOnDemand            bool
	SkipProofOfWorkCheck          bool
	TestnetToBeDeprecatedFieldRPC bool
	HeadersFirstSyncingActive     bool

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// HDCoinTypeID is the BIP44 coin type used in the hierarchical
	// deterministic path for address generation.
	HDCoinTypeID [4]byte
}

// MessageStart returns the magic bytes in the order they appear at the start
// of every peer-to-peer message.
func (p *Params) MessageStart() [4]byte {
	var start [4]byte
	binary.LittleEndian.PutUint32(start[:], uint32(p.Net))
	return start
}

// GenesisHash returns the hash of the genesis block of the network.
func (p *Params) GenesisHash() *chainhash.Hash {
	return &p.Genesis.Hash
}

// Base58Prefix returns a copy of the version bytes used when base58 encoding
// an object of the passed kind for the network.  It returns nil for unknown
// kinds.
func (p *Params) Base58Prefix(t PrefixType) []byte {
	switch t {
	case PubKeyAddress:
		return []byte{p.PubKeyHashAddrID}
	case ScriptAddress:
		return []byte{p.ScriptHashAddrID}
	case SecretKey:
		return []byte{p.PrivateKeyID}
	case ExtendedPublicKey:
		return append([]byte(nil), p.HDPublicKeyID[:]...)
	case ExtendedSecretKey:
		return append([]byte(nil), p.HDPrivateKeyID[:]...)
	case ExtendedCoinType:
		return append([]byte(nil), p.HDCoinTypeID[:]...)
	}
	return nil
}

// validate checks the invariants every network must satisfy before any other
// subsystem may use it.  The returned error is an AssertError.
func (p *Params) validate() error {
	if p.Genesis == nil || p.Checkpoints == nil {
		return AssertError(fmt.Sprintf("%s: missing genesis or "+
			"checkpoint data", p.Name))
	}
	if p.PowLimit.Cmp(p.StartWork) < 0 {
		return AssertError(fmt.Sprintf("%s: start work %064x is easier "+
			"than the proof of work limit %064x", p.Name, p.StartWork,
			p.PowLimit))
	}

	if err := p.validateThresholds(); err != nil {
		return err
	}

	// The checkpoints must agree with the genesis block.
	hash, ok := p.Checkpoints.Lookup(0)
	if !ok || !hash.IsEqual(p.GenesisHash()) {
		return AssertError(fmt.Sprintf("%s: checkpoint at height 0 does "+
			"not match genesis block %v", p.Name, p.GenesisHash()))
	}
	return nil
}

// validateThresholds checks the block version thresholds satisfy
// 0 <= enforce, reject <= toCheck.  The returned error is an AssertError.
func (p *Params) validateThresholds() error {
	toCheck := p.ToCheckBlockUpgradeMajority
	if p.EnforceBlockUpgradeMajority < 0 ||
		p.EnforceBlockUpgradeMajority > toCheck {

		return AssertError(fmt.Sprintf("%s: enforce upgrade majority %d "+
			"is not within [0, %d]", p.Name,
			p.EnforceBlockUpgradeMajority, toCheck))
	}
	if p.RejectBlockOutdatedMajority < 0 ||
		p.RejectBlockOutdatedMajority > toCheck {

		return AssertError(fmt.Sprintf("%s: reject outdated majority %d "+
			"is not within [0, %d]", p.Name,
			p.RejectBlockOutdatedMajority, toCheck))
	}
	return nil
}

// mustValidate performs the same function as validate except it panics if
// there is an error.  This should only be called from the network builders.
func mustValidate(p *Params) {
	if err := p.validate(); err != nil {
		panic(err)
	}
}

// shiftedPowLimit returns the 256-bit value with all bits set shifted right by
// the passed number of bits.  It is the value 2^(256-shift) - 1.
func shiftedPowLimit(shift uint) *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256-shift), bigOne)
}

// netFromMessageStart returns the wire network identifier for the magic bytes
// in the order they appear on the wire.
func netFromMessageStart(start [4]byte) wire.BitcoinNet {
	return wire.BitcoinNet(binary.LittleEndian.Uint32(start[:]))
}

var (
	// ErrDuplicateNet describes an error where the parameters for a network
	// could not be set due to the network already being a standard network
	// or previously-registered into this package.
	ErrDuplicateNet = errors.New("duplicate network")

	// ErrUnknownHDKeyID describes an error where the provided id which
	// is intended to identify the network for a hierarchical deterministic
	// private extended key is not registered.
	ErrUnknownHDKeyID = errors.New("unknown hd private extended key bytes")

	// ErrUnknownNet describes an error where a network name does not
	// identify any of the known networks.
	ErrUnknownNet = errors.New("unknown network")

	// ErrNotModifiable describes an error where modifiable parameters were
	// requested while the active network is not the unit test network.
	ErrNotModifiable = errors.New("active network parameters are not " +
		"modifiable")
)

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// Ordinarily I don't like panics in library code since it
		// can take applications down without them having a chance to
		// recover which is extremely annoying, however an exception is
		// being made in this case because the only way this can panic
		// is if there is an error in the hard-coded hashes.  Thus it
		// will only ever potentially panic on init and therefore is
		// 100% predictable.
		panic(err)
	}
	return hash
}

// hexDecode decodes the passed hard-coded hex string and panics on failure.
func hexDecode(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}

// mustParsePubKey parses the passed hard-coded hex encoded secp256k1 public
// key and panics on failure.
func mustParsePubKey(hexStr string) *btcec.PublicKey {
	pubKey, err := btcec.ParsePubKey(hexDecode(hexStr))
	if err != nil {
		panic(AssertError(fmt.Sprintf("invalid public key %s: %v",
			hexStr, err)))
	}
	return pubKey
}
