// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2016 The Decred developers
// Copyright (c) 2019 The AXEL developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
)

// allNetworks returns freshly built parameters for every known network.
func allNetworks() []*Params {
	return []*Params{
		MainNetParams(),
		TestNetParams(),
		RegTestParams(),
		UnitTestParams(),
	}
}

// TestMustRegisterPanic ensures the mustRegister function panics when used to
// register an invalid network.
func TestMustRegisterPanic(t *testing.T) {
	t.Parallel()

	// Setup a defer to catch the expected panic to ensure it actually
	// paniced.
	defer func() {
		if err := recover(); err == nil {
			t.Error("mustRegister did not panic as expected")
		}
	}()

	// Intentionally try to register duplicate params to force a panic.
	mustRegister(MainNetParams())
}

// TestNetworkIDStringer tests the stringized output for the NetworkID type.
func TestNetworkIDStringer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   NetworkID
		want string
	}{
		{MainNetID, "main"},
		{TestNetID, "test"},
		{RegTestID, "regtest"},
		{UnitTestID, "unittest"},
		{0xff, "Unknown NetworkID (255)"},
	}

	// Detect additional network IDs that don't have the stringer added.
	if len(tests)-1 != int(numNetworkIDs) {
		t.Errorf("It appears a network ID was added without adding an " +
			"associated stringer test")
	}

	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result,
				test.want)
		}
	}
}

// TestParseNetworkID ensures network names round trip through ParseNetworkID
// and unknown names are rejected.
func TestParseNetworkID(t *testing.T) {
	t.Parallel()

	for id := MainNetID; id < numNetworkIDs; id++ {
		got, err := ParseNetworkID(id.String())
		if err != nil {
			t.Errorf("ParseNetworkID(%q): unexpected error: %v", id, err)
			continue
		}
		if got != id {
			t.Errorf("ParseNetworkID(%q): got %v, want %v", id, got, id)
		}
	}

	if got, err := ParseNetworkID(" RegTest "); err != nil || got != RegTestID {
		t.Errorf("ParseNetworkID: got (%v, %v), want (%v, nil)", got, err,
			RegTestID)
	}

	_, err := ParseNetworkID("simnet")
	if !errors.Is(err, ErrUnknownNet) {
		t.Errorf("ParseNetworkID: got %v, want %v", err, ErrUnknownNet)
	}
}

// TestNetworkIdentity ensures every network carries its own ID, name and
// magic bytes and that no two networks share magic bytes or ports.
func TestNetworkIdentity(t *testing.T) {
	t.Parallel()

	wantStarts := map[NetworkID][4]byte{
		MainNetID:  {0x5b, 0xca, 0x3c, 0xbd},
		TestNetID:  {0x57, 0x72, 0x86, 0xba},
		RegTestID:  {0xa1, 0xcf, 0x7e, 0xac},
		UnitTestID: {0x2f, 0xa9, 0x71, 0xd4},
	}
	wantPorts := map[NetworkID]string{
		MainNetID:  "15319",
		TestNetID:  "25319",
		RegTestID:  "51476",
		UnitTestID: "51478",
	}

	starts := make(map[[4]byte]NetworkID)
	ports := make(map[string]NetworkID)
	for i, params := range allNetworks() {
		if params.ID != NetworkID(i) || params.Name != params.ID.String() {
			t.Errorf("%s: unexpected identity %v", params.Name, params.ID)
		}
		start := params.MessageStart()
		if start != wantStarts[params.ID] {
			t.Errorf("%s: message start got %x, want %x", params.Name,
				start, wantStarts[params.ID])
		}
		if params.DefaultPort != wantPorts[params.ID] {
			t.Errorf("%s: port got %s, want %s", params.Name,
				params.DefaultPort, wantPorts[params.ID])
		}
		if other, ok := starts[start]; ok {
			t.Errorf("%s: message start %x is shared with %v",
				params.Name, start, other)
		}
		if other, ok := ports[params.DefaultPort]; ok {
			t.Errorf("%s: port %s is shared with %v", params.Name,
				params.DefaultPort, other)
		}
		starts[start] = params.ID
		ports[params.DefaultPort] = params.ID
	}
}

// TestConsensusInvariants ensures the proof of work and version window
// parameters of every network are consistent.
func TestConsensusInvariants(t *testing.T) {
	t.Parallel()

	for _, params := range allNetworks() {
		if params.PowLimit.Cmp(params.StartWork) < 0 {
			t.Errorf("%s: start work is easier than the pow limit",
				params.Name)
		}
		if blockchain.CompactToBig(params.PowLimitBits).Cmp(params.PowLimit) > 0 {
			t.Errorf("%s: compact pow limit %08x exceeds the pow limit",
				params.Name, params.PowLimitBits)
		}
		target := blockchain.CompactToBig(params.Genesis.Bits())
		if target.Cmp(params.PowLimit) > 0 {
			t.Errorf("%s: genesis bits %08x exceed the pow limit",
				params.Name, params.Genesis.Bits())
		}

		toCheck := params.ToCheckBlockUpgradeMajority
		if params.EnforceBlockUpgradeMajority > toCheck ||
			params.RejectBlockOutdatedMajority > toCheck {

			t.Errorf("%s: upgrade majorities %d/%d exceed window %d",
				params.Name, params.EnforceBlockUpgradeMajority,
				params.RejectBlockOutdatedMajority, toCheck)
		}
		if params.MaxMoneyOut != 1000000000*btcutil.SatoshiPerBitcoin {
			t.Errorf("%s: unexpected max money %v", params.Name,
				params.MaxMoneyOut)
		}
	}

	want := map[NetworkID]uint32{
		MainNetID:  0x1e0fffff,
		TestNetID:  0x207fffff,
		RegTestID:  0x207fffff,
		UnitTestID: 0x1e0fffff,
	}
	for _, params := range allNetworks() {
		if params.PowLimitBits != want[params.ID] {
			t.Errorf("%s: pow limit bits got %08x, want %08x",
				params.Name, params.PowLimitBits, want[params.ID])
		}
	}
}

// TestCheckpointGenesis ensures the checkpoint at height zero of every
// network is its genesis block.
func TestCheckpointGenesis(t *testing.T) {
	t.Parallel()

	for _, params := range allNetworks() {
		hash, ok := params.Checkpoints.Lookup(0)
		if !ok {
			t.Errorf("%s: no checkpoint at height 0", params.Name)
			continue
		}
		if !hash.IsEqual(params.GenesisHash()) {
			t.Errorf("%s: checkpoint 0 got %v, want %v", params.Name,
				hash, params.GenesisHash())
		}
	}

	main := MainNetParams()
	if main.Checkpoints.Len() != 9 || main.Checkpoints.LatestHeight() != 33921 {
		t.Errorf("main: unexpected checkpoints %v", main.Checkpoints.All())
	}
	test := TestNetParams()
	if test.Checkpoints.Len() != 9 || test.Checkpoints.LatestHeight() != 35429 {
		t.Errorf("test: unexpected checkpoints %v", test.Checkpoints.All())
	}
	reg := RegTestParams()
	if reg.Checkpoints.Len() != 1 || reg.Checkpoints.LatestHeight() != 0 {
		t.Errorf("regtest: unexpected checkpoints %v", reg.Checkpoints.All())
	}
}

// TestBase58Prefixes ensures the address magics of each network produce the
// expected leading characters and agree with the hard-coded dummy addresses.
func TestBase58Prefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		params *Params
		p2pkh  byte
		p2sh   byte
	}{
		{MainNetParams(), 'A', 'X'},
		{TestNetParams(), 'T', '8'},
		{RegTestParams(), 'T', '8'},
	}

	var zeroHash [20]byte
	for _, test := range tests {
		params := test.params
		addr := base58.CheckEncode(zeroHash[:], params.PubKeyHashAddrID)
		if addr[0] != test.p2pkh {
			t.Errorf("%s: P2PKH address %s does not start with %c",
				params.Name, addr, test.p2pkh)
		}
		addr = base58.CheckEncode(zeroHash[:], params.ScriptHashAddrID)
		if addr[0] != test.p2sh {
			t.Errorf("%s: P2SH address %s does not start with %c",
				params.Name, addr, test.p2sh)
		}

		_, version, err := base58.CheckDecode(params.ObfuscationPoolDummyAddress)
		if err != nil {
			t.Errorf("%s: invalid dummy address: %v", params.Name, err)
			continue
		}
		if version != params.PubKeyHashAddrID {
			t.Errorf("%s: dummy address version got %d, want %d",
				params.Name, version, params.PubKeyHashAddrID)
		}

		prefix := params.Base58Prefix(ExtendedPublicKey)
		prefix[0] ^= 0xff
		if params.HDPublicKeyID[0] == prefix[0] {
			t.Errorf("%s: Base58Prefix returned shared storage",
				params.Name)
		}
	}

	if MainNetParams().Base58Prefix(PrefixType(0xff)) != nil {
		t.Errorf("Base58Prefix: unknown prefix type returned bytes")
	}
}

// TestValidate ensures parameters violating a network invariant are rejected.
func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Params)
	}{
		{
			name: "enforce above window",
			modify: func(p *Params) {
				p.EnforceBlockUpgradeMajority = p.ToCheckBlockUpgradeMajority + 1
			},
		},
		{
			name: "negative reject",
			modify: func(p *Params) {
				p.RejectBlockOutdatedMajority = -1
			},
		},
		{
			name: "start work easier than limit",
			modify: func(p *Params) {
				p.StartWork = new(big.Int).Add(p.PowLimit, bigOne)
			},
		},
		{
			name: "checkpoint 0 mismatch",
			modify: func(p *Params) {
				p.Checkpoints = newCheckpointData(0, 0, 0,
					Checkpoint{0, newHashFromStr(testNetGenesisHash)})
			},
		},
		{
			name: "no checkpoint 0",
			modify: func(p *Params) {
				p.Checkpoints = newCheckpointData(0, 0, 0,
					Checkpoint{1, newHashFromStr(testNetGenesisHash)})
			},
		},
		{
			name: "no genesis",
			modify: func(p *Params) {
				p.Genesis = nil
			},
		},
	}

	if err := MainNetParams().validate(); err != nil {
		t.Fatalf("validate: unexpected error: %v", err)
	}

	for _, test := range tests {
		params := MainNetParams()
		test.modify(params)
		err := params.validate()
		if _, ok := err.(AssertError); !ok {
			t.Errorf("%s: got %v, want AssertError", test.name, err)
		}
	}
}

// TestUnitTestDivergence ensures the unit test network diverges from the main
// network only where it is expected to.
func TestUnitTestDivergence(t *testing.T) {
	t.Parallel()

	main, unit := MainNetParams(), UnitTestParams()
	if unit.Checkpoints.Len() != main.Checkpoints.Len() {
		t.Errorf("unittest: got %d checkpoints, want %d",
			unit.Checkpoints.Len(), main.Checkpoints.Len())
	}
	if len(unit.DNSSeeds) != 0 || len(unit.FixedSeeds) != 0 {
		t.Errorf("unittest: unexpected seeds")
	}
	if !unit.MineBlocksOnDemand || unit.RequireRPCPassword ||
		unit.MiningRequiresPeers {

		t.Errorf("unittest: unexpected behavioral flags")
	}
	if unit.PubKeyHashAddrID != main.PubKeyHashAddrID ||
		unit.MaxReorganizationDepth != main.MaxReorganizationDepth {

		t.Errorf("unittest: unexpected divergence from main")
	}
}

// TestRegTestDivergence ensures the regression test network keeps the test
// network settings it does not override.
func TestRegTestDivergence(t *testing.T) {
	t.Parallel()

	test, reg := TestNetParams(), RegTestParams()
	if reg.PubKeyHashAddrID != test.PubKeyHashAddrID ||
		reg.HDCoinTypeID != test.HDCoinTypeID ||
		reg.ObfuscationPoolDummyAddress != test.ObfuscationPoolDummyAddress {

		t.Errorf("regtest: address magics diverge from test")
	}
	if reg.EnforceBlockUpgradeMajority != 750 ||
		reg.RejectBlockOutdatedMajority != 950 ||
		reg.ToCheckBlockUpgradeMajority != 1000 {

		t.Errorf("regtest: unexpected upgrade majorities")
	}
	if reg.MinerThreads != 1 || !reg.MineBlocksOnDemand {
		t.Errorf("regtest: unexpected mining settings")
	}
	if len(reg.DNSSeeds) != 0 || len(reg.FixedSeeds) != 0 {
		t.Errorf("regtest: unexpected seeds")
	}
}

// TestInvalidHashStrPanic ensures the newHashFromStr function panics when
// called with invalid hex.
func TestInvalidHashStrPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic for invalid hash string, got nil")
		}
	}()
	newHashFromStr("banana")
}

// TestInvalidPubKeyPanic ensures the mustParsePubKey function panics when
// called with an invalid key.
func TestInvalidPubKeyPanic(t *testing.T) {
	defer func() {
		r := recover()
		if _, ok := r.(AssertError); !ok {
			t.Errorf("Expected AssertError panic for invalid key, got %v", r)
		}
	}()
	mustParsePubKey("0400")
}
