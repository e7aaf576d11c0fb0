// Copyright (c) 2019 The AXEL developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// UnitTestParams returns the network parameters for the in-process unit test
// network.  They are the main network parameters, including its genesis block
// and checkpoints, with every divergence applied below.
//
// Unlike the other networks, the returned parameters may be changed through
// MutableParams once selected.
func UnitTestParams() *Params {
	params := MainNetParams()

	params.ID = UnitTestID
	params.Name = UnitTestID.String()
	params.Net = netFromMessageStart([4]byte{0x2f, 0xa9, 0x71, 0xd4})
	params.DefaultPort = "51478"

	// The unit test network never discovers peers on its own.
	params.FixedSeeds = nil
	params.DNSSeeds = nil

	params.RequireRPCPassword = false
	params.MiningRequiresPeers = false
	params.DefaultConsistencyChecks = true
	params.MineBlocksOnDemand = true

	mustValidate(params)
	return params
}

// ParamsForNetwork returns freshly built parameters for the passed network.
// It panics for networks that are not known.
func ParamsForNetwork(id NetworkID) *Params {
	switch id {
	case MainNetID:
		return MainNetParams()
	case TestNetID:
		return TestNetParams()
	case RegTestID:
		return RegTestParams()
	case UnitTestID:
		return UnitTestParams()
	}
	panic(AssertError("unimplemented network " + id.String()))
}
