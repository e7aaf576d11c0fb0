// Copyright (c) 2019 The AXEL developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// MutableParams is the capability to change the unit test network parameters
// a Selector has made active.  Changes are observed by every subsequent read
// of the active parameters.
//
// Every change applies to the parameters active at the time of the call, so a
// MutableParams obtained before the unit test network was selected again keeps
// working on the rebuilt parameters.
//
// The block version thresholds must stay within 0 <= enforce, reject <=
// toCheck.  A change that violates them panics with an AssertError and is not
// applied.
//
// MutableParams is not safe for concurrent access.
type MutableParams struct {
	selector *Selector
}

// params returns the parameters changes apply to.
func (m *MutableParams) params() *Params {
	return m.selector.Active()
}

// setThresholds applies change to a copy of the block version thresholds of
// the active parameters and stores the result.  It panics with an AssertError,
// leaving the parameters unchanged, when the result is inconsistent.
func (m *MutableParams) setThresholds(change func(p *Params)) {
	p := m.params()
	candidate := Params{
		Name:                        p.Name,
		EnforceBlockUpgradeMajority: p.EnforceBlockUpgradeMajority,
		RejectBlockOutdatedMajority: p.RejectBlockOutdatedMajority,
		ToCheckBlockUpgradeMajority: p.ToCheckBlockUpgradeMajority,
	}
	change(&candidate)
	if err := candidate.validateThresholds(); err != nil {
		panic(err)
	}

	p.EnforceBlockUpgradeMajority = candidate.EnforceBlockUpgradeMajority
	p.RejectBlockOutdatedMajority = candidate.RejectBlockOutdatedMajority
	p.ToCheckBlockUpgradeMajority = candidate.ToCheckBlockUpgradeMajority
}

// SetEnforceBlockUpgradeMajority sets the number of blocks in the version
// window that enforce a new block version.
func (m *MutableParams) SetEnforceBlockUpgradeMajority(n int) {
	m.setThresholds(func(p *Params) { p.EnforceBlockUpgradeMajority = n })
}

// SetRejectBlockOutdatedMajority sets the number of blocks in the version
// window after which outdated block versions are rejected.
func (m *MutableParams) SetRejectBlockOutdatedMajority(n int) {
	m.setThresholds(func(p *Params) { p.RejectBlockOutdatedMajority = n })
}

// SetToCheckBlockUpgradeMajority sets the size of the version window.
func (m *MutableParams) SetToCheckBlockUpgradeMajority(n int) {
	m.setThresholds(func(p *Params) { p.ToCheckBlockUpgradeMajority = n })
}

// SetDefaultConsistencyChecks toggles the expensive consistency checks.
func (m *MutableParams) SetDefaultConsistencyChecks(enable bool) {
	m.params().DefaultConsistencyChecks = enable
}

// SetSkipProofOfWorkCheck toggles proof of work validation.
func (m *MutableParams) SetSkipProofOfWorkCheck(skip bool) {
	m.params().SkipProofOfWorkCheck = skip
}
