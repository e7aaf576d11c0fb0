// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2019 The AXEL developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/axel-network/axeld/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// VerifyCheckpoint returns whether the passed block height and hash combination
// match the passed checkpoint data.  It also returns true if there is no
// checkpoint data for the passed block height.
//
// This function is safe for concurrent access.
func VerifyCheckpoint(height uint32, hash *chainhash.Hash,
	data *chaincfg.CheckpointData) bool {

	// Nothing to check if there is no checkpoint data for the block height.
	checkpointHash, exists := data.Lookup(height)
	if !exists {
		return true
	}
	return checkpointHash.IsEqual(hash)
}

// MaxAcceptableReorgHeight returns the lowest height a competing chain may fork
// from the chain ending at tipHeight.  It is the later of the last checkpoint
// and the height maxDepth blocks below the tip, where the latter never drops
// below the genesis block.
//
// This function is safe for concurrent access.
func MaxAcceptableReorgHeight(tipHeight, lastCheckpointHeight,
	maxDepth uint32) uint32 {

	var depthFloor uint32
	if tipHeight > maxDepth {
		depthFloor = tipHeight - maxDepth
	}
	if lastCheckpointHeight > depthFloor {
		return lastCheckpointHeight
	}
	return depthFloor
}

// Config is a descriptor which specifies the checkpoint validator
// configuration.
type Config struct {
	// ChainParams identifies which chain parameters the validator is
	// associated with.  When nil, every query reads the parameters of the
	// network selected with chaincfg.SelectParams.
	ChainParams *chaincfg.Params

	// DisableCheckpoints disables validation against checkpoints which you
	// DO NOT want to do in production.  It is provided only for debug
	// purposes.
	DisableCheckpoints bool
}

// CheckpointValidator checks blocks and chain switches against the
// checkpoints of a network.
//
// A validator is never modified after New returns, so it is safe for
// concurrent access as long as the parameters it reads are not being modified.
type CheckpointValidator struct {
	chainParams   func() *chaincfg.Params
	noCheckpoints bool
}

// New returns a CheckpointValidator for the provided configuration.
func New(config *Config) (*CheckpointValidator, error) {
	if config == nil {
		return nil, AssertError("blockchain.New config is nil")
	}

	chainParams := chaincfg.ActiveParams
	if params := config.ChainParams; params != nil {
		chainParams = func() *chaincfg.Params { return params }
	}

	return &CheckpointValidator{
		chainParams:   chainParams,
		noCheckpoints: config.DisableCheckpoints,
	}, nil
}

// checkpointData returns the checkpoint data to validate against or nil when
// checkpoints are disabled.
func (v *CheckpointValidator) checkpointData() *chaincfg.CheckpointData {
	if v.noCheckpoints {
		return nil
	}
	return v.chainParams().Checkpoints
}

// Checkpoints returns a slice of checkpoints (regardless of whether they are
// already known).  When checkpoints are disabled or there are no checkpoints
// for the network, it will return nil.
func (v *CheckpointValidator) Checkpoints() []chaincfg.Checkpoint {
	return v.checkpointData().All()
}

// LatestCheckpoint returns the most recent checkpoint (regardless of whether it
// is already known).  When checkpoints are disabled or there are no checkpoints
// for the network, it will return nil.
func (v *CheckpointValidator) LatestCheckpoint() *chaincfg.Checkpoint {
	return v.checkpointData().Latest()
}

// CheckBlockCheckpoint ensures the passed block height and hash combination
// match the checkpoint data.  A mismatch is reported as a RuleError with
// ErrBadCheckpoint.  Heights without a checkpoint always pass.
func (v *CheckpointValidator) CheckBlockCheckpoint(height uint32,
	hash *chainhash.Hash) error {

	data := v.checkpointData()
	checkpointHash, exists := data.Lookup(height)
	if !exists {
		return nil
	}

	if !VerifyCheckpoint(height, hash, data) {
		str := fmt.Sprintf("block at height %d does not match "+
			"checkpoint hash %v (got %v)", height, checkpointHash, hash)
		return ruleError(ErrBadCheckpoint, str)
	}

	log.Infof("Verified checkpoint at height %d/block %s", height,
		checkpointHash)
	return nil
}

// CheckForkHeight ensures a competing chain forking from the chain ending at
// tipHeight at forkHeight does not fork before the most recent checkpoint or
// deeper than the maximum reorganization depth of the network.  A violation is
// reported as a RuleError with ErrForkTooOld regardless of the work the
// competing chain carries.
func (v *CheckpointValidator) CheckForkHeight(forkHeight, tipHeight uint32) error {
	params := v.chainParams()
	minHeight := MaxAcceptableReorgHeight(tipHeight,
		v.checkpointData().LatestHeight(), params.MaxReorganizationDepth)
	if forkHeight < minHeight {
		str := fmt.Sprintf("block at height %d forks the main chain "+
			"before the minimum reorganization height %d (tip %d)",
			forkHeight, minHeight, tipHeight)
		return ruleError(ErrForkTooOld, str)
	}
	return nil
}

// IsBeforeLastCheckpoint returns whether the passed height is below the most
// recent checkpoint.  Expensive script checks may be skipped for such blocks
// since the checkpoints commit to their ancestry.  It always returns false
// when checkpoints are disabled.
func (v *CheckpointValidator) IsBeforeLastCheckpoint(height uint32) bool {
	data := v.checkpointData()
	if data.Len() == 0 {
		return false
	}
	return height < data.LatestHeight()
}

// FindLatestKnownCheckpoint returns the most recent checkpoint for which have
// reports the block as known, searching from the newest checkpoint backwards.
// It returns nil when checkpoints are disabled or none of the checkpoint blocks
// are known (this should really only happen before the genesis block is
// stored).
func (v *CheckpointValidator) FindLatestKnownCheckpoint(
	have func(hash *chainhash.Hash) bool) *chaincfg.Checkpoint {

	checkpoints := v.Checkpoints()
	for i := len(checkpoints) - 1; i >= 0; i-- {
		if have(checkpoints[i].Hash) {
			return &checkpoints[i]
		}
	}
	return nil
}
