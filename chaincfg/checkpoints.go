// Copyright (c) 2019 The AXEL developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// CheckpointData houses the checkpoints of a network along with statistics
// about the chain at the last checkpoint which are used to estimate the
// verification progress.
//
// The checkpoints are held by value.  Every accessor hands out fresh copies so
// callers can never change the checkpoints of a network.
type CheckpointData struct {
	checkpoints []checkpointEntry
	byHeight    map[uint32]chainhash.Hash

	// LastCheckpointTime is the timestamp of the last checkpoint block.
	LastCheckpointTime time.Time

	// TransactionsLastCheckpoint is the total number of transactions
	// between genesis and the last checkpoint.
	TransactionsLastCheckpoint uint64

	// TransactionsPerDay is the estimated number of transactions per day
	// after the last checkpoint.
	TransactionsPerDay float64
}

// checkpointEntry is a checkpoint stored by value.
type checkpointEntry struct {
	height uint32
	hash   chainhash.Hash
}

// checkpoint returns a Checkpoint pointing at a fresh copy of the hash.
func (e *checkpointEntry) checkpoint() Checkpoint {
	hash := e.hash
	return Checkpoint{Height: e.height, Hash: &hash}
}

// newCheckpointData returns checkpoint data for the passed checkpoints and
// statistics.  It panics when the checkpoints are not ordered by strictly
// increasing height since it must only be called with hard-coded data.
func newCheckpointData(lastTime int64, txsLastCheckpoint uint64,
	txsPerDay float64, checkpoints ...Checkpoint) *CheckpointData {

	data := &CheckpointData{
		checkpoints:                make([]checkpointEntry, 0, len(checkpoints)),
		byHeight:                   make(map[uint32]chainhash.Hash, len(checkpoints)),
		LastCheckpointTime:         time.Unix(lastTime, 0),
		TransactionsLastCheckpoint: txsLastCheckpoint,
		TransactionsPerDay:         txsPerDay,
	}
	for i, checkpoint := range checkpoints {
		if i > 0 && checkpoint.Height <= checkpoints[i-1].Height {
			panic(AssertError(fmt.Sprintf("checkpoint at height %d "+
				"does not follow height %d", checkpoint.Height,
				checkpoints[i-1].Height)))
		}
		entry := checkpointEntry{
			height: checkpoint.Height,
			hash:   *checkpoint.Hash,
		}
		data.checkpoints = append(data.checkpoints, entry)
		data.byHeight[entry.height] = entry.hash
	}
	return data
}

// Lookup returns a copy of the checkpointed hash for the passed height and
// whether one exists.
func (c *CheckpointData) Lookup(height uint32) (*chainhash.Hash, bool) {
	if c == nil {
		return nil, false
	}
	hash, ok := c.byHeight[height]
	if !ok {
		return nil, false
	}
	return &hash, true
}

// Len returns the number of checkpoints.
func (c *CheckpointData) Len() int {
	if c == nil {
		return 0
	}
	return len(c.checkpoints)
}

// All returns a copy of the checkpoints ordered from oldest to newest.
func (c *CheckpointData) All() []Checkpoint {
	if c.Len() == 0 {
		return nil
	}
	checkpoints := make([]Checkpoint, 0, len(c.checkpoints))
	for i := range c.checkpoints {
		checkpoints = append(checkpoints, c.checkpoints[i].checkpoint())
	}
	return checkpoints
}

// Latest returns the most recent checkpoint or nil when there are none.
func (c *CheckpointData) Latest() *Checkpoint {
	if c.Len() == 0 {
		return nil
	}
	checkpoint := c.checkpoints[len(c.checkpoints)-1].checkpoint()
	return &checkpoint
}

// LatestHeight is the height of the latest checkpoint block.  It doubles as a
// lower bound estimate of the chain height.
func (c *CheckpointData) LatestHeight() uint32 {
	if c.Len() == 0 {
		return 0
	}
	return c.checkpoints[len(c.checkpoints)-1].height
}
