// Copyright (c) 2019 The AXEL developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"time"

	"github.com/axel-network/axeld/chaincfg"
)

// sigcheckVerificationFactor is how much more work verifying a transaction
// with signature checks takes than verifying one without.
const sigcheckVerificationFactor = 5.0

// EstimateVerificationProgress returns a rough estimate in the range [0, 1] of
// how much of the chain has been verified when the block at the tip of the
// local chain has chainTx transactions up to and including it and the passed
// timestamp.
//
// Transactions up to the last checkpoint are cheap to verify.  Transactions
// after it, and those expected to have happened since, are weighted by
// sigcheckVerificationFactor when sigChecks is set.  The result is advisory
// only and must never gate validation above the last checkpoint.
//
// With sigChecks unset this is the height based estimate
//
//	progress = txs(tip) / total
//	txs(h) = TransactionsLastCheckpoint + (h - lastCheckpointHeight) * rate
//
// where chainTx carries txs(tip) for the tip at height h.  The current total,
// which callers would otherwise have to supply, is estimated as the larger of
// chainTx and TransactionsLastCheckpoint plus TransactionsPerDay for every day
// between the later of the tip and the last checkpoint and now.
func EstimateVerificationProgress(chainTx uint64, blockTime, now time.Time,
	sigChecks bool, data *chaincfg.CheckpointData) float64 {

	if data == nil {
		return 0
	}

	factor := 1.0
	if sigChecks {
		factor = sigcheckVerificationFactor
	}

	txsAfter := func(since time.Time) float64 {
		days := now.Sub(since).Hours() / 24
		if days < 0 {
			return 0
		}
		return days * data.TransactionsPerDay
	}

	// Amount of work done before the tip and left after it (estimated).
	var workBefore, workAfter float64
	lastTxs := data.TransactionsLastCheckpoint
	if chainTx <= lastTxs {
		cheapAfter := float64(lastTxs - chainTx)
		expensiveAfter := txsAfter(data.LastCheckpointTime)
		workBefore = float64(chainTx)
		workAfter = cheapAfter + expensiveAfter*factor
	} else {
		expensiveBefore := float64(chainTx - lastTxs)
		expensiveAfter := txsAfter(blockTime)
		workBefore = float64(lastTxs) + expensiveBefore*factor
		workAfter = expensiveAfter * factor
	}

	total := workBefore + workAfter
	if total <= 0 {
		return 0
	}
	progress := workBefore / total
	if progress > 1 {
		return 1
	}
	return progress
}
