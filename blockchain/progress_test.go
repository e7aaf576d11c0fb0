// Copyright (c) 2019 The AXEL developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math"
	"testing"
	"time"

	"github.com/axel-network/axeld/chaincfg"
)

func TestEstimateVerificationProgress(t *testing.T) {
	// The main network checkpoint data has 7799 transactions at the last
	// checkpoint and expects 2000 transactions per day after it.
	data := chaincfg.MainNetParams().Checkpoints
	last := data.LastCheckpointTime
	day := 24 * time.Hour

	tests := []struct {
		name      string
		chainTx   uint64
		blockTime time.Time
		now       time.Time
		sigChecks bool
		want      float64
	}{
		{
			name:      "nothing verified",
			chainTx:   0,
			blockTime: last,
			now:       last.Add(day),
			want:      0,
		},
		{
			name:      "synced to checkpoint",
			chainTx:   7799,
			blockTime: last,
			now:       last,
			want:      1,
		},
		{
			name:      "checkpoint a day behind",
			chainTx:   7799,
			blockTime: last,
			now:       last.Add(day),
			want:      7799.0 / 9799.0,
		},
		{
			name:      "checkpoint a day behind with sigchecks",
			chainTx:   7799,
			blockTime: last,
			now:       last.Add(day),
			sigChecks: true,
			want:      7799.0 / 17799.0,
		},
		{
			name:      "past checkpoint with sigchecks",
			chainTx:   9799,
			blockTime: last.Add(36 * time.Hour),
			now:       last.Add(48 * time.Hour),
			sigChecks: true,
			want:      17799.0 / 22799.0,
		},
		{
			name:      "block from the future",
			chainTx:   9799,
			blockTime: last.Add(49 * time.Hour),
			now:       last.Add(48 * time.Hour),
			want:      1,
		},
	}

	for _, test := range tests {
		got := EstimateVerificationProgress(test.chainTx, test.blockTime,
			test.now, test.sigChecks, data)
		if math.Abs(got-test.want) > 1e-9 {
			t.Errorf("%s: got %v, want %v", test.name, got, test.want)
		}
		if got < 0 || got > 1 {
			t.Errorf("%s: %v is outside [0, 1]", test.name, got)
		}
	}

	if got := EstimateVerificationProgress(10, last, last, false, nil); got != 0 {
		t.Errorf("nil checkpoint data: got %v, want 0", got)
	}
}
