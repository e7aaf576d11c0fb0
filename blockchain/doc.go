// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2019 The AXEL developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package blockchain implements the checkpoint rules applied while accepting
blocks.

Checkpoints are trusted (height, hash) pairs carried by the network parameters
in the chaincfg package.  A block at a checkpointed height must have the
checkpointed hash, and a competing chain may not fork before the most recent
checkpoint or deeper than the maximum reorganization depth of the network.

The pure functions VerifyCheckpoint and MaxAcceptableReorgHeight answer these
questions for explicit inputs.  A CheckpointValidator applies them to the
parameters of a network and reports violations as RuleErrors, which callers
are expected to treat as a rejection of the offending chain and not as a
fatal condition.

Errors

Errors returned by this package are either the raw errors provided by
underlying calls or of type blockchain.RuleError.  This allows the caller to
differentiate between unexpected errors, such as a missing configuration, and
rule violations through type assertions.  In addition, callers can
programmatically determine the specific rule violation by examining the
ErrorCode field of the type asserted blockchain.RuleError.
*/
package blockchain
