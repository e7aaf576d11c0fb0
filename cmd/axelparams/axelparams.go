// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2019 The AXEL developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/axel-network/axeld/blockchain"
	"github.com/axel-network/axeld/chaincfg"
	"github.com/axel-network/axeld/connmgr"
	"github.com/axel-network/axeld/internal/log"
	"github.com/axel-network/axeld/internal/version"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/wire"
)

// genesisAddress returns the pay-to-pubkey-hash address of the key the genesis
// coinbase pays to.
func genesisAddress(params *chaincfg.Params) string {
	pubKeyHash := btcutil.Hash160(params.Genesis.OutputPubKey)
	return base58.CheckEncode(pubKeyHash, params.PubKeyHashAddrID)
}

// printParams writes a summary of the passed network parameters to w.
func printParams(w io.Writer, params *chaincfg.Params,
	validator *blockchain.CheckpointValidator, now time.Time) {

	genesis := params.Genesis
	fmt.Fprintf(w, "Network:              %s\n", params.Name)
	fmt.Fprintf(w, "Magic:                %x\n", params.MessageStart())
	fmt.Fprintf(w, "Default port:         %s\n", params.DefaultPort)
	fmt.Fprintf(w, "Genesis hash:         %v\n", params.GenesisHash())
	fmt.Fprintf(w, "Genesis merkle root:  %v\n", genesis.MerkleRoot)
	fmt.Fprintf(w, "Genesis time:         %v\n", genesis.Timestamp().UTC())
	fmt.Fprintf(w, "Genesis reward:       %v to %s\n", genesis.Reward,
		genesisAddress(params))
	fmt.Fprintf(w, "Pow limit bits:       %08x\n", params.PowLimitBits)
	fmt.Fprintf(w, "Max money:            %v\n", params.MaxMoneyOut)
	fmt.Fprintf(w, "Max reorg depth:      %d\n", params.MaxReorganizationDepth)
	fmt.Fprintf(w, "Upgrade majorities:   %d/%d of %d\n",
		params.EnforceBlockUpgradeMajority,
		params.RejectBlockOutdatedMajority,
		params.ToCheckBlockUpgradeMajority)
	fmt.Fprintf(w, "Address prefixes:     pubkey %x, script %x, secret %x\n",
		params.Base58Prefix(chaincfg.PubKeyAddress),
		params.Base58Prefix(chaincfg.ScriptAddress),
		params.Base58Prefix(chaincfg.SecretKey))
	fmt.Fprintf(w, "Extended prefixes:    public %x, secret %x, coin %x\n",
		params.Base58Prefix(chaincfg.ExtendedPublicKey),
		params.Base58Prefix(chaincfg.ExtendedSecretKey),
		params.Base58Prefix(chaincfg.ExtendedCoinType))
	fmt.Fprintf(w, "DNS seeds:            %d\n", len(params.DNSSeeds))
	for _, seed := range params.DNSSeeds {
		fmt.Fprintf(w, "  %v\n", seed)
	}

	checkpoints := validator.Checkpoints()
	fmt.Fprintf(w, "Checkpoints:          %d %s\n", len(checkpoints),
		log.PickNoun(uint64(len(checkpoints)), "checkpoint", "checkpoints"))
	for _, checkpoint := range checkpoints {
		fmt.Fprintf(w, "  %7d %v\n", checkpoint.Height, checkpoint.Hash)
	}

	data := params.Checkpoints
	progress := blockchain.EstimateVerificationProgress(
		data.TransactionsLastCheckpoint, data.LastCheckpointTime, now, true,
		data)
	fmt.Fprintf(w, "Progress at last checkpoint: %.2f%%\n", progress*100)
}

// checkBlock reports whether the queried block passes the checkpoints and
// returns the RuleError when it does not.
func checkBlock(w io.Writer, validator *blockchain.CheckpointValidator,
	query *blockQuery) error {

	err := validator.CheckBlockCheckpoint(query.height, query.hash)
	var rerr blockchain.RuleError
	switch {
	case err == nil:
		fmt.Fprintf(w, "Block %v at height %d: accepted\n", query.hash,
			query.height)
		return nil
	case errors.As(err, &rerr):
		fmt.Fprintf(w, "Block %v at height %d: rejected (%v)\n",
			query.hash, query.height, rerr.ErrorCode)
		return rerr
	}
	return err
}

// showForkFloor writes the lowest height a competing chain may fork from the
// chain ending at tipHeight.
func showForkFloor(w io.Writer, params *chaincfg.Params,
	validator *blockchain.CheckpointValidator, tipHeight uint32) {

	var lastHeight uint32
	if latest := validator.LatestCheckpoint(); latest != nil {
		lastHeight = latest.Height
	}
	floor := blockchain.MaxAcceptableReorgHeight(tipHeight, lastHeight,
		params.MaxReorganizationDepth)
	fmt.Fprintf(w, "Tip %d: competing chains must fork at or after "+
		"height %d\n", tipHeight, floor)
}

// lookupSeeds resolves the DNS seeds of the network with lookupFn, falling back
// to the fixed seeds when DNS yields nothing, and writes the peer addresses
// found to w.  It returns the number of addresses written.
func lookupSeeds(w io.Writer, params *chaincfg.Params,
	lookupFn connmgr.LookupFunc) int {

	var mtx sync.Mutex
	var found []*wire.NetAddress
	onSeed := func(addrs []*wire.NetAddress) {
		mtx.Lock()
		found = append(found, addrs...)
		mtx.Unlock()
	}

	<-connmgr.SeedFromDNS(params, wire.SFNodeNetwork, lookupFn, onSeed)
	if len(found) == 0 {
		connmgr.SeedFromFixed(params, onSeed)
	}

	for _, addr := range found {
		fmt.Fprintf(w, "Seed peer:            %s\n",
			net.JoinHostPort(addr.IP.String(), fmt.Sprint(addr.Port)))
	}
	return len(found)
}

// axelparamsMain is the real main function for axelparams.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func axelparamsMain() error {
	// Load configuration and parse command line.
	cfg, _, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		fmt.Printf("%s version %s\n", appName, version.String())
		return nil
	}

	err = log.InitLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	defer log.LogRotator.Close()

	// The network must be selected before anything reads its parameters.
	chaincfg.SelectParams(cfg.network)
	params := chaincfg.ActiveParams()

	validator, err := blockchain.New(&blockchain.Config{
		DisableCheckpoints: cfg.NoCheckpoints,
	})
	if err != nil {
		log.AxpmLog.Errorf("Unable to create checkpoint validator: %v", err)
		return err
	}
	if cfg.NoCheckpoints {
		log.AxpmLog.Warnf("Checkpoints are disabled")
	}

	printParams(os.Stdout, params, validator, time.Now())

	if cfg.checkBlock != nil {
		if err := checkBlock(os.Stdout, validator, cfg.checkBlock); err != nil {
			log.AxpmLog.Warnf("Block check failed: %v", err)
			return err
		}
	}
	if cfg.tipHeight != nil {
		showForkFloor(os.Stdout, params, validator, *cfg.tipHeight)
	}
	if cfg.LookupSeeds {
		if lookupSeeds(os.Stdout, params, net.LookupIP) == 0 {
			log.AxpmLog.Warnf("No seed peers found for network %s",
				params.Name)
		}
	}

	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := axelparamsMain(); err != nil {
		os.Exit(1)
	}
}
