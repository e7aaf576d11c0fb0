// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2019 The AXEL developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/axel-network/axeld/chaincfg"
	"github.com/axel-network/axeld/internal/log"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultLogFilename = "axelparams.log"
	defaultLogLevel    = "info"
)

var (
	axeldHomeDir  = btcutil.AppDataDir("axeld", false)
	defaultLogDir = filepath.Join(axeldHomeDir, "logs")
)

// blockQuery is a block height and hash combination to check against the
// checkpoints of the selected network.
type blockQuery struct {
	height uint32
	hash   *chainhash.Hash
}

// config defines the configuration options for axelparams.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion   bool   `short:"V" long:"version" description:"Display version information and exit"`
	LogDir        string `long:"logdir" description:"Directory to log output"`
	DebugLevel    string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	TestNet       bool   `long:"testnet" description:"Use the test network"`
	RegTest       bool   `long:"regtest" description:"Use the regression test network"`
	UnitTest      bool   `long:"unittest" description:"Use the unit test network"`
	NoCheckpoints bool   `long:"nocheckpoints" description:"Disable built-in checkpoints.  Don't do this unless you know what you're doing."`
	Checkpoint    string `long:"checkpoint" description:"Check a block against the network checkpoints, given as <height>:<hash>"`
	Tip           string `long:"tip" description:"Show the lowest height a competing chain may fork from the chain ending at this height"`
	LookupSeeds   bool   `long:"lookupseeds" description:"Resolve the DNS seeds of the network and show the peer addresses they return"`

	network    chaincfg.NetworkID
	checkBlock *blockQuery
	tipHeight  *uint32
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(axeldHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace", "debug", "info", "warn", "error", "critical":
		return true
	}
	return false
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		// Validate debug log level.
		if !validLogLevel(debugLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, debugLevel)
		}

		// Change the logging level for all subsystems.
		log.SetLogLevels(debugLevel)
		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		subsysID, logLevel, found := strings.Cut(logLevelPair, "=")
		if !found {
			str := "the specified debug level contains an invalid " +
				"subsystem/level pair [%v]"
			return fmt.Errorf(str, logLevelPair)
		}

		// Validate subsystem.
		if _, exists := log.SubsystemLoggers[subsysID]; !exists {
			str := "the specified subsystem [%v] is invalid -- " +
				"supported subsytems %v"
			return fmt.Errorf(str, subsysID, log.SupportedSubsystems())
		}

		// Validate log level.
		if !validLogLevel(logLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, logLevel)
		}

		log.SetLogLevel(subsysID, logLevel)
	}

	return nil
}

// parseHeight parses a block height given on the command line.
func parseHeight(s string) (uint32, error) {
	height, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid block height %q", s)
	}
	return uint32(height), nil
}

// parseBlockQuery parses a block given as <height>:<hash>.
func parseBlockQuery(s string) (*blockQuery, error) {
	heightStr, hashStr, found := strings.Cut(s, ":")
	if !found {
		return nil, fmt.Errorf("block %q is not of the form "+
			"<height>:<hash>", s)
	}
	height, err := parseHeight(heightStr)
	if err != nil {
		return nil, err
	}
	hash, err := chainhash.NewHashFromStr(hashStr)
	if err != nil {
		return nil, fmt.Errorf("invalid block hash %q: %v", hashStr, err)
	}
	return &blockQuery{height: height, hash: hash}, nil
}

// loadConfig initializes and parses the config using the passed command line
// arguments.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Override with the passed command line options
//  3. Resolve the single network to use and the queries to run
func loadConfig(args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
		network:    chaincfg.MainNetID,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		return &cfg, remainingArgs, nil
	}

	funcName := "loadConfig"
	configError := func(err error) (*config, []string, error) {
		err = fmt.Errorf("%s: %w", funcName, err)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Multiple networks can't be selected simultaneously.  Count number of
	// network flags passed and assign the network while we're at it.
	numNets := 0
	if cfg.TestNet {
		numNets++
		cfg.network = chaincfg.TestNetID
	}
	if cfg.RegTest {
		numNets++
		cfg.network = chaincfg.RegTestID
	}
	if cfg.UnitTest {
		numNets++
		cfg.network = chaincfg.UnitTestID
	}
	if numNets > 1 {
		return configError(fmt.Errorf("the testnet, regtest, and " +
			"unittest params can't be used together -- choose one " +
			"of the three"))
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", log.SupportedSubsystems())
		os.Exit(0)
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return configError(err)
	}

	// Namespace the log directory per network.
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
	cfg.LogDir = filepath.Join(cfg.LogDir, cfg.network.String())

	if cfg.Checkpoint != "" {
		cfg.checkBlock, err = parseBlockQuery(cfg.Checkpoint)
		if err != nil {
			return configError(err)
		}
	}
	if cfg.Tip != "" {
		height, err := parseHeight(cfg.Tip)
		if err != nil {
			return configError(err)
		}
		cfg.tipHeight = &height
	}

	return &cfg, remainingArgs, nil
}
