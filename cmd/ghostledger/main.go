package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kaspanet/ghostledger/domain/consensus"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostledger/infrastructure/config"
	"github.com/kaspanet/ghostledger/infrastructure/db/database"
	"github.com/kaspanet/ghostledger/infrastructure/db/database/ldb"
	"github.com/kaspanet/ghostledger/infrastructure/logger"
	"github.com/pkg/errors"
)

const (
	leveldbCacheSizeMiB = 256
	databaseDirname     = "db"
)

func main() {
	cfg, _, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		printErrorAndExit(fmt.Sprintf("error parsing command-line arguments: %s", err))
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", logger.SupportedSubsystems())
		os.Exit(0)
	}

	if cfg.InMemory {
		err = logger.InitLogStdout(logger.LevelInfo)
	} else {
		err = logger.InitLog(cfg.LogFile(), cfg.ErrLogFile())
	}
	if err != nil {
		printErrorAndExit(fmt.Sprintf("error initializing the logger: %s", err))
	}
	defer logger.BackendLog.Close()

	err = run(cfg, os.Stdout)
	if err != nil {
		log.Criticalf("%+v", err)
		logger.BackendLog.Close()
		printErrorAndExit(err.Error())
	}
}

// run opens the ledger, imports the scenario file if one is configured,
// brings the execution up to date with the blue order and writes a report
// to out.
func run(cfg *config.Config, out io.Writer) error {
	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	consensusConfig := &consensus.Config{Params: *cfg.NetParams()}
	ledger, err := consensus.NewFactory().NewConsensus(consensusConfig, db)
	if err != nil {
		return err
	}
	log.Infof("Opened the %s ledger with K=%d", cfg.NetParams().Name, cfg.NetParams().K)

	if cfg.ScenarioFile != "" {
		s, err := readScenario(cfg.ScenarioFile)
		if err != nil {
			return err
		}
		err = importScenario(ledger, s)
		if err != nil {
			return err
		}
	}

	resolution, err := ledger.ResolveExecution()
	if err != nil {
		return err
	}
	logResolution(resolution)

	return printReport(out, ledger, cfg.NetParams().GenesisID(), resolution)
}

func openDatabase(cfg *config.Config) (database.Database, error) {
	if cfg.InMemory {
		return ldb.NewInMemoryLevelDB(leveldbCacheSizeMiB)
	}

	databasePath := filepath.Join(cfg.DataDir, databaseDirname)
	err := os.MkdirAll(databasePath, 0700)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create the data directory %s", databasePath)
	}
	doesVersionFileExist, err := checkDatabaseVersion(databasePath)
	if err != nil {
		return nil, err
	}

	db, err := ldb.NewLevelDB(databasePath, leveldbCacheSizeMiB)
	if err != nil {
		return nil, err
	}

	if !doesVersionFileExist {
		err = createDatabaseVersionFile(databasePath)
		if err != nil {
			db.Close()
			return nil, err
		}
	}
	log.Debugf("Opened the database at %s", databasePath)
	return db, nil
}

func logResolution(resolution *externalapi.ExecutionResolution) {
	for _, blockID := range resolution.RevertedBlockIDs {
		log.Infof("Reverted block %s", blockID)
	}
	for _, result := range resolution.Executed {
		log.Infof("Executed block %s: %d applied, %d failed",
			result.BlockID, len(result.AppliedTransactionIDs), len(result.Failures))
		for _, failure := range result.Failures {
			log.Debugf("Transaction %s in block %s failed: %s", failure.TransactionID, result.BlockID, failure.Err)
		}
	}
}

func printErrorAndExit(message string) {
	fmt.Fprintf(os.Stderr, "%s\n", message)
	os.Exit(1)
}
