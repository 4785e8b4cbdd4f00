package consensus

import (
	"io/ioutil"
	"os"
	"sync"

	consensusdatabase "github.com/kaspanet/ghostledger/domain/consensus/database"
	"github.com/kaspanet/ghostledger/domain/consensus/datastructures/accountstore"
	"github.com/kaspanet/ghostledger/domain/consensus/datastructures/blockcolorstore"
	"github.com/kaspanet/ghostledger/domain/consensus/datastructures/blockstore"
	"github.com/kaspanet/ghostledger/domain/consensus/datastructures/executionrecordstore"
	"github.com/kaspanet/ghostledger/domain/consensus/datastructures/ghostdagdatastore"
	"github.com/kaspanet/ghostledger/domain/consensus/datastructures/transactionstatusstore"
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostledger/domain/consensus/model/testapi"
	"github.com/kaspanet/ghostledger/domain/consensus/processes/blueordermanager"
	"github.com/kaspanet/ghostledger/domain/consensus/processes/dagtopologymanager"
	"github.com/kaspanet/ghostledger/domain/consensus/processes/dagtraversalmanager"
	"github.com/kaspanet/ghostledger/domain/consensus/processes/ghostdagmanager"
	"github.com/kaspanet/ghostledger/domain/consensus/processes/rollbackmanager"
	"github.com/kaspanet/ghostledger/domain/consensus/processes/transactionexecutor"
	"github.com/kaspanet/ghostledger/domain/dagconfig"
	"github.com/kaspanet/ghostledger/infrastructure/db/database"
	"github.com/kaspanet/ghostledger/infrastructure/db/database/ldb"
	"github.com/pkg/errors"
)

const (
	defaultTestLeveldbCacheSizeMiB = 8
)

// Config is the set of parameters a Consensus is created with
type Config struct {
	dagconfig.Params
}

// Factory instantiates new Consensuses
type Factory interface {
	NewConsensus(config *Config, db database.Database) (externalapi.Consensus, error)
	NewTestConsensus(config *Config, testName string) (
		tc testapi.TestConsensus, teardown func(keepDataDir bool), err error)

	SetTestDataDir(dataDir string)
}

type factory struct {
	dataDir string
}

// NewFactory creates a new Consensus factory
func NewFactory() Factory {
	return &factory{}
}

// NewConsensus instantiates a new Consensus over db. On an empty database
// the genesis block of config is inserted.
func (f *factory) NewConsensus(config *Config, db database.Database) (externalapi.Consensus, error) {
	return f.newConsensus(config, db)
}

func (f *factory) newConsensus(config *Config, db database.Database) (*consensus, error) {
	dbManager := consensusdatabase.New(db)

	// Data Structures
	blockStore, err := blockstore.New(dbManager)
	if err != nil {
		return nil, err
	}
	ghostdagDataStore, err := ghostdagdatastore.New(dbManager)
	if err != nil {
		return nil, err
	}
	blockColorStore, err := blockcolorstore.New(dbManager)
	if err != nil {
		return nil, err
	}
	accountStore, err := accountstore.New(dbManager)
	if err != nil {
		return nil, err
	}
	executionRecordStore, err := executionrecordstore.New(dbManager)
	if err != nil {
		return nil, err
	}
	transactionStatusStore, err := transactionstatusstore.New(dbManager)
	if err != nil {
		return nil, err
	}

	genesisID := config.GenesisID()

	// Processes
	dagTopologyManager := dagtopologymanager.New(blockStore)
	dagTraversalManager := dagtraversalmanager.New(
		blockStore,
		dagTopologyManager,
		ghostdagDataStore,
		genesisID)
	ghostdagManager := ghostdagmanager.New(
		dagTopologyManager,
		dagTraversalManager,
		ghostdagDataStore,
		config.K,
		genesisID)
	blueOrderManager := blueordermanager.New(
		blockStore,
		dagTopologyManager,
		ghostdagManager,
		ghostdagDataStore,
		blockColorStore,
		genesisID)
	transactionExecutor := transactionexecutor.New(
		blockStore,
		blueOrderManager,
		accountStore,
		executionRecordStore,
		transactionStatusStore)
	rollbackManager := rollbackmanager.New(
		blockStore,
		blueOrderManager,
		transactionExecutor,
		accountStore,
		executionRecordStore,
		transactionStatusStore)

	c := &consensus{
		lock:            &sync.RWMutex{},
		databaseContext: dbManager,
		genesisID:       genesisID,

		blockStore:             blockStore,
		ghostdagDataStore:      ghostdagDataStore,
		blockColorStore:        blockColorStore,
		accountStore:           accountStore,
		executionRecordStore:   executionRecordStore,
		transactionStatusStore: transactionStatusStore,

		dagTopologyManager:  dagTopologyManager,
		dagTraversalManager: dagTraversalManager,
		ghostdagManager:     ghostdagManager,
		blueOrderManager:    blueOrderManager,
		transactionExecutor: transactionExecutor,
		rollbackManager:     rollbackManager,
	}

	err = checkAndStoreK(dbManager, config.K)
	if err != nil {
		return nil, err
	}
	err = c.initGenesis(config.GenesisBlock)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *consensus) initGenesis(genesisBlock *externalapi.Block) error {
	stagingArea := model.NewStagingArea()
	if s.blockStore.Count(stagingArea) > 0 {
		if !s.blockStore.HasBlock(stagingArea, genesisBlock.ID) {
			return errors.Errorf("the database does not contain the genesis block %s", genesisBlock.ID)
		}
		log.Debugf("Loaded %d blocks", s.blockStore.Count(stagingArea))
		return nil
	}

	_, err := s.insertBlock(stagingArea, genesisBlock)
	if err != nil {
		return err
	}
	log.Infof("Inserted genesis block %s", genesisBlock.ID)
	return s.commitAllChanges(stagingArea)
}

// NewTestConsensus instantiates a Consensus over a leveldb in a temporary
// directory, or in the directory set with SetTestDataDir
func (f *factory) NewTestConsensus(config *Config, testName string) (
	tc testapi.TestConsensus, teardown func(keepDataDir bool), err error) {

	dataDir := f.dataDir
	if dataDir == "" {
		dataDir, err = ioutil.TempDir("", testName)
		if err != nil {
			return nil, nil, err
		}
	}

	db, err := ldb.NewLevelDB(dataDir, defaultTestLeveldbCacheSizeMiB)
	if err != nil {
		return nil, nil, err
	}
	consensusAsImplementation, err := f.newConsensus(config, db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	tstConsensus := &testConsensus{
		consensus: consensusAsImplementation,
		dagParams: &config.Params,
		database:  db,
	}

	teardown = func(keepDataDir bool) {
		db.Close()
		if !keepDataDir {
			err := os.RemoveAll(dataDir)
			if err != nil {
				log.Errorf("Error removing data directory for test consensus: %s", err)
			}
		}
	}
	return tstConsensus, teardown, nil
}

// SetTestDataDir makes NewTestConsensus open dataDir instead of a new
// temporary directory
func (f *factory) SetTestDataDir(dataDir string) {
	f.dataDir = dataDir
}
