package dagconfig

import (
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
)

const (
	defaultGHOSTDAGK model.KType = 18
	devGHOSTDAGK     model.KType = 3
)

// Params defines a ledger network by its parameters
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// K defines the K parameter for GHOSTDAG consensus algorithm.
	// See ghostdag.go for further details.
	K model.KType

	// GenesisBlock defines the first block of the DAG.
	GenesisBlock *externalapi.Block
}

// GenesisID returns the id of the network's genesis block
func (p *Params) GenesisID() string {
	return p.GenesisBlock.ID
}

// MainnetParams defines the network parameters for the main network.
var MainnetParams = Params{
	Name:         "ghostledger-mainnet",
	K:            defaultGHOSTDAGK,
	GenesisBlock: &genesisBlock,
}

// TestnetParams defines the network parameters for the test network.
var TestnetParams = Params{
	Name:         "ghostledger-testnet",
	K:            defaultGHOSTDAGK,
	GenesisBlock: &testnetGenesisBlock,
}

// SimnetParams defines the network parameters for the simulation network.
// It uses a small K so that red blocks show up in small DAGs.
var SimnetParams = Params{
	Name:         "ghostledger-simnet",
	K:            devGHOSTDAGK,
	GenesisBlock: &simnetGenesisBlock,
}

// DevnetParams defines the network parameters for the development network.
// Its K may be overridden from the command line.
var DevnetParams = Params{
	Name:         "ghostledger-devnet",
	K:            devGHOSTDAGK,
	GenesisBlock: &devnetGenesisBlock,
}
