package dagconfig

import "github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"

const genesisID = "genesis"

// genesisBlock defines the genesis block of the DAG for the main network.
var genesisBlock = externalapi.Block{
	ID:           genesisID,
	Parents:      []string{},
	Transactions: []*externalapi.Transaction{},
	Timestamp:    0x17c5f62fe6b,
}

// testnetGenesisBlock defines the genesis block of the DAG for the test network.
var testnetGenesisBlock = externalapi.Block{
	ID:           genesisID,
	Parents:      []string{},
	Transactions: []*externalapi.Transaction{},
	Timestamp:    0x17c5f62fe6b,
}

// simnetGenesisBlock defines the genesis block of the DAG for the simulation network.
var simnetGenesisBlock = externalapi.Block{
	ID:           genesisID,
	Parents:      []string{},
	Transactions: []*externalapi.Transaction{},
	Timestamp:    0,
}

// devnetGenesisBlock defines the genesis block of the DAG for the development network.
var devnetGenesisBlock = externalapi.Block{
	ID:           genesisID,
	Parents:      []string{},
	Transactions: []*externalapi.Transaction{},
	Timestamp:    0,
}
