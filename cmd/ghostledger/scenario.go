package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostledger/domain/consensus/ruleerrors"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type scenario struct {
	Accounts []*scenarioAccount `json:"accounts" yaml:"accounts"`
	Blocks   []*scenarioBlock   `json:"blocks" yaml:"blocks"`
}

type scenarioAccount struct {
	ID      string `json:"id" yaml:"id"`
	Balance uint64 `json:"balance" yaml:"balance"`
}

type scenarioBlock struct {
	ID           string                 `json:"id" yaml:"id"`
	Parents      []string               `json:"parents" yaml:"parents"`
	Transactions []*scenarioTransaction `json:"transactions" yaml:"transactions"`
	WeightHint   uint64                 `json:"weightHint" yaml:"weightHint"`
	Timestamp    int64                  `json:"timestamp" yaml:"timestamp"`
}

type scenarioTransaction struct {
	ID     string `json:"id" yaml:"id"`
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Amount uint64 `json:"amount" yaml:"amount"`
	Nonce  uint64 `json:"nonce" yaml:"nonce"`
}

// readScenario reads a JSON scenario, or a YAML one when the file extension
// is .yaml or .yml
func readScenario(path string) (*scenario, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	s := &scenario{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(file)
		decoder.KnownFields(true)
		err = decoder.Decode(s)
	default:
		decoder := json.NewDecoder(file)
		decoder.DisallowUnknownFields()
		err = decoder.Decode(s)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse scenario file %s", path)
	}
	return s, nil
}

func (sb *scenarioBlock) toDomainBlock() *externalapi.Block {
	transactions := make([]*externalapi.Transaction, len(sb.Transactions))
	for i, tx := range sb.Transactions {
		transactions[i] = &externalapi.Transaction{
			ID:     tx.ID,
			From:   tx.From,
			To:     tx.To,
			Amount: tx.Amount,
			Nonce:  tx.Nonce,
		}
	}
	return &externalapi.Block{
		ID:           sb.ID,
		Parents:      sb.Parents,
		Transactions: transactions,
		WeightHint:   sb.WeightHint,
		Timestamp:    sb.Timestamp,
	}
}

// importScenario adds the scenario's accounts and inserts its blocks in
// file order. Accounts and blocks the ledger already has are skipped, so a
// scenario may be imported again into the same data directory.
func importScenario(ledger externalapi.Consensus, s *scenario) error {
	for _, account := range s.Accounts {
		err := ledger.AddAccount(account.ID, account.Balance)
		if err != nil {
			if errors.Is(err, ruleerrors.ErrAccountExists) {
				log.Debugf("Account %s already exists", account.ID)
				continue
			}
			return err
		}
	}

	inserted := 0
	for _, block := range s.Blocks {
		blockInfo, err := ledger.GetBlockInfo(block.ID)
		if err != nil {
			return err
		}
		if blockInfo.Exists {
			log.Debugf("Block %s already exists", block.ID)
			continue
		}

		result, err := ledger.InsertBlock(block.toDomainBlock())
		if err != nil {
			return errors.Wrapf(err, "failed to insert block %s", block.ID)
		}
		inserted++
		for _, change := range result.ColorChanges {
			if change.BlockID == block.ID {
				continue
			}
			log.Debugf("Block %s changed from %s to %s", change.BlockID, change.Previous, change.Current)
		}
	}
	log.Infof("Imported %d blocks and %d accounts", inserted, len(s.Accounts))
	return nil
}

// allBlockIDs returns every block reachable from genesis through child
// links, sorted.
func allBlockIDs(ledger externalapi.Consensus, genesisID string) ([]string, error) {
	visited := map[string]struct{}{genesisID: {}}
	queue := []string{genesisID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		children, err := ledger.ChildrenOf(current)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			if _, ok := visited[child]; ok {
				continue
			}
			visited[child] = struct{}{}
			queue = append(queue, child)
		}
	}

	blockIDs := make([]string, 0, len(visited))
	for blockID := range visited {
		blockIDs = append(blockIDs, blockID)
	}
	sort.Strings(blockIDs)
	return blockIDs, nil
}

func printReport(out io.Writer, ledger externalapi.Consensus, genesisID string,
	resolution *externalapi.ExecutionResolution) error {

	orderedBlueBlocks, err := ledger.GetOrderedBlueBlocks()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Ordered blue blocks:")
	for _, blockID := range orderedBlueBlocks {
		fmt.Fprintf(out, "  %s\n", blockID)
	}

	blockIDs, err := allBlockIDs(ledger, genesisID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Colors:")
	for _, blockID := range blockIDs {
		blockInfo, err := ledger.GetBlockInfo(blockID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %s %s weight %d\n", blockID, blockInfo.Color, blockInfo.Weight)
	}

	fmt.Fprintln(out, "Failed transactions:")
	for _, result := range resolution.Executed {
		for _, failure := range result.Failures {
			fmt.Fprintf(out, "  %s in %s: %s\n", failure.TransactionID, result.BlockID, failure.Err)
		}
	}

	accounts, err := ledger.Accounts()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Accounts:")
	for _, account := range accounts {
		fmt.Fprintf(out, "  %s\n", account)
	}

	blueOrderHash, err := ledger.BlueOrderHash()
	if err != nil {
		return err
	}
	stateCommitment, err := ledger.StateCommitment()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Blue order hash: %s\n", blueOrderHash)
	fmt.Fprintf(out, "State commitment: %s\n", stateCommitment)
	return nil
}
