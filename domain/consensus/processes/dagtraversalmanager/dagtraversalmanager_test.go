package dagtraversalmanager_test

import (
	"reflect"
	"testing"

	"github.com/kaspanet/ghostledger/domain/consensus"
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/testapi"
	"github.com/kaspanet/ghostledger/domain/consensus/utils/testutils"
)

// createTestDAG builds:
//   genesis <- A <- C
//   genesis <- B
//   A, B <- D
func createTestDAG(t *testing.T, tc testapi.TestConsensus) {
	for _, block := range []struct {
		id      string
		parents []string
	}{
		{"A", []string{"genesis"}},
		{"B", []string{"genesis"}},
		{"C", []string{"A"}},
		{"D", []string{"A", "B"}},
	} {
		_, err := tc.AddBlock(block.id, block.parents...)
		if err != nil {
			t.Fatalf("AddBlock %s: %+v", block.id, err)
		}
	}
}

func TestAnticone(t *testing.T) {
	testutils.ForAllNets(t, func(t *testing.T, consensusConfig *consensus.Config) {
		factory := consensus.NewFactory()
		tc, tearDown, err := factory.NewTestConsensus(consensusConfig, "TestAnticone")
		if err != nil {
			t.Fatalf("Failed creating a NewTestConsensus: %s", err)
		}
		defer tearDown(false)
		createTestDAG(t, tc)

		stagingArea := model.NewStagingArea()
		tests := []struct {
			blockID  string
			expected []string
		}{
			{"genesis", []string{}},
			{"A", []string{"B"}},
			{"B", []string{"A", "C"}},
			{"C", []string{"B", "D"}},
			{"D", []string{"C"}},
		}
		for _, test := range tests {
			anticone, err := tc.DAGTraversalManager().Anticone(stagingArea, test.blockID)
			if err != nil {
				t.Fatalf("Anticone %s: %+v", test.blockID, err)
			}
			if len(anticone) == 0 && len(test.expected) == 0 {
				continue
			}
			if !reflect.DeepEqual(anticone, test.expected) {
				t.Fatalf("Expected the anticone of %s to be %v but got %v", test.blockID, test.expected, anticone)
			}
		}

		_, err = tc.DAGTraversalManager().Anticone(stagingArea, "unknown")
		if err == nil {
			t.Fatalf("Expected an error for the anticone of an unknown block")
		}
	})
}

func TestSelectedParentChain(t *testing.T) {
	testutils.ForAllNets(t, func(t *testing.T, consensusConfig *consensus.Config) {
		factory := consensus.NewFactory()
		tc, tearDown, err := factory.NewTestConsensus(consensusConfig, "TestSelectedParentChain")
		if err != nil {
			t.Fatalf("Failed creating a NewTestConsensus: %s", err)
		}
		defer tearDown(false)
		createTestDAG(t, tc)

		chain, err := tc.DAGTraversalManager().SelectedParentChain(model.NewStagingArea(), "D")
		if err != nil {
			t.Fatalf("SelectedParentChain: %+v", err)
		}
		expected := []string{"D", "A", "genesis"}
		if !reflect.DeepEqual(chain, expected) {
			t.Fatalf("Expected selected parent chain %v but got %v", expected, chain)
		}
	})
}
