package ghostdagmanager_test

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/kaspanet/ghostledger/domain/consensus"
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostledger/domain/consensus/model/testapi"
	"github.com/kaspanet/ghostledger/domain/consensus/utils/blockidset"
	"github.com/kaspanet/ghostledger/domain/consensus/utils/testutils"
)

func TestGHOSTDAG(t *testing.T) {
	type testBlock struct {
		id                     string
		parents                []string
		expectedWeight         uint64
		expectedSelectedParent string
		expectedMergeSetBlues  []string
		expectedMergeSetReds   []string
	}

	tests := []struct {
		name           string
		k              model.KType
		blocks         []testBlock
		expectedColors map[string]externalapi.BlockColor
	}{
		{
			name: "chain",
			k:    0,
			blocks: []testBlock{
				{"B1", []string{"genesis"}, 1, "genesis", []string{"genesis"}, []string{}},
				{"B2", []string{"B1"}, 2, "B1", []string{"B1"}, []string{}},
				{"B3", []string{"B2"}, 3, "B2", []string{"B2"}, []string{}},
			},
			expectedColors: map[string]externalapi.BlockColor{
				"genesis": externalapi.BlockColorBlue,
				"B1":      externalapi.BlockColorBlue,
				"B2":      externalapi.BlockColorBlue,
				"B3":      externalapi.BlockColorBlue,
			},
		},
		{
			name: "diamond, k=3",
			k:    3,
			blocks: []testBlock{
				{"B1", []string{"genesis"}, 1, "genesis", []string{"genesis"}, []string{}},
				{"B2", []string{"genesis"}, 1, "genesis", []string{"genesis"}, []string{}},
				{"B3", []string{"B1", "B2"}, 3, "B1", []string{"B1", "B2"}, []string{}},
			},
			expectedColors: map[string]externalapi.BlockColor{
				"genesis": externalapi.BlockColorBlue,
				"B1":      externalapi.BlockColorBlue,
				"B2":      externalapi.BlockColorBlue,
				"B3":      externalapi.BlockColorBlue,
			},
		},
		{
			name: "diamond, k=0",
			k:    0,
			blocks: []testBlock{
				{"B1", []string{"genesis"}, 1, "genesis", []string{"genesis"}, []string{}},
				{"B2", []string{"genesis"}, 1, "genesis", []string{"genesis"}, []string{}},
				{"B3", []string{"B2", "B1"}, 2, "B1", []string{"B1"}, []string{"B2"}},
			},
			expectedColors: map[string]externalapi.BlockColor{
				"genesis": externalapi.BlockColorBlue,
				"B1":      externalapi.BlockColorBlue,
				"B2":      externalapi.BlockColorRed,
				"B3":      externalapi.BlockColorBlue,
			},
		},
		{
			name: "heavier side is selected, k=1",
			k:    1,
			blocks: []testBlock{
				{"A1", []string{"genesis"}, 1, "genesis", []string{"genesis"}, []string{}},
				{"A2", []string{"A1"}, 2, "A1", []string{"A1"}, []string{}},
				{"Z1", []string{"genesis"}, 1, "genesis", []string{"genesis"}, []string{}},
				{"Z2", []string{"Z1"}, 2, "Z1", []string{"Z1"}, []string{}},
				{"Z3", []string{"Z2"}, 3, "Z2", []string{"Z2"}, []string{}},
				// Z3 outweighs A2, and A1 has both Z-blocks of its anticone in
				// the blue set, so A2 and A1 are red with k=1
				{"M", []string{"A2", "Z3"}, 4, "Z3", []string{"Z3"}, []string{"A2", "A1"}},
			},
			expectedColors: map[string]externalapi.BlockColor{
				"genesis": externalapi.BlockColorBlue,
				"A1":      externalapi.BlockColorRed,
				"A2":      externalapi.BlockColorRed,
				"Z1":      externalapi.BlockColorBlue,
				"Z2":      externalapi.BlockColorBlue,
				"Z3":      externalapi.BlockColorBlue,
				"M":       externalapi.BlockColorBlue,
			},
		},
	}

	for _, test := range tests {
		func() {
			factory := consensus.NewFactory()
			tc, teardown, err := factory.NewTestConsensus(testutils.ConfigWithK(test.k), "TestGHOSTDAG")
			if err != nil {
				t.Fatalf("Error setting up consensus: %+v", err)
			}
			defer teardown(false)

			for _, block := range test.blocks {
				_, err := tc.AddBlock(block.id, block.parents...)
				if err != nil {
					t.Fatalf("%s: AddBlock %s: %+v", test.name, block.id, err)
				}

				ghostdagData, err := tc.GHOSTDAGDataStore().Get(model.NewStagingArea(), block.id)
				if err != nil {
					t.Fatalf("%s: GHOSTDAGDataStore().Get: %+v", test.name, err)
				}
				if ghostdagData.Weight() != block.expectedWeight {
					t.Fatalf("%s: block %s: expected weight %d but got %d",
						test.name, block.id, block.expectedWeight, ghostdagData.Weight())
				}
				if ghostdagData.SelectedParent() != block.expectedSelectedParent {
					t.Fatalf("%s: block %s: expected selected parent %s but got %s",
						test.name, block.id, block.expectedSelectedParent, ghostdagData.SelectedParent())
				}
				if !reflect.DeepEqual(ghostdagData.MergeSetBlues(), block.expectedMergeSetBlues) {
					t.Fatalf("%s: block %s: expected merge set blues %v but got %v",
						test.name, block.id, block.expectedMergeSetBlues, ghostdagData.MergeSetBlues())
				}
				if !reflect.DeepEqual(ghostdagData.MergeSetReds(), block.expectedMergeSetReds) {
					t.Fatalf("%s: block %s: expected merge set reds %v but got %v",
						test.name, block.id, block.expectedMergeSetReds, ghostdagData.MergeSetReds())
				}
			}

			for blockID, expectedColor := range test.expectedColors {
				color := tc.BlockColor(blockID)
				if color != expectedColor {
					t.Fatalf("%s: expected block %s to be %s but got %s", test.name, blockID, expectedColor, color)
				}
			}
		}()
	}
}

func TestGenesisGHOSTDAGData(t *testing.T) {
	testutils.ForAllNets(t, func(t *testing.T, consensusConfig *consensus.Config) {
		factory := consensus.NewFactory()
		tc, teardown, err := factory.NewTestConsensus(consensusConfig, "TestGenesisGHOSTDAGData")
		if err != nil {
			t.Fatalf("Error setting up consensus: %+v", err)
		}
		defer teardown(false)

		genesisID := consensusConfig.GenesisID()
		ghostdagData, err := tc.GHOSTDAGDataStore().Get(model.NewStagingArea(), genesisID)
		if err != nil {
			t.Fatalf("GHOSTDAGDataStore().Get: %+v", err)
		}
		if ghostdagData.Weight() != 0 {
			t.Fatalf("Expected genesis weight 0 but got %d", ghostdagData.Weight())
		}
		if ghostdagData.SelectedParent() != genesisID {
			t.Fatalf("Expected genesis to be its own selected parent but got %s", ghostdagData.SelectedParent())
		}
		if len(ghostdagData.MergeSet()) != 0 {
			t.Fatalf("Expected an empty genesis merge set but got %v", ghostdagData.MergeSet())
		}
		if color := tc.BlockColor(genesisID); color != externalapi.BlockColorBlue {
			t.Fatalf("Expected genesis to be blue but got %s", color)
		}
	})
}

// TestBlueAnticoneSize builds random DAGs and checks after every insertion
// that no blue block has more than k blue blocks in its anticone
func TestBlueAnticoneSize(t *testing.T) {
	for _, k := range []model.KType{0, 1, 3} {
		func() {
			factory := consensus.NewFactory()
			tc, teardown, err := factory.NewTestConsensus(testutils.ConfigWithK(k), "TestBlueAnticoneSize")
			if err != nil {
				t.Fatalf("Error setting up consensus: %+v", err)
			}
			defer teardown(false)

			random := rand.New(rand.NewSource(int64(k) + 1))
			blockIDs := []string{tc.DAGParams().GenesisID()}
			for i := 0; i < 30; i++ {
				blockID := randomBlockID(i)
				parents := randomParents(random, blockIDs)
				_, err := tc.AddBlock(blockID, parents...)
				if err != nil {
					t.Fatalf("k=%d: AddBlock %s: %+v", k, blockID, err)
				}
				blockIDs = append(blockIDs, blockID)

				checkBlueAnticoneSizes(t, tc, k)
				checkWeightsIncrease(t, tc, blockID)
			}
		}()
	}
}

func checkBlueAnticoneSizes(t *testing.T, tc testapi.TestConsensus, k model.KType) {
	blues, err := tc.GetOrderedBlueBlocks()
	if err != nil {
		t.Fatalf("GetOrderedBlueBlocks: %+v", err)
	}
	blueSet := blockidset.NewFromSlice(blues...)
	for _, blue := range blues {
		anticone, err := tc.Anticone(blue)
		if err != nil {
			t.Fatalf("Anticone: %+v", err)
		}
		blueAnticoneSize := 0
		for _, blockID := range anticone {
			if blueSet.Contains(blockID) {
				blueAnticoneSize++
			}
		}
		if blueAnticoneSize > int(k) {
			t.Fatalf("k=%d: blue block %s has %d blue blocks in its anticone: %s",
				k, blue, blueAnticoneSize, spew.Sdump(anticone))
		}
	}
}

func checkWeightsIncrease(t *testing.T, tc testapi.TestConsensus, blockID string) {
	blockInfo, err := tc.GetBlockInfo(blockID)
	if err != nil {
		t.Fatalf("GetBlockInfo: %+v", err)
	}
	parents, err := tc.ParentsOf(blockID)
	if err != nil {
		t.Fatalf("ParentsOf: %+v", err)
	}
	for _, parent := range parents {
		parentInfo, err := tc.GetBlockInfo(parent)
		if err != nil {
			t.Fatalf("GetBlockInfo: %+v", err)
		}
		if blockInfo.Weight <= parentInfo.Weight {
			t.Fatalf("Block %s has weight %d which is not above the weight %d of its parent %s",
				blockID, blockInfo.Weight, parentInfo.Weight, parent)
		}
	}
}

func randomBlockID(i int) string {
	return "block-" + string(rune('a'+i/26)) + string(rune('a'+i%26))
}

// randomParents picks one to three distinct parents, preferring recent blocks
func randomParents(random *rand.Rand, blockIDs []string) []string {
	numParents := 1 + random.Intn(3)
	window := 5
	if window > len(blockIDs) {
		window = len(blockIDs)
	}
	parents := blockidset.New()
	for i := 0; i < numParents; i++ {
		parents.Add(blockIDs[len(blockIDs)-1-random.Intn(window)])
	}
	return parents.ToSlice()
}
