package blueordermanager_test

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/kaspanet/ghostledger/domain/consensus"
	"github.com/kaspanet/ghostledger/domain/consensus/model/externalapi"
	"github.com/kaspanet/ghostledger/domain/consensus/utils/testutils"
)

func TestOrderedBlueBlocks(t *testing.T) {
	factory := consensus.NewFactory()
	tc, teardown, err := factory.NewTestConsensus(testutils.ConfigWithK(3), "TestOrderedBlueBlocks")
	if err != nil {
		t.Fatalf("Error setting up consensus: %+v", err)
	}
	defer teardown(false)

	for _, block := range []struct {
		id      string
		parents []string
	}{
		{"B2", []string{"genesis"}},
		{"B1", []string{"genesis"}},
		{"B3", []string{"B1", "B2"}},
		{"B4", []string{"B3"}},
	} {
		_, err := tc.AddBlock(block.id, block.parents...)
		if err != nil {
			t.Fatalf("AddBlock %s: %+v", block.id, err)
		}
	}

	ordered, err := tc.GetOrderedBlueBlocks()
	if err != nil {
		t.Fatalf("GetOrderedBlueBlocks: %+v", err)
	}
	expected := []string{"genesis", "B1", "B2", "B3", "B4"}
	if !reflect.DeepEqual(ordered, expected) {
		t.Fatalf("Expected order %v but got %v", expected, ordered)
	}
}

func TestRedBlocksAreExcludedFromOrder(t *testing.T) {
	factory := consensus.NewFactory()
	tc, teardown, err := factory.NewTestConsensus(testutils.ConfigWithK(0), "TestRedBlocksAreExcludedFromOrder")
	if err != nil {
		t.Fatalf("Error setting up consensus: %+v", err)
	}
	defer teardown(false)

	result, err := tc.AddBlock("B1", "genesis")
	if err != nil {
		t.Fatalf("AddBlock: %+v", err)
	}
	expectedChanges := []*externalapi.BlockColorChange{
		{BlockID: "B1", Previous: externalapi.BlockColorUnclassified, Current: externalapi.BlockColorBlue},
	}
	if !reflect.DeepEqual(result.ColorChanges, expectedChanges) {
		t.Fatalf("Unexpected color changes: %s", spew.Sdump(result.ColorChanges))
	}

	// B2 ties with B1 on weight and loses on id
	result, err = tc.AddBlock("B2", "genesis")
	if err != nil {
		t.Fatalf("AddBlock: %+v", err)
	}
	expectedChanges = []*externalapi.BlockColorChange{
		{BlockID: "B2", Previous: externalapi.BlockColorUnclassified, Current: externalapi.BlockColorRed},
	}
	if !reflect.DeepEqual(result.ColorChanges, expectedChanges) {
		t.Fatalf("Unexpected color changes: %s", spew.Sdump(result.ColorChanges))
	}

	// Extending B2 makes its chain the heaviest, which flips B1 and B2
	result, err = tc.AddBlock("C1", "B2")
	if err != nil {
		t.Fatalf("AddBlock: %+v", err)
	}
	expectedChanges = []*externalapi.BlockColorChange{
		{BlockID: "B1", Previous: externalapi.BlockColorBlue, Current: externalapi.BlockColorRed},
		{BlockID: "B2", Previous: externalapi.BlockColorRed, Current: externalapi.BlockColorBlue},
		{BlockID: "C1", Previous: externalapi.BlockColorUnclassified, Current: externalapi.BlockColorBlue},
	}
	if !reflect.DeepEqual(result.ColorChanges, expectedChanges) {
		t.Fatalf("Unexpected color changes: %s", spew.Sdump(result.ColorChanges))
	}
	if result.BlockInfo.Color != externalapi.BlockColorBlue {
		t.Fatalf("Expected C1 to be blue but got %s", result.BlockInfo.Color)
	}

	_, err = tc.AddBlock("C2", "C1")
	if err != nil {
		t.Fatalf("AddBlock: %+v", err)
	}

	ordered, err := tc.GetOrderedBlueBlocks()
	if err != nil {
		t.Fatalf("GetOrderedBlueBlocks: %+v", err)
	}
	expected := []string{"genesis", "B2", "C1", "C2"}
	if !reflect.DeepEqual(ordered, expected) {
		t.Fatalf("Expected order %v but got %v", expected, ordered)
	}
}

func TestBlueOrderHash(t *testing.T) {
	buildDAG := func(testName string, order [][]string) *externalapi.DomainHash {
		factory := consensus.NewFactory()
		tc, teardown, err := factory.NewTestConsensus(testutils.ConfigWithK(3), testName)
		if err != nil {
			t.Fatalf("Error setting up consensus: %+v", err)
		}
		defer teardown(false)

		for _, block := range order {
			_, err := tc.AddBlock(block[0], block[1:]...)
			if err != nil {
				t.Fatalf("AddBlock %s: %+v", block[0], err)
			}
		}
		hash, err := tc.BlueOrderHash()
		if err != nil {
			t.Fatalf("BlueOrderHash: %+v", err)
		}
		return hash
	}

	first := buildDAG("TestBlueOrderHash1", [][]string{
		{"B1", "genesis"}, {"B2", "genesis"}, {"B3", "B1", "B2"},
	})
	// Same DAG, different insertion order of the independent blocks
	second := buildDAG("TestBlueOrderHash2", [][]string{
		{"B2", "genesis"}, {"B1", "genesis"}, {"B3", "B2", "B1"},
	})
	if !first.Equal(second) {
		t.Fatalf("Expected equal blue order hashes but got %s and %s", first, second)
	}

	third := buildDAG("TestBlueOrderHash3", [][]string{
		{"B1", "genesis"}, {"B2", "genesis"},
	})
	if first.Equal(third) {
		t.Fatalf("Expected different blue orders to have different hashes")
	}
}
