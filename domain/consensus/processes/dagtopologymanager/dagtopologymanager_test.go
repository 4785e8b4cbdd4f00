package dagtopologymanager_test

import (
	"reflect"
	"testing"

	"github.com/kaspanet/ghostledger/domain/consensus"
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/consensus/utils/testutils"
)

func TestDAGTopology(t *testing.T) {
	factory := consensus.NewFactory()
	tc, tearDown, err := factory.NewTestConsensus(testutils.ConfigWithK(1), "TestDAGTopology")
	if err != nil {
		t.Fatalf("Failed creating a NewTestConsensus: %s", err)
	}
	defer tearDown(false)

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

	stagingArea := model.NewStagingArea()
	dagTopologyManager := tc.DAGTopologyManager()

	relations := []struct {
		a, b         string
		isAncestorOf bool
	}{
		{"genesis", "D", true},
		{"B", "D", true},
		{"A", "C", true},
		{"C", "D", false},
		{"D", "D", false},
		{"D", "A", false},
	}
	for _, relation := range relations {
		isAncestorOf, err := dagTopologyManager.IsAncestorOf(stagingArea, relation.a, relation.b)
		if err != nil {
			t.Fatalf("IsAncestorOf: %+v", err)
		}
		if isAncestorOf != relation.isAncestorOf {
			t.Errorf("IsAncestorOf(%s, %s): expected %t", relation.a, relation.b, relation.isAncestorOf)
		}
	}

	ancestors, err := dagTopologyManager.Ancestors(stagingArea, "D")
	if err != nil {
		t.Fatalf("Ancestors: %+v", err)
	}
	if expected := []string{"A", "B", "genesis"}; !reflect.DeepEqual(ancestors, expected) {
		t.Fatalf("Expected ancestors %v but got %v", expected, ancestors)
	}

	descendants, err := dagTopologyManager.Descendants(stagingArea, "A")
	if err != nil {
		t.Fatalf("Descendants: %+v", err)
	}
	if expected := []string{"C", "D"}; !reflect.DeepEqual(descendants, expected) {
		t.Fatalf("Expected descendants %v but got %v", expected, descendants)
	}

	tips, err := dagTopologyManager.Tips(stagingArea)
	if err != nil {
		t.Fatalf("Tips: %+v", err)
	}
	if expected := []string{"C", "D"}; !reflect.DeepEqual(tips, expected) {
		t.Fatalf("Expected tips %v but got %v", expected, tips)
	}
}
