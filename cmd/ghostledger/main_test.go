package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/kaspanet/ghostledger/infrastructure/config"
)

const testScenario = `{
	"accounts": [
		{"id": "alice", "balance": 100},
		{"id": "bob", "balance": 0},
		{"id": "carol", "balance": 0}
	],
	"blocks": [
		{"id": "B1", "parents": ["genesis"], "transactions": [
			{"id": "t1", "from": "alice", "to": "bob", "amount": 30, "nonce": 0},
			{"id": "t2", "from": "bob", "to": "alice", "amount": 100, "nonce": 0}
		]},
		{"id": "B2", "parents": ["genesis"], "transactions": [
			{"id": "t3", "from": "alice", "to": "carol", "amount": 10, "nonce": 0}
		]}
	]
}`

func writeTestScenario(t *testing.T, dir string) string {
	scenarioFile := filepath.Join(dir, "scenario.json")
	err := ioutil.WriteFile(scenarioFile, []byte(testScenario), 0644)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return scenarioFile
}

func runWithArgs(t *testing.T, dir string, args ...string) string {
	args = append([]string{"--configfile", filepath.Join(dir, "missing.conf"), "--devnet", "--k", "0"}, args...)
	cfg, _, err := config.LoadConfig(args)
	if err != nil {
		t.Fatalf("LoadConfig: %+v", err)
	}
	out := &bytes.Buffer{}
	err = run(cfg, out)
	if err != nil {
		t.Fatalf("run: %+v", err)
	}
	return out.String()
}

func TestRunScenarioInMemory(t *testing.T) {
	dir, err := ioutil.TempDir("", "TestRunScenarioInMemory")
	if err != nil {
		t.Fatalf("TempDir: %v", err)
	}
	defer os.RemoveAll(dir)

	report := runWithArgs(t, dir, "--inmemory", "--scenario", writeTestScenario(t, dir))

	expectedLines := []string{
		"Ordered blue blocks:\n  genesis\n  B1\nColors:",
		"  B1 Blue weight 1\n",
		"  B2 Red weight 1\n",
		"  genesis Blue weight 0\n",
		"  t2 in B1: ",
		"  alice(balance: 70, nonce: 1)\n",
		"  bob(balance: 30, nonce: 0)\n",
		"  carol(balance: 0, nonce: 0)\n",
		"Blue order hash: ",
		"State commitment: ",
	}
	for _, expected := range expectedLines {
		if !strings.Contains(report, expected) {
			t.Fatalf("report does not contain %q:\n%s", expected, report)
		}
	}
	if strings.Contains(report, "t3") {
		t.Fatalf("a transaction of a red block was reported:\n%s", report)
	}
}

func TestRunScenarioTwiceOnDisk(t *testing.T) {
	dir, err := ioutil.TempDir("", "TestRunScenarioTwiceOnDisk")
	if err != nil {
		t.Fatalf("TempDir: %v", err)
	}
	defer os.RemoveAll(dir)

	scenarioFile := writeTestScenario(t, dir)
	firstReport := runWithArgs(t, dir, "--datadir", dir, "--scenario", scenarioFile)
	secondReport := runWithArgs(t, dir, "--datadir", dir, "--scenario", scenarioFile)

	// Failures are only reported by the run that executed the block
	stripFailures := func(report string) string {
		var lines []string
		for _, line := range strings.Split(report, "\n") {
			if strings.HasPrefix(line, "  t2 in") {
				continue
			}
			lines = append(lines, line)
		}
		return strings.Join(lines, "\n")
	}
	if stripFailures(firstReport) != stripFailures(secondReport) {
		t.Fatalf("reopening the data directory changed the report: %s", spew.Sdump(firstReport, secondReport))
	}

	doesVersionFileExist, err := checkDatabaseVersion(filepath.Join(dir, "ghostledger-devnet", databaseDirname))
	if err != nil {
		t.Fatalf("checkDatabaseVersion: %+v", err)
	}
	if !doesVersionFileExist {
		t.Fatalf("the database version file was not created")
	}
}

func TestDatabaseVersionMismatch(t *testing.T) {
	dir, err := ioutil.TempDir("", "TestDatabaseVersionMismatch")
	if err != nil {
		t.Fatalf("TempDir: %v", err)
	}
	defer os.RemoveAll(dir)

	err = ioutil.WriteFile(versionFilePath(dir), []byte("2"), 0600)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err = checkDatabaseVersion(dir)
	if err == nil {
		t.Fatalf("expected an error for an unknown database version")
	}
}

func TestReadYAMLScenario(t *testing.T) {
	dir, err := ioutil.TempDir("", "TestReadYAMLScenario")
	if err != nil {
		t.Fatalf("TempDir: %v", err)
	}
	defer os.RemoveAll(dir)

	scenarioFile := filepath.Join(dir, "scenario.yaml")
	yamlScenario := `accounts:
  - id: alice
    balance: 100
blocks:
  - id: B1
    parents: [genesis]
    transactions:
      - {id: t1, from: alice, to: alice, amount: 5, nonce: 0}
`
	err = ioutil.WriteFile(scenarioFile, []byte(yamlScenario), 0644)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s, err := readScenario(scenarioFile)
	if err != nil {
		t.Fatalf("readScenario: %+v", err)
	}
	if len(s.Accounts) != 1 || s.Accounts[0].ID != "alice" || s.Accounts[0].Balance != 100 {
		t.Fatalf("unexpected accounts: %s", spew.Sdump(s.Accounts))
	}
	if len(s.Blocks) != 1 || len(s.Blocks[0].Transactions) != 1 || s.Blocks[0].Transactions[0].Amount != 5 {
		t.Fatalf("unexpected blocks: %s", spew.Sdump(s.Blocks))
	}
	block := s.Blocks[0].toDomainBlock()
	if block.ID != "B1" || len(block.Parents) != 1 || block.Parents[0] != "genesis" {
		t.Fatalf("unexpected domain block: %s", spew.Sdump(block))
	}
}

func TestMalformedScenario(t *testing.T) {
	dir, err := ioutil.TempDir("", "TestMalformedScenario")
	if err != nil {
		t.Fatalf("TempDir: %v", err)
	}
	defer os.RemoveAll(dir)

	scenarioFile := filepath.Join(dir, "scenario.json")
	err = ioutil.WriteFile(scenarioFile, []byte(`{"blocks": [{"id": "B1", "color": "blue"}]}`), 0644)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err = readScenario(scenarioFile)
	if err == nil {
		t.Fatalf("expected an error for an unknown field")
	}
}
