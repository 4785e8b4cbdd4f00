package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/ghostledger/domain/consensus/model"
	"github.com/kaspanet/ghostledger/domain/dagconfig"
	"github.com/pkg/errors"
)

// NetworkFlags holds the network configuration, that is which network is selected.
type NetworkFlags struct {
	Testnet               bool   `long:"testnet" description:"Use the test network"`
	Simnet                bool   `long:"simnet" description:"Use the simulation test network"`
	Devnet                bool   `long:"devnet" description:"Use the development test network"`
	K                     *uint8 `long:"k" description:"Overrides the GHOSTDAG K parameter (allowed only on devnet)"`
	OverrideDAGParamsFile string `long:"override-dag-params-file" description:"Overrides DAG params from a JSON file (allowed only on devnet)"`

	ActiveNetParams *dagconfig.Params
}

type overrideDAGParamsConfig struct {
	K *model.KType `json:"k"`
}

// ResolveNetwork parses the network command line argument and sets NetParams accordingly.
// It returns error if more than one network was selected, nil otherwise.
// The selected params are a copy, so overrides never leak into the presets.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	params := dagconfig.MainnetParams
	numNets := 0
	if networkFlags.Testnet {
		numNets++
		params = dagconfig.TestnetParams
	}
	if networkFlags.Simnet {
		numNets++
		params = dagconfig.SimnetParams
	}
	if networkFlags.Devnet {
		numNets++
		params = dagconfig.DevnetParams
	}
	if numNets > 1 {
		message := "Multiple networks parameters (testnet, simnet, devnet) cannot be used " +
			"together. Please choose only one network"
		err := errors.Errorf(message)
		if parser != nil {
			fmt.Fprintln(os.Stderr, err)
			parser.WriteHelp(os.Stderr)
		}
		return err
	}
	networkFlags.ActiveNetParams = &params

	return networkFlags.overrideDAGParams()
}

// NetParams returns the ActiveNetParams
func (networkFlags *NetworkFlags) NetParams() *dagconfig.Params {
	return networkFlags.ActiveNetParams
}

func (networkFlags *NetworkFlags) overrideDAGParams() error {
	if networkFlags.OverrideDAGParamsFile == "" && networkFlags.K == nil {
		return nil
	}

	if !networkFlags.Devnet {
		return errors.Errorf("k and override-dag-params-file are allowed only when using devnet")
	}

	if networkFlags.OverrideDAGParamsFile != "" {
		overrideDAGParamsFile, err := os.Open(networkFlags.OverrideDAGParamsFile)
		if err != nil {
			return errors.WithStack(err)
		}
		defer overrideDAGParamsFile.Close()

		decoder := json.NewDecoder(overrideDAGParamsFile)
		decoder.DisallowUnknownFields()
		config := &overrideDAGParamsConfig{}
		err = decoder.Decode(config)
		if err != nil {
			return errors.Wrapf(err, "failed to parse %s", networkFlags.OverrideDAGParamsFile)
		}

		if config.K != nil {
			networkFlags.ActiveNetParams.K = *config.K
		}
	}

	// The command line takes precedence over the file
	if networkFlags.K != nil {
		networkFlags.ActiveNetParams.K = model.KType(*networkFlags.K)
	}

	return nil
}
