// Package deploy provides BookIt contract suite deployment routine.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for BookIt deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to
	// the blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by
	// its address. GetContractStateByHash returns an error with 'Unknown
	// contract' substring if the requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// CommonDeployPrm groups common deployment parameters of a smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// AccountContractPrm groups deployment parameters of the BookIt Account contract.
type AccountContractPrm struct {
	Common CommonDeployPrm

	// Config is an optional list of key-value configuration pairs passed to
	// the contract on deployment.
	Config []any
}

// EventContractPrm groups deployment parameters of the BookIt Event contract.
type EventContractPrm struct {
	Common CommonDeployPrm
}

// ReviewContractPrm groups deployment parameters of the BookIt Review contract.
type ReviewContractPrm struct {
	Common CommonDeployPrm
}

// ReputationContractPrm groups deployment parameters of the BookIt Reputation contract.
type ReputationContractPrm struct {
	Common CommonDeployPrm
}

// Prm groups all parameters of the BookIt contract suite deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	LocalAccount *wallet.Account

	AccountContract    AccountContractPrm
	EventContract      EventContractPrm
	ReviewContract     ReviewContractPrm
	ReputationContract ReputationContractPrm
}

// Addresses carries the addresses of the deployed contract suite.
type Addresses struct {
	Account    util.Uint160
	Event      util.Uint160
	Review     util.Uint160
	Reputation util.Uint160
}

// Deploy deploys the BookIt contract suite to the given Prm.Blockchain.
//
// The contracts reference each other, so their addresses are pre-calculated
// from the deployer account and contract checksums and passed to the sibling
// contracts on deployment. Contracts that are already on the chain are
// skipped, which makes Deploy safe to re-run after a partial failure.
func Deploy(ctx context.Context, prm Prm) (Addresses, error) {
	switch {
	case prm.Logger == nil:
		return Addresses{}, errors.New("missing logger")
	case prm.Blockchain == nil:
		return Addresses{}, errors.New("missing blockchain client")
	case prm.LocalAccount == nil:
		return Addresses{}, errors.New("missing local account")
	}

	deployer := prm.LocalAccount.ScriptHash()

	addrs := Addresses{
		Account:    contractAddress(deployer, prm.AccountContract.Common),
		Event:      contractAddress(deployer, prm.EventContract.Common),
		Review:     contractAddress(deployer, prm.ReviewContract.Common),
		Reputation: contractAddress(deployer, prm.ReputationContract.Common),
	}

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return Addresses{}, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	syncPrm := syncContractPrm{
		logger:     prm.Logger,
		blockchain: prm.Blockchain,
		management: management.New(act),
		actor:      act,
	}

	for _, c := range []struct {
		name       string
		common     CommonDeployPrm
		address    util.Uint160
		deployArgs []any
	}{
		{"Account", prm.AccountContract.Common, addrs.Account,
			append([]any{}, prm.AccountContract.Config...)},
		{"Event", prm.EventContract.Common, addrs.Event,
			[]any{addrs.Account, addrs.Reputation}},
		{"Review", prm.ReviewContract.Common, addrs.Review,
			[]any{addrs.Event, addrs.Reputation}},
		{"Reputation", prm.ReputationContract.Common, addrs.Reputation,
			[]any{addrs.Account, addrs.Event, addrs.Review}},
	} {
		prm.Logger.Info("synchronizing contract with the chain...", zap.String("contract", c.name))

		err = syncContract(ctx, syncPrm, c.common, c.address, c.deployArgs)
		if err != nil {
			return Addresses{}, fmt.Errorf("sync %s contract with the chain: %w", c.name, err)
		}

		prm.Logger.Info("contract successfully synchronized",
			zap.String("contract", c.name), zap.Stringer("address", c.address))
	}

	return addrs, nil
}

type syncContractPrm struct {
	logger     *zap.Logger
	blockchain Blockchain
	management *management.Contract
	actor      *actor.Actor
}

// syncContract deploys the contract unless it is already on the chain.
func syncContract(ctx context.Context, prm syncContractPrm, common CommonDeployPrm,
	address util.Uint160, deployArgs []any) error {
	stateOnChain, err := prm.blockchain.GetContractStateByHash(address)
	if err == nil {
		prm.logger.Info("contract is already on the chain, skip deployment",
			zap.String("name", stateOnChain.Manifest.Name))
		return nil
	}
	if !isErrContractNotFound(err) {
		return fmt.Errorf("read on-chain state of the contract: %w", err)
	}

	txID, vub, err := prm.management.Deploy(&common.NEF, &common.Manifest, deployArgs)
	if err != nil {
		return fmt.Errorf("send deployment transaction: %w", err)
	}

	prm.logger.Info("deployment transaction sent, waiting for persist...",
		zap.Stringer("tx", txID), zap.Uint32("vub", vub))

	aer, err := prm.actor.Wait(txID, vub, nil)
	if err != nil {
		return fmt.Errorf("wait for deployment transaction: %w", err)
	}
	if aer.VMState != vmstate.Halt {
		return fmt.Errorf("deployment transaction faulted: %s", aer.FaultException)
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("wait for contract synchronization: %w", ctx.Err())
	default:
	}

	return nil
}

func contractAddress(deployer util.Uint160, common CommonDeployPrm) util.Uint160 {
	return state.CreateContractHash(deployer, common.NEF.Checksum, common.Manifest.Name)
}

func isErrContractNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Unknown contract")
}
