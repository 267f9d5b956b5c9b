package deploy

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/grantaudit/grantaudit-contract/contracts"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for deployment of the grant audit contracts.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to the
	// blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by its
	// address. GetContractStateByHash returns error with 'Unknown contract'
	// substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Settings are the parameters of the deployed contracts.
type Settings struct {
	// Auditor Registry.
	InitialLock   time.Duration `yaml:"initial_lock"`
	LockExtension time.Duration `yaml:"lock_extension"`

	// Insurance Fund.
	MaxDirectPayout int64 `yaml:"max_direct_payout"`

	// Audit Bounty Manager.
	ConcernWindow time.Duration `yaml:"concern_window"`
	MaxAuditors   int64         `yaml:"max_auditors"`
	RequiredStake int64         `yaml:"required_stake"`
	SlashAmount   int64         `yaml:"slash_amount"`

	// Dispute Manager.
	DisputeWindow time.Duration `yaml:"dispute_window"`
	PanelSize     int64         `yaml:"panel_size"`
	Threshold     int64         `yaml:"threshold"`
	MinPanelStake int64         `yaml:"min_panel_stake"`

	// Governance Manager.
	VotingPeriod    time.Duration `yaml:"voting_period"`
	Quorum          int64         `yaml:"quorum"`
	MinVoterBalance int64         `yaml:"min_voter_balance"`
}

// Validate checks that settings can be accepted by the contracts.
func (s Settings) Validate() error {
	switch {
	case s.InitialLock < 0 || s.LockExtension < 0:
		return errors.New("negative stake lock")
	case s.MaxDirectPayout < 0:
		return errors.New("negative direct payout limit")
	case s.ConcernWindow <= 0:
		return errors.New("concern window must be positive")
	case s.MaxAuditors <= 0:
		return errors.New("max auditors must be positive")
	case s.RequiredStake < 0 || s.SlashAmount < 0 || s.MinPanelStake < 0:
		return errors.New("negative stake amount")
	case s.DisputeWindow <= 0:
		return errors.New("dispute window must be positive")
	case s.PanelSize <= 0:
		return errors.New("panel size must be positive")
	case s.Threshold <= 0 || s.Threshold > 100:
		return fmt.Errorf("threshold %d is out of (0, 100]", s.Threshold)
	case s.VotingPeriod <= 0:
		return errors.New("voting period must be positive")
	case s.Quorum < 0 || s.MinVoterBalance < 0:
		return errors.New("negative quorum or voter balance")
	}
	return nil
}

// Addresses are script hashes of the deployed contracts.
type Addresses struct {
	Token      util.Uint160
	Registry   util.Uint160
	Escrow     util.Uint160
	Insurance  util.Uint160
	Bounty     util.Uint160
	Dispute    util.Uint160
	Governance util.Uint160
}

// Prm groups all parameters of the deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance the contracts are deployed to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	// Contract addresses depend on it.
	LocalAccount *wallet.Account

	// NEP-17 token the grants are paid in.
	Token util.Uint160

	// Optional account holding every administrative role next to the
	// contracts, e.g. committee multi-signature. Insurance Fund managers are
	// appointed by it, so direct payouts are disabled without an operator.
	Operator util.Uint160

	// Compiled contracts, see contracts.Read and contracts.Compile.
	Contracts []contracts.Contract

	Settings Settings
}

// Deploy deploys the grant audit contracts to the Neo network represented by
// given Prm.Blockchain and returns their addresses.
//
// All contract addresses are known in advance since they are determined by
// the sender, NEF checksum and manifest name, so contracts referencing each
// other are configured on deployment. Contracts already present on the chain
// are skipped, which allows to continue interrupted deployment. Summary of
// stages:
//  1. address calculation and _deploy arguments composition
//  2. Auditor Registry, Escrow Manager and Insurance Fund deployment
//  3. Audit Bounty Manager, Dispute Manager and Governance Manager deployment
//
// Each transaction is awaited before the next one is sent. Deploy aborts on
// context cancellation between transactions.
func Deploy(ctx context.Context, prm Prm) (Addresses, error) {
	if err := prm.Settings.Validate(); err != nil {
		return Addresses{}, fmt.Errorf("invalid settings: %w", err)
	}

	addrs, steps, err := newPlan(prm.LocalAccount.ScriptHash(), prm.Token, prm.Operator, prm.Contracts, prm.Settings)
	if err != nil {
		return Addresses{}, err
	}

	var (
		act *actor.Actor
		m   *management.Contract
	)

	for i := range steps {
		if err := ctx.Err(); err != nil {
			return addrs, err
		}

		l := prm.Logger.With(zap.String("contract", steps[i].contract.Manifest.Name),
			zap.Stringer("address", steps[i].hash))

		deployed, err := isDeployed(prm.Blockchain, steps[i])
		if err != nil {
			return addrs, err
		}
		if deployed {
			l.Info("contract is already deployed, skip")
			continue
		}

		if act == nil {
			act, err = actor.NewSimple(prm.Blockchain, prm.LocalAccount)
			if err != nil {
				return addrs, fmt.Errorf("init transaction sender from local account: %w", err)
			}
			m = management.New(act)
		}

		l.Info("deploying contract...")

		aer, err := act.Wait(m.Deploy(&steps[i].contract.NEF, &steps[i].contract.Manifest, steps[i].data))
		if err != nil {
			return addrs, fmt.Errorf("deploy %s contract: %w", steps[i].contract.Dir, err)
		}
		if aer.VMState != vmstate.Halt {
			return addrs, fmt.Errorf("deploy %s contract: %s: %s", steps[i].contract.Dir, aer.VMState, aer.FaultException)
		}

		l.Info("contract successfully deployed", zap.Stringer("tx", aer.Container))
	}

	return addrs, nil
}

func isDeployed(b Blockchain, s step) (bool, error) {
	st, err := b.GetContractStateByHash(s.hash)
	if err != nil {
		if strings.Contains(err.Error(), "Unknown contract") {
			return false, nil
		}
		return false, fmt.Errorf("get state of %s contract: %w", s.contract.Dir, err)
	}

	if st.NEF.Checksum != s.contract.NEF.Checksum {
		return false, fmt.Errorf("%s contract at %s has unexpected NEF checksum %d",
			s.contract.Dir, s.hash.StringLE(), st.NEF.Checksum)
	}

	return true, nil
}
