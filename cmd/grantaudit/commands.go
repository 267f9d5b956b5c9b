package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"

	"github.com/grantaudit/grantaudit-contract/contracts"
	"github.com/grantaudit/grantaudit-contract/deploy"
	"github.com/grantaudit/grantaudit-contract/rpc/bounty"
	"github.com/grantaudit/grantaudit-contract/rpc/escrow"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// env is shared by all commands.
type env struct {
	cfg *Config
	log *zap.Logger
	rpc *rpcclient.Client
}

// withEnv reads configuration, dials RPC server and passes them to f.
func withEnv(f func(ctx context.Context, c *cli.Context, e *env) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := readConfig(c.GlobalString("config"))
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		log, err := cfg.Logger.build()
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		defer func() { _ = log.Sync() }()

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		rpc, err := dial(ctx, cfg.RPC)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		defer rpc.Close()

		err = f(ctx, c, &env{cfg: cfg, log: log, rpc: rpc})
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		return nil
	}
}

func deployAction(ctx context.Context, _ *cli.Context, e *env) error {
	acc, err := openAccount(e.cfg.Wallet)
	if err != nil {
		return err
	}

	token, err := parseHash("token", e.cfg.Contracts.Token)
	if err != nil {
		return err
	}

	var operator util.Uint160
	if e.cfg.Contracts.Operator != "" {
		operator, err = parseHash("operator", e.cfg.Contracts.Operator)
		if err != nil {
			return err
		}
	}

	cs, err := contracts.Read(os.DirFS(e.cfg.Contracts.Dir))
	if err != nil {
		return fmt.Errorf("read contracts from %s: %w", e.cfg.Contracts.Dir, err)
	}

	addrs, err := deploy.Deploy(ctx, deploy.Prm{
		Logger:       e.log,
		Blockchain:   e.rpc,
		LocalAccount: acc,
		Token:        token,
		Operator:     operator,
		Contracts:    cs,
		Settings:     e.cfg.Settings,
	})
	if err != nil {
		return err
	}

	e.log.Info("grant audit contracts successfully deployed")

	return printYAML(os.Stdout, map[string]addressesView{"contracts": newAddressesView(addrs)})
}

func bountyAction(_ context.Context, c *cli.Context, e *env) error {
	h, err := parseHash("bounty", e.cfg.Contracts.Bounty)
	if err != nil {
		return err
	}
	if !c.IsSet("id") {
		return errors.New("missing bounty identifier")
	}

	var (
		r  = bounty.NewReader(invoker.New(e.rpc, nil), h)
		id = big.NewInt(c.Int64("id"))
	)

	b, err := r.GetBounty(id)
	if err != nil {
		return fmt.Errorf("get bounty %s: %w", id, err)
	}

	votes := make([]*bounty.BountyVoteData, 0, len(b.Auditors))
	for i := range b.Auditors {
		v, err := r.GetVote(id, b.Auditors[i])
		if err != nil {
			return fmt.Errorf("get vote of %s: %w", b.Auditors[i].StringLE(), err)
		}
		votes = append(votes, v)
	}

	return printYAML(os.Stdout, newBountyView(b, votes))
}

func escrowAction(_ context.Context, c *cli.Context, e *env) error {
	h, err := parseHash("escrow", e.cfg.Contracts.Escrow)
	if err != nil {
		return err
	}

	list, err := escrow.NewReader(invoker.New(e.rpc, nil), h).ListEscrows(c.Int("batch"))
	if err != nil {
		return err
	}

	e.log.Debug("escrows fetched", zap.Int("count", len(list)))

	res := make([]escrowView, 0, len(list))
	for i := range list {
		if c.Bool("active") && list[i].Status.Cmp(escrow.StatusActive) != 0 {
			continue
		}
		res = append(res, newEscrowView(list[i]))
	}

	return printYAML(os.Stdout, res)
}

func voteAction(_ context.Context, c *cli.Context, e *env) error {
	h, err := parseHash("bounty", e.cfg.Contracts.Bounty)
	if err != nil {
		return err
	}
	if !c.IsSet("id") {
		return errors.New("missing bounty identifier")
	}

	vote, err := parseVote(c.String("vote"))
	if err != nil {
		return err
	}

	evidence := c.StringSlice("evidence")
	if err := bounty.ValidateEvidence(evidence); err != nil {
		return err
	}

	acc, err := openAccount(e.cfg.Wallet)
	if err != nil {
		return err
	}

	act, err := actor.NewSimple(e.rpc, acc)
	if err != nil {
		return fmt.Errorf("init actor: %w", err)
	}

	id := big.NewInt(c.Int64("id"))
	l := e.log.With(zap.Stringer("bounty", id), zap.String("auditor", acc.Address))
	l.Info("submitting vote...", zap.String("vote", c.String("vote")), zap.Int("evidence", len(evidence)))

	aer, err := act.Wait(bounty.New(act, h).SubmitVote(id, acc.ScriptHash(), vote, c.String("report"), evidence))
	if err != nil {
		return fmt.Errorf("submit vote: %w", err)
	}
	if aer.VMState != vmstate.Halt {
		return fmt.Errorf("submit vote: %s: %s", aer.VMState, aer.FaultException)
	}

	l.Info("vote accepted", zap.Stringer("tx", aer.Container))
	return nil
}
