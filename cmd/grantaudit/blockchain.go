package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
)

// dial connects to Neo RPC server. Connection and all requests are done
// within configured timeouts.
func dial(ctx context.Context, cfg RPCConfig) (*rpcclient.Client, error) {
	c, err := rpcclient.New(ctx, cfg.Endpoint, rpcclient.Options{
		DialTimeout:    cfg.DialTimeout,
		RequestTimeout: cfg.RequestTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	if err := c.Init(); err != nil {
		c.Close()
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	return c, nil
}

// openAccount reads the wallet and returns decrypted account.
func openAccount(cfg WalletConfig) (*wallet.Account, error) {
	if cfg.Path == "" {
		return nil, errors.New("missing wallet path")
	}

	w, err := wallet.NewWalletFromFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}
	defer w.Close()

	var acc *wallet.Account
	if cfg.Address == "" {
		if len(w.Accounts) == 0 {
			return nil, errors.New("wallet has no accounts")
		}
		acc = w.Accounts[0]
	} else {
		h, err := address.StringToUint160(cfg.Address)
		if err != nil {
			return nil, fmt.Errorf("invalid wallet address: %w", err)
		}
		if acc = w.GetAccount(h); acc == nil {
			return nil, fmt.Errorf("account %s not found in the wallet", cfg.Address)
		}
	}

	if err := acc.Decrypt(cfg.Password, w.Scrypt); err != nil {
		return nil, fmt.Errorf("decrypt account %s: %w", acc.Address, err)
	}

	return acc, nil
}
