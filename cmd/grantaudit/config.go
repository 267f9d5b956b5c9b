package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/grantaudit/grantaudit-contract/deploy"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config is the grantaudit configuration file.
type Config struct {
	Logger    LoggerConfig    `yaml:"logger"`
	RPC       RPCConfig       `yaml:"rpc"`
	Wallet    WalletConfig    `yaml:"wallet"`
	Contracts ContractsConfig `yaml:"contracts"`
	Settings  deploy.Settings `yaml:"settings"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
}

type RPCConfig struct {
	Endpoint       string        `yaml:"endpoint"`
	DialTimeout    time.Duration `yaml:"dial_timeout"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// WalletConfig points to the account signing transactions. The first
// account of the wallet is used when no address is set.
type WalletConfig struct {
	Path     string `yaml:"path"`
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
}

// ContractsConfig contains contract addresses in Neo address or LE hex form.
// Dir is the directory with compiled contracts used for deployment.
type ContractsConfig struct {
	Dir        string `yaml:"dir"`
	Token      string `yaml:"token"`
	Operator   string `yaml:"operator"`
	Registry   string `yaml:"registry"`
	Escrow     string `yaml:"escrow"`
	Insurance  string `yaml:"insurance"`
	Bounty     string `yaml:"bounty"`
	Dispute    string `yaml:"dispute"`
	Governance string `yaml:"governance"`
}

func defaultConfig() Config {
	return Config{
		Logger: LoggerConfig{Level: "info"},
		RPC: RPCConfig{
			DialTimeout:    15 * time.Second,
			RequestTimeout: 15 * time.Second,
		},
		Contracts: ContractsConfig{Dir: "contracts"},
		Settings: deploy.Settings{
			InitialLock:     30 * 24 * time.Hour,
			LockExtension:   7 * 24 * time.Hour,
			MaxDirectPayout: 1000,
			ConcernWindow:   7 * 24 * time.Hour,
			MaxAuditors:     5,
			RequiredStake:   1000,
			SlashAmount:     100,
			DisputeWindow:   3 * 24 * time.Hour,
			PanelSize:       3,
			Threshold:       66,
			MinPanelStake:   1000,
			VotingPeriod:    7 * 24 * time.Hour,
			Quorum:          1000,
			MinVoterBalance: 1,
		},
	}
}

// readConfig reads YAML configuration file. Values missing in the file are
// taken from defaultConfig.
func readConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	if cfg.RPC.Endpoint == "" {
		return nil, errors.New("missing RPC endpoint")
	}
	if _, err := cfg.Logger.level(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c LoggerConfig) level() (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return lvl, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	return lvl, nil
}

func (c LoggerConfig) build() (*zap.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.Sampling = nil

	return zc.Build()
}

// parseHash decodes contract or account address given either as Neo address
// or as LE hex string with optional 0x prefix.
func parseHash(name, s string) (util.Uint160, error) {
	if s == "" {
		return util.Uint160{}, fmt.Errorf("missing %s address", name)
	}
	if h, err := address.StringToUint160(s); err == nil {
		return h, nil
	}
	h, err := util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return h, fmt.Errorf("invalid %s address %q", name, s)
	}
	return h, nil
}
