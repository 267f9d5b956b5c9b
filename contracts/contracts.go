/*
Package contracts provides access to compiled grant audit contracts.

Contracts can be compiled from sources with Compile or read from NEF and
manifest files produced by the neo-go compiler with Read. Both return them in
the order they're supposed to be deployed starting from Auditor Registry.
*/
package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/nspcc-dev/neo-go/cli/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/compiler"
	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
)

// Contract directories.
const (
	RegistryDir   = "registry"
	EscrowDir     = "escrow"
	InsuranceDir  = "insurance"
	BountyDir     = "bounty"
	DisputeDir    = "dispute"
	GovernanceDir = "governance"

	nefName      = "contract.nef"
	manifestName = "manifest.json"
	configName   = "config.yml"
)

// Contract groups information about Neo contract.
type Contract struct {
	// Dir is the name of the contract directory.
	Dir      string
	NEF      nef.File
	Manifest manifest.Manifest
}

var (
	errInvalidNEF      = errors.New("invalid NEF")
	errInvalidManifest = errors.New("invalid manifest")

	deployOrder = []string{
		RegistryDir,
		EscrowDir,
		InsuranceDir,
		BountyDir,
		DisputeDir,
		GovernanceDir,
	}
)

// Dirs returns contract directories in deployment order.
func Dirs() []string {
	res := make([]string, len(deployOrder))
	copy(res, deployOrder)
	return res
}

// Read reads contracts from fsys. Every contract is expected in its own
// directory as contract.nef and manifest.json files.
func Read(fsys fs.FS) ([]Contract, error) {
	return read(fsys, deployOrder)
}

func read(_fs fs.FS, dirs []string) ([]Contract, error) {
	var res = make([]Contract, 0, len(dirs))

	for i := range dirs {
		c, err := readContractFromDir(_fs, dirs[i])
		if err != nil {
			return nil, fmt.Errorf("read contract %s: %w", dirs[i], err)
		}

		res = append(res, c)
	}

	return res, nil
}

func readContractFromDir(_fs fs.FS, dir string) (Contract, error) {
	var c = Contract{Dir: dir}

	// fs.FS uses "/" even on Windows, so filepath.Join() is not applicable.
	fNEF, err := _fs.Open(dir + "/" + nefName)
	if err != nil {
		return c, fmt.Errorf("open NEF: %w", err)
	}
	defer fNEF.Close()

	fManifest, err := _fs.Open(dir + "/" + manifestName)
	if err != nil {
		return c, fmt.Errorf("open manifest: %w", err)
	}
	defer fManifest.Close()

	bReader := io.NewBinReaderFromIO(fNEF)
	c.NEF.DecodeBinary(bReader)
	if bReader.Err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidNEF, bReader.Err)
	}

	err = json.NewDecoder(fManifest).Decode(&c.Manifest)
	if err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidManifest, err)
	}

	return c, nil
}

// Compile compiles contracts from sources. root is the directory containing
// contract directories, i.e. the directory of this package.
func Compile(root string) ([]Contract, error) {
	var res = make([]Contract, 0, len(deployOrder))

	for _, dir := range deployOrder {
		c, err := compileDir(filepath.Join(root, dir))
		if err != nil {
			return nil, fmt.Errorf("compile contract %s: %w", dir, err)
		}

		c.Dir = dir
		res = append(res, c)
	}

	return res, nil
}

func compileDir(dir string) (Contract, error) {
	var c Contract

	ne, di, err := compiler.CompileWithOptions(dir, nil, nil)
	if err != nil {
		return c, err
	}

	conf, err := smartcontract.ParseContractConfig(filepath.Join(dir, configName))
	if err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}

	o := &compiler.Options{}
	o.Name = conf.Name
	o.ContractEvents = conf.Events
	o.DeclaredNamedTypes = conf.NamedTypes
	o.ContractSupportedStandards = conf.SupportedStandards
	o.Permissions = make([]manifest.Permission, len(conf.Permissions))
	for i := range conf.Permissions {
		o.Permissions[i] = manifest.Permission(conf.Permissions[i])
	}
	o.SafeMethods = conf.SafeMethods
	o.Overloads = conf.Overloads

	m, err := compiler.CreateManifest(di, o)
	if err != nil {
		return c, fmt.Errorf("create manifest: %w", err)
	}

	c.NEF = *ne
	c.Manifest = *m
	return c, nil
}
