package contracts

import (
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	c, err := Compile(".")
	require.NoError(t, err)
	require.Len(t, c, len(deployOrder))

	names := []string{
		"GrantAudit Auditor Registry",
		"GrantAudit Escrow Manager",
		"GrantAudit Insurance Fund",
		"GrantAudit Bounty Manager",
		"GrantAudit Dispute Manager",
		"GrantAudit Governance Manager",
	}
	for i := range c {
		require.Equal(t, deployOrder[i], c[i].Dir)
		require.Equal(t, names[i], c[i].Manifest.Name)
		require.NotNil(t, c[i].Manifest.ABI.GetMethod("version", 0))
		require.NotNil(t, c[i].Manifest.ABI.GetMethod("update", 3))
	}
}

func TestCompileMissingSources(t *testing.T) {
	_, err := Compile(t.TempDir())
	require.Error(t, err)
}

func TestDirs(t *testing.T) {
	dirs := Dirs()
	require.Equal(t, deployOrder, dirs)

	dirs[0] = "changed"
	require.Equal(t, RegistryDir, deployOrder[0])
}

func TestReadMissingFiles(t *testing.T) {
	_fs := fstest.MapFS{}

	// Missing NEF
	_, err := Read(_fs)
	require.Error(t, err)

	// Missing manifest.
	_fs[RegistryDir+"/"+nefName] = &fstest.MapFile{}
	_, err = Read(_fs)
	require.Error(t, err)
}

func TestReadInvalidFormat(t *testing.T) {
	var (
		_fs          = fstest.MapFS{}
		nefPath      = EscrowDir + "/" + nefName
		manifestPath = EscrowDir + "/" + manifestName
	)

	_, validNEF := anyValidNEF(t)
	_, validManifest := anyValidManifest(t, "zero")

	_fs[nefPath] = &fstest.MapFile{Data: validNEF}
	_fs[manifestPath] = &fstest.MapFile{Data: validManifest}

	c, err := read(_fs, []string{EscrowDir})
	require.NoError(t, err)
	require.Len(t, c, 1)
	require.Equal(t, EscrowDir, c[0].Dir)
	require.Equal(t, "zero", c[0].Manifest.Name)

	_fs[nefPath] = &fstest.MapFile{Data: []byte("not a NEF")}
	_fs[manifestPath] = &fstest.MapFile{Data: validManifest}

	_, err = read(_fs, []string{EscrowDir})
	require.ErrorIs(t, err, errInvalidNEF)

	_fs[nefPath] = &fstest.MapFile{Data: validNEF}
	_fs[manifestPath] = &fstest.MapFile{Data: []byte("not a manifest")}

	_, err = read(_fs, []string{EscrowDir})
	require.ErrorIs(t, err, errInvalidManifest)
}

func TestRead(t *testing.T) {
	_fs := fstest.MapFS{}
	for _, dir := range deployOrder {
		_, validNEF := anyValidNEF(t)
		_, validManifest := anyValidManifest(t, dir)
		_fs[dir+"/"+nefName] = &fstest.MapFile{Data: validNEF}
		_fs[dir+"/"+manifestName] = &fstest.MapFile{Data: validManifest}
	}

	c, err := Read(_fs)
	require.NoError(t, err)
	require.Len(t, c, len(deployOrder))
	for i := range c {
		require.Equal(t, deployOrder[i], c[i].Manifest.Name)
	}
}

func anyValidNEF(tb testing.TB) (nef.File, []byte) {
	script := make([]byte, 32)

	_nef, err := nef.NewFile(script)
	require.NoError(tb, err)

	bNEF, err := _nef.Bytes()
	require.NoError(tb, err)

	return *_nef, bNEF
}

func anyValidManifest(tb testing.TB, name string) (manifest.Manifest, []byte) {
	_manifest := manifest.NewManifest(name)

	jManifest, err := json.Marshal(_manifest)
	require.NoError(tb, err)

	return *_manifest, jManifest
}
