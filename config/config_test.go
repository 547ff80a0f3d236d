package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/moonpair/tinypairing/curves"
)

func TestLoadTinyJubJub(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "tinyjubjub.toml"))
	require.NoError(t, err)

	require.Equal(t, "tinyjubjub", f.Curve.Name)
	require.Equal(t, uint64(13), f.Curve.Modulus)
	require.Equal(t, uint64(4), f.Curve.EmbeddingDegree)
	require.Equal(t, []uint64{2, 0, 0, 0, 1}, f.Curve.Extension)
}

func TestBuildMatchesBuiltin(t *testing.T) {
	for _, name := range []string{"tinyjubjub", "bls6_6"} {
		fromFile, err := Build(filepath.Join("testdata", name+".toml"))
		require.NoError(t, err)

		builtin, err := curves.Named(name)
		require.NoError(t, err)

		require.Equal(t, builtin.Name, fromFile.Name)
		require.Equal(t, builtin.BaseCurve.Params(), fromFile.BaseCurve.Params())
		require.True(t, fromFile.BaseCurve.Equal(fromFile.G1, builtin.G1))
		require.True(t, fromFile.ExtCurve.Equal(fromFile.G2, builtin.G2))
	}
}

func TestBuiltCurvePairs(t *testing.T) {
	ins, err := Build(filepath.Join("testdata", "tinyjubjub.toml"))
	require.NoError(t, err)

	e, err := ins.Pair(ins.G1, ins.G2)
	require.NoError(t, err)
	want := ins.Ext.Ring().NewFromUint64(3, 7, 7, 6)
	require.True(t, ins.Ext.Equal(e, want))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.toml"))
	require.Error(t, err)
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "curve.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRejectsIncompleteDescriptor(t *testing.T) {
	path := writeTemp(t, `
[curve]
name = "broken"
a = 8
b = 8
`)
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "modulus")
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeTemp(t, `
[curve]
name = "tinyjubjub"
modulus = 13
a = 8
b = 8
order = 20
r = 5
embedding_degree = 4
extension = [2, 0, 0, 0, 1]
extension_order = 28800
g1 = [8, 8]
g2_x = [7, 0, 4]
g2_y = [0, 10, 0, 5]
cofactor = 4
`)
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown key")
}

func TestLoadRejectsBadG1Shape(t *testing.T) {
	path := writeTemp(t, `
[curve]
name = "tinyjubjub"
modulus = 13
a = 8
b = 8
order = 20
r = 5
embedding_degree = 4
extension = [2, 0, 0, 0, 1]
extension_order = 28800
g1 = [8, 8, 1]
g2_x = [7, 0, 4]
g2_y = [0, 10, 0, 5]
`)
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "g1")
}
