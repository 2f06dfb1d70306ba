package fsys

import (
	"sort"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestGateway(t *testing.T) *Gateway {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/root/sub/deep", 0755))
	require.NoError(t, afero.WriteFile(fs, "/root/a.txt", []byte("hello"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/root/sub/deep/b.txt", []byte("x"), 0644))
	return New(fs)
}

func TestGateway_ListChildren(t *testing.T) {
	g := createTestGateway(t)

	children, err := g.ListChildren("/root")
	require.NoError(t, err)
	sort.Strings(children)
	assert.Equal(t, []string{"/root/a.txt", "/root/sub"}, children)

	_, err = g.ListChildren("/missing")
	assert.Error(t, err)
}

func TestGateway_ListChildrenN(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, name := range []string{"a", "b", "c", "d"} {
		require.NoError(t, afero.WriteFile(fs, "/many/"+name, nil, 0644))
	}
	require.NoError(t, fs.MkdirAll("/empty", 0755))
	g := New(fs)

	children, err := g.ListChildrenN("/many", 2)
	require.NoError(t, err)
	assert.Len(t, children, 2)

	children, err = g.ListChildrenN("/many", 10)
	require.NoError(t, err)
	assert.Len(t, children, 4)

	children, err = g.ListChildrenN("/empty", 3)
	require.NoError(t, err)
	assert.Empty(t, children)

	_, err = g.ListChildrenN("/missing", 3)
	assert.Error(t, err)
}

func TestGateway_IsDirAndExists(t *testing.T) {
	g := createTestGateway(t)

	assert.True(t, g.IsDir("/root/sub"))
	assert.False(t, g.IsDir("/root/a.txt"))
	assert.False(t, g.IsDir("/missing"))
	assert.True(t, g.Exists("/root/a.txt"))
	assert.False(t, g.Exists("/missing"))
}

func TestGateway_ReadPrefix(t *testing.T) {
	g := createTestGateway(t)

	data, err := g.ReadPrefix("/root/a.txt", 1024)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	data, err = g.ReadPrefix("/root/a.txt", 3)
	require.NoError(t, err)
	assert.Equal(t, "hel", string(data))

	big := strings.Repeat("z", 4096)
	require.NoError(t, afero.WriteFile(g.Fs(), "/root/big", []byte(big), 0644))
	data, err = g.ReadPrefix("/root/big", 1024)
	require.NoError(t, err)
	assert.Len(t, data, 1024)

	_, err = g.ReadPrefix("/missing", 10)
	assert.Error(t, err)
}

func TestGateway_CreateAndDelete(t *testing.T) {
	g := createTestGateway(t)

	require.NoError(t, g.CreateFile("/root/new.txt"))
	assert.True(t, g.Exists("/root/new.txt"))
	assert.Error(t, g.CreateFile("/root/new.txt"), "existing file is not truncated")

	require.NoError(t, g.CreateDirectory("/root/made"))
	assert.True(t, g.IsDir("/root/made"))
	assert.Error(t, g.CreateDirectory("/root/made"))

	require.NoError(t, g.DeleteFile("/root/new.txt"))
	assert.False(t, g.Exists("/root/new.txt"))

	require.NoError(t, g.DeleteTree("/root/sub"))
	assert.False(t, g.Exists("/root/sub/deep/b.txt"))
	assert.False(t, g.Exists("/root/sub"))

	assert.Error(t, g.DeleteTree("/root/sub"))
	assert.Error(t, g.DeleteFile("/root/nope"))
}

func TestGateway_ReadOnlyFailures(t *testing.T) {
	base := createTestGateway(t)
	g := New(afero.NewReadOnlyFs(base.Fs()))

	assert.Error(t, g.CreateFile("/root/x"))
	assert.Error(t, g.CreateDirectory("/root/y"))
	assert.Error(t, g.DeleteFile("/root/a.txt"))
	assert.Error(t, g.DeleteTree("/root/sub"))
	assert.True(t, g.Exists("/root/a.txt"))
}
