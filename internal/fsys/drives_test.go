package fsys

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMountPoints_Linux(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/mnt/c", 0755))
	require.NoError(t, fs.MkdirAll("/mnt/usb", 0755))
	require.NoError(t, fs.MkdirAll("/media/alice/STICK", 0755))
	require.NoError(t, afero.WriteFile(fs, "/mnt/notes.txt", nil, 0644))

	got := mountPoints(fs, "linux")
	assert.Equal(t, []string{"/", "/mnt/c", "/mnt/usb", "/media/alice/STICK"}, got)
}

func TestMountPoints_LinuxBare(t *testing.T) {
	assert.Equal(t, []string{"/"}, mountPoints(afero.NewMemMapFs(), "linux"))
}

func TestMountPoints_Darwin(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/Volumes/Backup", 0755))
	require.NoError(t, fs.MkdirAll("/Volumes/Macintosh HD", 0755))

	got := mountPoints(fs, "darwin")
	assert.Equal(t, []string{"/Volumes/Backup", "/Volumes/Macintosh HD", "/"}, got)
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"/", "/mnt/a"}, dedupe([]string{"/", "/mnt/a", "/"}))
}
