package fsys

import (
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"
)

// MountPoints returns the mounted drives and volumes for the running OS.
func (g *Gateway) MountPoints() []string {
	return mountPoints(g.fs, runtime.GOOS)
}

func mountPoints(fs afero.Fs, goos string) []string {
	var drives []string

	switch goos {
	case "windows":
		for letter := 'A'; letter <= 'Z'; letter++ {
			drive := string(letter) + ":\\"
			if _, err := fs.Stat(drive); err == nil {
				drives = append(drives, drive)
			}
		}

	case "darwin":
		drives = append(drives, subdirs(fs, "/Volumes")...)
		drives = append(drives, "/")

	default:
		drives = append(drives, "/")
		// WSL and manual mounts
		drives = append(drives, subdirs(fs, "/mnt")...)
		// udisks mounts live one level down, under the user name
		for _, userDir := range subdirs(fs, "/media") {
			drives = append(drives, subdirs(fs, userDir)...)
		}
	}

	return dedupe(drives)
}

// subdirs lists the directories directly under dir. Unreadable dirs yield nothing.
func subdirs(fs afero.Fs, dir string) []string {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil
	}

	var out []string
	for _, info := range infos {
		if info.IsDir() {
			out = append(out, filepath.Join(dir, info.Name()))
		}
	}
	return out
}

func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	result := make([]string, 0, len(paths))
	for _, p := range paths {
		if !seen[p] {
			seen[p] = true
			result = append(result, p)
		}
	}
	return result
}
