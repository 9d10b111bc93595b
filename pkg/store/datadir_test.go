package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDataDir(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		name string
		goos string
		env  map[string]string
		want string
	}{
		{
			name: "darwin",
			goos: "darwin",
			want: filepath.Join(home, "Library", "Application Support", "habitquest"),
		},
		{
			name: "linux without XDG_DATA_HOME",
			goos: "linux",
			env:  map[string]string{"XDG_DATA_HOME": ""},
			want: filepath.Join(home, ".local", "share", "habitquest"),
		},
		{
			name: "linux with XDG_DATA_HOME",
			goos: "freebsd",
			env:  map[string]string{"XDG_DATA_HOME": "/custom/data"},
			want: filepath.Join("/custom/data", "habitquest"),
		},
		{
			name: "windows prefers LOCALAPPDATA",
			goos: "windows",
			env: map[string]string{
				"LOCALAPPDATA": `C:\Users\test\AppData\Local`,
				"APPDATA":      `C:\Users\test\AppData\Roaming`,
			},
			want: filepath.Join(`C:\Users\test\AppData\Local`, "habitquest"),
		},
		{
			name: "windows falls back to APPDATA",
			goos: "windows",
			env: map[string]string{
				"LOCALAPPDATA": "",
				"APPDATA":      `C:\Users\test\AppData\Roaming`,
			},
			want: filepath.Join(`C:\Users\test\AppData\Roaming`, "habitquest"),
		},
		{
			name: "windows without either",
			goos: "windows",
			env:  map[string]string{"LOCALAPPDATA": "", "APPDATA": ""},
			want: filepath.Join(home, "habitquest"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, defaultDataDirForOS(tt.goos))
		})
	}
}
