package fsutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDeletable(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"root", "/", true},
		{"usr", "/usr", true},
		{"system", "/System", true},
		{"applications", "/Applications", true},
		{"relative", "Library/Caches", true},
		{"unclean", "/Users/u/../etc/passwd", true},
		{"cache dir", "/Users/u/Library/Caches/com.example.app", false},
		{"trash file", "/Users/u/.Trash/old.zip", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDeletable(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDeletableHomeDir(t *testing.T) {
	home := HomeDir()
	require.NotEmpty(t, home)
	assert.Error(t, ValidateDeletable(home))
}

func TestSafeRemoveRefusesProtectedPath(t *testing.T) {
	_, err := SafeRemove("/usr")
	assert.Error(t, err)
}

func TestSafeRemoveStillRemovesTempFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "victim.txt")
	mkFile(t, path, 128)

	freed, err := SafeRemove(path)
	require.NoError(t, err)
	assert.Equal(t, int64(128), freed)
	assert.False(t, Exists(path))
}
