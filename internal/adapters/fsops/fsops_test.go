package fsops_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/mate/internal/adapters/fsops"
	"go.trai.ch/mate/internal/core/domain"
)

func TestFileOps_Copy(t *testing.T) {
	t.Run("copies content", func(t *testing.T) {
		tmpDir := t.TempDir()
		src := filepath.Join(tmpDir, "src.txt")
		dst := filepath.Join(tmpDir, "dst.txt")

		require.NoError(t, os.WriteFile(src, []byte("header content"), domain.FilePerm))

		ops := fsops.New()
		require.NoError(t, ops.Copy(src, dst))

		got, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, []byte("header content"), got)
	})

	t.Run("creates missing destination directories", func(t *testing.T) {
		tmpDir := t.TempDir()
		src := filepath.Join(tmpDir, "src.txt")
		dst := filepath.Join(tmpDir, "dist", "include", "net", "proto.h")

		require.NoError(t, os.WriteFile(src, []byte("x"), domain.FilePerm))

		ops := fsops.New()
		require.NoError(t, ops.Copy(src, dst))

		_, err := os.Stat(dst)
		require.NoError(t, err)
	})

	t.Run("overwrites existing destination", func(t *testing.T) {
		tmpDir := t.TempDir()
		src := filepath.Join(tmpDir, "src.txt")
		dst := filepath.Join(tmpDir, "dst.txt")

		require.NoError(t, os.WriteFile(src, []byte("new"), domain.FilePerm))
		require.NoError(t, os.WriteFile(dst, []byte("old content that is longer"), domain.FilePerm))

		ops := fsops.New()
		require.NoError(t, ops.Copy(src, dst))

		got, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), got)
	})

	t.Run("missing source", func(t *testing.T) {
		tmpDir := t.TempDir()

		ops := fsops.New()
		err := ops.Copy(filepath.Join(tmpDir, "nope.txt"), filepath.Join(tmpDir, "dst.txt"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestFileOps_Remove(t *testing.T) {
	t.Run("removes file", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "obj.o")
		require.NoError(t, os.WriteFile(path, []byte("obj"), domain.FilePerm))

		ops := fsops.New()
		require.NoError(t, ops.Remove(path))

		_, err := os.Stat(path)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		tmpDir := t.TempDir()

		ops := fsops.New()
		err := ops.Remove(filepath.Join(tmpDir, "missing.o"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestFileOps_MkdirAll(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "dist", "include")

	ops := fsops.New()
	require.NoError(t, ops.MkdirAll(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Creating an existing directory is not an error
	require.NoError(t, ops.MkdirAll(path))
}
