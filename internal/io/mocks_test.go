package io

import (
	"os"

	"github.com/sjmulder/linkmove/internal/schema"
	"github.com/stretchr/testify/mock"
	"golang.org/x/sys/unix"
)

type mockFsProvider struct {
	mock.Mock
}

func (m *mockFsProvider) GetMetadata(path string) (*schema.Metadata, error) {
	args := m.Called(path)

	metadata, _ := args.Get(0).(*schema.Metadata)

	return metadata, args.Error(1)
}

func (m *mockFsProvider) HasEnoughFreeSpace(path string, fileSize uint64) (bool, error) {
	args := m.Called(path, fileSize)

	return args.Bool(0), args.Error(1)
}

type mockOsProvider struct {
	mock.Mock
}

func (m *mockOsProvider) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	args := m.Called(name, flag, perm)

	f, _ := args.Get(0).(*os.File)

	return f, args.Error(1)
}

func (m *mockOsProvider) ReadDir(name string) ([]os.DirEntry, error) {
	args := m.Called(name)

	entries, _ := args.Get(0).([]os.DirEntry)

	return entries, args.Error(1)
}

func (m *mockOsProvider) Remove(name string) error {
	return m.Called(name).Error(0)
}

func (m *mockOsProvider) Rename(oldpath, newpath string) error {
	return m.Called(oldpath, newpath).Error(0)
}

func (m *mockOsProvider) Stat(name string) (os.FileInfo, error) {
	args := m.Called(name)

	info, _ := args.Get(0).(os.FileInfo)

	return info, args.Error(1)
}

type mockUnixProvider struct {
	mock.Mock
}

func (m *mockUnixProvider) Chmod(path string, mode uint32) error {
	return m.Called(path, mode).Error(0)
}

func (m *mockUnixProvider) Chown(path string, uid, gid int) error {
	return m.Called(path, uid, gid).Error(0)
}

func (m *mockUnixProvider) Lchown(path string, uid, gid int) error {
	return m.Called(path, uid, gid).Error(0)
}

func (m *mockUnixProvider) Mkdir(path string, mode uint32) error {
	return m.Called(path, mode).Error(0)
}

func (m *mockUnixProvider) Rmdir(path string) error {
	return m.Called(path).Error(0)
}

func (m *mockUnixProvider) Symlink(oldpath, newpath string) error {
	return m.Called(oldpath, newpath).Error(0)
}

func (m *mockUnixProvider) Unlink(path string) error {
	return m.Called(path).Error(0)
}

func (m *mockUnixProvider) UtimesNano(path string, times []unix.Timespec) error {
	return m.Called(path, times).Error(0)
}
