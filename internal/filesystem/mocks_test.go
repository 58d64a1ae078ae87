package filesystem

import (
	"github.com/stretchr/testify/mock"
	"golang.org/x/sys/unix"
)

type mockOsProvider struct {
	mock.Mock
}

func (m *mockOsProvider) Readlink(name string) (string, error) {
	args := m.Called(name)

	return args.String(0), args.Error(1)
}

type mockUnixProvider struct {
	mock.Mock
}

func (m *mockUnixProvider) Lstat(path string, stat *unix.Stat_t) error {
	args := m.Called(path, stat)

	return args.Error(0)
}

func (m *mockUnixProvider) Statfs(path string, buf *unix.Statfs_t) error {
	args := m.Called(path, buf)

	return args.Error(0)
}
