package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func mockStatfs(unixProv *mockUnixProvider, path string, blocks, avail uint64) {
	unixProv.On("Statfs", path, mock.Anything).Run(func(args mock.Arguments) {
		buf, _ := args.Get(1).(*unix.Statfs_t)
		buf.Bsize = 1024
		buf.Blocks = blocks
		buf.Bavail = avail
	}).Return(nil).Once()
}

// TestHasEnoughFreeSpace_Table tests the free space check against the
// returned filesystem statistics.
func TestHasEnoughFreeSpace_Table(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		avail    uint64
		fileSize uint64
		want     bool
	}{
		{"Success_Fits", 10, 5 * 1024, true},
		{"Success_FitsExactly", 5, 5 * 1024, true},
		{"Success_TooLarge", 4, 5 * 1024, false},
		{"Success_EmptyFile", 0, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			unixProv := &mockUnixProvider{}
			handler := NewHandler(&mockOsProvider{}, unixProv)

			mockStatfs(unixProv, "/mnt/dst", 100, tc.avail)

			ok, err := handler.HasEnoughFreeSpace("/mnt/dst", tc.fileSize)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)

			unixProv.AssertExpectations(t)
		})
	}
}

// TestGetDiskUsage_Success tests the conversion of filesystem statistics.
func TestGetDiskUsage_Success(t *testing.T) {
	t.Parallel()

	unixProv := &mockUnixProvider{}
	handler := NewHandler(&mockOsProvider{}, unixProv)

	mockStatfs(unixProv, "/mnt/dst", 100, 40)

	stats, err := handler.GetDiskUsage("/mnt/dst")
	require.NoError(t, err)
	assert.Equal(t, DiskStats{TotalSize: 100 * 1024, FreeSpace: 40 * 1024}, stats)

	unixProv.AssertExpectations(t)
}

// TestHasEnoughFreeSpace_Fail_Statfs tests a failing statfs.
func TestHasEnoughFreeSpace_Fail_Statfs(t *testing.T) {
	t.Parallel()

	unixProv := &mockUnixProvider{}
	handler := NewHandler(&mockOsProvider{}, unixProv)

	unixProv.On("Statfs", "/mnt/dst", mock.Anything).Return(unix.EACCES).Once()

	ok, err := handler.HasEnoughFreeSpace("/mnt/dst", 1)
	require.ErrorIs(t, err, unix.EACCES)
	assert.False(t, ok)

	unixProv.AssertExpectations(t)
}
