//go:build !rp2040

package hal

import "lightpanel-go/services/hal/internal/platform"

type (
	Host     = platform.Host
	FakePin  = platform.FakePin
	MemFlash = platform.MemFlash
)

// NewHost returns a fresh in-memory board and its registry.
func NewHost() (*Registry, *Host) { return platform.NewHostRegistry() }

// DefaultHost is the board behind Run off-target.
func DefaultHost() *Host { return platform.DefaultHost() }

func NewMemFlash(size, block int64) *MemFlash { return platform.NewMemFlash(size, block) }
