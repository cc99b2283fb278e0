//go:build !linux

package system

import "context"

// StartExitOnKey is a no-op without evdev.
func StartExitOnKey(ctx context.Context, l logger, onExit func()) {}
