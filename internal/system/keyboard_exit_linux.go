//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

const evKey = 0x01

// Linux input-event-codes.h
const (
	keyEsc = 1
	keyQ   = 16
	keyF4  = 62
)

var exitKeys = map[uint16]string{keyEsc: "Esc", keyQ: "Q", keyF4: "F4"}

// StartExitOnKey watches evdev devices under /dev/input/event* and invokes onExit
// once when Esc, Q or F4 is pressed. Watchers stop when ctx is done.
//
// It is best-effort: if no input devices are available, it logs and returns.
func StartExitOnKey(ctx context.Context, l logger, onExit func()) {
	if onExit == nil {
		return
	}

	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := binary.Size(unix.Timeval{})
	eventSize := tvSize + 2 + 2 + 4

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		if l != nil {
			l.Infof("input", "no evdev devices found, preview exits on timeout or signal only")
		}
		return
	}

	var once sync.Once
	triggerExit := func(key string) {
		once.Do(func() {
			if l != nil {
				l.Infof("input", "%s pressed: leaving preview", key)
			}
			onExit()
		})
	}

	for _, path := range paths {
		go watchDevice(ctx, path, tvSize, eventSize, triggerExit)
	}
}

func watchDevice(ctx context.Context, path string, tvSize, eventSize int, triggerExit func(string)) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}

		for off := 0; off+eventSize <= n; off += eventSize {
			rec := buf[off : off+eventSize]
			typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
			code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
			value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
			if name, ok := exitKeys[code]; ok && typ == evKey && value == 1 {
				triggerExit(name)
				return
			}
		}
	}
}
