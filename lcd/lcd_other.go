//go:build !linux

package lcd

import "errors"

func Open(path string) (*LCD, error) {
	return nil, errors.New("lcd: framebuffer devices are only supported on Linux")
}
