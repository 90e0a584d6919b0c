//go:build !linux

package workerpool

import "errors"

var errPinUnsupported = errors.New("workerpool: cpu pinning is only supported on linux")

func PinToCPU(cpu int) error { return errPinUnsupported }
