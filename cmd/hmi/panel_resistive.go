//go:build tinygo && !xpt2046

package main

import (
	"machine"

	"embhmi.com/driver/resistive"
	"embhmi.com/touch"
)

const (
	TOUCH_XL = machine.GP20
	TOUCH_YD = machine.GP21
	// ADC capable.
	TOUCH_YU = machine.GP26
	TOUCH_XR = machine.GP27
)

func openPanel() touch.Panel {
	return resistive.New(TOUCH_XL, TOUCH_XR, TOUCH_YU, TOUCH_YD)
}
