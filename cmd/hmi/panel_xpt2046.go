//go:build tinygo && xpt2046

package main

import (
	"machine"

	"tinygo.org/x/drivers/xpt2046"

	xpt "embhmi.com/driver/xpt2046"
	"embhmi.com/touch"
)

const (
	TOUCH_CLK  = machine.GP10
	TOUCH_CS   = machine.GP9
	TOUCH_DIN  = machine.GP11
	TOUCH_DOUT = machine.GP12
	TOUCH_IRQ  = machine.GP13
)

func openPanel() touch.Panel {
	dev := xpt2046.New(TOUCH_CLK, TOUCH_CS, TOUCH_DIN, TOUCH_DOUT, TOUCH_IRQ)
	dev.Configure(&xpt2046.Config{Precision: 10})
	return xpt.New(&dev)
}
