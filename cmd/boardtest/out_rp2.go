//go:build rp2040 || rp2350

package main

import (
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
)

// Counts stream on UART0 (GP0/GP1) so the console stays usable while the
// operator logs readings on a second machine.
func initOutput() {
	_ = uartx.UART0.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GPIO0,
		RX:       machine.GPIO1,
	})
}

func writeLine(b []byte) {
	_, _ = uartx.UART0.Write(b)
}
