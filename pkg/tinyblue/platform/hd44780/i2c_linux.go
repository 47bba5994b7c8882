package hd44780

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// i2cSlave is the I2C_SLAVE ioctl request from linux/i2c-dev.h.
const i2cSlave = 0x0703

// Bus is a Linux i2c-dev bus such as /dev/i2c-1 on a Raspberry Pi.
type Bus struct {
	mu   sync.Mutex
	file *os.File
	addr uint16
}

// OpenBus opens the i2c-dev device at path.
func OpenBus(path string) (*Bus, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("hd44780: open bus: %w", err)
	}
	return &Bus{file: f}, nil
}

// Tx writes w to and then reads len(r) bytes from the device at addr.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if addr != b.addr {
		if err := unix.IoctlSetInt(int(b.file.Fd()), i2cSlave, int(addr)); err != nil {
			return fmt.Errorf("hd44780: select device %#x: %w", addr, err)
		}
		b.addr = addr
	}
	if len(w) > 0 {
		if _, err := b.file.Write(w); err != nil {
			return fmt.Errorf("hd44780: write: %w", err)
		}
	}
	if len(r) > 0 {
		if _, err := b.file.Read(r); err != nil {
			return fmt.Errorf("hd44780: read: %w", err)
		}
	}
	return nil
}

// ReadRegister reads len(buf) bytes starting at register reg.
func (b *Bus) ReadRegister(addr uint8, reg uint8, buf []byte) error {
	return b.Tx(uint16(addr), []byte{reg}, buf)
}

// WriteRegister writes buf starting at register reg.
func (b *Bus) WriteRegister(addr uint8, reg uint8, buf []byte) error {
	return b.Tx(uint16(addr), append([]byte{reg}, buf...), nil)
}

// Close releases the device file.
func (b *Bus) Close() error {
	return b.file.Close()
}
