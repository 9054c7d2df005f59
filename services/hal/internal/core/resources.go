package core

import (
	"context"

	"tinygo.org/x/drivers"
)

type ResourceID string // "i2c0", "uart0", "flash0"

// ---- GPIO and ADC ----

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

type PinFunc uint8

const (
	FuncGPIOIn PinFunc = iota
	FuncGPIOOut
	FuncADC
)

type GPIOHandle interface {
	Number() int
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(bool)
	Get() bool
}

type ADCHandle interface {
	// ReadMilliVolts samples the pin and returns millivolts at the pin.
	ReadMilliVolts() (uint16, error)
}

// PinHandle is a claimed pin viewed through the function it was claimed for.
type PinHandle interface {
	Pin() int
	AsGPIO() GPIOHandle
	AsADC() ADCHandle
}

// ---- Streams and storage ----

type SerialPort interface {
	Write(p []byte) (int, error)
	RecvSomeContext(ctx context.Context, buf []byte) (int, error)
}

// BlockDevice is flash-like storage: bytes read back as 0xFF after an
// erase and writes may only clear bits.
type BlockDevice interface {
	ReadAt(p []byte, off int64) (int, error)
	WriteAt(p []byte, off int64) (int, error)
	Size() int64
	EraseBlockSize() int64
	EraseBlocks(start, len int64) error
}

// ---- Device → HAL telemetry ----
// An Event is a retained value for a capability unless IsEvent is set,
// in which case it goes to .../event[/<tag>] unretained. A non-empty Err
// publishes only .../status=degraded.

type Event struct {
	Addr     CapAddr
	Payload  any
	TSms     int64
	Err      string
	IsEvent  bool
	EventTag string
}

type EventEmitter interface {
	// Emit must not block; false means the event was dropped.
	Emit(ev Event) bool
}

// ---- HAL-injected resources ----

type Resources struct {
	Reg ResourceRegistry
	Pub EventEmitter
}

type ResourceRegistry interface {
	ClaimPin(devID string, n int, fn PinFunc) (PinHandle, error)
	ReleasePin(devID string, n int)

	ClaimI2C(devID string, id ResourceID) (drivers.I2C, error)
	ReleaseI2C(devID string, id ResourceID)
}
