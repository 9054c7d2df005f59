// Package pca9685 drives the NXP PCA9685 16-channel, 12-bit PWM expander.
//
// Only what an LED panel needs is exposed: oscillator setup, per-channel
// duty and a burst write over consecutive channels. Register auto-increment
// is enabled by Configure so a burst is a single I2C transaction.
package pca9685

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"
)

// Default I2C address with all address pins low.
const Address = 0x40

const (
	Channels = 16
	// MaxDuty is the full-scale 12-bit duty.
	MaxDuty = 4095
)

const (
	regMode1    = 0x00
	regMode2    = 0x01
	regLED0     = 0x06
	regAllLED   = 0xFA
	regPrescale = 0xFE

	mode1AI      = 0x20
	mode1Sleep   = 0x10
	mode1Restart = 0x80

	mode2Invert = 0x10
	mode2OutDrv = 0x04

	fullBit = 0x10 // bit 4 of ON_H / OFF_H

	oscHz = 25_000_000
)

var (
	ErrInvalidChannel = errors.New("pca9685: invalid channel")
	ErrInvalidFreq    = errors.New("pca9685: frequency out of range")
)

type Config struct {
	// Address defaults to 0x40 if zero.
	Address uint16
	// FreqHz is the PWM frequency, 24..1526 Hz. Default 1000.
	FreqHz uint32
	// Invert flips output polarity (for sinking LEDs wired to V+).
	Invert bool
	// OpenDrain selects open-drain outputs instead of totem pole.
	OpenDrain bool
}

type Device struct {
	bus     drivers.I2C
	Address uint16
	buf     [1 + 4*Channels]byte
}

// New creates a Device on an already configured bus. It does not touch the chip.
func New(bus drivers.I2C) Device {
	return Device{bus: bus, Address: Address}
}

// Configure programs the prescaler and output mode, then wakes the chip.
func (d *Device) Configure(cfg Config) error {
	if cfg.Address != 0 {
		d.Address = cfg.Address
	}
	if cfg.FreqHz == 0 {
		cfg.FreqHz = 1000
	}
	pre, err := Prescale(cfg.FreqHz)
	if err != nil {
		return err
	}
	// Prescale is only writable while asleep.
	if err := d.write(regMode1, mode1Sleep|mode1AI); err != nil {
		return err
	}
	if err := d.write(regPrescale, pre); err != nil {
		return err
	}
	var m2 byte
	if !cfg.OpenDrain {
		m2 |= mode2OutDrv
	}
	if cfg.Invert {
		m2 |= mode2Invert
	}
	if err := d.write(regMode2, m2); err != nil {
		return err
	}
	if err := d.write(regMode1, mode1AI); err != nil {
		return err
	}
	// Oscillator needs 500 us after leaving sleep.
	time.Sleep(time.Millisecond)
	return d.write(regMode1, mode1AI|mode1Restart)
}

// Prescale returns the prescaler value for a PWM frequency.
func Prescale(freqHz uint32) (byte, error) {
	if freqHz == 0 {
		return 0, ErrInvalidFreq
	}
	// round(osc / (4096*f)) - 1
	div := uint32(4096) * freqHz
	v := (oscHz+div/2)/div - 1
	if v < 3 || v > 255 {
		return 0, ErrInvalidFreq
	}
	return byte(v), nil
}

// SetDuty sets one channel to duty/4095. Values above MaxDuty are full on.
func (d *Device) SetDuty(ch int, duty uint16) error {
	if ch < 0 || ch >= Channels {
		return ErrInvalidChannel
	}
	d.buf[0] = regLED0 + byte(4*ch)
	encode(d.buf[1:5], duty)
	return d.bus.Tx(d.Address, d.buf[:5], nil)
}

// SetDuties writes consecutive channels starting at first in one transfer.
func (d *Device) SetDuties(first int, duties []uint16) error {
	if first < 0 || first+len(duties) > Channels {
		return ErrInvalidChannel
	}
	if len(duties) == 0 {
		return nil
	}
	d.buf[0] = regLED0 + byte(4*first)
	for i, v := range duties {
		encode(d.buf[1+4*i:5+4*i], v)
	}
	return d.bus.Tx(d.Address, d.buf[:1+4*len(duties)], nil)
}

// AllOff forces every output low.
func (d *Device) AllOff() error {
	d.buf[0] = regAllLED
	encode(d.buf[1:5], 0)
	return d.bus.Tx(d.Address, d.buf[:5], nil)
}

// encode fills ON_L, ON_H, OFF_L, OFF_H for a duty.
func encode(b []byte, duty uint16) {
	switch {
	case duty == 0:
		b[0], b[1], b[2], b[3] = 0, 0, 0, fullBit
	case duty >= MaxDuty:
		b[0], b[1], b[2], b[3] = 0, fullBit, 0, 0
	default:
		b[0], b[1] = 0, 0
		b[2], b[3] = byte(duty), byte(duty>>8)&0x0F
	}
}

func (d *Device) write(reg, val byte) error {
	d.buf[0], d.buf[1] = reg, val
	return d.bus.Tx(d.Address, d.buf[:2], nil)
}
