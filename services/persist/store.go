// Package persist keeps the last selected animation across power cycles.
//
// Records are appended to a flash region so each save costs one small
// write; the region is erased only when it fills up. The newest record
// with a valid checksum wins.
package persist

import (
	"errors"

	"github.com/sigurn/crc16"
)

// BlockDevice is flash-like storage: erased bytes read 0xFF and writes may
// only clear bits.
type BlockDevice interface {
	ReadAt(p []byte, off int64) (int, error)
	WriteAt(p []byte, off int64) (int, error)
	Size() int64
	EraseBlockSize() int64
	EraseBlocks(start, len int64) error
}

// A record is {magic, index, crc hi, crc lo}; the CRC covers the first
// two bytes.
const (
	recordSize = 4
	magic      = 0xA5
)

var (
	ErrNoRecord    = errors.New("persist: no valid record")
	ErrBadGeometry = errors.New("persist: region not aligned to erase blocks")
)

// Store is a record log over [offset, offset+size) of a block device.
type Store struct {
	dev    BlockDevice
	offset int64
	size   int64

	next   int64 // slot number of the next write
	latest uint8
	valid  bool
}

// Open checks the region geometry and scans it for the newest record.
// A full region is erased and the newest record, if any, written back to
// the first slot.
func Open(dev BlockDevice, offset, size int64) (*Store, error) {
	bs := dev.EraseBlockSize()
	if bs <= 0 || size < recordSize || offset%bs != 0 || size%bs != 0 || offset+size > dev.Size() {
		return nil, ErrBadGeometry
	}
	s := &Store{dev: dev, offset: offset, size: size}
	if err := s.scan(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) slots() int64 { return s.size / recordSize }

func (s *Store) scan() error {
	var rec [recordSize]byte
	empty := false
	for i := int64(0); i < s.slots(); i++ {
		if _, err := s.dev.ReadAt(rec[:], s.offset+i*recordSize); err != nil {
			return err
		}
		if idx, ok := decode(rec); ok {
			s.latest, s.valid = idx, true
			continue
		}
		if erased(rec) {
			s.next = i
			empty = true
			break
		}
	}
	if empty {
		return nil
	}
	if err := s.erase(); err != nil {
		return err
	}
	if s.valid {
		return s.write(s.latest)
	}
	return nil
}

// Load returns the newest stored index.
func (s *Store) Load() (uint8, error) {
	if !s.valid {
		return 0, ErrNoRecord
	}
	return s.latest, nil
}

// Save appends a record. Saving the value already stored is a no-op.
func (s *Store) Save(index uint8) error {
	if s.valid && s.latest == index {
		return nil
	}
	if s.next >= s.slots() {
		if err := s.erase(); err != nil {
			return err
		}
	}
	return s.write(index)
}

func (s *Store) write(index uint8) error {
	rec := encode(index)
	if _, err := s.dev.WriteAt(rec[:], s.offset+s.next*recordSize); err != nil {
		return err
	}
	s.next++
	s.latest, s.valid = index, true
	return nil
}

func (s *Store) erase() error {
	bs := s.dev.EraseBlockSize()
	if err := s.dev.EraseBlocks(s.offset/bs, s.size/bs); err != nil {
		return err
	}
	s.next = 0
	return nil
}

func encode(index uint8) [recordSize]byte {
	rec := [recordSize]byte{magic, index}
	c := checksum(rec[:2])
	rec[2], rec[3] = byte(c>>8), byte(c)
	return rec
}

func decode(rec [recordSize]byte) (uint8, bool) {
	if rec[0] != magic {
		return 0, false
	}
	return rec[1], checksum(rec[:2]) == uint16(rec[2])<<8|uint16(rec[3])
}

func erased(rec [recordSize]byte) bool {
	return rec == [recordSize]byte{0xFF, 0xFF, 0xFF, 0xFF}
}

var crcTable = crc16.MakeTable(crc16.CCITT_FALSE)

// checksum is CRC-16/CCITT-FALSE: poly 0x1021, seed 0xFFFF, no reflection.
func checksum(b []byte) uint16 { return crc16.Checksum(b, crcTable) }
