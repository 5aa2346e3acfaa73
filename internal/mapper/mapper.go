// Package mapper resolves GBA bus addresses into the cartridge image and the
// working memory snapshot.
package mapper

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/retroenv/bndata/internal/lz77"
)

// Region identifies the memory a bus address belongs to.
type Region int

const (
	// Unmapped is returned for addresses outside every known region.
	Unmapped Region = iota
	// WRAM is the external working memory, 0x02000000-0x03ffffff.
	WRAM
	// ROM is the cartridge image, 0x08000000-0x09ffffff.
	ROM
	// CompressedROM addresses LZ77 streams inside the cartridge image, 0x88000000-0x89ffffff.
	CompressedROM
)

const (
	wramBase           = 0x02000000
	romBase            = 0x08000000
	compressedROMBase  = 0x88000000
	regionWindowLength = 0x02000000
)

var (
	// ErrUnmapped is returned for addresses that are in no region.
	ErrUnmapped = errors.New("address is not mapped")
	// ErrOutOfRange is returned for addresses that are in a region but past its data.
	ErrOutOfRange = errors.New("address is beyond the region data")
	// ErrShortRead is returned when fewer bytes than requested are available.
	ErrShortRead = errors.New("not enough data at address")
)

// Mapper gives read access to a cartridge image and a working memory snapshot
// by bus address. It is safe for concurrent use.
type Mapper struct {
	rom  []byte
	wram []byte

	mu           sync.Mutex
	decompressed map[uint32][]byte
}

// New creates a mapper over the given cartridge image and working memory.
// The mapper keeps the slices, callers must not modify them afterwards.
func New(rom, wram []byte) *Mapper {
	return &Mapper{
		rom:          rom,
		wram:         wram,
		decompressed: map[uint32][]byte{},
	}
}

// RegionOf returns the region that the address belongs to.
func RegionOf(address uint32) Region {
	switch {
	case address >= wramBase && address < wramBase+regionWindowLength:
		return WRAM
	case address >= romBase && address < romBase+regionWindowLength:
		return ROM
	case address >= compressedROMBase && address < compressedROMBase+regionWindowLength:
		return CompressedROM
	default:
		return Unmapped
	}
}

// Get returns the bytes starting at the address up to the end of the region
// that contains it. For compressed cartridge addresses the decompressed stream
// is returned. The returned slice is shared and must not be modified.
func (m *Mapper) Get(address uint32) ([]byte, error) {
	switch RegionOf(address) {
	case WRAM:
		return tail(m.wram, address, address-wramBase)
	case ROM:
		return tail(m.rom, address, address-romBase)
	case CompressedROM:
		return m.getCompressed(address)
	default:
		return nil, fmt.Errorf("%w: 0x%08x", ErrUnmapped, address)
	}
}

// Slice returns exactly n bytes starting at the address.
func (m *Mapper) Slice(address uint32, n int) ([]byte, error) {
	buf, err := m.Get(address)
	if err != nil {
		return nil, err
	}
	if len(buf) < n {
		return nil, fmt.Errorf("%w: 0x%08x needs %d bytes, has %d", ErrShortRead, address, n, len(buf))
	}
	return buf[:n], nil
}

// ReadU32 reads a little endian 32 bit value at the address.
func (m *Mapper) ReadU32(address uint32) (uint32, error) {
	buf, err := m.Slice(address, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// Deref reads the pointer stored at the address and returns n bytes at the
// location it points to.
func (m *Mapper) Deref(address uint32, n int) ([]byte, error) {
	pointer, err := m.ReadU32(address)
	if err != nil {
		return nil, fmt.Errorf("reading pointer at 0x%08x: %w", address, err)
	}
	buf, err := m.Slice(pointer, n)
	if err != nil {
		return nil, fmt.Errorf("resolving pointer at 0x%08x: %w", address, err)
	}
	return buf, nil
}

// DerefAll is like Deref but returns everything up to the end of the region.
func (m *Mapper) DerefAll(address uint32) ([]byte, error) {
	pointer, err := m.ReadU32(address)
	if err != nil {
		return nil, fmt.Errorf("reading pointer at 0x%08x: %w", address, err)
	}
	buf, err := m.Get(pointer)
	if err != nil {
		return nil, fmt.Errorf("resolving pointer at 0x%08x: %w", address, err)
	}
	return buf, nil
}

func (m *Mapper) getCompressed(address uint32) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if buf, ok := m.decompressed[address]; ok {
		return buf, nil
	}

	raw, err := tail(m.rom, address, address-compressedROMBase)
	if err != nil {
		return nil, err
	}
	buf, err := lz77.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decompressing 0x%08x: %w", address, err)
	}
	m.decompressed[address] = buf
	return buf, nil
}

func tail(data []byte, address, offset uint32) ([]byte, error) {
	if uint64(offset) >= uint64(len(data)) {
		return nil, fmt.Errorf("%w: 0x%08x", ErrOutOfRange, address)
	}
	return data[offset:], nil
}
