package mips

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

const (
	MEMORY_SIZE = 1024 // Default data memory size in bytes.
)

// ValueKind tags the provenance of a memory write: whether the value's
// origin was numeric or textual. The raw bytes alone cannot distinguish
// the two, so the tag is recorded per write.
type ValueKind int

const (
	KIND_INTEGER = ValueKind(0)
	KIND_TEXT    = ValueKind(1)
)

// Value is a typed value read back from memory.
type Value struct {
	Kind ValueKind
	Int  int64
	Text string
}

// provenance records the size class and kind of the most recent write
// starting at an address.
type provenance struct {
	size int
	kind ValueKind
}

// MemoryRow is a single data memory snapshot entry. String rows span a
// run of adjacent textual bytes and carry no decimal value.
type MemoryRow struct {
	Addr   int
	Type   string // Byte, Halfword, Word or String
	Hex    string // Hex or quoted representation.
	Dec    int64
	HasDec bool
}

// Memory is the byte-addressable data store. Writes record provenance
// per start address so the snapshot can reconstruct printable values.
type Memory struct {
	data []byte
	tags map[int]provenance
}

// NewMemory creates a zeroed data memory of the given byte size.
func NewMemory(size int) (mem *Memory) {
	mem = &Memory{
		data: make([]byte, size),
		tags: make(map[int]provenance, 16),
	}

	return
}

// Size returns the memory size in bytes.
func (mem *Memory) Size() int {
	return len(mem.data)
}

// checkRange validates size and that [addr, addr+size) lies in bounds.
func (mem *Memory) checkRange(addr, size int) (err error) {
	switch size {
	case 1, 2, 4:
		// pass
	default:
		err = ErrSizeInvalid
		return
	}

	if addr < 0 || addr+size > len(mem.data) {
		err = ErrMemoryBounds{Addr: addr, Size: size}
		return
	}

	return
}

// WriteInt stores an integer little-endian, truncated to size bytes.
func (mem *Memory) WriteInt(addr int, value int64, size int) (err error) {
	err = mem.checkRange(addr, size)
	if err != nil {
		return
	}

	for n := range size {
		mem.data[addr+n] = byte(value >> (8 * n))
	}
	mem.tags[addr] = provenance{size: size, kind: KIND_INTEGER}

	return
}

// WriteText stores a fixed-length textual value whose encoded byte
// length must exactly equal size.
func (mem *Memory) WriteText(addr int, text string, size int) (err error) {
	err = mem.checkRange(addr, size)
	if err != nil {
		return
	}

	if len(text) != size {
		err = ErrSizeMismatch
		return
	}

	copy(mem.data[addr:addr+size], text)
	mem.tags[addr] = provenance{size: size, kind: KIND_TEXT}

	return
}

// readInt interprets size bytes at addr as a little-endian signed
// integer. Bounds must already have been checked.
func (mem *Memory) readInt(addr, size int) (value int64) {
	for n := size - 1; n >= 0; n-- {
		value = (value << 8) | int64(mem.data[addr+n])
	}

	// Sign-extend from the size's top bit.
	shift := 64 - 8*size
	value = (value << shift) >> shift

	return
}

// Read returns the value at an address. The result is textual only when
// the most recent write at exactly that address was textual and the
// requested size matches the recorded provenance; otherwise it is the
// little-endian signed integer interpretation of the raw bytes.
func (mem *Memory) Read(addr, size int) (value Value, err error) {
	err = mem.checkRange(addr, size)
	if err != nil {
		return
	}

	tag, ok := mem.tags[addr]
	if ok && tag.kind == KIND_TEXT && tag.size == size {
		value = Value{Kind: KIND_TEXT, Text: string(mem.data[addr : addr+size])}
		return
	}

	value = Value{Kind: KIND_INTEGER, Int: mem.readInt(addr, size)}
	return
}

// textRun returns the length of the maximal run of adjacent single-byte
// textual writes starting at addr, each byte printable and non-null.
func (mem *Memory) textRun(addr int) (run int) {
	for {
		tag, ok := mem.tags[addr+run]
		if !ok || tag.size != 1 || tag.kind != KIND_TEXT {
			return
		}
		b := mem.data[addr+run]
		if b == 0 || !strconv.IsPrint(rune(b)) {
			return
		}
		run++
	}
}

// sizeType maps a write size class to its display type tag.
func sizeType(size int) (tag string) {
	switch size {
	case 1:
		tag = "Byte"
	case 2:
		tag = "Halfword"
	case 4:
		tag = "Word"
	default:
		tag = fmt.Sprintf("%dB", size)
	}

	return
}

// Rows returns the memory snapshot in ascending address order. Maximal
// adjacent runs of printable single-byte textual writes are grouped into
// one String row; all other written addresses are reported individually.
func (mem *Memory) Rows() (rows []MemoryRow) {
	addrs := slices.Sorted(maps.Keys(mem.tags))

	for n := 0; n < len(addrs); {
		addr := addrs[n]
		tag := mem.tags[addr]

		if run := mem.textRun(addr); run > 1 {
			rows = append(rows, MemoryRow{
				Addr: addr,
				Type: "String",
				Hex:  strconv.Quote(string(mem.data[addr : addr+run])),
			})
			for n < len(addrs) && addrs[n] < addr+run {
				n++
			}
			continue
		}

		value := mem.readInt(addr, tag.size)
		hex := fmt.Sprintf("%#x", value)
		if tag.kind == KIND_TEXT {
			hex = strconv.Quote(string(mem.data[addr : addr+tag.size]))
		}
		rows = append(rows, MemoryRow{
			Addr:   addr,
			Type:   sizeType(tag.size),
			Hex:    hex,
			Dec:    value,
			HasDec: true,
		})
		n++
	}

	return
}
