package mips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_IntRoundTrip(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		addr  int
		value int64
		size  int
	}){
		{"byte_pos", 0, 0x5a, 1},
		{"byte_neg", 1, -1, 1},
		{"half_pos", 2, 0x1234, 2},
		{"half_neg", 4, -32768, 2},
		{"word_pos", 8, 0x12345678, 4},
		{"word_neg", 12, -2147483648, 4},
	}

	mem := NewMemory(16)

	for _, entry := range table {
		err := mem.WriteInt(entry.addr, entry.value, entry.size)
		assert.NoError(err, entry.name)

		value, err := mem.Read(entry.addr, entry.size)
		assert.NoError(err, entry.name)
		assert.Equal(KIND_INTEGER, value.Kind, entry.name)
		assert.Equal(entry.value, value.Int, entry.name)
	}
}

func TestMemory_LittleEndian(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(8)
	assert.NoError(mem.WriteInt(0, 0x11223344, 4))

	value, err := mem.Read(0, 1)
	assert.NoError(err)
	assert.Equal(int64(0x44), value.Int)

	value, err = mem.Read(3, 1)
	assert.NoError(err)
	assert.Equal(int64(0x11), value.Int)
}

func TestMemory_Text(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(16)

	err := mem.WriteText(0, "ab", 2)
	assert.NoError(err)

	value, err := mem.Read(0, 2)
	assert.NoError(err)
	assert.Equal(KIND_TEXT, value.Kind)
	assert.Equal("ab", value.Text)

	// A size that does not match the provenance reads as an integer.
	value, err = mem.Read(0, 1)
	assert.NoError(err)
	assert.Equal(KIND_INTEGER, value.Kind)
	assert.Equal(int64('a'), value.Int)
}

func TestMemory_TextSizeMismatch(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(16)

	err := mem.WriteText(0, "abc", 2)
	assert.ErrorIs(err, ErrSizeMismatch)

	// Nothing was written.
	value, err := mem.Read(0, 2)
	assert.NoError(err)
	assert.Equal(int64(0), value.Int)
}

func TestMemory_Bounds(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(8)
	assert.NoError(mem.WriteInt(0, 0x55, 1))

	table := [](struct {
		name string
		addr int
		size int
	}){
		{"negative", -1, 1},
		{"past_end", 8, 1},
		{"straddle", 6, 4},
	}

	for _, entry := range table {
		err := mem.WriteInt(entry.addr, 1, entry.size)
		assert.ErrorIs(err, ErrMemoryBounds{}, entry.name)

		_, err = mem.Read(entry.addr, entry.size)
		assert.ErrorIs(err, ErrMemoryBounds{}, entry.name)
	}

	// Failed accesses leave memory unchanged.
	value, err := mem.Read(0, 1)
	assert.NoError(err)
	assert.Equal(int64(0x55), value.Int)
	assert.Equal(1, len(mem.Rows()))
}

func TestMemory_SizeInvalid(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(8)
	assert.ErrorIs(mem.WriteInt(0, 1, 3), ErrSizeInvalid)
	_, err := mem.Read(0, 8)
	assert.ErrorIs(err, ErrSizeInvalid)
}

func TestMemory_StringRun(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(32)

	for n, c := range []byte("hello") {
		assert.NoError(mem.WriteText(4+n, string(c), 1))
	}

	rows := mem.Rows()
	assert.Equal(1, len(rows))
	assert.Equal(4, rows[0].Addr)
	assert.Equal("String", rows[0].Type)
	assert.Equal(`"hello"`, rows[0].Hex)
	assert.False(rows[0].HasDec)
}

func TestMemory_RowsMixed(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(32)

	assert.NoError(mem.WriteInt(0, 7, 1))
	assert.NoError(mem.WriteText(2, "a", 1))
	assert.NoError(mem.WriteInt(8, -2, 2))
	assert.NoError(mem.WriteInt(12, 100, 4))

	rows := mem.Rows()
	assert.Equal(4, len(rows))

	assert.Equal("Byte", rows[0].Type)
	assert.Equal(int64(7), rows[0].Dec)

	// A single textual byte stays a Byte row with a quoted value.
	assert.Equal(2, rows[1].Addr)
	assert.Equal("Byte", rows[1].Type)
	assert.Equal(`"a"`, rows[1].Hex)
	assert.True(rows[1].HasDec)

	assert.Equal("Halfword", rows[2].Type)
	assert.Equal(int64(-2), rows[2].Dec)

	assert.Equal("Word", rows[3].Type)
	assert.Equal(int64(100), rows[3].Dec)
}

func TestMemory_Overwrite(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(16)

	assert.NoError(mem.WriteText(0, "ab", 2))
	assert.NoError(mem.WriteInt(0, 9, 4))

	// The new provenance at the start address wins.
	value, err := mem.Read(0, 4)
	assert.NoError(err)
	assert.Equal(KIND_INTEGER, value.Kind)
	assert.Equal(int64(9), value.Int)
}
