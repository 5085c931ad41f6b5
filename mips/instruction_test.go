package mips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text  string
		op    string
		args  []string
		class Class
	}){
		{"li $t0, 10", "li", []string{"$t0", "10"}, CLASS_I},
		{"LA $a0, msg", "la", []string{"$a0", "msg"}, CLASS_I},
		{"add $t2, $t0, $t1", "add", []string{"$t2", "$t0", "$t1"}, CLASS_R},
		{"sub $t2,$t0,$t1", "sub", []string{"$t2", "$t0", "$t1"}, CLASS_R},
		{"and $t0, $t0, $t1", "and", []string{"$t0", "$t0", "$t1"}, CLASS_R},
		{"or $t0, $t0, $t1", "or", []string{"$t0", "$t0", "$t1"}, CLASS_R},
		{"j end", "j", []string{"end"}, CLASS_J},
		{"jal func", "jal", []string{"func"}, CLASS_J},
		{"beq $t0, $t1, loop", "beq", []string{"$t0", "$t1", "loop"}, CLASS_I},
		{"sw $t0, -4($sp)", "sw", []string{"$t0", "-4($sp)"}, CLASS_I},
		{"nop", "nop", []string(nil), CLASS_I},
	}

	for _, entry := range table {
		inst := Decode(entry.text)
		assert.Equal(entry.op, inst.Op, entry.text)
		assert.Equal(entry.args, inst.Args, entry.text)
		assert.Equal(entry.class, inst.Class, entry.text)
		assert.Equal(entry.text, inst.Text, entry.text)
	}
}

func TestDecode_Code32(t *testing.T) {
	assert := assert.New(t)

	a := Decode("li $t0, 10")
	b := Decode("li $t0, 10")
	c := Decode("li $t0, 11")

	// Deterministic, text-dependent, display only.
	assert.Equal(a.Code32, b.Code32)
	assert.NotEqual(a.Code32, c.Code32)
}

func TestClass_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("R", CLASS_R.String())
	assert.Equal("I", CLASS_I.String())
	assert.Equal("J", CLASS_J.String())
}
