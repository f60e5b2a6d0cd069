package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNillable(t *testing.T) {
	assert.False(t, Nillable[int]())
	assert.False(t, Nillable[string]())
	assert.False(t, Nillable[struct{ p *int }]())
	assert.True(t, Nillable[*int]())
	assert.True(t, Nillable[[]byte]())
	assert.True(t, Nillable[map[string]int]())
	assert.True(t, Nillable[func()]())
	assert.True(t, Nillable[error]())
	assert.True(t, Nillable[any]())
}

func TestIsNil(t *testing.T) {
	var p *int
	var e error
	var s []int

	assert.True(t, IsNil(p))
	assert.True(t, IsNil(e))
	assert.True(t, IsNil(s))
	assert.True(t, IsNil[any](nil))
	assert.True(t, IsNil[error](p2err(nil)))

	x := 1
	assert.False(t, IsNil(&x))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil([]int{}))
}

type errPtr struct{}

func (*errPtr) Error() string { return "errPtr" }

func p2err(p *errPtr) error { return p }
