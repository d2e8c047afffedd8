package sexp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolString(t *testing.T) {
	assert.Equal(t, "skip", NewSymbol("skip").String())
	assert.True(t, NewSymbol("skip").IsSymbol())
	assert.False(t, NewSymbol("skip").IsList())
}

func TestListString(t *testing.T) {
	list := NewList([]SExp{NewSymbol("+"), NewSymbol("x0"), NewSymbol("1")})

	assert.Equal(t, "(+ x0 1)", list.String())
	assert.Equal(t, 3, list.Len())
	assert.True(t, list.IsList())
}

func TestNestedListString(t *testing.T) {
	inner := NewList([]SExp{NewSymbol("<="), NewSymbol("x0"), NewSymbol("2")})
	outer := NewList([]SExp{NewSymbol("while"), inner, NewSymbol("skip")})

	assert.Equal(t, "(while (<= x0 2) skip)", outer.String())
}

func TestEmptyListString(t *testing.T) {
	assert.Equal(t, "()", NewList(nil).String())
}
