package imp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLispAExp(t *testing.T) {
	assert.Equal(t, "-5", Const(-5).String())
	assert.Equal(t, "x1", Var(Y).String())
	assert.Equal(t, "(+ x0 1)", Plus(Var(X), Const(1)).String())
	assert.Equal(t, "(- x0 (* x1 2))", Minus(Var(X), Mult(Var(Y), Const(2))).String())
}

func TestLispBExp(t *testing.T) {
	assert.Equal(t, "true", True().String())
	assert.Equal(t, "(== x0 1)", Equals(Var(X), Const(1)).String())
	assert.Equal(t, "(&& (<= x0 2) (! false))",
		Conjunct(AtMost(Var(X), Const(2)), Negate(False())).String())
}

func TestLispCom(t *testing.T) {
	assert.Equal(t, "skip", DoNothing().String())
	assert.Equal(t, "(:= x2 (+ x0 x1))", Let(Z, Plus(Var(X), Var(Y))).String())
	assert.Equal(t, "(seq (:= x0 1) skip)",
		Sequence(Let(X, Const(1)), DoNothing()).String())
	assert.Equal(t, "(if (<= x0 x1) (:= x2 1) (:= x2 0))",
		If(AtMost(Var(X), Var(Y)), Let(Z, Const(1)), Let(Z, Const(0))).String())
	assert.Equal(t, "(while (<= x0 2) (:= x0 (+ x0 1)))",
		Loop(AtMost(Var(X), Const(2)), Let(X, Plus(Var(X), Const(1)))).String())
}
