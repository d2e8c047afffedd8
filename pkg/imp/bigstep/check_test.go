package bigstep

import (
	"math/big"
	"testing"

	"github.com/consensys/go-imp/pkg/imp"
	"github.com/stretchr/testify/assert"
)

// Variable names (as indices) used throughout the tests.
const (
	X imp.Variable = 0
	Y imp.Variable = 1
)

// Stores the agreement checks run against: empty, partially bound, and with a
// non-zero default.
func sampleStores() []imp.Store {
	return []imp.Store{
		imp.EmptyStore(),
		imp.EmptyStore().Update(X, big.NewInt(2)).Update(Y, big.NewInt(3)),
		imp.NewStore(big.NewInt(1)).Update(X, big.NewInt(5)),
	}
}

func TestRuleTablesCoverEveryVariant(t *testing.T) {
	assert.Len(t, AExpRules(), 5, "one rule per arithmetic variant")
	assert.Len(t, BExpRules(), 5, "one rule per boolean variant")
	assert.Len(t, ComRules(), 5, "one rule per command variant")
}

// Every arithmetic rule agrees with the evaluator at every fuel value,
// including the zero-fuel boundary.
func TestAgreement_AExp(t *testing.T) {
	for _, expr := range Expressions([]imp.Variable{X, Y}) {
		for _, store := range sampleStores() {
			for fuel := imp.Fuel(0); fuel <= 6; fuel++ {
				assert.NoError(t, CheckAExp(expr, store, fuel))
			}
		}
	}
}

// Every boolean rule agrees with the evaluator at every fuel value.
func TestAgreement_BExp(t *testing.T) {
	for _, expr := range Conditions([]imp.Variable{X, Y}) {
		for _, store := range sampleStores() {
			for fuel := imp.Fuel(0); fuel <= 6; fuel++ {
				assert.NoError(t, CheckBExp(expr, store, fuel))
			}
		}
	}
}

// Every command rule agrees with the evaluator across an enumeration of
// programs nesting one level of sequencing, branching and looping.
func TestAgreement_Com(t *testing.T) {
	for _, program := range Programs([]imp.Variable{X, Y}, 1) {
		for _, store := range sampleStores() {
			for fuel := imp.Fuel(0); fuel <= 8; fuel++ {
				if err := CheckCom(program, store, fuel); err != nil {
					t.Fatal(err)
				}
			}
		}
	}
}

// The while rule must track the evaluator through the unrolling, not just at
// the top of the loop.
func TestAgreement_WhileBoundary(t *testing.T) {
	var (
		divergent  = imp.Loop(imp.True(), imp.DoNothing())
		convergent = imp.Loop(
			imp.AtMost(imp.Var(X), imp.Const(2)),
			imp.Let(X, imp.Plus(imp.Var(X), imp.Const(1))),
		)
	)
	//
	for _, store := range sampleStores() {
		for fuel := imp.Fuel(0); fuel <= 40; fuel++ {
			assert.NoError(t, CheckCom(divergent, store, fuel))
			assert.NoError(t, CheckCom(convergent, store, fuel))
		}
	}
}

func TestCheckProgram(t *testing.T) {
	program := imp.Sequence(
		imp.Let(X, imp.Const(0)),
		imp.Loop(imp.AtMost(imp.Var(X), imp.Const(2)),
			imp.Let(X, imp.Plus(imp.Var(X), imp.Const(1)))),
	)
	//
	assert.NoError(t, CheckProgram(program, imp.EmptyStore(), 30))
}

func TestSubterms(t *testing.T) {
	program := imp.If(
		imp.AtMost(imp.Var(X), imp.Const(2)),
		imp.Let(Y, imp.Plus(imp.Var(X), imp.Const(1))),
		imp.DoNothing(),
	)
	//
	aexps, bexps, coms := Subterms(program)
	//
	assert.Len(t, aexps, 5, "x0, 2, x0+1, x0 and 1")
	assert.Len(t, bexps, 1, "the condition")
	assert.Len(t, coms, 3, "the conditional and both branches")
}
