package imp

import (
	"math/big"
	"testing"
)

// Variable names (as indices) used throughout the tests.
const (
	X Variable = 0
	Y Variable = 1
	Z Variable = 2
)

// ===================================================================
// Arithmetic expressions
// ===================================================================

func TestEvalConst_1(t *testing.T) {
	CheckEvalA(t, Const(1), EmptyStore(), 1, 1)
}

func TestEvalConst_2(t *testing.T) {
	CheckEvalA(t, Const(-42), EmptyStore(), 10, -42)
}

func TestEvalVar_1(t *testing.T) {
	// Unbound variable reads as the store default.
	CheckEvalA(t, Var(X), EmptyStore(), 1, 0)
}

func TestEvalVar_2(t *testing.T) {
	st := EmptyStore().Update(X, big.NewInt(7))
	CheckEvalA(t, Var(X), st, 1, 7)
}

func TestEvalVar_3(t *testing.T) {
	st := NewStore(big.NewInt(5))
	CheckEvalA(t, Var(Y), st, 1, 5)
}

func TestEvalAdd_1(t *testing.T) {
	CheckEvalA(t, Plus(Const(1), Const(2)), EmptyStore(), 2, 3)
}

func TestEvalSub_1(t *testing.T) {
	// Subtraction is over the integers, hence can go negative.
	CheckEvalA(t, Minus(Const(1), Const(2)), EmptyStore(), 2, -1)
}

func TestEvalMul_1(t *testing.T) {
	CheckEvalA(t, Mult(Const(3), Const(4)), EmptyStore(), 2, 12)
}

func TestEvalAdd_2(t *testing.T) {
	st := EmptyStore().Update(X, big.NewInt(2)).Update(Y, big.NewInt(3))
	CheckEvalA(t, Plus(Var(X), Mult(Var(Y), Const(2))), st, 3, 8)
}

func TestEvalAExp_ZeroFuel(t *testing.T) {
	CheckExhaustedA(t, Const(1), EmptyStore(), 0)
	CheckExhaustedA(t, Var(X), EmptyStore(), 0)
	CheckExhaustedA(t, Plus(Const(1), Const(2)), EmptyStore(), 0)
}

func TestEvalAExp_InsufficientFuel(t *testing.T) {
	// One unit pays for the addition itself, leaving nothing for the
	// operands.
	CheckExhaustedA(t, Plus(Const(1), Const(2)), EmptyStore(), 1)
	CheckExhaustedA(t, Plus(Plus(Const(1), Const(2)), Const(3)), EmptyStore(), 2)
}

// ===================================================================
// Boolean expressions
// ===================================================================

func TestEvalBool_1(t *testing.T) {
	CheckEvalB(t, True(), EmptyStore(), 1, true)
	CheckEvalB(t, False(), EmptyStore(), 1, false)
}

func TestEvalEq_1(t *testing.T) {
	CheckEvalB(t, Equals(Const(2), Const(2)), EmptyStore(), 2, true)
	CheckEvalB(t, Equals(Const(2), Const(3)), EmptyStore(), 2, false)
}

func TestEvalLe_1(t *testing.T) {
	CheckEvalB(t, AtMost(Const(2), Const(3)), EmptyStore(), 2, true)
	CheckEvalB(t, AtMost(Const(3), Const(3)), EmptyStore(), 2, true)
	CheckEvalB(t, AtMost(Const(4), Const(3)), EmptyStore(), 2, false)
}

func TestEvalNot_1(t *testing.T) {
	CheckEvalB(t, Negate(True()), EmptyStore(), 2, false)
}

func TestEvalAnd_1(t *testing.T) {
	CheckEvalB(t, Conjunct(True(), False()), EmptyStore(), 2, false)
	CheckEvalB(t, Conjunct(True(), True()), EmptyStore(), 2, true)
}

func TestEvalAnd_2(t *testing.T) {
	// A false left operand does not excuse the right operand from being
	// evaluated: the conjunction still exhausts its budget.
	expr := Conjunct(False(), AtMost(Plus(Var(X), Const(1)), Const(2)))
	CheckExhaustedB(t, expr, EmptyStore(), 2)
	CheckEvalB(t, expr, EmptyStore(), 4, false)
}

func TestEvalBExp_ZeroFuel(t *testing.T) {
	CheckExhaustedB(t, True(), EmptyStore(), 0)
	CheckExhaustedB(t, AtMost(Var(X), Const(2)), EmptyStore(), 0)
}

// ===================================================================
// Commands
// ===================================================================

func TestEvalSkip_1(t *testing.T) {
	st := EmptyStore().Update(X, big.NewInt(1))
	result := EvalCom(DoNothing(), st, 1)
	//
	if result.IsEmpty() {
		t.Error("skip exhausted its fuel")
	} else if !result.Unwrap().Equals(st) {
		t.Errorf("skip changed the store: %s", result.Unwrap())
	}
}

// Z := X + Y leaves {X:2, Y:3, Z:5}.
func TestEvalAssign_1(t *testing.T) {
	st := EmptyStore().Update(X, big.NewInt(2)).Update(Y, big.NewInt(3))
	program := Let(Z, Plus(Var(X), Var(Y)))
	//
	result := EvalCom(program, st, 10)
	if result.IsEmpty() {
		t.Fatal("assignment exhausted its fuel")
	}
	//
	CheckBinding(t, result.Unwrap(), X, 2)
	CheckBinding(t, result.Unwrap(), Y, 3)
	CheckBinding(t, result.Unwrap(), Z, 5)
}

func TestEvalAssign_2(t *testing.T) {
	// The input store is a value; assignment must not disturb it.
	st := EmptyStore().Update(X, big.NewInt(1))
	//
	result := EvalCom(Let(X, Const(99)), st, 10)
	if result.IsEmpty() {
		t.Fatal("assignment exhausted its fuel")
	}
	//
	CheckBinding(t, result.Unwrap(), X, 99)
	CheckBinding(t, st, X, 1)
}

// if X <= Y then Z := 1 else Z := 0 takes the then branch for {X:10, Y:20}.
func TestEvalIf_1(t *testing.T) {
	st := EmptyStore().Update(X, big.NewInt(10)).Update(Y, big.NewInt(20))
	program := If(AtMost(Var(X), Var(Y)), Let(Z, Const(1)), Let(Z, Const(0)))
	//
	result := EvalCom(program, st, 10)
	if result.IsEmpty() {
		t.Fatal("conditional exhausted its fuel")
	}
	//
	CheckBinding(t, result.Unwrap(), Z, 1)
}

func TestEvalIf_2(t *testing.T) {
	st := EmptyStore().Update(X, big.NewInt(30))
	program := If(AtMost(Var(X), Const(20)), Let(Z, Const(1)), Let(Z, Const(0)))
	//
	result := EvalCom(program, st, 10)
	if result.IsEmpty() {
		t.Fatal("conditional exhausted its fuel")
	}
	//
	CheckBinding(t, result.Unwrap(), Z, 0)
}

func TestEvalSeq_1(t *testing.T) {
	program := Sequence(Let(X, Const(1)), Let(Y, Plus(Var(X), Const(1))))
	//
	result := EvalCom(program, EmptyStore(), 10)
	if result.IsEmpty() {
		t.Fatal("sequence exhausted its fuel")
	}
	//
	CheckBinding(t, result.Unwrap(), X, 1)
	CheckBinding(t, result.Unwrap(), Y, 2)
}

// Sequencing a skip in front of a command costs exactly one unit of fuel.
func TestEvalSeq_SkipComposition(t *testing.T) {
	st := EmptyStore().Update(X, big.NewInt(3))
	programs := []Com{
		DoNothing(),
		Let(Z, Plus(Var(X), Const(1))),
		Loop(AtMost(Var(X), Const(5)), Let(X, Plus(Var(X), Const(1)))),
	}
	//
	for _, c := range programs {
		for fuel := Fuel(1); fuel < 20; fuel++ {
			var (
				lhs = EvalCom(&Seq{&Skip{}, c}, st, fuel)
				rhs = EvalCom(c, st, fuel-1)
			)
			//
			if lhs.IsEmpty() != rhs.IsEmpty() {
				t.Errorf("seq(skip, %s) at fuel %d disagrees with %s at fuel %d", c, fuel, c, fuel-1)
			} else if lhs.HasValue() && !lhs.Unwrap().Equals(rhs.Unwrap()) {
				t.Errorf("seq(skip, %s) at fuel %d gave %s, expected %s", c, fuel, lhs.Unwrap(), rhs.Unwrap())
			}
		}
	}
}

// while X <= 2 do X := X + 1 terminates with X = 3 from X = 0.
func TestEvalWhile_1(t *testing.T) {
	st := EmptyStore().Update(X, big.NewInt(0))
	program := Loop(AtMost(Var(X), Const(2)), Let(X, Plus(Var(X), Const(1))))
	//
	result := EvalCom(program, st, 50)
	if result.IsEmpty() {
		t.Fatal("loop exhausted its fuel")
	}
	//
	CheckBinding(t, result.Unwrap(), X, 3)
}

func TestEvalWhile_2(t *testing.T) {
	// A loop whose condition fails immediately returns the store unchanged.
	st := EmptyStore().Update(X, big.NewInt(9))
	program := Loop(AtMost(Var(X), Const(2)), Let(X, Plus(Var(X), Const(1))))
	//
	result := EvalCom(program, st, 10)
	if result.IsEmpty() {
		t.Fatal("loop exhausted its fuel")
	}
	//
	if !result.Unwrap().Equals(st) {
		t.Errorf("loop changed the store: %s", result.Unwrap())
	}
}

// while true do skip never completes, whatever the budget.
func TestEvalWhile_Divergence(t *testing.T) {
	program := Loop(True(), DoNothing())
	//
	for fuel := Fuel(0); fuel < 100; fuel++ {
		if EvalCom(program, EmptyStore(), fuel).HasValue() {
			t.Errorf("divergent loop completed at fuel %d", fuel)
		}
	}
}

func TestEvalCom_ZeroFuel(t *testing.T) {
	programs := []Com{
		DoNothing(),
		Let(X, Const(1)),
		Sequence(DoNothing(), DoNothing()),
		If(True(), DoNothing(), DoNothing()),
		Loop(False(), DoNothing()),
	}
	//
	for _, c := range programs {
		if EvalCom(c, EmptyStore(), 0).HasValue() {
			t.Errorf("%s completed with zero fuel", c)
		}
	}
}

// ===================================================================
// Helpers
// ===================================================================

func CheckEvalA(t *testing.T, expr AExp, store Store, fuel Fuel, expected int64) {
	result := expr.EvalIn(store, fuel)
	//
	if result.IsEmpty() {
		t.Errorf("evaluation of %s exhausted fuel %d", expr, fuel)
	} else if result.Unwrap().Cmp(big.NewInt(expected)) != 0 {
		t.Errorf("evaluation of %s gave %s, expected %d", expr, result.Unwrap(), expected)
	}
}

func CheckEvalB(t *testing.T, expr BExp, store Store, fuel Fuel, expected bool) {
	result := expr.EvalIn(store, fuel)
	//
	if result.IsEmpty() {
		t.Errorf("evaluation of %s exhausted fuel %d", expr, fuel)
	} else if result.Unwrap() != expected {
		t.Errorf("evaluation of %s gave %t, expected %t", expr, result.Unwrap(), expected)
	}
}

func CheckExhaustedA(t *testing.T, expr AExp, store Store, fuel Fuel) {
	if expr.EvalIn(store, fuel).HasValue() {
		t.Errorf("evaluation of %s completed with fuel %d", expr, fuel)
	}
}

func CheckExhaustedB(t *testing.T, expr BExp, store Store, fuel Fuel) {
	if expr.EvalIn(store, fuel).HasValue() {
		t.Errorf("evaluation of %s completed with fuel %d", expr, fuel)
	}
}

func CheckBinding(t *testing.T, store Store, x Variable, expected int64) {
	if store.Lookup(x).Cmp(big.NewInt(expected)) != 0 {
		t.Errorf("variable x%d holds %s, expected %d", x, store.Lookup(x), expected)
	}
}
