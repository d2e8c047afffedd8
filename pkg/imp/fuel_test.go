package imp

import (
	"math/big"
	"math/rand/v2"
	"testing"
)

// Number of random programs evaluated by each property test.
const NumSamples = 500

// Fuel ceiling used when sweeping budgets.
const MaxFuel = Fuel(24)

// Evaluation is a pure function of (program, store, fuel): two calls with
// identical arguments always return identical results.
func TestEvalDeterminism(t *testing.T) {
	rnd := rand.New(rand.NewPCG(0, 0))
	//
	for i := 0; i < NumSamples; i++ {
		var (
			program = RandomCom(rnd, 3)
			store   = RandomStore(rnd)
			fuel    = Fuel(rnd.UintN(uint(MaxFuel)))
			first   = EvalCom(program, store, fuel)
			second  = EvalCom(program, store, fuel)
		)
		//
		if first.IsEmpty() != second.IsEmpty() {
			t.Fatalf("%s at fuel %d is non-deterministic", program, fuel)
		} else if first.HasValue() && !first.Unwrap().Equals(second.Unwrap()) {
			t.Fatalf("%s at fuel %d gave both %s and %s", program, fuel,
				first.Unwrap(), second.Unwrap())
		}
	}
}

// More fuel never changes a completed answer: once evaluation succeeds at some
// budget, every larger budget succeeds with the identical store.
func TestFuelMonotonicity(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 0))
	//
	for i := 0; i < NumSamples; i++ {
		var (
			program   = RandomCom(rnd, 3)
			store     = RandomStore(rnd)
			completed = false
			result    Store
		)
		//
		for fuel := Fuel(0); fuel <= MaxFuel; fuel++ {
			outcome := EvalCom(program, store, fuel)
			//
			if completed && outcome.IsEmpty() {
				t.Fatalf("%s completed at a smaller budget but not at fuel %d", program, fuel)
			} else if completed && !outcome.Unwrap().Equals(result) {
				t.Fatalf("%s changed its answer at fuel %d: %s vs %s", program, fuel,
					result, outcome.Unwrap())
			} else if !completed && outcome.HasValue() {
				completed = true
				result = outcome.Unwrap()
			}
		}
	}
}

// Zero fuel yields the exhaustion sentinel for every program whatsoever.
func TestZeroFuelFloor(t *testing.T) {
	rnd := rand.New(rand.NewPCG(2, 0))
	//
	for i := 0; i < NumSamples; i++ {
		var (
			program = RandomCom(rnd, 3)
			store   = RandomStore(rnd)
		)
		//
		if EvalCom(program, store, 0).HasValue() {
			t.Fatalf("%s completed with zero fuel", program)
		}
	}
}

// ===================================================================
// Random generation
// ===================================================================

// RandomCom generates a random command up to a given nesting depth.
func RandomCom(rnd *rand.Rand, depth uint) Com {
	if depth == 0 || rnd.UintN(4) == 0 {
		// Leaf command
		if rnd.UintN(4) == 0 {
			return DoNothing()
		}
		//
		return Let(RandomVariable(rnd), RandomAExp(rnd, 2))
	}
	//
	switch rnd.UintN(3) {
	case 0:
		return &Seq{RandomCom(rnd, depth-1), RandomCom(rnd, depth-1)}
	case 1:
		return &IfElse{RandomBExp(rnd, 2), RandomCom(rnd, depth-1), RandomCom(rnd, depth-1)}
	default:
		return &While{RandomBExp(rnd, 2), RandomCom(rnd, depth-1)}
	}
}

// RandomAExp generates a random arithmetic expression up to a given depth.
func RandomAExp(rnd *rand.Rand, depth uint) AExp {
	if depth == 0 || rnd.UintN(2) == 0 {
		if rnd.UintN(2) == 0 {
			return Const(int64(rnd.UintN(5)) - 1)
		}
		//
		return Var(RandomVariable(rnd))
	}
	//
	switch rnd.UintN(3) {
	case 0:
		return Plus(RandomAExp(rnd, depth-1), RandomAExp(rnd, depth-1))
	case 1:
		return Minus(RandomAExp(rnd, depth-1), RandomAExp(rnd, depth-1))
	default:
		return Mult(RandomAExp(rnd, depth-1), RandomAExp(rnd, depth-1))
	}
}

// RandomBExp generates a random boolean expression up to a given depth.
func RandomBExp(rnd *rand.Rand, depth uint) BExp {
	if depth == 0 || rnd.UintN(3) == 0 {
		return Bool(rnd.UintN(2) == 0)
	}
	//
	switch rnd.UintN(4) {
	case 0:
		return Equals(RandomAExp(rnd, depth-1), RandomAExp(rnd, depth-1))
	case 1:
		return AtMost(RandomAExp(rnd, depth-1), RandomAExp(rnd, depth-1))
	case 2:
		return Negate(RandomBExp(rnd, depth-1))
	default:
		return Conjunct(RandomBExp(rnd, depth-1), RandomBExp(rnd, depth-1))
	}
}

// RandomVariable picks one of three variables.
func RandomVariable(rnd *rand.Rand) Variable {
	return Variable(rnd.UintN(3))
}

// RandomStore generates a store binding a random subset of the variables to
// small values.
func RandomStore(rnd *rand.Rand) Store {
	store := EmptyStore()
	//
	for x := Variable(0); x < 3; x++ {
		if rnd.UintN(2) == 0 {
			store = store.Update(x, big.NewInt(int64(rnd.UintN(5))))
		}
	}
	//
	return store
}
