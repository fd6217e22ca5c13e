package integer

// sqrtIterations bounds the Newton-Raphson loop in Sqrt.
const sqrtIterations = 20

// Sqrt sets x to the integer square root of x, rounded down. It panics with
// ErrDomain if x is negative.
//
// The root is found with Newton-Raphson iteration, guess = (guess + x/guess)/2,
// for at most sqrtIterations steps. The first step may move the guess up;
// after it the guesses only shrink, so the loop stops as soon as a step fails
// to decrease the guess.
func (x *Int32) Sqrt() {
	if x.IsNegative() {
		panic(ErrDomain.New("square root of %v", *x))
	}

	if x.IsZero() {
		return
	}

	two := From(2)
	guess := x.sqrtGuess()

	for i := 0; i < sqrtIterations; i++ {
		next := *x
		next.Div(guess)
		next.Add(guess)
		next.Div(two)

		if i > 0 && next.Cmp(guess) >= 0 {
			break
		}

		guess = next
	}

	*x = guess
}

// sqrtGuess picks a starting point scaled to the limb holding the highest set
// bit of x, so that large and small values converge in a few steps.
func (x Int32) sqrtGuess() Int32 {
	g := From(11)

	switch {
	case x.parts[3] > 0:
		g.Mul(From(4096))
	case x.parts[2] > 0:
		g.Mul(From(256))
	case x.parts[1] > 0:
		g.Mul(From(16))
	}

	return g
}
