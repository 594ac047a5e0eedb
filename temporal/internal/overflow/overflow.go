// Package overflow provides integer arithmetic that reports overflow instead of wrapping.
package overflow

// Signed is the set of integer types supported by this package.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

func bounds[T Signed]() (lo, hi T) {
	n := 0
	for v := T(1); v != 0; v <<= 1 {
		n++
	}
	hi = T(1)<<(n-1) - 1
	return -hi - 1, hi
}

// Add returns a+b and false if the result overflows.
func Add[T Signed](a, b T) (T, bool) {
	c := a + b
	if (c > a) == (b > 0) {
		return c, true
	}
	return c, false
}

// Sub returns a-b and false if the result overflows.
func Sub[T Signed](a, b T) (T, bool) {
	c := a - b
	if (c < a) == (b > 0) {
		return c, true
	}
	return c, false
}

// Mul returns a*b and false if the result overflows.
func Mul[T Signed](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	lo, _ := bounds[T]()
	if (a == -1 && b == lo) || (b == -1 && a == lo) {
		return c, false
	}
	if c/b != a {
		return c, false
	}
	return c, true
}

// Div returns a/b truncated towards zero and false on overflow or division by zero.
func Div[T Signed](a, b T) (T, bool) {
	if b == 0 {
		return 0, false
	}
	lo, _ := bounds[T]()
	if a == lo && b == -1 {
		return 0, false
	}
	return a / b, true
}

// Mod returns a%b and false on division by zero.
func Mod[T Signed](a, b T) (T, bool) {
	if b == 0 {
		return 0, false
	}
	if b == -1 {
		return 0, true
	}
	return a % b, true
}

// Neg returns -a and false if a is the minimum value of T.
func Neg[T Signed](a T) (T, bool) {
	lo, _ := bounds[T]()
	if a == lo {
		return a, false
	}
	return -a, true
}

// FloorDiv returns the quotient and remainder of a/b rounded towards negative infinity,
// so the remainder always has the sign of b.
func FloorDiv[T Signed](a, b T) (q, r T, ok bool) {
	q, ok = Div(a, b)
	if !ok {
		return 0, 0, false
	}
	r = a - q*b
	if r != 0 && (r < 0) != (b < 0) {
		q--
		r += b
	}
	return q, r, true
}
