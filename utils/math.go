package utils

import (
	"math"
)

// Float covers the IEEE-754 precisions the flow relations are defined over.
type Float interface {
	~float32 | ~float64
}

func Sqrt[F Float](x F) F { return F(math.Sqrt(float64(x))) }

func Pow[F Float](x, y F) F { return F(math.Pow(float64(x), float64(y))) }

func Sin[F Float](x F) F { return F(math.Sin(float64(x))) }

func Cos[F Float](x F) F { return F(math.Cos(float64(x))) }

func Tan[F Float](x F) F { return F(math.Tan(float64(x))) }

func Asin[F Float](x F) F { return F(math.Asin(float64(x))) }

func Atan[F Float](x F) F { return F(math.Atan(float64(x))) }

func Abs[F Float](x F) F {
	if x < 0 {
		return -x
	}
	return x
}

func NaN[F Float]() F { return F(math.NaN()) }

func IsNaN[F Float](x F) bool { return x != x }

// Eps returns the machine epsilon of the precision F.
func Eps[F Float]() F {
	var z F
	if _, single := any(z).(float32); single {
		return 0x1p-23
	}
	return 0x1p-52
}

// MaxValue returns the largest finite value of the precision F.
func MaxValue[F Float]() F {
	var z F
	if _, single := any(z).(float32); single {
		return F(math.MaxFloat32)
	}
	max := math.MaxFloat64
	return F(max)
}

func POW[F Float](x F, pp int) (y F) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		goto MATHPOW
	}

	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	case 5:
		y = x * x
		y = y * y * x
	case 6:
		y = x * x
		y = y * y * y
	case 7:
		y = x * x
		y = y * y * y * x
	case 8:
		y = x * x
		y = y * y * y * y
	}
	if flipped {
		y = 1. / y
	}
	return

MATHPOW:
	y = F(math.Pow(float64(x), float64(p)))
	return
}
