package bbt

import "math"

// Standard-normal helpers and the Thurstone-Mosteller correction terms.
// Naming follows the TrueSkill literature: t is a mean difference normalized
// by the combined spread c, eps is the draw margin on the same normalized
// scale. v terms are additive mean corrections, w terms multiplicative
// variance corrections. Everything here is pure float64 arithmetic so the
// update stays reproducible across platforms.

// minCDFMass is the smallest CDF mass the ratio functions divide by before
// switching to their asymptotic forms. Below it the division would be
// meaningless noise.
const minCDFMass = 2.222758749e-162

func normPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / math.Sqrt(2*math.Pi)
}

func normCDF(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}

// normPPF is the standard normal quantile function, the inverse of normCDF.
func normPPF(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}

// vExceedsMargin is the mean correction for a decisive outcome observed at
// normalized difference t. For t - eps far into the left tail it degrades to
// the asymptote eps - t instead of dividing by a vanished CDF mass.
func vExceedsMargin(t, eps float64) float64 {
	denom := normCDF(t - eps)
	if denom < minCDFMass {
		return eps - t
	}
	return normPDF(t-eps) / denom
}

// wExceedsMargin is the variance correction paired with vExceedsMargin. It
// lies in (0, 1): close to one when the outcome was a surprise, close to
// zero when it was expected.
func wExceedsMargin(t, eps float64) float64 {
	denom := normCDF(t - eps)
	if denom < minCDFMass {
		if t < 0 {
			return 1
		}
		return 0
	}
	v := vExceedsMargin(t, eps)
	return v * (v + t - eps)
}

// vWithinMargin is the mean correction for a draw: a two-sided term that
// pulls the stronger side down and the weaker side up, and vanishes when the
// sides are even.
func vWithinMargin(t, eps float64) float64 {
	tAbs := math.Abs(t)
	denom := normCDF(eps-tAbs) - normCDF(-eps-tAbs)
	if denom < minCDFMass {
		if t < 0 {
			return -t - eps
		}
		return -t + eps
	}
	v := (normPDF(-eps-tAbs) - normPDF(eps-tAbs)) / denom
	if t < 0 {
		return -v
	}
	return v
}

// wWithinMargin is the variance correction paired with vWithinMargin. A draw
// carries less information than a decisive result, so for even sides it stays
// well below the decisive correction.
func wWithinMargin(t, eps float64) float64 {
	tAbs := math.Abs(t)
	denom := normCDF(eps-tAbs) - normCDF(-eps-tAbs)
	if denom < minCDFMass {
		return 1
	}
	v := vWithinMargin(tAbs, eps)
	return v*v + ((eps-tAbs)*normPDF(eps-tAbs)+(eps+tAbs)*normPDF(eps+tAbs))/denom
}
