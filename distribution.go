package sdm

import "math/rand"

// Distribution produces one f32 sample per call. Implementations may be
// stateful (e.g. holding a PRNG), and a Process samples its held
// Distribution exactly once per start (spec §4.6).
type Distribution interface {
	Sample() float32
}

// Uniform distribution over [Min, Max).
type Uniform struct {
	Min, Max float32
	rng      *rand.Rand
}

// NewUniform returns a Uniform distribution instance over [min, max).
func NewUniform(min, max float32) *Uniform {
	return &Uniform{Min: min, Max: max}
}

// Sample returns a value in [Min, Max).
func (u *Uniform) Sample() float32 {
	return UniformSample(u.Min, u.Max, u.rng)
}

// UniformSample is the stateless one-shot form of Uniform, for occasional
// sampling in callbacks. Pass a nil *rand.Rand to use the package-level
// source.
func UniformSample(min, max float32, rng *rand.Rand) float32 {
	var u float64
	if rng != nil {
		u = rng.Float64()
	} else {
		u = rand.Float64()
	}
	return min + float32(u)*(max-min)
}

// Gaussian distribution via the Marsaglia polar method.
type Gaussian struct {
	Mean, Std float32
	rng       *rand.Rand
}

// NewGaussian returns a Gaussian distribution instance.
func NewGaussian(mean, std float32) *Gaussian {
	return &Gaussian{Mean: mean, Std: std}
}

// Sample draws one normally-distributed value.
func (g *Gaussian) Sample() float32 {
	return GaussianSample(g.Mean, g.Std, g.rng)
}

// GaussianSample is the stateless one-shot form of Gaussian.
//
// Repeatedly draws v1, v2 in [-1,1) until s = v1^2+v2^2 is in (0,1), then
// returns mean + v1*sqrt(-2*ln(s)/s)*std.
func GaussianSample(mean, std float32, rng *rand.Rand) float32 {
	var v1, v2, s float32
	for {
		v1 = 2*UniformSample(0, 1, rng) - 1
		v2 = 2*UniformSample(0, 1, rng) - 1
		s = v1*v1 + v2*v2
		if s > 0 && s < 1 {
			break
		}
	}
	scale := sqrt32(-2 * logf32(s) / s)
	return mean + v1*scale*std
}

// Exponential distribution with the given mean.
type Exponential struct {
	Mean float32
	rng  *rand.Rand
}

// NewExponential returns an Exponential distribution instance.
func NewExponential(mean float32) *Exponential {
	return &Exponential{Mean: mean}
}

// Sample draws one exponentially-distributed value.
func (e *Exponential) Sample() float32 {
	return ExponentialSample(e.Mean, e.rng)
}

// ExponentialSample is the stateless one-shot form of Exponential:
// -mean * ln(1 - U) with U ~ Uniform[0,1).
func ExponentialSample(mean float32, rng *rand.Rand) float32 {
	u := UniformSample(0, 1, rng)
	return -mean * logf32(1-u)
}

// Constant is a deterministic distribution returning a fixed value every
// call. It exists for reproducible tests and for models with a fixed
// service time, per spec §8's requirement to stub distributions in tests.
type Constant struct {
	Value float32
}

// NewConstant returns a Distribution always sampling to value.
func NewConstant(value float32) *Constant { return &Constant{Value: value} }

// Sample returns Value.
func (c *Constant) Sample() float32 { return c.Value }
