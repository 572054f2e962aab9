package fractal

// ConstantWalk steps a Julia constant through the rectangle [Min, Max] of
// the complex plane. The real part advances first; when it passes Max.Re
// it wraps to Min.Re and the imaginary part advances, wrapping likewise.
type ConstantWalk struct {
	Min, Max Complex
	Step     Complex
	Current  Complex
}

// DefaultConstantWalk sweeps the square [-1, 1] x [-1, 1] starting at
// DefaultConstant.
func DefaultConstantWalk() ConstantWalk {
	return ConstantWalk{
		Min:     Complex{Re: -1, Im: -1},
		Max:     Complex{Re: 1, Im: 1},
		Step:    Complex{Re: 0.005, Im: 0.005},
		Current: DefaultConstant,
	}
}

// Next advances the walk and returns the new constant.
func (w *ConstantWalk) Next() Complex {
	w.Current.Re += w.Step.Re
	if w.Current.Re > w.Max.Re {
		w.Current.Re = w.Min.Re
		w.Current.Im += w.Step.Im
		if w.Current.Im > w.Max.Im {
			w.Current.Im = w.Min.Im
		}
	}
	return w.Current
}
