package lindblad

import "strconv"

// Sigma-product labels for one qubit.
func SigmaPlusLabel(qubit int) string  { return strconv.Itoa(qubit) + "+" }
func SigmaMinusLabel(qubit int) string { return strconv.Itoa(qubit) + "-" }
func SigmaZLabel(qubit int) string     { return strconv.Itoa(qubit) + "z" }

// DampingTerms is the elementary damping (sigma-) contribution for a qubit.
func DampingTerms(qubit int, rate float64) []Term {
	l := SigmaMinusLabel(qubit)
	return []Term{{Left: l, Right: l, Coefficient: rate}}
}

// ExcitationTerms is the elementary excitation (sigma+) contribution.
func ExcitationTerms(qubit int, rate float64) []Term {
	l := SigmaPlusLabel(qubit)
	return []Term{{Left: l, Right: l, Coefficient: rate}}
}

// DephasingTerms is the elementary dephasing (sigmaz) contribution.
func DephasingTerms(qubit int, rate float64) []Term {
	l := SigmaZLabel(qubit)
	return []Term{{Left: l, Right: l, Coefficient: rate}}
}

// DepolarisingTerms distributes a depolarizing rate over the three channels:
// rate/2 on damping, rate/2 on excitation, rate/4 on dephasing. The split
// matches devices.DepolarisingDamping/Excitation/Dephasing weights.
func DepolarisingTerms(qubit int, rate float64) []Term {
	minus := SigmaMinusLabel(qubit)
	plus := SigmaPlusLabel(qubit)
	z := SigmaZLabel(qubit)
	return []Term{
		{Left: minus, Right: minus, Coefficient: rate / 2},
		{Left: plus, Right: plus, Coefficient: rate / 2},
		{Left: z, Right: z, Coefficient: rate / 4},
	}
}
