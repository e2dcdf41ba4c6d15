// Package lindblad defines the boundary to the Lindblad-operator algebra
// consumed by the noise models: an Operator is an opaque weighted sum of
// rate terms with linear, associative addition. The package ships one value
// implementation, SumOperator; callers may substitute their own as long as
// it satisfies the interface.
package lindblad

import (
	"fmt"
	"sort"

	jsoniter "github.com/json-iterator/go"

	"github.com/qforge-labs/qhardware/core"
)

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

// Term is one weighted Lindblad rate term. Left and Right are product labels
// over per-qubit sigma operators, e.g. "0+", "3-", "1z".
type Term struct {
	Left        string  `json:"left" msgpack:"left"`
	Right       string  `json:"right" msgpack:"right"`
	Coefficient float64 `json:"coefficient" msgpack:"coefficient"`
}

// Operator is the opaque noise-operator value used by the noise models.
// Addition must be linear and associative; Scale and Add return new values
// and leave the receiver untouched.
type Operator interface {
	AddTerm(left, right string, coefficient float64) error
	Scale(factor float64) Operator
	Add(other Operator) (Operator, error)
	Clone() Operator
	IsEmpty() bool
	Terms() []Term
}

type productKey struct {
	left  string
	right string
}

// SumOperator is the reference Operator: a map from sigma-product keys to
// real coefficients.
type SumOperator struct {
	terms map[productKey]float64
}

func NewSumOperator() *SumOperator {
	return &SumOperator{terms: make(map[productKey]float64)}
}

func (o *SumOperator) AddTerm(left, right string, coefficient float64) error {
	if left == "" || right == "" {
		return &core.TypeMismatchError{Want: "sigma product label", Got: "empty string"}
	}
	o.terms[productKey{left: left, right: right}] += coefficient
	return nil
}

func (o *SumOperator) Scale(factor float64) Operator {
	scaled := NewSumOperator()
	for k, v := range o.terms {
		scaled.terms[k] = v * factor
	}
	return scaled
}

func (o *SumOperator) Add(other Operator) (Operator, error) {
	if other == nil {
		return nil, &core.TypeMismatchError{Want: "lindblad.Operator", Got: "nil"}
	}
	sum := o.Clone().(*SumOperator)
	for _, t := range other.Terms() {
		sum.terms[productKey{left: t.Left, right: t.Right}] += t.Coefficient
	}
	return sum, nil
}

func (o *SumOperator) Clone() Operator {
	clone := NewSumOperator()
	for k, v := range o.terms {
		clone.terms[k] = v
	}
	return clone
}

func (o *SumOperator) IsEmpty() bool {
	return len(o.terms) == 0
}

// Terms returns the term list in a deterministic order.
func (o *SumOperator) Terms() []Term {
	terms := make([]Term, 0, len(o.terms))
	for k, v := range o.terms {
		terms = append(terms, Term{Left: k.left, Right: k.right, Coefficient: v})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Left != terms[j].Left {
			return terms[i].Left < terms[j].Left
		}
		return terms[i].Right < terms[j].Right
	})
	return terms
}

// FromTerms rebuilds a SumOperator from a serialized term list.
func FromTerms(terms []Term) *SumOperator {
	o := NewSumOperator()
	for _, t := range terms {
		o.terms[productKey{left: t.Left, right: t.Right}] += t.Coefficient
	}
	return o
}

func (o *SumOperator) MarshalJSON() ([]byte, error) {
	return jsonIter.Marshal(o.Terms())
}

func (o *SumOperator) UnmarshalJSON(data []byte) error {
	var terms []Term
	if err := jsonIter.Unmarshal(data, &terms); err != nil {
		return err
	}
	*o = *FromTerms(terms)
	return nil
}

func (o *SumOperator) String() string {
	blob, err := jsonIter.Marshal(o.Terms())
	if err != nil {
		return fmt.Sprintf("SumOperator(%d terms)", len(o.terms))
	}
	return string(blob)
}
