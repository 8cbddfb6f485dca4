package exercises

import (
	"fmt"
	"strings"
)

// Kind decides which measurements of a set are meaningful.
type Kind string

const (
	KindWeighted   Kind = "weighted"
	KindBodyweight Kind = "bodyweight"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindWeighted:
		return KindWeighted, nil
	case KindBodyweight:
		return KindBodyweight, nil
	default:
		return "", fmt.Errorf("%w: unknown exercise kind [%s]", ErrValidation, s)
	}
}

func (k Kind) Valid() bool {
	return k == KindWeighted || k == KindBodyweight
}

func (k Kind) String() string {
	return string(k)
}
