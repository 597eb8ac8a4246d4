package finsync

import (
	"errors"
	"fmt"
)

// Op is the closed set of comparison operators accepted by Query, UpdateWhere
// and RemoveWhere.
type Op int

const (
	GreaterThan Op = iota
	LessThan
	Equal
	NotEqual
)

// ErrInvalidPredicate is returned when an operator outside the closed set is
// requested. It is a caller error, never a silent no-op.
var ErrInvalidPredicate = errors.New("invalid predicate operator")

func (op Op) String() string {
	switch op {
	case GreaterThan:
		return "gt"
	case LessThan:
		return "lt"
	case Equal:
		return "eq"
	case NotEqual:
		return "neq"
	}
	return fmt.Sprintf("op(%d)", int(op))
}

// match evaluates `cell op value`.
//
// Equal and NotEqual against a null value test nullness instead of equality,
// because null never equals null under value equality. Ordering comparisons
// involving null are false.
func match(cell Value, op Op, value Value) (bool, error) {
	switch op {
	case GreaterThan:
		return value.less(cell), nil
	case LessThan:
		return cell.less(value), nil
	case Equal:
		if value.IsNull() {
			return cell.IsNull(), nil
		}
		return cell.Equal(value), nil
	case NotEqual:
		if value.IsNull() {
			return !cell.IsNull(), nil
		}
		return !cell.Equal(value), nil
	}
	return false, fmt.Errorf("%w: %s", ErrInvalidPredicate, op)
}
