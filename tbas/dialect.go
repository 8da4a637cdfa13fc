package tbas

import (
	"fmt"
	"strings"
)

// Dialect selects between the reference bound selection of the ALU and
// jump operations and the corrected saturating one.
type Dialect uint8

const (
	DialectReference Dialect = iota
	DialectCorrected
)

func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reference":
		return DialectReference, nil
	case "corrected":
		return DialectCorrected, nil
	}
	return 0, fmt.Errorf("unknown dialect: %s", s)
}

func (d Dialect) String() string {
	switch d {
	case DialectReference:
		return "reference"
	case DialectCorrected:
		return "corrected"
	}
	return "unknown"
}

// alu combines the cell with the dequeued operand. keep reports that the
// cell must be left unchanged.
func (d Dialect) alu(mode IOMode, cell, q int) (ret int, keep bool, err error) {
	if d == DialectCorrected {
		switch mode {
		case ModeALUAdd:
			return min(cell+q, 255), false, nil
		case ModeALUSub:
			return max(cell-q, 0), false, nil
		case ModeALUMul:
			return min(cell*q, 255), false, nil
		case ModeALUDiv:
			if q == 0 {
				return 0, true, nil
			}
			return cell / q, false, nil
		case ModeALUAnd:
			return cell & q, false, nil
		case ModeALUOr:
			return cell | q, false, nil
		case ModeALUXor:
			return cell ^ q, false, nil
		}
		return 0, true, nil
	}

	switch mode {
	case ModeALUAdd:
		return clampByte(max(cell+q, 255)), false, nil
	case ModeALUSub:
		// the reference adds here
		return clampByte(min(cell+q, 0)), false, nil
	case ModeALUMul:
		return clampByte(max(cell*q, 255)), false, nil
	case ModeALUDiv:
		if q == 0 {
			return 0, true, nil
		}
		return min(cell/q, 1), false, nil
	case ModeALUAnd, ModeALUOr, ModeALUXor:
		return 0, false, fmt.Errorf("%w: %s", ErrALUResult, mode)
	}
	return 0, true, nil
}

func (d Dialect) jumpDistance(programLen, cell int) int {
	if d == DialectCorrected {
		return min(programLen, cell)
	}
	return max(programLen, cell)
}

func clampByte(v int) int {
	return min(max(v, 0), 255)
}
