package aiger

import (
	"fmt"
	"strconv"
	"strings"
)

func parseLiterals(line string) ([]Literal, error) {
	fields := strings.Split(line, " ")
	literals := make([]Literal, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("aiger: %w: %q", ErrInvalidLiteral, f)
		}
		literals[i] = Literal(n)
	}
	return literals, nil
}

func parseInputRecord(literals []Literal) (Record, error) {
	if len(literals) != 1 {
		return Record{}, fmt.Errorf("aiger: %w: input record wants 1 literal, got %d", ErrInvalidLiteralCount, len(literals))
	}
	if literals[0].IsInverted() {
		return Record{}, fmt.Errorf("aiger: %w: input literal must not be inverted", ErrInvalidInverted)
	}
	return Record{Kind: RecordInput, Literal: literals[0]}, nil
}

func parseLatchRecord(literals []Literal) (Record, error) {
	if len(literals) != 2 {
		return Record{}, fmt.Errorf("aiger: %w: latch record wants 2 literals, got %d", ErrInvalidLiteralCount, len(literals))
	}
	if literals[0].IsInverted() {
		return Record{}, fmt.Errorf("aiger: %w: latch state literal must not be inverted", ErrInvalidInverted)
	}
	return Record{Kind: RecordLatch, Output: literals[0], Next: literals[1]}, nil
}

func parseOutputRecord(literals []Literal) (Record, error) {
	if len(literals) != 1 {
		return Record{}, fmt.Errorf("aiger: %w: output record wants 1 literal, got %d", ErrInvalidLiteralCount, len(literals))
	}
	return Record{Kind: RecordOutput, Literal: literals[0]}, nil
}

func parseAndGateRecord(literals []Literal) (Record, error) {
	if len(literals) != 3 {
		return Record{}, fmt.Errorf("aiger: %w: and-gate record wants 3 literals, got %d", ErrInvalidLiteralCount, len(literals))
	}
	if literals[0].IsInverted() {
		return Record{}, fmt.Errorf("aiger: %w: and-gate output literal must not be inverted", ErrInvalidInverted)
	}
	return Record{Kind: RecordAndGate, Output: literals[0], Inputs: [2]Literal{literals[1], literals[2]}}, nil
}
