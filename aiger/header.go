package aiger

import (
	"fmt"
	"strconv"
	"strings"
)

const headerMagic = "aag"

// ParseHeader parses a single "aag M I L O A" header line.
func ParseHeader(line string) (Header, error) {
	fields := strings.Split(line, " ")
	if len(fields) == 0 || fields[0] != headerMagic {
		return Header{}, fmt.Errorf("aiger: %w: missing %q magic", ErrInvalidHeader, headerMagic)
	}

	rest := fields[1:]
	if len(rest) != 5 {
		return Header{}, fmt.Errorf("aiger: %w: want 5 integers after %q, got %d", ErrInvalidHeader, headerMagic, len(rest))
	}

	ints := make([]int, 5)
	for i, f := range rest {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Header{}, fmt.Errorf("aiger: %w: field %d (%q) is not an integer", ErrInvalidHeader, i, f)
		}
		ints[i] = n
	}

	return Header{M: ints[0], I: ints[1], L: ints[2], O: ints[3], A: ints[4]}, nil
}
