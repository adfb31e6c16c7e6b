package model

import (
	"regexp"
	"strconv"
	"strings"
)

// coordinatePattern accepts one or more letters followed by one or more
// digits: "A1", "j10", "AA20". It is deliberately permissive about case;
// Parse normalizes before decoding the letters.
var coordinatePattern = regexp.MustCompile(`^([A-Za-z]+)([0-9]+)$`)

// Encode maps a 1-based (row, col) pair to its coordinate code using the
// row*100+col scheme from spec.md §3. It fails closed on any coordinate
// outside the board.
func Encode(row, col, boardSize int) (int, error) {
	if row < 1 || row > boardSize || col < 1 || col > boardSize {
		return 0, ErrOutOfBounds
	}
	return row*100 + col, nil
}

// Decode recovers the (row, col) pair from a coordinate code produced by Encode.
func Decode(code int) (row, col int) {
	return code / 100, code % 100
}

// Parse converts a canonical coordinate string ("A1".."ZZ99") into a
// (row, col) pair. Letters are case-insensitive and use a base-26 scheme
// (A=1, ..., Z=26, AA=27, ...) so that boards with more than 26 rows can
// still be addressed on the wire.
func Parse(s string) (row, col int, err error) {
	m := coordinatePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, ErrMalformedCoordinate
	}

	row, err = lettersToNumber(m[1])
	if err != nil {
		return 0, 0, ErrMalformedCoordinate
	}

	col, err = strconv.Atoi(m[2])
	if err != nil || col < 1 {
		return 0, 0, ErrMalformedCoordinate
	}

	return row, col, nil
}

// Format renders a (row, col) pair in canonical uppercase wire form.
func Format(row, col int) string {
	return numberToLetters(row) + strconv.Itoa(col)
}

// lettersToNumber decodes a base-26 column-style letter sequence (A, B, ...,
// Z, AA, AB, ...) into a 1-based row number.
func lettersToNumber(letters string) (int, error) {
	letters = strings.ToUpper(letters)

	n := 0
	for _, r := range letters {
		if r < 'A' || r > 'Z' {
			return 0, ErrMalformedCoordinate
		}
		n = n*26 + int(r-'A'+1)
	}
	return n, nil
}

// numberToLetters is the inverse of lettersToNumber.
func numberToLetters(n int) string {
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('A' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}
