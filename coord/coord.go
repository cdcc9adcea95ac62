package coord

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidCoordinateKey is returned when a key cannot be parsed back into a coordinate
var ErrInvalidCoordinateKey = errors.New("invalid coordinate key")

const delimiter = ","

// Key is the comparable form of a (row, col) coordinate, e.g. "3,5"
type Key string

// Encode packs a coordinate into a Key. Negative values round-trip as well.
func Encode(row, col int) Key {
	return Key(strconv.Itoa(row) + delimiter + strconv.Itoa(col))
}

// Decode unpacks a Key produced by Encode
func Decode(key Key) (row, col int, err error) {
	parts := strings.Split(string(key), delimiter)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return 0, 0, errors.Wrapf(ErrInvalidCoordinateKey, "%q", string(key))
	}

	if row, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, errors.Wrapf(ErrInvalidCoordinateKey, "%q: bad row", string(key))
	}
	if col, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, errors.Wrapf(ErrInvalidCoordinateKey, "%q: bad col", string(key))
	}

	return row, col, nil
}

// MustDecode is Decode for keys known to come from Encode. It panics otherwise.
func MustDecode(key Key) (row, col int) {
	row, col, err := Decode(key)
	if err != nil {
		panic(err)
	}
	return row, col
}
