package parser

import (
	"encoding/json"
	"fmt"

	tperr "github.com/tpkit/timeperiod/errors"
)

// Quoted returns the output of appendText as a JSON string,
// size is the expected text length.
func Quoted(size int, appendText func([]byte) []byte) []byte {
	buf := make([]byte, 0, size+2)
	buf = append(buf, '"')
	buf = appendText(buf)
	return append(buf, '"')
}

// Unquote reads a JSON string, nil for JSON null.
// Anything else fails with ErrFormat.
func Unquote(input []byte) (*string, error) {
	if string(input) == "null" {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(input, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", tperr.ErrFormat, err)
	}
	return &s, nil
}
