package types

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// Hex represents a hexadecimal-encoded JSON-RPC quantity (e.g., "0x1a").
// Values are arbitrary precision, so balances in wei decode without overflow.
type Hex string

// HexFromString validates the input string and returns a Hex value if valid.
func HexFromString(s string) (Hex, error) {
	if _, err := parseHex(s); err != nil {
		return "", err
	}
	return Hex(s), nil
}

// parseHex checks whether s is a hexadecimal number starting with "0x" or "0X"
// and returns its value.
func parseHex(s string) (*big.Int, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, fmt.Errorf("hex string must start with 0x")
	}

	v, ok := new(big.Int).SetString(s[2:], 16)
	if !ok {
		return nil, fmt.Errorf("invalid hexadecimal value: %q", s)
	}

	return v, nil
}

// MarshalJSON encodes the Hex as a JSON string.
func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

// UnmarshalJSON parses and validates a JSON-encoded hexadecimal string.
func (h *Hex) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	if _, err := parseHex(s); err != nil {
		return err
	}

	*h = Hex(s)
	return nil
}

// Big returns the decoded value. If parsing fails, it returns zero.
func (h Hex) Big() *big.Int {
	v, err := parseHex(string(h))
	if err != nil {
		return new(big.Int)
	}
	return v
}

// String returns the value in base 10.
func (h Hex) String() string {
	return h.Big().String()
}
