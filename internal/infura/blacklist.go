package infura

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gabapcia/infura/internal/pkg/types"
)

// Blacklist is the response of GetBlacklist. Version 1 of the API only fills
// Blacklist; version 2 adds the remaining fields.
type Blacklist struct {
	Version   int      `json:"version,omitempty"`
	Tolerance int      `json:"tolerance,omitempty"`
	Fuzzylist []string `json:"fuzzylist,omitempty"`
	Whitelist []string `json:"whitelist,omitempty"`
	Blacklist []string `json:"blacklist"`

	blocked types.Set[string]
	allowed types.Set[string]
}

// DecodeBlacklist decodes a GetBlacklist body.
func DecodeBlacklist(body json.RawMessage) (Blacklist, error) {
	var b Blacklist
	if err := json.Unmarshal(body, &b); err != nil {
		return Blacklist{}, fmt.Errorf("decoding blacklist: %w", err)
	}

	b.blocked = types.NewSet[string]()
	for _, host := range b.Blacklist {
		b.blocked.Add(normalizeHost(host))
	}

	b.allowed = types.NewSet[string]()
	for _, host := range b.Whitelist {
		b.allowed.Add(normalizeHost(host))
	}

	return b, nil
}

// Contains reports whether host is blacklisted. host and its parent domains
// are checked from the most specific one up, and the first whitelist or
// blacklist entry found decides: "a.safe.evil.com" is allowed when
// "safe.evil.com" is whitelisted, even if "evil.com" is blacklisted.
//
// Fuzzylist and Tolerance are not used; they drive similarity matching, which
// is left to the caller.
func (b Blacklist) Contains(host string) bool {
	host = normalizeHost(host)
	if host == "" {
		return false
	}

	for candidate := host; candidate != ""; {
		if b.allowed.Has(candidate) {
			return false
		}
		if b.blocked.Has(candidate) {
			return true
		}

		_, parent, found := strings.Cut(candidate, ".")
		if !found {
			break
		}
		candidate = parent
	}

	return false
}

// normalizeHost lower-cases host and strips a trailing dot.
func normalizeHost(host string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(host)), ".")
}
