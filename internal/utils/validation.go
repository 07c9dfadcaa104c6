package utils

import (
	"regexp"
)

// Denoms follow the cosmos bank conventions: leading letter, then letters,
// digits and the separators used by IBC/factory denoms.
var denomRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9/:._-]{2,127}$`)

// Bech32-ish account addresses: hrp, separator "1", data part.
var addressRegex = regexp.MustCompile(`^[a-z]{2,16}1[02-9ac-hj-np-z]{38,58}$`)

// IsValidDenom checks if the given string is a valid token denom.
// Note: it does not check that the denom actually exists on chain.
func IsValidDenom(denom string) bool {
	return denomRegex.MatchString(denom)
}

// IsValidAddress checks if the given string is a well-formed bech32 account
// address. Note: it does not verify the checksum.
func IsValidAddress(address string) bool {
	return addressRegex.MatchString(address)
}
