// Package signature computes and verifies keyed HMAC-SHA256 signatures over
// ordered field lists. Field order, field selection and value formatting are
// part of each provider's wire contract.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// DefaultDelimiter separates fields unless a provider signs with its own.
const DefaultDelimiter = "|"

type Codec struct {
	Delimiter string
}

var defaultCodec = Codec{Delimiter: DefaultDelimiter}

func Sign(secret string, fields ...string) string {
	return defaultCodec.Sign(secret, fields...)
}

func Verify(secret string, fields []string, claimed string) bool {
	return defaultCodec.Verify(secret, fields, claimed)
}

func (c Codec) Sign(secret string, fields ...string) string {
	return hex.EncodeToString(c.mac(secret, fields))
}

// Verify recomputes the signature and compares it with claimed in constant
// time. Hex case is ignored; an empty claim never verifies.
func (c Codec) Verify(secret string, fields []string, claimed string) bool {
	claimed = strings.TrimSpace(claimed)
	if claimed == "" {
		return false
	}
	candidate, err := hex.DecodeString(strings.ToLower(claimed))
	if err != nil {
		return false
	}
	return hmac.Equal(candidate, c.mac(secret, fields))
}

func (c Codec) Canonical(fields ...string) string {
	delimiter := c.Delimiter
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	return strings.Join(fields, delimiter)
}

func (c Codec) mac(secret string, fields []string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write([]byte(c.Canonical(fields...)))
	return mac.Sum(nil)
}
