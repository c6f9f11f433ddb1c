// Package sign implements Huobi's signature-version-2 request authentication:
// canonical query serialization, percent-encoding, and HMAC-SHA256 signing.
//
// The exchange verifies signatures against its own canonicalization of the
// request, so every rule here (key ordering, encoding charset, timestamp
// format) is part of the wire contract. A deviation does not fail locally;
// it surfaces as an opaque authentication rejection from the server.
//
// Huobi API Documentation: https://huobiapi.github.io/docs/spot/v1/en/#authentication
package sign

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"sort"
	"strings"
	"time"
)

// Auth parameters injected into every signed request.
const (
	// SignatureMethod is the fixed signature algorithm identifier.
	SignatureMethod = "HmacSHA256"
	// SignatureVersion is the fixed signature scheme version.
	SignatureVersion = "2"
	// TimestampLayout renders a UTC instant at second precision with no
	// fractional seconds and no zone suffix, as the verifier requires.
	TimestampLayout = "2006-01-02T15:04:05"
)

const upperhex = "0123456789ABCDEF"

// Canonicalize serializes a parameter set as the exchange's verifier does:
// entries sorted lexicographically by key, values percent-encoded, joined as
// key=value pairs with "&". Keys are ASCII identifiers and are not encoded.
// An empty set yields an empty string.
//
// Output is byte-identical for any two sets with equal key/value pairs,
// regardless of insertion order.
func Canonicalize(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(PercentEncode(params[k]))
	}
	return b.String()
}

// PercentEncode encodes every byte outside the RFC 3986 unreserved set
// (ALPHA / DIGIT / "-" / "_" / "." / "~") as %XX with uppercase hex. This is
// stricter than generic query encoding: "+" and "," in particular must be
// encoded or the server's canonicalization diverges from ours.
//
// The same function encodes parameter values and the final signature. It is
// applied exactly once per value; encoding already-encoded text changes it.
func PercentEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	case c == '-' || c == '_' || c == '.' || c == '~':
		return true
	}
	return false
}

// PreSign builds the exact newline-joined string the HMAC is computed over:
// uppercase method, host, path, canonical query, no trailing newline.
func PreSign(method, host, path, canonicalQuery string) string {
	return strings.ToUpper(method) + "\n" + host + "\n" + path + "\n" + canonicalQuery
}

// HMACSHA256 computes the signature for a pre-sign message: standard base64
// (padded) of the raw HMAC-SHA256 digest keyed by the secret's UTF-8 bytes.
// No truncation, no URL-safe alphabet; the caller percent-encodes the result
// before placing it in a URL.
func HMACSHA256(secret, message string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// Timestamp formats an instant for the Timestamp auth parameter.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
