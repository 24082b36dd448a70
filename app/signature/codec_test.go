package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
)

func TestSignMatchesHMACOverJoinedFields(t *testing.T) {
	mac := hmac.New(sha256.New, []byte("secret"))
	_, _ = mac.Write([]byte("M-1|ORD-1001|5000"))
	expected := hex.EncodeToString(mac.Sum(nil))

	got := Sign("secret", "M-1", "ORD-1001", "5000")
	if got != expected {
		t.Fatalf("unexpected signature: got %s want %s", got, expected)
	}
	if got != strings.ToLower(got) {
		t.Fatalf("expected lowercase hex, got %s", got)
	}
}

func TestVerifyIgnoresHexCase(t *testing.T) {
	fields := []string{"M-1", "ORD-1001", "5000"}
	sig := Sign("secret", fields...)

	if !Verify("secret", fields, strings.ToUpper(sig)) {
		t.Fatal("expected upper-cased signature to verify")
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	fields := []string{"M-1", "ORD-1001", "5000"}
	sig := Sign("secret", fields...)

	if Verify("other-secret", fields, sig) {
		t.Fatal("expected wrong secret to fail verification")
	}
}

func TestVerifyFormattingMismatchIsDistinctFromWrongSecret(t *testing.T) {
	signedWithMinorUnits := Sign("secret", "M-1", "ORD-1001", "5000")

	// Same amount, same secret, decimal formatting instead of minor units.
	if Verify("secret", []string{"M-1", "ORD-1001", "50.00"}, signedWithMinorUnits) {
		t.Fatal("expected decimal formatting to fail verification")
	}
	// Same values, different field order.
	if Verify("secret", []string{"ORD-1001", "M-1", "5000"}, signedWithMinorUnits) {
		t.Fatal("expected reordered fields to fail verification")
	}
	// Formatting fixed: verifies again with the same secret.
	if !Verify("secret", []string{"M-1", "ORD-1001", "5000"}, signedWithMinorUnits) {
		t.Fatal("expected canonical formatting to verify")
	}
}

func TestVerifyRejectsEmptyAndMalformedClaims(t *testing.T) {
	fields := []string{"a"}
	if Verify("secret", fields, "") {
		t.Fatal("expected empty signature to fail")
	}
	if Verify("secret", fields, "not-hex") {
		t.Fatal("expected non-hex signature to fail")
	}
}

func TestCodecCustomDelimiter(t *testing.T) {
	codec := Codec{Delimiter: "."}
	if codec.Canonical("1700000000", `{"id":"evt_1"}`) != `1700000000.{"id":"evt_1"}` {
		t.Fatalf("unexpected canonical string: %s", codec.Canonical("1700000000", `{"id":"evt_1"}`))
	}

	sig := codec.Sign("whsec", "1700000000", "payload")
	if !codec.Verify("whsec", []string{"1700000000", "payload"}, sig) {
		t.Fatal("expected custom delimiter signature to verify")
	}
	if Verify("whsec", []string{"1700000000", "payload"}, sig) {
		t.Fatal("expected default delimiter to produce a different signature")
	}
}
