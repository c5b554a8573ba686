package revalidate

import "testing"

func TestVerifySignatureRoundTrip(t *testing.T) {
	body := []byte(`{"_id":"abc","_type":"product"}`)
	secret := "topsecret"

	if !VerifySignature(body, Sign(body, secret), secret) {
		t.Fatal("expected valid signature to verify")
	}
}

func TestVerifySignatureRejects(t *testing.T) {
	body := []byte(`{"_id":"abc","_type":"product"}`)
	secret := "topsecret"
	sig := Sign(body, secret)

	cases := []struct {
		name   string
		body   []byte
		header string
		secret string
	}{
		{"mutated body", []byte(`{"_id":"abd","_type":"product"}`), sig, secret},
		{"wrong secret", body, sig, "othersecret"},
		{"empty header", body, "", secret},
		{"missing prefix", body, sig[len("sha256="):], secret},
		{"not hex", body, "sha256=zzzz", secret},
		{"truncated", body, sig[:len(sig)-2], secret},
		{"empty secret", body, sig, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if VerifySignature(tc.body, tc.header, tc.secret) {
				t.Fatal("expected verification to fail")
			}
		})
	}
}
