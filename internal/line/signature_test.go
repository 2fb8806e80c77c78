package line

import (
	"encoding/json"
	"testing"
)

func TestValidateSignature(t *testing.T) {
	secret := "test-channel-secret"
	body := []byte(`{"destination":"U1234","events":[]}`)

	tests := []struct {
		name      string
		secret    string
		body      []byte
		signature string
		want      bool
	}{
		{"valid signature", secret, body, Sign(secret, body), true},
		{"wrong secret", "other-secret", body, Sign(secret, body), false},
		{"tampered body", secret, []byte(`{"destination":"U9999","events":[]}`), Sign(secret, body), false},
		{"empty signature", secret, body, "", false},
		{"empty secret fails closed", "", body, Sign("", body), false},
		{"garbage signature", secret, body, "not-base64!!", false},
		{"empty body", secret, nil, Sign(secret, nil), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateSignature(tt.secret, tt.body, tt.signature)
			if got != tt.want {
				t.Errorf("ValidateSignature = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateSignatureSingleByteMutation(t *testing.T) {
	secret := "test-channel-secret"
	body := []byte(`{"destination":"U1234","events":[{"type":"message"}]}`)
	sig := Sign(secret, body)

	for i := range body {
		mutated := make([]byte, len(body))
		copy(mutated, body)
		mutated[i] ^= 0x01
		if ValidateSignature(secret, mutated, sig) {
			t.Fatalf("signature accepted after flipping byte %d", i)
		}
	}
}

// A JSON document that decodes equal to the original but was re-serialized
// (different key order, different whitespace) must not validate. The check
// covers bytes, not meaning.
func TestValidateSignatureReserializedBody(t *testing.T) {
	secret := "test-channel-secret"
	original := []byte(`{"events": [],  "destination": "U1234"}`)
	sig := Sign(secret, original)

	var decoded map[string]any
	if err := json.Unmarshal(original, &decoded); err != nil {
		t.Fatal(err)
	}
	reserialized, err := json.Marshal(decoded)
	if err != nil {
		t.Fatal(err)
	}

	if string(reserialized) == string(original) {
		t.Skip("re-serialization produced identical bytes")
	}
	if ValidateSignature(secret, reserialized, sig) {
		t.Error("signature validated against re-serialized body")
	}
}
