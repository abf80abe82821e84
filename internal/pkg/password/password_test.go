package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatalf("hash equals plaintext")
	}
	if !Verify("s3cret-pass", hash) {
		t.Fatalf("expected verify to succeed for correct password")
	}
	if Verify("wrong-pass", hash) {
		t.Fatalf("expected verify to fail for wrong password")
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("same-input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := Hash("same-input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected distinct hashes for repeated input")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	if Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must not verify")
	}
	if Verify("anything", "") {
		t.Fatalf("empty hash must not verify")
	}
}
