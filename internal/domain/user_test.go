package domain

import "testing"

func TestCredentialSetAndVerify(t *testing.T) {
	var c Credential
	if err := c.Set("s3cret-pass"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !c.Verify("s3cret-pass") {
		t.Error("expected matching password to verify")
	}
	if c.Verify("wrong-pass") {
		t.Error("expected wrong password to fail verification")
	}
}

func TestCredentialNeverStoresPlaintext(t *testing.T) {
	var c Credential
	if err := c.Set("hunter2"); err != nil {
		t.Fatalf("set: %v", err)
	}

	v, err := c.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	hash, ok := v.(string)
	if !ok {
		t.Fatalf("expected string value, got %T", v)
	}
	if hash == "" {
		t.Fatal("expected non-empty hash")
	}
	if hash == "hunter2" {
		t.Error("stored hash equals the plaintext password")
	}
}

func TestCredentialSaltIsPerPassword(t *testing.T) {
	var a, b Credential
	if err := a.Set("same-password"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := b.Set("same-password"); err != nil {
		t.Fatalf("set: %v", err)
	}

	av, _ := a.Value()
	bv, _ := b.Value()
	if av == bv {
		t.Error("expected distinct hashes for the same plaintext")
	}
}

func TestCredentialUnsetNeverVerifies(t *testing.T) {
	var c Credential
	if c.Verify("") {
		t.Error("empty credential verified empty password")
	}
	if c.Verify("anything") {
		t.Error("empty credential verified a password")
	}
}

func TestCredentialScanRoundTrip(t *testing.T) {
	var c Credential
	if err := c.Set("roundtrip"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, err := c.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var loaded Credential
	if err := loaded.Scan(v); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !loaded.Verify("roundtrip") {
		t.Error("reloaded credential did not verify the original password")
	}

	var fromBytes Credential
	if err := fromBytes.Scan([]byte(v.(string))); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	if !fromBytes.Verify("roundtrip") {
		t.Error("byte-scanned credential did not verify the original password")
	}
}
