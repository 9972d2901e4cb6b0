package utils

import "testing"

func TestJwtRoundTrip(t *testing.T) {
	token, err := JwtGenerate(42, "tester", 1)
	if err != nil {
		t.Fatalf("JwtGenerate: %v", err)
	}

	claims, err := JwtValidate(token)
	if err != nil {
		t.Fatalf("JwtValidate: %v", err)
	}
	if claims.ID != 42 {
		t.Fatalf("expected id 42, got %d", claims.ID)
	}
	if claims.Username != "tester" {
		t.Fatalf("expected username tester, got %q", claims.Username)
	}
}

func TestJwtValidateRejectsGarbage(t *testing.T) {
	if _, err := JwtValidate("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestJwtValidateRejectsExpired(t *testing.T) {
	token, err := JwtGenerate(1, "tester", -1)
	if err != nil {
		t.Fatalf("JwtGenerate: %v", err)
	}
	if _, err := JwtValidate(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}
