package utils

import (
	"errors"
	"testing"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "accounts@acmetraders.in", "first.last+tag@example.org"}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Fatalf("expected %q to be valid", email)
		}
	}
	invalid := []string{"", "plain", "a@b", "@example.com", "a b@example.com"}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Fatalf("expected %q to be invalid", email)
		}
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	if err := ValidatePhoneNumber("+919876543210", CountryCode); err != nil {
		t.Fatalf("expected valid number, got %v", err)
	}
	if err := ValidatePhoneNumber("12345", CountryCode); err == nil {
		t.Fatal("expected error for short number")
	}
}

func TestProcessValidationErrorsNonValidator(t *testing.T) {
	result := ProcessValidationErrors(errors.New("unexpected EOF"))
	if result["request"] != "unexpected EOF" {
		t.Fatalf("expected the raw error under request, got %v", result)
	}
}
