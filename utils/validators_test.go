// File: /utils/validators_test.go
package utils

import (
	"reflect"
	"testing"
)

func TestSplitCommaList(t *testing.T) {
	cases := []struct {
		input string
		want  []string
	}{
		// Trailing/double commas produce empty segments; those are dropped
		{"A, B, ,C", []string{"A", "B", "C"}},
		{"Catering,Delivery,", []string{"Catering", "Delivery"}},
		{"  one  ", []string{"one"}},
		{",,,", []string{}},
		{"", []string{}},
	}

	for _, tc := range cases {
		got := SplitCommaList(tc.input)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitCommaList(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestDedupeStrings(t *testing.T) {
	got := DedupeStrings([]string{"Pooja", "pooja", " Catering", "Catering", "", "Delivery"})
	want := []string{"Pooja", "Catering", "Delivery"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DedupeStrings = %v, want %v", got, want)
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"owner@example.com", "a.b+c@sub.example.org"}
	invalid := []string{"", "owner", "owner@", "@example.com", "a b@example.com"}

	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestIsValidURL(t *testing.T) {
	if !IsValidURL("https://example.com") || !IsValidURL("http://example.com") {
		t.Error("http(s) URLs should be valid")
	}
	if IsValidURL("ftp://example.com") || IsValidURL("example.com") {
		t.Error("non-http schemes should be invalid")
	}
}

func TestIsImageContentType(t *testing.T) {
	if !IsImageContentType("image/png") || !IsImageContentType("image/jpeg") {
		t.Error("image MIME types should pass")
	}
	if IsImageContentType("application/pdf") || IsImageContentType("") {
		t.Error("non-image MIME types should fail")
	}
}
