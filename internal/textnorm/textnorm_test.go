package textnorm

import "testing"

func TestForMatching(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "vietnamese diacritics", input: "Phở Ngọc", want: "phongoc"},
		{name: "full name", input: "Trần Thị Mai", want: "tranthimai"},
		{name: "german umlauts", input: "Schöne Straße", want: "schonestrasse"},
		{name: "czech", input: "Čeněk Dvořák", want: "cenekdvorak"},
		{name: "punctuation and digits", input: "A-Nails 24/7!", want: "anails247"},
		{name: "empty", input: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ForMatching(tc.input)
			if got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
			if again := ForMatching(got); again != got {
				t.Fatalf("not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestForCode(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "Sơn Gel", want: "SONGEL"},
		{input: "gel polish 15ml", want: "GELPOLISH15ML"},
		{input: "Đá", want: "DA"},
		{input: "", want: ""},
	}

	for _, tc := range cases {
		got := ForCode(tc.input)
		if got != tc.want {
			t.Fatalf("ForCode(%q) = %q, want %q", tc.input, got, tc.want)
		}
		if again := ForCode(got); again != got {
			t.Fatalf("not idempotent: %q -> %q", got, again)
		}
	}
}

func TestPhoneKey(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "+420 602 123 456", want: "602123456"},
		{input: "602123456", want: "602123456"},
		{input: "0176-55 44 33 22", want: "655443322"},
		{input: "12345", want: "12345"},
		{input: "no digits", want: ""},
		{input: "", want: ""},
	}

	for _, tc := range cases {
		if got := PhoneKey(tc.input); got != tc.want {
			t.Fatalf("PhoneKey(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFoldDiacriticsPreservesCase(t *testing.T) {
	if got := FoldDiacritics("ĐẶng đỗ"); got != "DAng do" {
		t.Fatalf("got %q", got)
	}
}
