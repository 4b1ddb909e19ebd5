package typing

import "testing"

func TestValidPhrase(t *testing.T) {
	for _, phrase := range []string{"hello world", "Съешь ещё этих мягких булок.", "don’t stop"} {
		if !ValidPhrase(phrase) {
			t.Fatalf("expected %q to be valid", phrase)
		}
	}
	for _, phrase := range []string{"", "tab\there", "two\nlines", "bell\a"} {
		if ValidPhrase(phrase) {
			t.Fatalf("expected %q to be rejected", phrase)
		}
	}
}
