package textutil

import "testing"

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		allowed string
		want    string
	}{
		{
			name:    "punctuation and case",
			text:    "My Card!",
			allowed: ".",
			want:    "my_card",
		},
		{
			name:    "surrounding whitespace",
			text:    "  The Sun  ",
			allowed: ".",
			want:    "the_sun",
		},
		{
			name:    "allowed extra chars",
			text:    "Rule v1.2-beta",
			allowed: ".-",
			want:    "rule_v1.2-beta",
		},
		{
			name:    "dot dropped when not allowed",
			text:    "Rule v1.2",
			allowed: "",
			want:    "rule_v12",
		},
		{
			name:    "only disallowed chars",
			text:    "?!*",
			allowed: ".",
			want:    "",
		},
		{
			name:    "unicode numbers kept",
			text:    "Take ½ Draw²",
			allowed: ".",
			want:    "take_½_draw²",
		},
		{
			name:    "unicode letters kept",
			text:    "Café Crème",
			allowed: ".",
			want:    "café_crème",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeFilename(tt.text, tt.allowed); got != tt.want {
				t.Errorf("SafeFilename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSafeFilename_Idempotent(t *testing.T) {
	inputs := []string{
		"My Card!",
		"  double  space ",
		"Tab\tseparated",
		"Ünïcödé Ñame",
		"already_safe.png",
		"",
		"   ",
		"a/b\\c:d",
	}
	for _, in := range inputs {
		once := Stem(in)
		if twice := Stem(once); twice != once {
			t.Errorf("Stem(Stem(%q)) = %q, want %q", in, twice, once)
		}
	}
}
