package format

import "testing"

func TestChoices(t *testing.T) {
	tests := []struct {
		labels []string
		want   string
	}{
		{nil, "choice: []"},
		{[]string{"lion"}, `choice: ["lion"]`},
		{[]string{"flamingo", "tiger"}, `choice: ["flamingo", "tiger"]`},
		{[]string{`say "hi"`}, `choice: ["say \"hi\""]`},
	}
	for _, tt := range tests {
		if got := Choices(tt.labels); got != tt.want {
			t.Errorf("Choices(%v) = %s, want %s", tt.labels, got, tt.want)
		}
	}
}

func TestChoice(t *testing.T) {
	if got := Choice(""); got != "choice: none" {
		t.Errorf("Choice(\"\") = %s, want choice: none", got)
	}
	if got := Choice("tiger"); got != `choice: "tiger"` {
		t.Errorf("Choice(tiger) = %s", got)
	}
}

func TestList(t *testing.T) {
	if got := List(nil); got != "(nothing)" {
		t.Errorf("List(nil) = %q, want (nothing)", got)
	}
	if got := List([]string{"a", "b", "a"}); got != "a, b, a" {
		t.Errorf("List() = %q, want \"a, b, a\"", got)
	}
}
