package label

import "testing"

func TestJoinDefault(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"nil", nil, ""},
		{"empty", []string{}, ""},
		{"single", []string{"x"}, "x"},
		{"two", []string{"a", "b"}, "a & b"},
		{"three", []string{"a", "b", "c"}, "a, b & c"},
		{"four", []string{"a", "b", "c", "d"}, "a, b, c & d"},
		{"keeps empty values", []string{"", "b"}, " & b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinDefault(tt.values); got != tt.want {
				t.Errorf("JoinDefault(%q) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestJoin_CustomSeparators(t *testing.T) {
	tests := []struct {
		values []string
		want   string
	}{
		{[]string{"A"}, "A"},
		{[]string{"A", "B"}, "A and by B"},
		{[]string{"A", "B", "C"}, "A, by B and by C"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Join(tt.values, " and by ", ", by "); got != tt.want {
				t.Errorf("Join(%q) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestJoin_DoesNotModifyInput(t *testing.T) {
	values := []string{"a", "b", "c"}
	_ = JoinDefault(values)

	if values[0] != "a" || values[1] != "b" || values[2] != "c" {
		t.Errorf("input modified: %q", values)
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"guitar", "Guitar"},
		{"lead vocals", "Lead Vocals"},
		{"BASS", "Bass"},
		{"rock'n'roll", "Rock'n'roll"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Title(tt.in); got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
