package badge

import (
	"errors"
	"testing"
)

func TestParseColor_Names(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"green", "#3C1"},
		{"blue", "#08C"},
		{"red", "#E43"},
		{"yellow", "#DB1"},
		{"orange", "#F73"},
		{"purple", "#94E"},
		{"pink", "#E5B"},
		{"grey", "#999"},
		{"gray", "#999"},
		{"cyan", "#1BC"},
		{"black", "#2A2A2A"},
		{"GREEN", "#3C1"},
		{"GRAY", "#999"},
		{"BLACK", "#2A2A2A"},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", c.in, err)
		}
		if got.String() != c.want {
			t.Fatalf("ParseColor(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestParseColor_Hex(t *testing.T) {
	for _, in := range []string{"abc", "ABC", "4c1", "ff0000", "E05d44", "012345"} {
		got, err := ParseColor(in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", in, err)
		}
		if want := "#" + in; got.String() != want {
			t.Fatalf("ParseColor(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParseColor_Rejects(t *testing.T) {
	for _, in := range []string{"", "Green", "ab", "abcd", "abcde", "xyz", "#fff", "12345", "1234567"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrUnrecognizedColor) {
			t.Fatalf("ParseColor(%q) = %v, want ErrUnrecognizedColor", in, err)
		}
	}
}

func TestStatusColor(t *testing.T) {
	cases := []struct {
		status string
		want   Color
	}{
		{"passing", Green},
		{"passed", Green},
		{"success", Green},
		{"ok", Green},
		{"stable", Green},
		{"warning", Yellow},
		{"unstable", Yellow},
		{"failing", Red},
		{"failed", Red},
		{"error", Red},
		{"critical", Red},
		{"pending", Grey},
		{"queued", Grey},
		{"unknown", Grey},
		{"v1.2.3", Blue},
		{"", Blue},
	}
	for _, c := range cases {
		if got := StatusColor(c.status); got != c.want {
			t.Fatalf("StatusColor(%q) = %s, want %s", c.status, got, c.want)
		}
	}
}
