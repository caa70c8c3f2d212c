package utils

import "testing"

func TestHTMLText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"Bahnhofstrasse 1, 8001 Zürich", "Bahnhofstrasse 1, 8001 Zürich"},
		{"Caf&eacute; &amp; Bar", "Café & Bar"},
		{"<span>8001</span> Z&#252;rich", "8001 Zürich"},
		{"a &lt;b&gt; c", "a <b> c"},
	}

	for _, tt := range tests {
		if got := HTMLText(tt.in); got != tt.want {
			t.Errorf("HTMLText(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestJSEscape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"abcXYZ019", "abcXYZ019"},
		{"@*_+-./", "@*_+-./"},
		{"a b", "a%20b"},
		{"Main 1, Zürich", "Main%201%2C%20Z%FCrich"},
		{"&=?", "%26%3D%3F"},
		{"€", "%u20AC"},
		{"😀", "%uD83D%uDE00"},
	}

	for _, tt := range tests {
		if got := JSEscape(tt.in); got != tt.want {
			t.Errorf("JSEscape(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}
