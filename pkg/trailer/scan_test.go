package trailer

import "testing"

func TestLastLine(t *testing.T) {
	cases := []struct {
		buf    string
		length int
		want   int
	}{
		{"", 0, -1},
		{"a", 1, 0},
		{"a\n", 2, 0}, // trailing newline belongs to the line it ends
		{"a\nb", 3, 2},
		{"a\nb\n", 4, 2},
		{"ab\ncd\nef\n", 9, 6},
		{"ab\ncd\nef\n", 6, 3}, // shortened view ends after "cd\n"
	}
	for _, c := range cases {
		if got := lastLine([]byte(c.buf), c.length); got != c.want {
			t.Fatalf("lastLine(%q, %d) = %d, want %d", c.buf, c.length, got, c.want)
		}
	}
}

func TestNextLineFixedPoint(t *testing.T) {
	buf := []byte("a\nb")
	if got := nextLine(buf, 0); got != 2 {
		t.Fatalf("nextLine from 0 = %d, want 2", got)
	}
	if got := nextLine(buf, 2); got != 3 {
		t.Fatalf("nextLine from 2 = %d, want 3", got)
	}
	// len(buf) is a fixed point
	if got := nextLine(buf, 3); got != 3 {
		t.Fatalf("nextLine from end = %d, want 3", got)
	}
}

func TestIsBlankLine(t *testing.T) {
	cases := []struct {
		buf  string
		pos  int
		want bool
	}{
		{"\n", 0, true},
		{"  \t\nx", 0, true},
		{"   ", 0, true}, // blank up to end of buffer
		{"x\n", 0, false},
		{"  x\n", 0, false},
		{"a\n\nb", 2, true},
	}
	for _, c := range cases {
		if got := isBlankLine([]byte(c.buf), c.pos); got != c.want {
			t.Fatalf("isBlankLine(%q, %d) = %v, want %v", c.buf, c.pos, got, c.want)
		}
	}
}

func TestFindSeparator(t *testing.T) {
	cases := []struct {
		line       string
		separators string
		want       int
	}{
		{"Key: value", ":", 3},
		{"Key : value", ":", 4},
		{"Key-Name: x", ":", 8},
		{"Key\t: x", ":", 4},
		{": leading separator", ":", 0}, // 0 is found, distinct from -1
		{"no separator here!", ":", -1},
		{"foo bar: x", ":", -1}, // second word breaks the key run
		{"Bug #43", "#:", 4},
		{"Bug #43", ":", -1},
		{"", ":", -1},
	}
	for _, c := range cases {
		if got := findSeparator([]byte(c.line), 0, c.separators); got != c.want {
			t.Fatalf("findSeparator(%q, %q) = %d, want %d", c.line, c.separators, got, c.want)
		}
	}
}
