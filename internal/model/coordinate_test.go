package model

import "testing"

func TestEncodeWorkedExamples(t *testing.T) {
	cases := []struct {
		row, col int
		want     int
	}{
		{1, 1, 101},
		{2, 3, 203},
		{10, 10, 1010},
	}

	for _, c := range cases {
		got, err := Encode(c.row, c.col, 10)
		if err != nil {
			t.Fatalf("Encode(%d,%d): unexpected error: %v", c.row, c.col, err)
		}
		if got != c.want {
			t.Errorf("Encode(%d,%d) = %d, want %d", c.row, c.col, got, c.want)
		}
	}
}

func TestParseWorkedExamples(t *testing.T) {
	cases := []struct {
		s        string
		row, col int
	}{
		{"A1", 1, 1},
		{"B3", 2, 3},
		{"J10", 10, 10},
		{"a1", 1, 1},
		{"j10", 10, 10},
	}

	for _, c := range cases {
		row, col, err := Parse(c.s)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", c.s, err)
		}
		if row != c.row || col != c.col {
			t.Errorf("Parse(%q) = (%d,%d), want (%d,%d)", c.s, row, col, c.row, c.col)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "1A", "AA", "A", "A-1", "A0.5"} {
		if _, _, err := Parse(s); err != ErrMalformedCoordinate {
			t.Errorf("Parse(%q) = err %v, want ErrMalformedCoordinate", s, err)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for row := 1; row <= 20; row++ {
		for col := 1; col <= 20; col++ {
			code, err := Encode(row, col, 20)
			if err != nil {
				t.Fatalf("Encode(%d,%d): %v", row, col, err)
			}
			gotRow, gotCol := Decode(code)
			if gotRow != row || gotCol != col {
				t.Errorf("Decode(Encode(%d,%d)) = (%d,%d)", row, col, gotRow, gotCol)
			}
		}
	}
}

func TestEncodeOutOfBounds(t *testing.T) {
	cases := []struct{ row, col int }{
		{0, 1}, {1, 0}, {11, 1}, {1, 11}, {-1, -1},
	}
	for _, c := range cases {
		if _, err := Encode(c.row, c.col, 10); err != ErrOutOfBounds {
			t.Errorf("Encode(%d,%d) = err %v, want ErrOutOfBounds", c.row, c.col, err)
		}
	}
}

func TestFormatIsParseInverse(t *testing.T) {
	cases := []struct {
		row, col int
		want     string
	}{
		{1, 1, "A1"},
		{2, 3, "B3"},
		{10, 10, "J10"},
		{27, 5, "AA5"},
	}
	for _, c := range cases {
		got := Format(c.row, c.col)
		if got != c.want {
			t.Errorf("Format(%d,%d) = %q, want %q", c.row, c.col, got, c.want)
		}
		row, col, err := Parse(got)
		if err != nil || row != c.row || col != c.col {
			t.Errorf("Parse(Format(%d,%d)) = (%d,%d,%v)", c.row, c.col, row, col, err)
		}
	}
}
