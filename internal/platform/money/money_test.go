package money

import "testing"

func TestFormatCOP(t *testing.T) {
	cases := map[int64]string{
		30000:   "$ 30.000",
		1250000: "$ 1.250.000",
		-45000:  "-$ 45.000",
	}
	for in, want := range cases {
		if got := FormatCOP(in); got != want {
			t.Fatalf("FormatCOP(%d) = %q, want %q", in, got, want)
		}
	}
}
