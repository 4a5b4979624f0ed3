package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"already clean", "LACTOGEN PRO 1", "LACTOGEN PRO 1"},
		{"lowercases and punctuation", "Lactogen Pro-1 (BIB) 24x400g", "LACTOGEN PRO 1 BIB 24X400G"},
		{"collapses whitespace", "  NESCAFE \t GOLD \n 50g ", "NESCAFE GOLD 50G"},
		{"only punctuation", "***---///", ""},
		{"unicode stripped", "CAFÉ AU LAIT №5", "CAF AU LAIT 5"},
		{"digits kept", "24x400g @ 12.5%", "24X400G 12 5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Text(tc.in))
		})
	}
}

func TestTextIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"LACTOGEN PRO1 BIB 24x400g NP",
		"  mixed Case, with; punct!  ",
		"___",
		"a  b\tc\nd",
	}
	for _, in := range inputs {
		once := Text(in)
		assert.Equal(t, once, Text(once), "normalize must be idempotent for %q", in)
	}
}
