package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalCompanyKey(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Acme Corp", "acme corp"},
		{"strips punctuation", "Acme Corp, Inc.", "acme corp inc"},
		{"collapses whitespace", "  ACME   corp  ", "acme corp"},
		{"keeps digits", "24/7 Staffing LLC", "24 7 staffing llc"},
		{"like metacharacters removed", "100%_Legit Jobs", "100 legit jobs"},
		{"empty", "", ""},
		{"only punctuation", "***", ""},
		{"unicode letters survive", "Büro Müller GmbH", "büro müller gmbh"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanonicalCompanyKey(tc.in))
		})
	}
}
