package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"collapses whitespace runs", "Buyer  Name:\t Jane\n\nDoe", "buyer name: jane doe"},
		{"erases line boundaries", "line one\nline two", "line one line two"},
		{"semicolon becomes colon", "Purchaser; Jane Doe", "purchaser: jane doe"},
		{"vertical bar becomes i", "SM|TH", "smith"},
		{"lowercases", "OFFER PRICE: $450,000", "offer price: $450,000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Buyer Name: Jane Doe\nSeller; John | Smith",
		"already normalized text: value",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalizing normalized text must be a no-op")
	}
}

func TestCleanPreservesCase(t *testing.T) {
	got := clean("Buyer  Name;\nJane Doe")
	assert.Equal(t, "Buyer Name: Jane Doe", got)
}
