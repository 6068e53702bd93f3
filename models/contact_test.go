package models

import "testing"

func TestFormatPostalAddress(t *testing.T) {
	tests := []struct {
		name     string
		street   string
		city     string
		region   string
		postal   string
		country  string
		expected string
	}{
		{
			name:     "all components",
			street:   "123 Main St",
			city:     "Springfield",
			region:   "IL",
			postal:   "62704",
			country:  "USA",
			expected: "123 Main St\nSpringfield, IL 62704\nUSA",
		},
		{
			name:     "street only",
			street:   "123 Main St",
			expected: "123 Main St\n",
		},
		{
			name:     "city and region",
			city:     "Springfield",
			region:   "IL",
			expected: "Springfield, IL",
		},
		{
			name:     "region without city still separated",
			region:   "IL",
			postal:   "62704",
			expected: "IL 62704",
		},
		{
			name:     "country alone",
			country:  "USA",
			expected: "USA",
		},
		{
			name:     "postal code follows city",
			city:     "Springfield",
			postal:   "62704",
			expected: "Springfield 62704",
		},
		{
			name:     "nothing",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatPostalAddress(tt.street, tt.city, tt.region, tt.postal, tt.country)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
