package valueobject

import "testing"

func TestProfileMatches(t *testing.T) {
	gabriel := Profile("Gabriel")
	paloma := Profile("Paloma")

	tests := []struct {
		name    string
		record  Profile
		filter  Profile
		matches bool
	}{
		{"both filter matches member", gabriel, ProfileBoth, true},
		{"both filter matches shared", ProfileShared, ProfileBoth, true},
		{"exact member match", gabriel, gabriel, true},
		{"other member does not match", paloma, gabriel, false},
		{"shared matches any member filter", ProfileShared, paloma, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.Matches(tt.filter); got != tt.matches {
				t.Errorf("Matches(%q, %q): expected %v, got %v", tt.record, tt.filter, tt.matches, got)
			}
		})
	}
}

func TestPaymentMethodClosingDay(t *testing.T) {
	tests := []struct {
		method PaymentMethod
		day    int
		isCard bool
	}{
		{PaymentMethodBradesco, 5, true},
		{PaymentMethodNubank, 5, true},
		{PaymentMethodItau, 28, true},
		{PaymentMethodCash, 0, false},
		{PaymentMethodPix, 0, false},
		{PaymentMethod("Cartão Loja"), 0, false},
	}

	for _, tt := range tests {
		day, ok := tt.method.ClosingDay()
		if ok != tt.isCard {
			t.Errorf("%s: expected card=%v, got %v", tt.method, tt.isCard, ok)
		}
		if ok && day != tt.day {
			t.Errorf("%s: expected closing day %d, got %d", tt.method, tt.day, day)
		}
		if tt.method.IsCard() != tt.isCard {
			t.Errorf("%s: IsCard mismatch", tt.method)
		}
	}
}
