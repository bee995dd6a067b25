package currency

import (
	"math"
	"testing"
)

func TestConvert(t *testing.T) {
	c := NewStaticConverter()

	tests := []struct {
		name     string
		amount   float64
		from, to string
		want     float64
		wantErr  bool
	}{
		{"same currency is identity", 300000, "NGN", "NGN", 300000, false},
		{"case and spacing normalized", 100, " usd ", "USD", 100, false},
		{"usd to ngn", 1, "USD", "NGN", 1550, false},
		{"ngn to usd", 1550, "NGN", "USD", 1, false},
		{"cross rate via usd", 92, "EUR", "USD", 100, false},
		{"unknown source", 1, "XYZ", "USD", 0, true},
		{"unknown target", 1, "USD", "XYZ", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Convert(tt.amount, tt.from, tt.to)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Convert() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Convert(%f, %s, %s) = %f, want %f", tt.amount, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestConvertRoundTrips(t *testing.T) {
	c := NewStaticConverter()

	there, err := c.Convert(250, "USD", "NGN")
	if err != nil {
		t.Fatal(err)
	}
	back, err := c.Convert(there, "NGN", "USD")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(back-250) > 1e-9 {
		t.Errorf("round trip = %f, want 250", back)
	}
}

func TestSupported(t *testing.T) {
	c := NewStaticConverter()

	if !c.Supported("ngn") {
		t.Error("Supported(ngn) = false")
	}
	if c.Supported("XYZ") {
		t.Error("Supported(XYZ) = true")
	}
}
