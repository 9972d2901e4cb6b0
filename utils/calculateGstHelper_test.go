package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(value string) decimal.Decimal {
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestCalculateBaseAmount(t *testing.T) {
	cases := []struct {
		name     string
		quantity string
		rate     string
		want     string
	}{
		{"whole", "2", "100", "200"},
		{"fractional", "3.5", "10.4", "36.4"},
		{"zero quantity", "0", "100", "0"},
		{"negative passes through", "-1", "50", "-50"},
	}
	for _, tc := range cases {
		got := CalculateBaseAmount(d(tc.quantity), d(tc.rate))
		if !got.Equal(d(tc.want)) {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestCalculateGstBreakdown(t *testing.T) {
	breakdown := CalculateGstBreakdown(d("200"), d("9"), d("9"), d("0"))
	if !breakdown.Cgst.Equal(d("18")) {
		t.Fatalf("expected cgst 18, got %s", breakdown.Cgst)
	}
	if !breakdown.Sgst.Equal(d("18")) {
		t.Fatalf("expected sgst 18, got %s", breakdown.Sgst)
	}
	if !breakdown.Igst.IsZero() {
		t.Fatalf("expected igst 0, got %s", breakdown.Igst)
	}
	if !breakdown.Total().Equal(d("36")) {
		t.Fatalf("expected total 36, got %s", breakdown.Total())
	}
}

func TestCalculateGstAmount_ZeroBase(t *testing.T) {
	if got := CalculateGstAmount(d("0"), d("9"), d("9"), d("18")); !got.IsZero() {
		t.Fatalf("expected 0 tax on zero base, got %s", got)
	}
}

func TestGstBreakdownAdd(t *testing.T) {
	sum := GstBreakdown{Cgst: d("1"), Sgst: d("2"), Igst: d("3")}.
		Add(GstBreakdown{Cgst: d("4"), Sgst: d("5"), Igst: d("6")})
	if !sum.Cgst.Equal(d("5")) || !sum.Sgst.Equal(d("7")) || !sum.Igst.Equal(d("9")) {
		t.Fatalf("unexpected sum: %+v", sum)
	}
}
