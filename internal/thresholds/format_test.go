package thresholds

import (
	"testing"

	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFlatRateThresholdDisplay(t *testing.T) {
	assert.Equal(t, "188 700 €", FlatRateThresholdDisplay(domain.ActivityGoodsSale))
	assert.Equal(t, "77 700 €", FlatRateThresholdDisplay(domain.ActivityServices))
	assert.Equal(t, "77 700 €", FlatRateThresholdDisplay(domain.ActivityLiberalProfession))
}

func TestVatFranchiseThresholdDisplay(t *testing.T) {
	goods := VatFranchiseThresholdDisplay(domain.ActivityGoodsSale)
	assert.Equal(t, VatFranchiseDisplay{Base: "85 000 €", Upper: "93 500 €"}, goods)

	services := VatFranchiseThresholdDisplay(domain.ActivityLiberalProfession)
	assert.Equal(t, VatFranchiseDisplay{Base: "37 500 €", Upper: "41 250 €"}, services)
}

func TestVatActualRegimeThresholdDisplay(t *testing.T) {
	assert.Equal(t, "840 000 €", VatActualRegimeThresholdDisplay(domain.ActivityGoodsSale))
	assert.Equal(t, "254 000 €", VatActualRegimeThresholdDisplay(domain.ActivityServices))
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"0", "0 €"},
		{"305", "305 €"},
		{"1234.49", "1 234 €"},
		{"1234.5", "1 235 €"},
		{"1000000", "1 000 000 €"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestFormatter_English(t *testing.T) {
	f := NewFormatter(domain.DefaultThresholds(), language.English)

	assert.Equal(t, "€188,700", f.FlatRateThresholdDisplay(domain.ActivityGoodsSale))
	assert.Equal(t, "21.2%", f.FormatRate(decimal.RequireFromString("0.212")))
}

func TestFormatter_CustomTable(t *testing.T) {
	th := domain.DefaultThresholds()
	th.MicroCeilings.Services = decimal.NewFromInt(83600)
	f := NewFormatter(th, language.French)

	assert.Equal(t, "83 600 €", f.FlatRateThresholdDisplay(domain.ActivityServices))
	assert.Equal(t, "21,2 %", f.FormatRate(decimal.RequireFromString("0.212")))
}

func TestFormatter_Summary(t *testing.T) {
	f := NewFormatter(domain.DefaultThresholds(), language.French)

	summary := f.Summary(domain.ActivityLiberalProfession)

	assert.Equal(t, "77 700 €", summary["micro_ceiling"])
	assert.Equal(t, "37 500 €", summary["vat_franchise_base"])
	assert.Equal(t, "34 %", summary["flat_rate_deduction"])
	assert.Equal(t, "24,6 %", summary["micro_social_rate"])
	assert.Equal(t, "305 €", summary["minimum_deduction"])
}
