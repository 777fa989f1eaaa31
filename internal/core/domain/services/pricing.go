package services

import "strings"

// FallbackRegionTax is charged for any region code that is not present in the
// tax table, including malformed input. Resolution can never fail.
const FallbackRegionTax = 170.0

// regionTaxes maps two-letter region (UF) codes to the flat rental tax charged
// on approval. SP and DF deliberately have no entry and fall back to
// FallbackRegionTax.
var regionTaxes = map[string]float64{
	"AC": 40.0,
	"AL": 30.0,
	"AP": 30.0,
	"AM": 20.0,
	"BA": 50.0,
	"CE": 80.0,
	"ES": 30.0,
	"GO": 80.0,
	"MA": 60.0,
	"MT": 50.0,
	"MS": 50.0,
	"MG": 80.0,
	"PB": 30.0,
	"PR": 40.0,
	"PE": 30.0,
	"PI": 80.0,
	"RJ": 50.0,
	"RN": 80.0,
	"RS": 80.0,
	"RO": 70.0,
	"RR": 40.0,
	"SC": 50.0,
	"SE": 80.0,
	"TO": 40.0,
}

// ResolveRegionTax returns the flat rental tax for a region code.
// The lookup is case-insensitive; unknown codes return FallbackRegionTax.
func ResolveRegionTax(region string) float64 {
	if tax, ok := regionTaxes[strings.ToUpper(strings.TrimSpace(region))]; ok {
		return tax
	}
	return FallbackRegionTax
}
