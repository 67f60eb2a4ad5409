package output

// DefaultAssumptions lists the modelling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"assumptions.one_year",
	"assumptions.no_income_tax",
	"assumptions.flat_rate_floor",
	"assumptions.standard_social_average",
	"assumptions.liberal_general_scheme",
}
