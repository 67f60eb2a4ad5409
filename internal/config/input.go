package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/eisim/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// SimulationSpec is one named simulation in an input file.
type SimulationSpec struct {
	Name                   string `yaml:"name" json:"name"`
	domain.SimulationInput `yaml:",inline"`
}

// SimulationFile is the top-level document of an input file.
type SimulationFile struct {
	Name        string           `yaml:"name" json:"name"`
	Simulations []SimulationSpec `yaml:"simulations" json:"simulations"`
}

// InputParser handles parsing of simulation and regulatory files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads simulations from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*SimulationFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a simulation document. JSON is accepted
// since it is a subset of YAML.
func (ip *InputParser) Parse(data []byte) (*SimulationFile, error) {
	var file SimulationFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i := range file.Simulations {
		applyDefaults(i, &file.Simulations[i])
	}

	if err := ip.ValidateFile(&file); err != nil {
		return nil, fmt.Errorf("simulation validation failed: %w", err)
	}

	return &file, nil
}

// applyDefaults names anonymous simulations and fills their regimes.
func applyDefaults(index int, spec *SimulationSpec) {
	if spec.Name == "" {
		spec.Name = fmt.Sprintf("simulation %d", index+1)
	}
	spec.Configuration = WithDefaultRegimes(spec.Configuration)
}

// WithDefaultRegimes fills regimes left empty: flat-rate taxation, the
// social regime that goes with the tax regime, VAT franchise. The activity
// has no default.
func WithDefaultRegimes(cfg domain.Configuration) domain.Configuration {
	if cfg.TaxRegime == "" {
		cfg.TaxRegime = domain.TaxRegimeFlatRate
	}
	if cfg.SocialRegime == "" {
		cfg.SocialRegime = domain.DefaultSocialRegimeFor(cfg.TaxRegime)
	}
	if cfg.VatRegime == "" {
		cfg.VatRegime = domain.VatFranchise
	}
	return cfg
}

// ValidateFile validates every simulation of a file
func (ip *InputParser) ValidateFile(file *SimulationFile) error {
	if len(file.Simulations) == 0 {
		return fmt.Errorf("no simulations provided")
	}
	for i, spec := range file.Simulations {
		if err := ip.ValidateInput(spec.SimulationInput); err != nil {
			return fmt.Errorf("simulation %d (%s): %w", i, spec.Name, err)
		}
	}
	return nil
}

// ValidateInput checks enum values, amounts and regime availability.
// Unavailable tax regimes are reported rather than reset.
func (ip *InputParser) ValidateInput(input domain.SimulationInput) error {
	if err := ValidateConfiguration(input.Configuration); err != nil {
		return err
	}
	if err := CheckAmount("turnover", input.Turnover); err != nil {
		return err
	}
	return CheckAmount("expenses", input.Expenses)
}

// MaxAmount bounds every amount read from outside, in euros.
var MaxAmount = decimal.New(1, 12)

// maxExponent bounds the exponent of an amount. It is checked before any
// comparison since decimal arithmetic rescales operands to a common exponent.
const maxExponent = 12

// CheckAmount rejects negative amounts and amounts beyond MaxAmount.
func CheckAmount(name string, amount decimal.Decimal) error {
	if exp := amount.Exponent(); exp > maxExponent || exp < -maxExponent {
		return fmt.Errorf("%s is out of range (exponent %d)", name, exp)
	}
	if amount.IsNegative() {
		return fmt.Errorf("%s cannot be negative", name)
	}
	if amount.GreaterThan(MaxAmount) {
		return fmt.Errorf("%s cannot exceed %s", name, MaxAmount.String())
	}
	return nil
}

// ValidateConfiguration checks that every regime is known and that the
// tax regime is available for the activity.
func ValidateConfiguration(cfg domain.Configuration) error {
	if cfg.ActivityType == "" {
		return fmt.Errorf("activity type is required")
	}
	if _, err := domain.ParseActivityType(string(cfg.ActivityType)); err != nil {
		return err
	}
	if _, err := domain.ParseTaxRegime(string(cfg.TaxRegime)); err != nil {
		return err
	}
	if _, err := domain.ParseSocialRegime(string(cfg.SocialRegime)); err != nil {
		return err
	}
	if _, err := domain.ParseVatRegime(string(cfg.VatRegime)); err != nil {
		return err
	}
	if !cfg.IsConsistent() {
		return fmt.Errorf("tax regime %s is not available for activity %s", cfg.TaxRegime, cfg.ActivityType)
	}
	return nil
}

// LoadRegulatory reads a threshold table from YAML. Fields missing from
// the file keep their default values.
func (ip *InputParser) LoadRegulatory(filename string) (domain.Thresholds, error) {
	th := domain.DefaultThresholds()
	if filename == "" {
		return th, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return th, fmt.Errorf("failed to read regulatory file %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &th); err != nil {
		return th, fmt.Errorf("failed to parse regulatory YAML: %w", err)
	}
	if err := ValidateThresholds(th); err != nil {
		return th, fmt.Errorf("regulatory validation failed: %w", err)
	}
	return th, nil
}

// ValidateThresholds checks ceilings are positive, rates lie in [0, 1] and
// each majoré ceiling is at least its base ceiling.
func ValidateThresholds(th domain.Thresholds) error {
	for _, activity := range domain.AllActivityTypes {
		if !th.MicroCeiling(activity).IsPositive() {
			return fmt.Errorf("micro ceiling for %s must be positive", activity)
		}
		base, majored := th.VatFranchiseCeilings(activity)
		if !base.IsPositive() {
			return fmt.Errorf("VAT franchise ceiling for %s must be positive", activity)
		}
		if majored.LessThan(base) {
			return fmt.Errorf("majored VAT ceiling for %s is below the base ceiling", activity)
		}
		if !th.VatActualSimplifiedCeiling(activity).IsPositive() {
			return fmt.Errorf("simplified VAT ceiling for %s must be positive", activity)
		}
		if err := checkRate("flat-rate deduction for "+string(activity), th.FlatRateDeduction(activity)); err != nil {
			return err
		}
		if err := checkRate("micro-social rate for "+string(activity), th.MicroSocialRate(activity)); err != nil {
			return err
		}
	}
	if th.MinimumDeduction.IsNegative() {
		return fmt.Errorf("minimum deduction cannot be negative")
	}
	if err := checkRate("standard social rate", th.StandardSocialRate); err != nil {
		return err
	}
	return checkRate("approaching threshold ratio", th.ApproachingThresholdAt)
}

func checkRate(name string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%s must be between 0 and 1, got %s", name, rate)
	}
	return nil
}
