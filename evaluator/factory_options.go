package evaluator

import (
	"os"

	"gopkg.in/yaml.v2"
)

// FactoryOptions configures the rarely-varied parts of kernel selection
// that the planner would otherwise have to hardcode: default decimal
// precision/scale, and whether StringConcat additionally accepts a
// numeric operand by implicitly stringifying it (some SQL dialects allow
// `'a' || 1`, others don't). The decimal defaults are carried here but
// no kernel in this package reads them.
type FactoryOptions struct {
	DefaultDecimalPrecision uint8 `yaml:"default_decimal_precision"`
	DefaultDecimalScale     uint8 `yaml:"default_decimal_scale"`
	ConcatCoercesNumeric    bool  `yaml:"concat_coerces_numeric"`
}

// DefaultFactoryOptions uses a narrower, still generous default than
// MySQL's DECIMAL ceiling (precision 65 / scale 30), since this module
// has no storage layer to enforce a wire limit against.
func DefaultFactoryOptions() FactoryOptions {
	return FactoryOptions{
		DefaultDecimalPrecision: 18,
		DefaultDecimalScale:     4,
		ConcatCoercesNumeric:    false,
	}
}

// LoadFactoryOptions reads FactoryOptions from a YAML file. Missing
// fields keep DefaultFactoryOptions' values.
func LoadFactoryOptions(path string) (FactoryOptions, error) {
	opts := DefaultFactoryOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, err
	}
	return opts, nil
}
