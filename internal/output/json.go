package output

import (
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// JSONFormatter renders the batch as indented JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(batch *Batch) ([]byte, error) {
	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// YAMLFormatter renders the batch as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(batch *Batch) ([]byte, error) {
	return yaml.Marshal(batch)
}
