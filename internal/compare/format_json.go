package compare

import (
	json "github.com/goccy/go-json"
)

// JSONFormatter formats comparison results as JSON
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

type jsonComparison struct {
	*ComparisonSet
	BestScenarioName string `json:"bestScenarioName,omitempty"`
}

// Format generates JSON output for comparison results. The most
// favourable consistent combination is named alongside the set.
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	doc := jsonComparison{ComparisonSet: compSet}
	if best := compSet.Best(); best != nil {
		doc.BestScenarioName = best.ScenarioName
	}

	marshal := json.Marshal
	if jf.Pretty {
		marshal = func(v interface{}) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }
	}

	data, err := marshal(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
