package metrics

// Envelope is the generic return contract shared by every metric function.
// Metric names the computation, Value holds the result (a number or a small
// struct), and RawInputs carries the intermediate quantities the value was
// derived from so downstream consumers can build evidence without
// recomputing. All fields are JSON-serializable.
type Envelope struct {
	Metric    string         `json:"metric"`
	Value     any            `json:"value"`
	RawInputs map[string]any `json:"raw_inputs"`
}

// Float returns the envelope value as a float64, or 0 if the value is not
// a float. Convenience for metrics whose value is a plain score.
func (e Envelope) Float() float64 {
	if f, ok := e.Value.(float64); ok {
		return f
	}
	return 0
}
