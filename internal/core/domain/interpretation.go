package domain

// Confidence expresses how sure an interpreter is about its reading of a response code.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// Interpretation is a human-readable explanation of a gateway response.
type Interpretation struct {
	Interpretation   string     `json:"interpretation"` // markdown
	Confidence       Confidence `json:"confidence"`
	ExplanationBasis string     `json:"explanationBasis"`
}
