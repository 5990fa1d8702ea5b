package domain

import "fmt"

// DimensionScore is one scored coaching dimension with a one-sentence note.
type DimensionScore struct {
	Score int    `json:"score"`
	Note  string `json:"note"`
}

// Dimensions holds the five fixed coaching dimensions.
type Dimensions struct {
	Structure   DimensionScore `json:"structure"`
	Clarity     DimensionScore `json:"clarity"`
	Conciseness DimensionScore `json:"conciseness"`
	Altitude    DimensionScore `json:"altitude"`
	Confidence  DimensionScore `json:"confidence"`
}

// DimensionNames lists the five dimensions in display order.
func DimensionNames() []string {
	return []string{"structure", "clarity", "conciseness", "altitude", "confidence"}
}

// ByName returns the score for a named dimension.
func (d Dimensions) ByName(name string) (DimensionScore, bool) {
	switch name {
	case "structure":
		return d.Structure, true
	case "clarity":
		return d.Clarity, true
	case "conciseness":
		return d.Conciseness, true
	case "altitude":
		return d.Altitude, true
	case "confidence":
		return d.Confidence, true
	}
	return DimensionScore{}, false
}

// AnalysisResult is the structured coaching output for one Attempt. It is
// produced by the external analysis service and must be validated before use.
type AnalysisResult struct {
	Overall         int        `json:"overall"`
	Dimensions      Dimensions `json:"dimensions"`
	Summary         string     `json:"summary"`
	KeyImprovement  string     `json:"keyImprovement"`
	PolishedVersion string     `json:"polishedVersion"`
	FillerWords     []string   `json:"fillerWords"`
}

// Validate checks field presence and score ranges. An analysis that fails
// validation must be treated as a parse failure, never as partial success.
func (r AnalysisResult) Validate() error {
	if err := scoreInRange("overall", r.Overall); err != nil {
		return err
	}
	for _, name := range DimensionNames() {
		dim, _ := r.Dimensions.ByName(name)
		if err := scoreInRange(name, dim.Score); err != nil {
			return err
		}
	}
	if r.Summary == "" {
		return fmt.Errorf("analysis is missing a summary")
	}
	if r.KeyImprovement == "" {
		return fmt.Errorf("analysis is missing a key improvement")
	}
	if r.PolishedVersion == "" {
		return fmt.Errorf("analysis is missing a polished version")
	}
	return nil
}

func scoreInRange(name string, score int) error {
	if score < 1 || score > 10 {
		return fmt.Errorf("%s score %d is outside 1-10", name, score)
	}
	return nil
}
