package entities

type AnalysisResult struct {
	text string
}

func NewAnalysisResult(text string) *AnalysisResult {
	return &AnalysisResult{
		text: text,
	}
}

func (r *AnalysisResult) Text() string {
	return r.text
}
