package gemini

// Part is one piece of content in a request or response.
type Part struct {
	Text string `json:"text"`
}

// Content is a single content entry holding one or more parts.
type Content struct {
	Parts []Part `json:"parts"`
}

// GenerateRequest is the generateContent request body. The outbound request
// carries exactly one content entry with the raw user utterance; prior
// conversation turns are not replayed.
type GenerateRequest struct {
	Contents []Content `json:"contents"`
}

// Candidate is one generated reply candidate.
type Candidate struct {
	Content Content `json:"content"`
}

// GenerateResponse is the generateContent response body.
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Text returns the reply text at candidates[0].content.parts[0].text, or
// the empty string when that path is absent.
func (r *GenerateResponse) Text() string {
	if r == nil || len(r.Candidates) == 0 {
		return ""
	}
	parts := r.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return ""
	}
	return parts[0].Text
}
