// Package report assembles the candidate summary artifact and hands it to the
// rendering and delivery collaborators.
package report

import "github.com/hiringpartner/hiring-partner/internal/session"

const (
	placeholderTechnical       = "No technical questions generated."
	placeholderCoding          = "No coding questions generated."
	placeholderRecommendations = "No job recommendations available."

	// Title is the heading used on the rendered report.
	Title = "Hiring Partner - Candidate Summary"

	// AttachmentName is the filename of the PDF attached to the report email.
	AttachmentName = "HiringPartner_Candidate_Report.pdf"
)

// Data is a read-only snapshot of a completed session, ready for rendering.
// Every section is non-empty: empty sequences are substituted with
// placeholder text so the rendered artifact never has a blank section.
type Data struct {
	Profile            []session.Field
	TechnicalQuestions []string
	CodingQuestions    []string
	JobRecommendations []string
}

// Assemble builds the report snapshot from the session state. It performs no
// mutation and no I/O; assembling the same state twice yields equal Data.
func Assemble(state session.State) Data {
	return Data{
		Profile:            state.Profile.Fields(),
		TechnicalQuestions: orPlaceholder(state.TechnicalQuestions, placeholderTechnical),
		CodingQuestions:    orPlaceholder(state.CodingQuestions, placeholderCoding),
		JobRecommendations: orPlaceholder(state.JobRecommendations, placeholderRecommendations),
	}
}

func orPlaceholder(items []string, placeholder string) []string {
	if len(items) == 0 {
		return []string{placeholder}
	}

	out := make([]string, len(items))
	copy(out, items)
	return out
}
