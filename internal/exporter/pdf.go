package exporter

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"talentscout/internal/prompts"
	"talentscout/pkg/models"
)

// renderPDF writes the four-section candidate report: candidate information,
// interview responses in asked order, evaluation text, and the screening
// decision.
func renderPDF(candidate *models.CandidateRecord, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "B", 16)
		pdf.CellFormat(0, 10, "TalentScout Candidate Report", "", 1, "C", false, 0, "")
		pdf.Ln(10)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	addSection(pdf, "Candidate Information", candidateInfo(candidate))
	addSection(pdf, "Interview Responses", prompts.FormatResponses(candidate.Responses, "\n\n"))
	addSection(pdf, "Evaluation", candidate.Evaluation)
	addSection(pdf, "Screening Result", candidate.ScreeningResult)

	return pdf.OutputFileAndClose(path)
}

func addSection(pdf *fpdf.Fpdf, title, body string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	// The PDF core fonts only cover latin-1; anything else is replaced so
	// MultiCell does not emit garbage glyphs.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.MultiCell(0, 5, tr(body), "", "L", false)
	pdf.Ln(8)
}

func candidateInfo(candidate *models.CandidateRecord) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nPosition: %s\nExperience: %s years\nLocation: %s\nTech Stack: %s",
		candidate.Name,
		candidate.Email,
		candidate.Phone,
		candidate.Position,
		candidate.Experience,
		candidate.Location,
		strings.Join(candidate.TechStack, ", "))
}
