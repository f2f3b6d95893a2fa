package catalog

import (
	"github.com/Eslamsamyx/kayanlive-questionnaire/answer"
	"github.com/Eslamsamyx/kayanlive-questionnaire/model"
)

// ProjectBriefID is the questionnaire served at launch.
const ProjectBriefID = "project-brief"

// Well-known question ids of the project brief. The submission gateway lifts
// these answers into dedicated columns for the admin listing.
const (
	QuestionCompanyName   = 1
	QuestionIndustry      = 3
	QuestionContactPerson = 4
	QuestionEmail         = 6

	QuestionEventDate          = 8
	QuestionTechnicalDeadline  = 39
	QuestionCommercialDeadline = 40
)

// ContactFields lifts the well-known client answers out of an answer map for
// the dedicated submission columns the admin listing shows.
func ContactFields(answers map[int]answer.Value) (companyName, contactPerson, email, industry string) {
	return answers[QuestionCompanyName].Text(),
		answers[QuestionContactPerson].Text(),
		answers[QuestionEmail].Text(),
		answers[QuestionIndustry].Text()
}

func init() {
	register(&Questionnaire{
		ID:          ProjectBriefID,
		Title:       "Project Brief Questionnaire",
		Description: "We appreciate your consideration of Serotonin Technologies for your upcoming event. To enable us to provide a comprehensive and precise proposal with competitive pricing, we kindly request the following information:",
		Questions: []model.Question{
			// Client Details
			{ID: 1, Type: model.TypeText, Question: "Company Name", Placeholder: "Enter your company name", Required: true, Section: "Client Details", HelpText: "Full legal name of your company"},
			{ID: 2, Type: model.TypeSelect, Question: "Country", Options: []string{"United Arab Emirates", "Saudi Arabia", "Qatar", "Kuwait", "Bahrain", "Oman", "Egypt", "Jordan", "Lebanon", "Other"}, Required: true, Section: "Client Details"},
			{ID: 3, Type: model.TypeSelect, Question: "Industry", Options: []string{"Technology", "Healthcare", "Finance & Banking", "Oil & Gas", "Construction", "Real Estate", "Automotive", "Education", "Government", "Retail", "Manufacturing", "Telecommunications", "Other"}, Required: true, Section: "Client Details"},
			{ID: 4, Type: model.TypeText, Question: "Contact Person", Placeholder: "Full name of primary contact", Required: true, Section: "Client Details"},
			{ID: 5, Type: model.TypePhone, Question: "Mobile Number", Placeholder: "+971 50 123 4567", Required: true, Section: "Client Details"},
			{ID: 6, Type: model.TypeEmail, Question: "Email Address", Placeholder: "contact@company.com", Required: true, Section: "Client Details"},

			// Event Details
			{ID: 7, Type: model.TypeText, Question: "Event Name", Placeholder: "Name of the exhibition or event", Required: true, Section: "Event Details"},
			{ID: 8, Type: model.TypeDate, Question: "Event Date", Placeholder: "Select event start date", Required: true, Section: "Event Details"},
			{ID: 9, Type: model.TypeText, Question: "Event Duration", Placeholder: "e.g., 3 days, 1 week", Required: true, Section: "Event Details"},
			{ID: 10, Type: model.TypeSelect, Question: "Indoor or Outdoor", Options: []string{"Indoor", "Outdoor", "Mixed (Indoor & Outdoor)"}, Required: true, Section: "Event Details"},
			{ID: 11, Type: model.TypeText, Question: "Build-up Days", Placeholder: "Number of days required for setup", Section: "Event Details"},
			{ID: 12, Type: model.TypeFileUpload, Question: "Floor Plan", Accept: ".pdf,.jpg,.jpeg,.png,.dwg", MaxSize: "10MB", Section: "Event Details", HelpText: "Upload venue floor plan if available"},

			// Stand Details
			{ID: 13, Type: model.TypeText, Question: "Hall & Stand Number", Placeholder: "e.g., Hall 3, Stand 3A-15", Section: "Stand Details"},
			{ID: 14, Type: model.TypeText, Question: "Stand Dimension", Placeholder: "e.g., 6m x 4m, 100 sqm", Required: true, Section: "Stand Details"},
			{ID: 15, Type: model.TypeText, Question: "Levels", Placeholder: "e.g., Single level, Double level", Section: "Stand Details"},
			{ID: 16, Type: model.TypeNumber, Question: "Number of Open Sides", Placeholder: "1-4", Min: num(1), Max: num(4), Required: true, Section: "Stand Details"},
			{ID: 17, Type: model.TypeText, Question: "Stand Orientation", Placeholder: "North, South, East, West facing", Section: "Stand Details"},
			{ID: 18, Type: model.TypeText, Question: "Maximum Height Restrictions", Placeholder: "e.g., 4m, 6m, No restrictions", Section: "Stand Details"},
			{ID: 19, Type: model.TypeText, Question: "Hanging Structure", Placeholder: "Describe any hanging elements needed", Section: "Stand Details"},
			{ID: 20, Type: model.TypeText, Question: "Rigging Points", Placeholder: "Ceiling mounting points available", Section: "Stand Details"},
			{ID: 21, Type: model.TypeTextarea, Question: "Any Venue Restrictions", Placeholder: "Describe any specific venue limitations or requirements", Section: "Stand Details"},
			{ID: 22, Type: model.TypeTextarea, Question: "Branding Guidelines", Placeholder: "Specific branding requirements or restrictions", Section: "Stand Details"},
			{ID: 23, Type: model.TypeSelect, Question: "Reuse Existing Stand", Options: []string{"Yes", "No", "Partial"}, Section: "Stand Details"},

			// Activations
			{ID: 24, Type: model.TypeNumber, Question: "How many activations are planned for the event?", Placeholder: "Number of activations", Min: num(0), Max: num(20), Section: "Activations"},
			{ID: 25, Type: model.TypeTextarea, Question: "Please provide the specific activations you plan to implement in your project", Placeholder: "Describe your planned activations in detail...", MaxLength: 1000, Section: "Activations"},
			{ID: 26, Type: model.TypeTextarea, Question: "Please provide the specific content to be applied in the activation", Placeholder: "Detail the content, messaging, and materials for your activations...", MaxLength: 1000, Section: "Activations"},

			// Design Requirements
			{ID: 27, Type: model.TypeCheckbox, Question: "Design Intent/Concept Design - What do you require?", Options: []string{"Concept/Vibe Page Only", "Furniture Page Only", "3D Sketch", "3D Rendered Visuals"}, Section: "Design Requirements - Concept", HelpText: "Select all design deliverables you need"},
			{ID: 28, Type: model.TypeCheckbox, Question: "Developed/Schematic Design - What do you require?", Options: []string{"Concept Vibe Amends", "Furniture Page Amends", "3D Sketch", "3D Rendered Visual Amends", "Full tender presentation Amends"}, Section: "Design Requirements - Development", HelpText: "Select all development deliverables you need"},
			{ID: 29, Type: model.TypeCheckbox, Question: "Technical Design - What do you require?", Options: []string{"Plans", "Elevations", "Structural Calculation", "Detailed Drawings", "Graphics Package"}, Section: "Design Requirements - Technical", HelpText: "Select all technical deliverables you need"},

			// Space Management
			{ID: 30, Type: model.TypeMatrix, Question: "Stand Zoning & Space Management - Select required areas and specify quantities", Rows: []string{"Mezzanine", "Reception", "Meeting Rooms", "Majlis", "Lounge", "Product Display", "Open seating area", "Service Pantry", "Media-Interview Room", "Offices", "Dining", "Food Presentation/Buffet", "Storage", "Bar"}, Columns: []string{"Yes", "No", "Quantity"}, Section: "Space Management", HelpText: "Indicate which areas you need and specify quantities where applicable"},
			{ID: 31, Type: model.TypeTextarea, Question: "Space Management Details", Placeholder: "Please add all questions, and client answers regarding space requirements...", MaxLength: 2000, Section: "Space Management", HelpText: "Additional space planning requirements and specifications"},

			{ID: 32, Type: model.TypeTextarea, Question: "Other Design Requirements", Placeholder: "Please specify any additional design requirements not covered above...", MaxLength: 1000, Section: "Design Requirements - Other", HelpText: "Any special design considerations or requirements"},

			// Branding Requirements
			{ID: 33, Type: model.TypeFileUpload, Question: "Branding Guidelines", Accept: ".pdf,.jpg,.jpeg,.png,.ai,.eps", Multiple: true, MaxSize: "25MB", Section: "Branding Requirements", HelpText: "Please share the PDF file with your branding guidelines"},
			{ID: 34, Type: model.TypeTextarea, Question: "Logo Placement Requirements", Placeholder: "Please note the level at each corner of the structure where logos should be placed...", Section: "Branding Requirements"},
			{ID: 35, Type: model.TypeTextarea, Question: "Company Profile", Placeholder: "Please note down the company overview...", MaxLength: 1500, Section: "Branding Requirements", HelpText: "Provide a comprehensive company overview for better understanding"},
			{ID: 36, Type: model.TypePercentage, Question: "Stand Objectives Percentage", Placeholder: "What percentage of objectives should the stand achieve?", Min: num(0), Max: num(100), Step: num(5), Section: "Branding Requirements"},

			// Look & Feel
			{ID: 37, Type: model.TypeTextarea, Question: "Color Palette & Design Direction", Placeholder: "Please specify the desired look and feel, color palette, and corporate identity that should be considered...", MaxLength: 1000, Section: "Look & Feel", HelpText: "Describe your visual preferences and brand identity"},
			{ID: 38, Type: model.TypeSelect, Question: "Style Preference", Options: []string{"Modern & Contemporary", "Traditional & Classic", "Minimalist", "Industrial", "Luxury & Premium", "Tech & Futuristic", "Cultural & Heritage", "Eco-friendly & Sustainable", "Other"}, Section: "Look & Feel"},

			// Proposal and Budget
			{ID: 39, Type: model.TypeDate, Question: "Technical Proposal Deadline", Placeholder: "When do you need the technical proposal?", Section: "Proposal and Budget"},
			{ID: 40, Type: model.TypeDate, Question: "Commercial Proposal Deadline", Placeholder: "When do you need the commercial proposal?", Section: "Proposal and Budget"},
			{ID: 41, Type: model.TypeCurrency, Question: "Budget Allocation - Stand Fabrication", Currency: "AED", Placeholder: "Budget allocated for stand fabrication", Section: "Proposal and Budget"},
			{ID: 42, Type: model.TypeCurrency, Question: "Budget Allocation - Technologies", Currency: "AED", Placeholder: "Budget allocated for technology integration", Section: "Proposal and Budget"},

			// Other Requirements
			{ID: 43, Type: model.TypeMatrix, Question: "Other Stand Requirements", Rows: []string{"Giveaways", "Catering", "Professional coffee machine with barista", "Arabic coffee and dates", "Branded chocolates", "Host/Hostesses"}, Columns: []string{"Yes", "No", "Details"}, Section: "Other Requirements", HelpText: "Select additional services you require and provide details"},

			// Notes
			{ID: 44, Type: model.TypeTextarea, Question: "Additional Notes", Placeholder: "Any additional notes, requirements, or special considerations...", MaxLength: 2000, Section: "Notes", HelpText: "Include any other important information not covered above"},

			// Submission
			{ID: 45, Type: model.TypeMultiField, Question: "Submission Details", Required: true, Section: "Submission", HelpText: "Please provide submission details for record keeping", Fields: []model.MultiField{
				{ID: "submitterName", Label: "Submitted By - Name", Type: model.TypeText, Placeholder: "Full name", Required: true},
				{ID: "submitterDesignation", Label: "Designation", Type: model.TypeText, Placeholder: "Job title", Required: true},
				{ID: "submissionDate", Label: "Submission Date", Type: model.TypeDate, Required: true},
			}},
			{ID: 46, Type: model.TypeSignature, Question: "Digital Signature", Required: true, Section: "Submission", HelpText: "Please provide your digital signature to authorize this submission"},

			// Review
			{ID: 47, Type: model.TypeMultiField, Question: "Account Manager Review (Internal Use)", Section: "Review", HelpText: "To be completed by account manager during review", Fields: []model.MultiField{
				{ID: "reviewerName", Label: "Reviewed By - Name", Type: model.TypeText, Placeholder: "Account manager name"},
				{ID: "reviewDate", Label: "Review Date", Type: model.TypeDate},
			}},
		},
	})
}
