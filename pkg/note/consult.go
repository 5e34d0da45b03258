package note

// ConsultTemplate is the consultation note: a specialist's assessment and
// recommendations for a referred patient.
type ConsultTemplate struct {
	*FieldStore
}

// NewConsult creates an empty consultation note template.
func NewConsult(options ...StoreOption) *ConsultTemplate {
	return &ConsultTemplate{FieldStore: NewFieldStore(options...)}
}

func (t *ConsultTemplate) Type() Type {
	return TypeConsult
}

func (t *ConsultTemplate) Title() string {
	return "CONSULTATION NOTE"
}

func (t *ConsultTemplate) RequiredFields() []string {
	return []string{
		"patient_name",
		"patient_mrn",
		"date_of_consult",
		"consulting_service",
		"reason_for_consult",
		"history_of_present_illness",
		"assessment",
		"recommendations",
	}
}

func (t *ConsultTemplate) OptionalFields() []string {
	return []string{
		"patient_dob",
		"age",
		"sex",
		"referring_provider",
		"past_medical_history",
		"past_surgical_history",
		"medications",
		"allergies",
		"social_history",
		"family_history",
		"review_of_systems",
		"physical_exam",
		"labs",
		"imaging",
		"other_studies",
		"differential_diagnosis",
		"plan",
		"follow_up",
		"attending_physician",
		"consulting_physician",
	}
}

func (t *ConsultTemplate) Layout() []Block {
	return []Block{
		group("PATIENT INFORMATION",
			requiredLine("Name", "patient_name"),
			requiredLine("MRN", "patient_mrn"),
			line("DOB", "patient_dob"),
			line("Age", "age"),
			line("Sex", "sex"),
			requiredLine("Date of Consult", "date_of_consult"),
			requiredLine("Consulting Service", "consulting_service"),
			line("Referring Provider", "referring_provider"),
		),
		required("REASON FOR CONSULT", "reason_for_consult"),
		required("HISTORY OF PRESENT ILLNESS", "history_of_present_illness"),
		section("PAST MEDICAL HISTORY", "past_medical_history"),
		section("PAST SURGICAL HISTORY", "past_surgical_history"),
		section("MEDICATIONS", "medications"),
		section("ALLERGIES", "allergies"),
		section("SOCIAL HISTORY", "social_history"),
		section("FAMILY HISTORY", "family_history"),
		section("REVIEW OF SYSTEMS", "review_of_systems"),
		section("PHYSICAL EXAMINATION", "physical_exam"),
		section("LABORATORY DATA", "labs"),
		section("IMAGING", "imaging"),
		section("OTHER STUDIES", "other_studies"),
		required("ASSESSMENT", "assessment"),
		section("DIFFERENTIAL DIAGNOSIS", "differential_diagnosis"),
		required("RECOMMENDATIONS", "recommendations"),
		section("PLAN", "plan"),
		section("FOLLOW-UP", "follow_up"),
		signature(
			line("Consulting Physician", "consulting_physician"),
			line("Attending Physician", "attending_physician"),
			stampLine("Date"),
		),
	}
}
