package note

// HandoffTemplate is the shift-change handoff note: the running picture of
// an admitted patient passed between providers.
type HandoffTemplate struct {
	*FieldStore
}

// NewHandoff creates an empty handoff note template.
func NewHandoff(options ...StoreOption) *HandoffTemplate {
	return &HandoffTemplate{FieldStore: NewFieldStore(options...)}
}

func (t *HandoffTemplate) Type() Type {
	return TypeHandoff
}

func (t *HandoffTemplate) Title() string {
	return "HANDOFF NOTE"
}

func (t *HandoffTemplate) RequiredFields() []string {
	return []string{
		"patient_name",
		"patient_mrn",
		"patient_location",
		"primary_diagnosis",
		"active_issues",
	}
}

func (t *HandoffTemplate) OptionalFields() []string {
	return []string{
		"age",
		"sex",
		"admission_date",
		"hospital_day",
		"brief_history",
		"past_medical_history",
		"code_status",
		"allergies",
		"vital_signs",
		"key_labs",
		"key_imaging",
		"current_medications",
		"iv_fluids",
		"diet",
		"activity",
		"lines_tubes_drains",
		"pending_studies",
		"pending_consults",
		"to_do_list",
		"if_then_scenarios",
		"anticipated_discharge_date",
		"discharge_planning",
		"family_communication",
		"handoff_from",
		"handoff_to",
	}
}

func (t *HandoffTemplate) Layout() []Block {
	return []Block{
		group("",
			requiredLine("Patient", "patient_name"),
			requiredLine("MRN", "patient_mrn"),
			requiredLine("Location", "patient_location"),
			line("Age", "age"),
			line("Sex", "sex"),
			line("Admission Date", "admission_date"),
			line("Hospital Day", "hospital_day"),
			line("Code Status", "code_status"),
			stampLine("Handoff Date/Time"),
			line("From", "handoff_from"),
			line("To", "handoff_to"),
		),
		required("PRIMARY DIAGNOSIS", "primary_diagnosis"),
		section("BRIEF HISTORY", "brief_history"),
		section("PAST MEDICAL HISTORY", "past_medical_history"),
		section("ALLERGIES", "allergies"),
		required("ACTIVE ISSUES", "active_issues"),
		section("VITAL SIGNS", "vital_signs"),
		section("KEY LABS", "key_labs"),
		section("KEY IMAGING", "key_imaging"),
		section("CURRENT MEDICATIONS", "current_medications"),
		section("IV FLUIDS", "iv_fluids"),
		section("DIET", "diet"),
		section("ACTIVITY", "activity"),
		section("LINES/TUBES/DRAINS", "lines_tubes_drains"),
		section("PENDING STUDIES", "pending_studies"),
		section("PENDING CONSULTS", "pending_consults"),
		section("TO-DO LIST", "to_do_list"),
		section("IF-THEN SCENARIOS", "if_then_scenarios"),
		section("ANTICIPATED DISCHARGE DATE", "anticipated_discharge_date"),
		section("DISCHARGE PLANNING", "discharge_planning"),
		section("FAMILY COMMUNICATION", "family_communication"),
		rule(),
	}
}
