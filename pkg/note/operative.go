package note

// OperativeTemplate is the operative report: the record of a surgical
// procedure from diagnosis through disposition.
type OperativeTemplate struct {
	*FieldStore
}

// NewOperative creates an empty operative report template.
func NewOperative(options ...StoreOption) *OperativeTemplate {
	return &OperativeTemplate{FieldStore: NewFieldStore(options...)}
}

func (t *OperativeTemplate) Type() Type {
	return TypeOperative
}

func (t *OperativeTemplate) Title() string {
	return "OPERATIVE REPORT"
}

func (t *OperativeTemplate) RequiredFields() []string {
	return []string{
		"patient_name",
		"patient_mrn",
		"date_of_surgery",
		"preoperative_diagnosis",
		"postoperative_diagnosis",
		"procedure_performed",
		"surgeon",
		"anesthesia_type",
		"operative_findings",
		"description_of_procedure",
		"estimated_blood_loss",
		"specimens",
		"complications",
		"disposition",
	}
}

func (t *OperativeTemplate) OptionalFields() []string {
	return []string{
		"patient_dob",
		"age",
		"sex",
		"indication",
		"assistant_surgeon",
		"attending_surgeon",
		"anesthesiologist",
		"nurses",
		"start_time",
		"end_time",
		"total_time",
		"ivf_given",
		"urine_output",
		"drains",
		"implants",
		"counts_correct",
		"pathology",
		"condition",
		"follow_up_plan",
	}
}

func (t *OperativeTemplate) Layout() []Block {
	return []Block{
		group("PATIENT INFORMATION",
			requiredLine("Name", "patient_name"),
			requiredLine("MRN", "patient_mrn"),
			line("DOB", "patient_dob"),
			line("Age", "age"),
			line("Sex", "sex"),
			requiredLine("Date of Surgery", "date_of_surgery"),
			line("Start Time", "start_time"),
			line("End Time", "end_time"),
			line("Total Time", "total_time"),
		),
		group("SURGICAL TEAM",
			requiredLine("Surgeon", "surgeon"),
			line("Assistant Surgeon", "assistant_surgeon"),
			line("Attending Surgeon", "attending_surgeon"),
			line("Anesthesiologist", "anesthesiologist"),
			requiredLine("Anesthesia Type", "anesthesia_type"),
			line("Nursing Staff", "nurses"),
		),
		required("PREOPERATIVE DIAGNOSIS", "preoperative_diagnosis"),
		required("POSTOPERATIVE DIAGNOSIS", "postoperative_diagnosis"),
		required("PROCEDURE(S) PERFORMED", "procedure_performed"),
		section("INDICATION", "indication"),
		required("OPERATIVE FINDINGS", "operative_findings"),
		required("DESCRIPTION OF PROCEDURE", "description_of_procedure"),
		group("INTRAOPERATIVE DETAILS",
			requiredLine("Estimated Blood Loss", "estimated_blood_loss"),
			line("IV Fluids Given", "ivf_given"),
			line("Urine Output", "urine_output"),
		),
		required("SPECIMENS", "specimens"),
		section("PATHOLOGY", "pathology"),
		section("DRAINS", "drains"),
		section("IMPLANTS", "implants"),
		section("COUNTS", "counts_correct"),
		required("COMPLICATIONS", "complications"),
		required("DISPOSITION", "disposition"),
		section("CONDITION", "condition"),
		section("FOLLOW-UP PLAN", "follow_up_plan"),
		signature(
			requiredLine("Surgeon", "surgeon"),
			line("Attending", "attending_surgeon"),
			stampLine("Date"),
		),
	}
}
