package constvars

const (
	UserRegisterSuccess = "User registered successfully"
	UserLoginSuccess    = "Logged in successfully"
	UserLogoutSuccess   = "Logged out successfully"

	QuestionnaireCreateSuccess = "Questionnaire created successfully"
	QuestionnaireGetSuccess    = "Questionnaire fetched successfully"
	QuestionnaireListSuccess   = "Questionnaires fetched successfully"
	QuestionnaireUpdateSuccess = "Questionnaire updated successfully"
	QuestionnaireDeleteSuccess = "Questionnaire deleted successfully"

	PatientCreateSuccess = "Patient created successfully"
	PatientGetSuccess    = "Patient fetched successfully"
	PatientListSuccess   = "Patients fetched successfully"
	PatientUpdateSuccess = "Patient updated successfully"

	PractitionerCreateSuccess = "Practitioner created successfully"
	PractitionerGetSuccess    = "Practitioner fetched successfully"
	PractitionerListSuccess   = "Practitioners fetched successfully"
	PractitionerUpdateSuccess = "Practitioner updated successfully"

	BatteryOpenSuccess     = "Test battery opened successfully"
	BatteryGetSuccess      = "Test battery state fetched successfully"
	BatteryAnswersSuccess  = "Answers saved successfully"
	BatteryStepSuccess     = "Navigation step resolved successfully"
	BatteryCompleteSuccess = "Test battery completed successfully"

	ReportGenerateSuccess = "Report generated successfully"
	ReportGetSuccess      = "Report URL fetched successfully"
)
