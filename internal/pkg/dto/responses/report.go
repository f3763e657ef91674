package responses

type GenerateReport struct {
	BatteryID  string `json:"battery_id"`
	ObjectName string `json:"object_name"`
}

type ReportURL struct {
	URL       string `json:"url"`
	ExpiresAt string `json:"expires_at"`
}
