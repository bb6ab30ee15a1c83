package dto

type GenerateExportRequest struct {
	VersionID string `json:"version_id"`
	Format    string `json:"format"`
}

type GenerateReportRequest struct {
	Type string `json:"type"`
}
