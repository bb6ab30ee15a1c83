package models

import "time"

// Export formats
const (
	ExportFormatPDF = "pdf"
	ExportFormatJPG = "jpg"
	ExportFormatDXF = "dxf"
	ExportFormatOBJ = "obj"
	ExportFormatSTL = "stl"
)

type ExportFile struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	VersionID   string    `json:"version_id"`
	Type        string    `json:"type"`
	Filename    string    `json:"filename"`
	FileSize    int64     `json:"file_size"`
	GeneratedBy string    `json:"generated_by"`
	CreatedAt   time.Time `json:"created_at"`
	URL         string    `json:"url"`
}
