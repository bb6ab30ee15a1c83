package models

// Settings is the single process-wide configuration record. It is the only
// state that survives a restart, persisted wholesale on every update.
type Settings struct {
	CompanyName          string `json:"company_name"`
	DefaultCurrency      string `json:"default_currency"`
	MeasurementUnit      string `json:"measurement_unit"`
	Theme                string `json:"theme"`
	Language             string `json:"language"`
	EmailNotifications   bool   `json:"email_notifications"`
	DesktopNotifications bool   `json:"desktop_notifications"`
	ApprovalReminders    bool   `json:"approval_reminders"`
	CommentNotifications bool   `json:"comment_notifications"`
	DefaultExportFormat  string `json:"default_export_format"`
	AutoSaveInterval     int    `json:"auto_save_interval"`
	PortalEnabled        bool   `json:"portal_enabled"`
	ClientCommenting     bool   `json:"client_commenting"`
}

type SettingsPatch struct {
	CompanyName          *string `json:"company_name,omitempty"`
	DefaultCurrency      *string `json:"default_currency,omitempty"`
	MeasurementUnit      *string `json:"measurement_unit,omitempty"`
	Theme                *string `json:"theme,omitempty"`
	Language             *string `json:"language,omitempty"`
	EmailNotifications   *bool   `json:"email_notifications,omitempty"`
	DesktopNotifications *bool   `json:"desktop_notifications,omitempty"`
	ApprovalReminders    *bool   `json:"approval_reminders,omitempty"`
	CommentNotifications *bool   `json:"comment_notifications,omitempty"`
	DefaultExportFormat  *string `json:"default_export_format,omitempty"`
	AutoSaveInterval     *int    `json:"auto_save_interval,omitempty"`
	PortalEnabled        *bool   `json:"portal_enabled,omitempty"`
	ClientCommenting     *bool   `json:"client_commenting,omitempty"`
}

func (s Settings) Apply(p SettingsPatch) Settings {
	if p.CompanyName != nil {
		s.CompanyName = *p.CompanyName
	}
	if p.DefaultCurrency != nil {
		s.DefaultCurrency = *p.DefaultCurrency
	}
	if p.MeasurementUnit != nil {
		s.MeasurementUnit = *p.MeasurementUnit
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.Language != nil {
		s.Language = *p.Language
	}
	if p.EmailNotifications != nil {
		s.EmailNotifications = *p.EmailNotifications
	}
	if p.DesktopNotifications != nil {
		s.DesktopNotifications = *p.DesktopNotifications
	}
	if p.ApprovalReminders != nil {
		s.ApprovalReminders = *p.ApprovalReminders
	}
	if p.CommentNotifications != nil {
		s.CommentNotifications = *p.CommentNotifications
	}
	if p.DefaultExportFormat != nil {
		s.DefaultExportFormat = *p.DefaultExportFormat
	}
	if p.AutoSaveInterval != nil {
		s.AutoSaveInterval = *p.AutoSaveInterval
	}
	if p.PortalEnabled != nil {
		s.PortalEnabled = *p.PortalEnabled
	}
	if p.ClientCommenting != nil {
		s.ClientCommenting = *p.ClientCommenting
	}
	return s
}

// DefaultSettings is the built-in record used when nothing has been
// persisted yet, or when the persisted blob cannot be parsed.
func DefaultSettings() Settings {
	return Settings{
		CompanyName:          "Draft Hause",
		DefaultCurrency:      "USD",
		MeasurementUnit:      "metric",
		Theme:                "light",
		Language:             "en",
		EmailNotifications:   true,
		DesktopNotifications: false,
		ApprovalReminders:    true,
		CommentNotifications: true,
		DefaultExportFormat:  "pdf",
		AutoSaveInterval:     5,
		PortalEnabled:        true,
		ClientCommenting:     true,
	}
}
