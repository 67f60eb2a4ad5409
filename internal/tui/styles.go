package tui

import "github.com/rgehrsitz/eisim/internal/tui/tuistyles"

// Re-export styles from tuistyles to avoid import cycles
var (
	AppStyle          = tuistyles.AppStyle
	TitleStyle        = tuistyles.TitleStyle
	SubtitleStyle     = tuistyles.SubtitleStyle
	BorderStyle       = tuistyles.BorderStyle
	FieldLabelStyle   = tuistyles.FieldLabelStyle
	FieldValueStyle   = tuistyles.FieldValueStyle
	FocusedFieldStyle = tuistyles.FocusedFieldStyle
	ErrorStyle        = tuistyles.ErrorStyle
)
