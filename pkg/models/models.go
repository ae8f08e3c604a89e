package models

// AlertType tags a detection; the backend may report types beyond the two
// known ones, so consumers must treat unknown values as plain strings.
type AlertType string

const (
	AlertTypeFire  AlertType = "fire"
	AlertTypeSmoke AlertType = "smoke"
)

// Alert is one live detection as reported by the backend feed. ID is optional
// and not guaranteed populated, so nothing may key off identity across polls.
type Alert struct {
	ID         int       `json:"id,omitempty"`
	Timestamp  string    `json:"timestamp"`
	Type       AlertType `json:"type"`
	Confidence float64   `json:"confidence"`
	Snapshot   string    `json:"snapshot,omitempty"`
}

// DefaultCameraID is reserved by the backend for the built-in camera; the
// console must never delete it.
const DefaultCameraID = 0

type Camera struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

// HistoryEvent is an archived detection, immutable once fetched.
type HistoryEvent struct {
	ID           int       `json:"id"`
	Timestamp    string    `json:"timestamp"`
	Type         AlertType `json:"type"`
	Confidence   float64   `json:"confidence"`
	SnapshotPath string    `json:"snapshot_path"`
}

// Stat is the per-day detection count, delivered ascending by date.
type Stat struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Settings is the backend's key/value store. All values are strings end to
// end; boolean-like keys carry the literal strings "true" / "false".
type Settings map[string]string

// Setting keys known to the console. Unknown keys are preserved opaquely.
const (
	SettingEmailEnabled     = "email_enabled"
	SettingSMTPServer       = "smtp_server"
	SettingSMTPPort         = "smtp_port"
	SettingSMTPUser         = "smtp_user"
	SettingSMTPPassword     = "smtp_password"
	SettingReceiverEmail    = "receiver_email"
	SettingTelegramEnabled  = "telegram_enabled"
	SettingTelegramBotToken = "telegram_bot_token"
	SettingTelegramChatID   = "telegram_chat_id"
	SettingSystemLanguage   = "system_language"
)

func (s Settings) Clone() Settings {
	out := make(Settings, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
