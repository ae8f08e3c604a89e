package console

import (
	"encoding/json"
	"errors"
	"sort"
	"sync"

	"go.uber.org/zap"

	"fireguard.xyz/fireguard-console/pkg/backend"
	"fireguard.xyz/fireguard-console/pkg/common"
	"fireguard.xyz/fireguard-console/pkg/models"
)

// DefaultSettings seeds the edit buffer so missing backend keys fall back to
// documented defaults instead of going undefined.
func DefaultSettings() models.Settings {
	return models.Settings{
		models.SettingEmailEnabled:     "false",
		models.SettingSMTPServer:       "",
		models.SettingSMTPPort:         "587",
		models.SettingSMTPUser:         "",
		models.SettingSMTPPassword:     "",
		models.SettingReceiverEmail:    "",
		models.SettingTelegramEnabled:  "false",
		models.SettingTelegramBotToken: "",
		models.SettingTelegramChatID:   "",
		models.SettingSystemLanguage:   "en",
	}
}

// SettingsController holds the local edit buffer for notification settings.
// Nothing reaches the backend until Save; Set only mutates the buffer. The
// controller never coerces values: booleans stay the literal strings
// "true"/"false" and numeric-looking fields like smtp_port stay unvalidated
// strings for the backend to judge.
type SettingsController struct {
	api backend.API

	mu     sync.Mutex
	buffer models.Settings

	logger *zap.Logger
}

func NewSettingsController(api backend.API) *SettingsController {
	return &SettingsController{
		api:    api,
		buffer: DefaultSettings(),
		logger: common.GetLoggerWith(
			common.LoggerNameConsoleCore,
			zap.String(common.LoggerFieldCategory, common.LoggerCategorySettings),
		),
	}
}

// Load replaces the buffer with backend values shallow-merged over a fresh
// copy of the defaults. Unknown backend keys are preserved as opaque strings.
func (c *SettingsController) Load() error {
	fetched, err := c.api.FetchSettings()
	if err != nil {
		return err
	}

	buffer := DefaultSettings()
	for k, v := range fetched {
		buffer[k] = v
	}

	c.mu.Lock()
	c.buffer = buffer
	c.mu.Unlock()
	return nil
}

func (c *SettingsController) Set(key string, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buffer[key] = value
}

func (c *SettingsController) Get(key string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buffer[key]
}

func (c *SettingsController) Values() models.Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buffer.Clone()
}

// Save persists the buffer one key at a time, in sorted key order, stopping
// at the first failure. This is deliberately not atomic: keys saved before
// the failure stay persisted and are reported in the returned SaveError.
func (c *SettingsController) Save() error {
	buffer := c.Values()

	keys := make([]string, 0, len(buffer))
	for k := range buffer {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	saved := make([]string, 0, len(keys))
	for _, key := range keys {
		if err := c.api.SaveSetting(key, buffer[key]); err != nil {
			c.logger.Warn("settings save stopped partway",
				zap.String("failed_key", key), zap.Int("saved", len(saved)), zap.Error(err))
			return &SaveError{Key: key, Saved: saved, Err: err}
		}
		saved = append(saved, key)
	}

	c.logger.Info("settings saved", zap.Int("keys", len(saved)))
	return nil
}

// Test asks the backend to dispatch a test notification. It is never called
// implicitly: the backend may really send an email or Telegram message. A
// non-2xx response with a message field becomes a NotificationTestError; a
// transport failure stays a plain NetworkError.
func (c *SettingsController) Test() error {
	err := c.api.SendTestNotification()
	if err == nil {
		return nil
	}

	var ne *backend.NetworkError
	if errors.As(err, &ne) && ne.StatusCode > 0 && len(ne.Body) > 0 {
		var payload struct {
			Message string `json:"message"`
		}
		if jsonErr := json.Unmarshal(ne.Body, &payload); jsonErr == nil && payload.Message != "" {
			c.logger.Warn("test notification rejected", zap.String("message", payload.Message))
			return &NotificationTestError{Message: payload.Message}
		}
	}
	return err
}
