// Package i18n holds the process-wide language preference and the static
// translation tables. One Provider is constructed at startup and passed by
// reference to every consumer; its lifecycle is the process lifetime and it
// has no teardown.
package i18n

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"fireguard.xyz/fireguard-console/pkg/backend"
	"fireguard.xyz/fireguard-console/pkg/common"
	"fireguard.xyz/fireguard-console/pkg/models"
)

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageTurkish Language = "tr"

	DefaultLanguage = LanguageEnglish
)

func SupportedLanguages() []Language {
	return []Language{LanguageEnglish, LanguageTurkish}
}

func supported(lang Language) bool {
	for _, l := range SupportedLanguages() {
		if l == lang {
			return true
		}
	}
	return false
}

// Provider owns the active language. Reads are process-wide; writes come from
// explicit user selection and are optimistic: the local change applies
// immediately and a failed remote persist is logged, never rolled back.
type Provider struct {
	api backend.API

	mu   sync.RWMutex
	lang Language

	logger *zap.Logger
}

func NewProvider(api backend.API) *Provider {
	return &Provider{
		api:  api,
		lang: DefaultLanguage,
		logger: common.GetLoggerWith(
			common.LoggerNameLocale,
			zap.String(common.LoggerFieldCategory, common.LoggerCategoryLocale),
		),
	}
}

// Hydrate pulls system_language from the backend settings store. On fetch
// failure or an absent/unknown value the baked-in default stays active.
func (p *Provider) Hydrate() {
	settings, err := p.api.FetchSettings()
	if err != nil {
		p.logger.Warn("language hydration failed, using default",
			zap.String("default", string(DefaultLanguage)), zap.Error(err))
		return
	}

	lang := Language(settings[models.SettingSystemLanguage])
	if !supported(lang) {
		return
	}

	p.mu.Lock()
	p.lang = lang
	p.mu.Unlock()

	p.logger.Info("language hydrated", zap.String("language", string(lang)))
}

func (p *Provider) Language() Language {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lang
}

// SetLanguage applies the selection locally first, so consumers re-render
// immediately, then persists it. A persistence failure is logged and the
// local change stands.
func (p *Provider) SetLanguage(lang Language) error {
	if !supported(lang) {
		return fmt.Errorf("unsupported language %q", lang)
	}

	p.mu.Lock()
	p.lang = lang
	p.mu.Unlock()

	if err := p.api.SaveSetting(models.SettingSystemLanguage, string(lang)); err != nil {
		p.logger.Warn("language persist failed, keeping local selection",
			zap.String("language", string(lang)), zap.Error(err))
	}
	return nil
}

// T resolves a namespace/key pair in the active language. Tables are total
// over the console's keys; a miss returns the dotted key so it is at least
// visible in the rendered output.
func (p *Provider) T(namespace string, key string) string {
	table := tables[p.Language()]
	if ns, ok := table[namespace]; ok {
		if s, ok := ns[key]; ok {
			return s
		}
	}
	return namespace + "." + key
}

// Table exposes one language's full table, primarily for completeness checks.
func Table(lang Language) map[string]map[string]string {
	return tables[lang]
}
