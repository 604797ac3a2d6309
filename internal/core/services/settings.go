package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
	"github.com/custodia-labs/ecourts-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ecourts-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyBaseURL           = "scraper.base_url"
	keyLive              = "scraper.live"
	keyHeadless          = "scraper.headless"
	keyElementTimeout    = "scraper.element_timeout"
	keyResultTimeout     = "scraper.result_timeout"
	keyRequestsPerSecond = "scraper.requests_per_second"
	keyUserAgent         = "scraper.user_agent"
	keyAPIAddr           = "api.addr"
	keyCNRTimeout        = "api.cnr_timeout"
	keyCaseTimeout       = "api.case_timeout"
	keyCauseListTimeout  = "api.cause_list_timeout"
	keyOutputDir         = "output.dir"
	keyVerbose           = "logging.verbose"
)

type valueKind int

const (
	kindString valueKind = iota
	kindBool
	kindDuration
	kindFloat
)

var settingKinds = map[string]valueKind{
	keyBaseURL:           kindString,
	keyLive:              kindBool,
	keyHeadless:          kindBool,
	keyElementTimeout:    kindDuration,
	keyResultTimeout:     kindDuration,
	keyRequestsPerSecond: kindFloat,
	keyUserAgent:         kindString,
	keyAPIAddr:           kindString,
	keyCNRTimeout:        kindDuration,
	keyCaseTimeout:       kindDuration,
	keyCauseListTimeout:  kindDuration,
	keyOutputDir:         kindString,
	keyVerbose:           kindBool,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	d := domain.DefaultSettings()

	settings := &domain.Settings{
		Scraper: domain.ScraperSettings{
			BaseURL:           normaliseBaseURL(s.getString(keyBaseURL, d.Scraper.BaseURL)),
			Live:              s.getBool(keyLive, d.Scraper.Live),
			Headless:          s.getBool(keyHeadless, d.Scraper.Headless),
			ElementTimeout:    s.getDuration(keyElementTimeout, d.Scraper.ElementTimeout),
			ResultTimeout:     s.getDuration(keyResultTimeout, d.Scraper.ResultTimeout),
			RequestsPerSecond: s.getFloat(keyRequestsPerSecond, d.Scraper.RequestsPerSecond),
			UserAgent:         s.getString(keyUserAgent, d.Scraper.UserAgent),
		},
		API: domain.APISettings{
			Addr:             s.getString(keyAPIAddr, d.API.Addr),
			CNRTimeout:       s.getDuration(keyCNRTimeout, d.API.CNRTimeout),
			CaseTimeout:      s.getDuration(keyCaseTimeout, d.API.CaseTimeout),
			CauseListTimeout: s.getDuration(keyCauseListTimeout, d.API.CauseListTimeout),
		},
		Output: domain.OutputSettings{
			Dir: s.getString(keyOutputDir, d.Output.Dir),
		},
		Logging: domain.LoggingSettings{
			Verbose: s.getBool(keyVerbose, d.Logging.Verbose),
		},
	}

	return settings, nil
}

// Set parses value according to the key's type and persists it.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := settingKinds[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrValidation, key)
	}

	var typed any
	switch kind {
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrValidation, key)
		}
		typed = b
	case kindDuration:
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %s must be a positive duration such as 15s", domain.ErrValidation, key)
		}
		typed = d.String()
	case kindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("%w: %s must be a positive number", domain.ErrValidation, key)
		}
		typed = f
	default:
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s must not be empty", domain.ErrValidation, key)
		}
		typed = value
	}

	if err := s.configStore.Set(key, typed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the supported configuration keys.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingKinds))
	for k := range settingKinds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	if d := s.configStore.GetDuration(key); d > 0 {
		return d
	}
	return defaultVal
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if f := s.configStore.GetFloat(key); f > 0 {
		return f
	}
	return defaultVal
}

// normaliseBaseURL ensures entry points can be appended to the base.
func normaliseBaseURL(u string) string {
	if !strings.HasSuffix(u, "/") {
		return u + "/"
	}
	return u
}
