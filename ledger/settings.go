package ledger

import (
	"errors"

	"github.com/rs/zerolog"

	"kharcha/kv"
	"kharcha/models"
)

// Settings persists the user preferences that live alongside the ledger:
// the display currency and the theme mode. Reads fall back to defaults on
// any storage or parse failure; writes report their error to the caller,
// who should leave the previous preference in effect.
type Settings struct {
	kv     kv.Store
	logger zerolog.Logger
}

// NewSettings creates a Settings store over the given key-value backend.
func NewSettings(backend kv.Store, logger zerolog.Logger) *Settings {
	return &Settings{kv: backend, logger: logger}
}

// Currency returns the saved display currency, or the default when nothing
// usable is stored.
func (s *Settings) Currency() models.Currency {
	raw, err := s.kv.Get(kv.KeyCurrency)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			s.logger.Warn().Err(err).Msg("failed to load saved currency")
		}
		return models.DefaultCurrency()
	}

	var currency models.Currency
	if err := currency.FromJSON(raw); err != nil {
		s.logger.Warn().Err(err).Msg("failed to parse saved currency")
		return models.DefaultCurrency()
	}
	if currency.Code == "" || currency.Symbol == "" {
		return models.DefaultCurrency()
	}
	return currency
}

// SetCurrency saves the display currency.
func (s *Settings) SetCurrency(currency models.Currency) error {
	data, err := currency.ToJSON()
	if err != nil {
		return err
	}
	return s.kv.Set(kv.KeyCurrency, data)
}

// Theme returns the saved theme mode, defaulting to dark.
func (s *Settings) Theme() models.ThemeMode {
	raw, err := s.kv.Get(kv.KeyTheme)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			s.logger.Warn().Err(err).Msg("failed to load saved theme")
		}
		return models.ThemeDark
	}

	mode := models.ThemeMode(raw)
	if !mode.IsValid() {
		return models.ThemeDark
	}
	return mode
}

// SetTheme saves the theme mode.
func (s *Settings) SetTheme(mode models.ThemeMode) error {
	if !mode.IsValid() {
		return errors.New("invalid theme mode")
	}
	return s.kv.Set(kv.KeyTheme, []byte(mode))
}
