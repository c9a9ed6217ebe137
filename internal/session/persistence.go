package session

import (
	"encoding/json"

	"github.com/daily-envelope/backend/internal/models"
	"github.com/daily-envelope/backend/internal/storage"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// discard drops a persisted record that failed to parse or failed its shape
// check. The engine treats corrupt records as "no prior state", it never
// crashes on them.
func discard(kv storage.KV, key string, err error) error {
	log.Warn().Err(err).Str("key", key).Msg("discarding corrupt record")
	return kv.Remove(key)
}

func loadDayState(kv storage.KV) (*models.DayState, error) {
	raw, ok, err := kv.Get(storage.KeyDayState)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var day models.DayState
	if err := json.Unmarshal([]byte(raw), &day); err != nil {
		return nil, discard(kv, storage.KeyDayState, err)
	}
	if !day.Valid() {
		return nil, discard(kv, storage.KeyDayState, models.ErrCorruptState)
	}

	day.Normalize()
	return &day, nil
}

func saveDayState(kv storage.KV, day *models.DayState) error {
	raw, err := json.Marshal(day)
	if err != nil {
		return err
	}

	return kv.Set(storage.KeyDayState, string(raw))
}

// loadSettings merges the persisted settings over the defaults, so fields
// added after a record was written get their default value.
func loadSettings(kv storage.KV) (models.TaxSettings, error) {
	settings := models.DefaultTaxSettings()

	raw, ok, err := kv.Get(storage.KeyTaxSettings)
	if err != nil {
		return settings, err
	}
	if !ok {
		return settings, nil
	}

	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return models.DefaultTaxSettings(), discard(kv, storage.KeyTaxSettings, err)
	}

	settings.Normalize()
	return settings, nil
}

func saveSettings(kv storage.KV, settings models.TaxSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	return kv.Set(storage.KeyTaxSettings, string(raw))
}

// The vault record is a plain numeric string, not JSON.
func loadVault(kv storage.KV) (models.VaultState, error) {
	var vault models.VaultState

	raw, ok, err := kv.Get(storage.KeyVault)
	if err != nil {
		return vault, err
	}
	if !ok {
		return vault, nil
	}

	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return models.VaultState{}, discard(kv, storage.KeyVault, err)
	}

	vault.Balance = balance
	vault.Normalize()
	return vault, nil
}

func saveVault(kv storage.KV, vault models.VaultState) error {
	vault.Normalize()
	return kv.Set(storage.KeyVault, vault.Balance.String())
}

func loadLedger(kv storage.KV) (models.Ledger, error) {
	ledger := models.Ledger{}

	raw, ok, err := kv.Get(storage.KeyLedger)
	if err != nil {
		return ledger, err
	}
	if !ok {
		return ledger, nil
	}

	if err := json.Unmarshal([]byte(raw), &ledger); err != nil {
		return models.Ledger{}, discard(kv, storage.KeyLedger, err)
	}

	return ledger, nil
}

func saveLedger(kv storage.KV, ledger models.Ledger) error {
	raw, err := json.Marshal(ledger)
	if err != nil {
		return err
	}

	return kv.Set(storage.KeyLedger, string(raw))
}
