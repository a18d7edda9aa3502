package repositories

import (
	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerSettingsRepository implements SettingsRepository using BadgerDB.
// The record lives under a single fixed key, so the singleton property falls
// out of the keyspace rather than a query.
type BadgerSettingsRepository struct {
	db *badger.DB
}

// NewBadgerSettingsRepository creates a new BadgerSettingsRepository
func NewBadgerSettingsRepository(db *badger.DB) *BadgerSettingsRepository {
	return &BadgerSettingsRepository{db: db}
}

// GetOrCreate returns the settings record, writing the defaults inside the
// same transaction when none exists. Concurrent first reads race on the one
// key; the loser of that race gets a conflict and retries, so exactly one
// record is ever created.
func (r *BadgerSettingsRepository) GetOrCreate() (*models.Settings, error) {
	for {
		settings, err := r.getOrCreateOnce()
		if err == badger.ErrConflict {
			continue
		}
		return settings, err
	}
}

func (r *BadgerSettingsRepository) getOrCreateOnce() (*models.Settings, error) {
	var settings models.Settings

	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(SettingsKey))
		if err == badger.ErrKeyNotFound {
			settings = *models.DefaultSettings()
			data, err := marshalEntity(&settings)
			if err != nil {
				return err
			}
			return txn.Set([]byte(SettingsKey), data)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &settings)
		})
	})

	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update overwrites the settings record
func (r *BadgerSettingsRepository) Update(settings *models.Settings) error {
	return r.db.Update(func(txn *badger.Txn) error {
		data, err := marshalEntity(settings)
		if err != nil {
			return err
		}
		return txn.Set([]byte(SettingsKey), data)
	})
}
