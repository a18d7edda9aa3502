package repositories

import (
	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerContactMessageRepository implements ContactMessageRepository using BadgerDB
type BadgerContactMessageRepository struct {
	db *badger.DB
}

// NewBadgerContactMessageRepository creates a new BadgerContactMessageRepository
func NewBadgerContactMessageRepository(db *badger.DB) *BadgerContactMessageRepository {
	return &BadgerContactMessageRepository{db: db}
}

// Create assigns the next ID and persists the message
func (r *BadgerContactMessageRepository) Create(msg *models.ContactMessage) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, ContactSeqKey)
		if err != nil {
			return err
		}
		msg.ID = id

		data, err := marshalEntity(msg)
		if err != nil {
			return err
		}

		return txn.Set(entityKey(ContactKeyPrefix, msg.ID), data)
	})
}

// List retrieves all contact messages in storage order
func (r *BadgerContactMessageRepository) List() ([]*models.ContactMessage, error) {
	var messages []*models.ContactMessage

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(ContactKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var msg models.ContactMessage
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &msg)
			})
			if err != nil {
				return err
			}
			messages = append(messages, &msg)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// Delete deletes a contact message by ID
func (r *BadgerContactMessageRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := entityKey(ContactKeyPrefix, id)

		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return txn.Delete(key)
	})
}
