package pilotratings

import (
	"github.com/pkg/errors"
	"go.etcd.io/bbolt"
)

var (
	rosterBucketName = []byte("roster")

	pilotsKey = []byte("pilots")
)

// BoltStore keeps the roster in a bbolt database. The roster is stored as the same JSON array the
// JSONStore writes, under a single key, so each save is one atomic transaction.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(db *bbolt.DB) *BoltStore {
	return &BoltStore{db: db}
}

func (rs *BoltStore) rosterBucket(tx *bbolt.Tx) (*bbolt.Bucket, error) {
	if !tx.Writable() {
		bkt := tx.Bucket(rosterBucketName)

		if bkt == nil {
			return nil, bbolt.ErrBucketNotFound
		}

		return bkt, nil
	}

	return tx.CreateBucketIfNotExists(rosterBucketName)
}

func (rs *BoltStore) LoadRoster() ([]*Pilot, error) {
	pilots := []*Pilot{}

	err := rs.db.View(func(tx *bbolt.Tx) error {
		bkt, err := rs.rosterBucket(tx)

		if err == bbolt.ErrBucketNotFound {
			return nil
		} else if err != nil {
			return err
		}

		data := bkt.Get(pilotsKey)

		if data == nil {
			return nil
		}

		pilots, err = decodeRoster(data)

		return err
	})

	if err != nil {
		return nil, err
	}

	return pilots, nil
}

func (rs *BoltStore) SaveRoster(pilots []*Pilot) error {
	encoded, err := encodeRoster(pilots)

	if err != nil {
		return err
	}

	return rs.db.Update(func(tx *bbolt.Tx) error {
		bkt, err := rs.rosterBucket(tx)

		if err != nil {
			return errors.Wrap(err, "could not open roster bucket")
		}

		return bkt.Put(pilotsKey, encoded)
	})
}

// Close releases the underlying database.
func (rs *BoltStore) Close() error {
	return rs.db.Close()
}
