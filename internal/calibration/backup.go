package calibration

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/simtools/pedal2go/internal/ui"
	bolt "go.etcd.io/bbolt"
)

const (
	BucketCalibrationBackups = "calibrationBackups"

	// MaxBackupDepth bounds the undo stack, the oldest snapshot is dropped
	// when a new one is pushed beyond this depth.
	MaxBackupDepth = 10
)

var ErrNoBackup = errors.New("no calibration backup available")

// BackupStack is a bounded, newest-first stack of calibration document
// snapshots, persisted in a bolt database.
type BackupStack struct {
	dbPath string
}

func NewBackupStack(dbPath string) *BackupStack {
	return &BackupStack{dbPath: dbPath}
}

func (b *BackupStack) openDb() (*bolt.DB, error) {
	parentDir := filepath.Dir(b.dbPath)
	if _, err := os.Stat(parentDir); errors.Is(err, os.ErrNotExist) {
		ui.Info("Creating directory for db: %s", parentDir)
		if err := os.MkdirAll(parentDir, 0755); err != nil {
			return nil, err
		}
	}
	return bolt.Open(b.dbPath, 0600, &bolt.Options{Timeout: 1 * time.Minute})
}

// Push stores a snapshot of the given document, pruning the oldest entries
// beyond MaxBackupDepth.
func (b *BackupStack) Push(doc Document) error {
	db, err := b.openDb()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	key := []byte(fmt.Sprintf("%020d", time.Now().UnixNano()))

	return db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(BucketCalibrationBackups))
		if err != nil {
			return fmt.Errorf("create bucket: %s", err)
		}
		count := bucket.Stats().KeyN + 1
		if err := bucket.Put(key, data); err != nil {
			return err
		}

		// prune oldest entries beyond the depth limit
		cursor := bucket.Cursor()
		for k, _ := cursor.First(); k != nil && count > MaxBackupDepth; k, _ = cursor.Next() {
			if err := cursor.Delete(); err != nil {
				return err
			}
			count--
		}
		return nil
	})
}

// Pop removes and returns the most recent snapshot.
func (b *BackupStack) Pop() (Document, error) {
	db, err := b.openDb()
	if err != nil {
		return nil, err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	var doc Document
	err = db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(BucketCalibrationBackups))
		if bucket == nil {
			return ErrNoBackup
		}
		k, v := bucket.Cursor().Last()
		if k == nil {
			return ErrNoBackup
		}
		if err := json.Unmarshal(v, &doc); err != nil {
			// drop entries that can no longer be read
			ui.Warning("Unable to unmarshal calibration backup, deleting it: %v", err)
			if err := bucket.Delete(k); err != nil {
				ui.Error("Unable to delete corrupt backup key %s: %v", k, err)
			}
			return ErrNoBackup
		}
		return bucket.Delete(k)
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Depth returns the number of stored snapshots.
func (b *BackupStack) Depth() (int, error) {
	db, err := b.openDb()
	if err != nil {
		return 0, err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	count := 0
	err = db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(BucketCalibrationBackups))
		if bucket == nil {
			return nil
		}
		count = bucket.Stats().KeyN
		return nil
	})
	return count, err
}
