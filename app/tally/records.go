package tally

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	driver "go.mongodb.org/mongo-driver/v2/mongo"
)

// CollectionName is the collection every record is written to.
const CollectionName = "test"

var (
	ErrInsertFailed = errors.New("failed to insert record")
	ErrCountFailed  = errors.New("failed to count records")
)

// Record is the document written on every /data request.
type Record struct {
	Time time.Time `bson:"time"`
}

// RecordStore is the connection handle published by the bootstrap.
type RecordStore interface {
	Insert(ctx context.Context, rec Record) error
	Count(ctx context.Context) (int64, error)
	Close(ctx context.Context) error
}

type mongoRecords struct {
	coll *driver.Collection
}

// NewMongoRecordStore returns a RecordStore backed by the "test" collection of db.
func NewMongoRecordStore(db *driver.Database) RecordStore {
	return &mongoRecords{coll: db.Collection(CollectionName)}
}

func (s *mongoRecords) Insert(ctx context.Context, rec Record) error {
	if _, err := s.coll.InsertOne(ctx, rec); err != nil {
		return errors.Join(ErrInsertFailed, err)
	}
	return nil
}

func (s *mongoRecords) Count(ctx context.Context) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, errors.Join(ErrCountFailed, err)
	}
	return n, nil
}

func (s *mongoRecords) Close(ctx context.Context) error {
	return s.coll.Database().Client().Disconnect(ctx)
}
