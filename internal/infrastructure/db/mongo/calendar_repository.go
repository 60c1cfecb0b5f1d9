package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/foodbridge/coordination-api/internal/core/domain"
)

const collectionCalendarEvents = "calendar_events"

// CalendarRepository stores the mirrored copy of the shared Google calendar.
type CalendarRepository struct {
	col *mongo.Collection
}

func NewCalendarRepository(db *mongo.Database) *CalendarRepository {
	return &CalendarRepository{col: db.Collection(collectionCalendarEvents)}
}

// eventOverlapFilter matches every event overlapping the half-open range.
// ListRange and ReplaceRange must share this predicate: deleting on a
// narrower one would leave overlapping events behind and make the re-insert
// collide on _id.
func eventOverlapFilter(dr domain.DateRange) bson.M {
	return bson.M{
		"starts_at": bson.M{"$lt": dr.End},
		"ends_at":   bson.M{"$gt": dr.Start},
	}
}

func (r *CalendarRepository) ListRange(ctx context.Context, dr domain.DateRange) ([]domain.CalendarEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, eventOverlapFilter(dr), options.Find().SetSort(bson.D{{Key: "starts_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}
	defer cur.Close(ctx)

	var events []domain.CalendarEvent
	if err := cur.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode calendar events: %w", err)
	}
	return events, nil
}

// ReplaceRange swaps every mirrored event overlapping the range for the given
// set. The upstream fetch returns events by overlap, so the delete must too:
// a multi-day event straddling the range start is re-delivered on every sync
// and would otherwise hit a duplicate _id on insert. The delete and insert are
// not transactional, which is acceptable for a read-mostly mirror that is
// re-synced on an interval.
func (r *CalendarRepository) ReplaceRange(ctx context.Context, dr domain.DateRange, events []domain.CalendarEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, eventOverlapFilter(dr)); err != nil {
		return fmt.Errorf("clear calendar range: %w", err)
	}

	if len(events) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(events))
	for _, e := range events {
		docs = append(docs, e)
	}
	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert calendar events: %w", err)
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the calendar events collection.
func (r *CalendarRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "starts_at", Value: 1}},
	})
	return err
}
