// File: database/repository/schedule/schedule_mongo.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"craftlink/database"
	"craftlink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoScheduleRepo implements ScheduleRepository against the users collection.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	return &MongoScheduleRepo{
		coll: database.DB().Collection("users"),
	}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetAvailability retrieves a contractor's availability record.
func (r *MongoScheduleRepo) GetAvailability(contractorID string) (*models.Availability, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"availability": 1})
	var doc struct {
		Availability *models.Availability `bson:"availability"`
	}
	if err := r.coll.FindOne(ctx, bson.M{"id": contractorID}, opts).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to fetch availability for contractor %s: %w", contractorID, err)
	}
	if doc.Availability == nil {
		return nil, ErrNoAvailability
	}
	return doc.Availability, nil
}

// SetAvailability replaces the availability configuration while preserving
// booked slots already on the document.
func (r *MongoScheduleRepo) SetAvailability(contractorID string, av models.Availability) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"availability.workingHours":    av.WorkingHours,
		"availability.workingDays":     av.WorkingDays,
		"availability.meetingDuration": av.MeetingDuration,
		"updatedAt":                    time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": contractorID}, update)
	if err != nil {
		return fmt.Errorf("failed to set availability for contractor %s: %w", contractorID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("contractor with id %s not found", contractorID)
	}

	// Ensure bookedSlots exists so later $push updates behave uniformly.
	_, err = r.coll.UpdateOne(ctx,
		bson.M{"id": contractorID, "availability.bookedSlots": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"availability.bookedSlots": []models.BookedSlot{}}},
	)
	if err != nil {
		return fmt.Errorf("failed to initialize booked slots for contractor %s: %w", contractorID, err)
	}
	return nil
}

// GetRequests retrieves all meeting requests on the contractor document.
func (r *MongoScheduleRepo) GetRequests(contractorID string) ([]models.MeetingRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"pendingMeetings": 1})
	var doc struct {
		PendingMeetings []models.MeetingRequest `bson:"pendingMeetings"`
	}
	if err := r.coll.FindOne(ctx, bson.M{"id": contractorID}, opts).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to fetch meeting requests for contractor %s: %w", contractorID, err)
	}
	return doc.PendingMeetings, nil
}

// GetRequestByID retrieves a single meeting request by id.
func (r *MongoScheduleRepo) GetRequestByID(contractorID, requestID string) (*models.MeetingRequest, error) {
	reqs, err := r.GetRequests(contractorID)
	if err != nil {
		return nil, err
	}
	for i := range reqs {
		if reqs[i].ID == requestID {
			return &reqs[i], nil
		}
	}
	return nil, ErrRequestNotFound
}

// InsertRequest appends a pending meeting request to the contractor document.
func (r *MongoScheduleRepo) InsertRequest(contractorID string, req models.MeetingRequest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": contractorID},
		bson.M{"$push": bson.M{"pendingMeetings": req}},
	)
	if err != nil {
		return fmt.Errorf("failed to insert meeting request: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("contractor with id %s not found", contractorID)
	}
	return nil
}

// DeclineRequest flips a pending request to declined. The request stays on
// the document for history display.
func (r *MongoScheduleRepo) DeclineRequest(contractorID, requestID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id": contractorID,
		"pendingMeetings": bson.M{"$elemMatch": bson.M{
			"id":     requestID,
			"status": models.MeetingStatusPending,
		}},
	}
	update := bson.M{"$set": bson.M{"pendingMeetings.$.status": models.MeetingStatusDeclined}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to decline meeting request %s: %w", requestID, err)
	}
	if res.MatchedCount == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// UpdateRequestNotes replaces the notes on a meeting request in any state.
func (r *MongoScheduleRepo) UpdateRequestNotes(contractorID, requestID, notes string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":              contractorID,
		"pendingMeetings": bson.M{"$elemMatch": bson.M{"id": requestID}},
	}
	update := bson.M{"$set": bson.M{"pendingMeetings.$.notes": notes}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update notes on request %s: %w", requestID, err)
	}
	if res.MatchedCount == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// UpdateSlotNotes replaces the notes on a confirmed booked slot, keyed by
// (date, startTime). Notes are the only mutable field on a confirmed slot.
func (r *MongoScheduleRepo) UpdateSlotNotes(contractorID, date, startTime, notes string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id": contractorID,
		"availability.bookedSlots": bson.M{"$elemMatch": bson.M{
			"date":      date,
			"startTime": startTime,
		}},
	}
	update := bson.M{"$set": bson.M{"availability.bookedSlots.$.notes": notes}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update notes on slot %s %s: %w", date, startTime, err)
	}
	if res.MatchedCount == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// ConfirmRequest removes the pending request and appends the confirmed slot
// in one transaction, so at most one booking can win a given (date, startTime).
func (r *MongoScheduleRepo) ConfirmRequest(ctx context.Context, contractorID string, req models.MeetingRequest) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		// Remove the pending request; zero matches means it was never there
		// or someone already resolved it.
		pullFilter := bson.M{
			"id": contractorID,
			"pendingMeetings": bson.M{"$elemMatch": bson.M{
				"id":     req.ID,
				"status": models.MeetingStatusPending,
			}},
		}
		pullUpdate := bson.M{"$pull": bson.M{"pendingMeetings": bson.M{"id": req.ID}}}
		res, err := r.coll.UpdateOne(sc, pullFilter, pullUpdate)
		if err != nil {
			return fmt.Errorf("remove pending request failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrRequestNotFound
		}

		// Append the confirmed slot, guarded against an existing slot on the
		// same (date, startTime). Zero matches here means the slot was taken
		// between proposal and acceptance.
		slot := models.BookedSlot{
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			RealtorID: req.RealtorID,
			Status:    models.SlotStatusConfirmed,
			Notes:     req.Notes,
		}
		pushFilter := bson.M{
			"id": contractorID,
			"availability.bookedSlots": bson.M{"$not": bson.M{"$elemMatch": bson.M{
				"date":      req.Date,
				"startTime": req.StartTime,
			}}},
		}
		pushUpdate := bson.M{"$push": bson.M{"availability.bookedSlots": slot}}
		res, err = r.coll.UpdateOne(sc, pushFilter, pushUpdate)
		if err != nil {
			return fmt.Errorf("append booked slot failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrSlotConflict
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}

	return nil
}
