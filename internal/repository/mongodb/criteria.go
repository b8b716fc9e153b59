// internal/repository/mongodb/criteria.go
package mongodb

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"expenselog/internal/domain"
	"expenselog/internal/util"
)

// buildCriteria translates an expense filter into a match criteria document
// and a single-key ascending sort specification.
//
// Day-boundary filtering uses the process-local timezone. That mirrors the
// existing behavior but shifts results near midnight when server and user
// sit in different zones; the bounds helper takes an explicit location so a
// user-supplied zone can be threaded through later.
func buildCriteria(filter domain.ExpenseFilter) (bson.M, bson.D, error) {
	criteria := bson.M{}

	if filter.UserID != "" {
		userID, err := primitive.ObjectIDFromHex(filter.UserID)
		if err != nil {
			return nil, nil, fmt.Errorf("user id %q: %w", filter.UserID, util.ErrInvalidID)
		}
		criteria["userId"] = userID
	}

	if len(filter.Categories) > 0 {
		criteria["category"] = bson.M{"$in": filter.Categories}
	}

	if filter.Date != 0 {
		start, end := dayBounds(filter.Date, time.Local)
		criteria["date"] = bson.M{"$gte": start, "$lt": end}
	}

	sortKey := "date"
	if filter.Sort == "amount" {
		sortKey = "amount"
	}
	sort := bson.D{{Key: sortKey, Value: 1}}

	return criteria, sort, nil
}

// dayBounds returns the half-open range [start, end) covering the calendar
// day that contains ts in the given location: start is midnight, end is one
// second before the next midnight.
func dayBounds(ts int64, loc *time.Location) (start, end int64) {
	t := time.Unix(ts, 0).In(loc)
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	nextMidnight := midnight.AddDate(0, 0, 1)
	return midnight.Unix(), nextMidnight.Add(-time.Second).Unix()
}
