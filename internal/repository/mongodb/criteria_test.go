// internal/repository/mongodb/criteria_test.go
package mongodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"expenselog/internal/domain"
	"expenselog/internal/util"
)

func TestBuildCriteria_EmptyFilter(t *testing.T) {
	criteria, sort, err := buildCriteria(domain.ExpenseFilter{})

	require.NoError(t, err)
	assert.Empty(t, criteria)
	assert.Equal(t, bson.D{{Key: "date", Value: 1}}, sort)
}

func TestBuildCriteria_UserID(t *testing.T) {
	t.Run("ValidIdentifier", func(t *testing.T) {
		userID := primitive.NewObjectID()
		criteria, _, err := buildCriteria(domain.ExpenseFilter{UserID: userID.Hex()})

		require.NoError(t, err)
		assert.Equal(t, userID, criteria["userId"])
	})

	t.Run("InvalidIdentifier", func(t *testing.T) {
		_, _, err := buildCriteria(domain.ExpenseFilter{UserID: "not-a-hex-id"})

		assert.ErrorIs(t, err, util.ErrInvalidID)
	})
}

func TestBuildCriteria_Categories(t *testing.T) {
	categories := []string{"food", "Transport", "food"}
	criteria, _, err := buildCriteria(domain.ExpenseFilter{Categories: categories})

	require.NoError(t, err)
	// List contents are preserved verbatim, no case folding or dedup.
	assert.Equal(t, bson.M{"$in": categories}, criteria["category"])
}

func TestBuildCriteria_Sort(t *testing.T) {
	tests := []struct {
		name    string
		sort    string
		wantKey string
	}{
		{"AmountSortsByAmount", "amount", "amount"},
		{"DateIsDefault", "", "date"},
		{"UnknownFallsBackToDate", "category", "date"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, sort, err := buildCriteria(domain.ExpenseFilter{Sort: tc.sort})

			require.NoError(t, err)
			assert.Equal(t, bson.D{{Key: tc.wantKey, Value: 1}}, sort)
		})
	}
}

func TestBuildCriteria_DateRange(t *testing.T) {
	ts := time.Date(2024, 3, 12, 15, 4, 5, 0, time.Local).Unix()
	criteria, _, err := buildCriteria(domain.ExpenseFilter{Date: ts})

	require.NoError(t, err)
	wantStart, wantEnd := dayBounds(ts, time.Local)
	assert.Equal(t, bson.M{"$gte": wantStart, "$lt": wantEnd}, criteria["date"])
}

func TestDayBounds(t *testing.T) {
	// Fixed zones keep the assertions independent of the host timezone and
	// clear of DST transitions.
	zones := []*time.Location{
		time.UTC,
		time.FixedZone("UTC+5:30", 5*3600+1800),
		time.FixedZone("UTC-8", -8*3600),
	}

	for _, loc := range zones {
		t.Run(loc.String(), func(t *testing.T) {
			ts := time.Date(2024, 3, 12, 23, 59, 30, 0, loc).Unix()
			start, end := dayBounds(ts, loc)

			// The half-open range [start, end) contains ts and excludes the
			// same instant on the neighboring days.
			assert.GreaterOrEqual(t, ts, start)
			assert.Less(t, ts, end)
			assert.Less(t, ts-86400, start)
			assert.GreaterOrEqual(t, ts+86400, end)

			// One day minus one second.
			assert.Equal(t, int64(86399), end-start)

			// Start is midnight of the containing day.
			midnight := time.Unix(start, 0).In(loc)
			assert.Equal(t, 0, midnight.Hour())
			assert.Equal(t, 0, midnight.Minute())
			assert.Equal(t, 0, midnight.Second())
		})
	}
}

func TestDayBounds_ContainsWholeDay(t *testing.T) {
	loc := time.UTC
	day := time.Date(2024, 7, 1, 0, 0, 0, 0, loc)

	for _, offset := range []time.Duration{0, time.Second, 12 * time.Hour, 23*time.Hour + 59*time.Minute + 59*time.Second} {
		ts := day.Add(offset).Unix()
		start, end := dayBounds(ts, loc)
		assert.Equal(t, day.Unix(), start)
		assert.Equal(t, day.Unix()+86399, end)
	}
}
