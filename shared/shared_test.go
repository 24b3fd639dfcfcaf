package shared_test

import (
	"stayhub/shared"
	"stayhub/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "true value", input: "true", expected: boolPtr(true)},
		{name: "false value", input: "false", expected: boolPtr(false)},
		{name: "empty string", input: "", expected: nil},
		{name: "garbage", input: "maybe", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
				assert.Equal(t, *tt.expected, *got)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "exact division", total: 20, limit: 10, expected: 2},
		{name: "with remainder", total: 21, limit: 10, expected: 3},
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 20, limit: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	patch := struct {
		GuestName  string  `db:"guest_name"`
		GuestPhone string  `db:"guest_phone"`
		Discount   float64 `db:"discount"`
		Ignored    string
	}{
		GuestName: "Jordan Doe",
		Discount:  500,
		Ignored:   "skip me",
	}

	fields := shared.TransformFields(patch, "staff-1")

	assert.Equal(t, "Jordan Doe", fields["guest_name"])
	assert.Equal(t, 500.0, fields["discount"])
	assert.NotContains(t, fields, "guest_phone")
	assert.Contains(t, fields, "modified_at")
	assert.Equal(t, "staff-1", fields["modified_by"])
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("b-1", "id", "bookings")

	where, args := group.GetWhereClause()

	assert.Contains(t, where, "bookings.id = :id")
	assert.Equal(t, "b-1", args["id"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get", shared.BuildCacheKey("booking:get"))
	assert.Equal(t, "booking:get:b-1", shared.BuildCacheKey("booking:get", "b-1"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"}
	filter := shared.FilterByID("rt-1", "room_type_id", "bookings")

	keyA := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	keyB := shared.BuildCacheKeyWithQuery("booking:gets", params, shared.FilterByID("rt-2", "room_type_id", "bookings"))

	assert.NotEqual(t, keyA, keyB)
	assert.Contains(t, keyA, "booking:gets:1:10")
}

func boolPtr(b bool) *bool {
	return &b
}
