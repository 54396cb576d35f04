package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt_Coercion(t *testing.T) {
	cases := []struct {
		in    string
		want  int64
		valid bool
	}{
		{`5`, 5, true},
		{`"7"`, 7, true},
		{`"3.9"`, 3, true},
		{`3.9`, 3, true},
		{`null`, 0, false},
		{`"abc"`, 0, false},
		{`true`, 0, false},
		{`"1e300"`, 0, false},
		{`"NaN"`, 0, false},
	}
	for _, tc := range cases {
		var payload struct {
			V FlexInt `json:"v"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"v":`+tc.in+`}`), &payload))
		got, ok := payload.V.Int64()
		assert.Equal(t, tc.valid, ok, "input %s", tc.in)
		assert.Equal(t, tc.want, got, "input %s", tc.in)
	}
}

func TestFlexFloat_Coercion(t *testing.T) {
	var payload struct {
		A FlexFloat `json:"a"`
		B FlexFloat `json:"b"`
		C FlexFloat `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":15.5,"b":"20.25","c":"nope"}`), &payload))

	a, ok := payload.A.Float64()
	assert.True(t, ok)
	assert.Equal(t, 15.5, a)

	b, ok := payload.B.Float64()
	assert.True(t, ok)
	assert.Equal(t, 20.25, b)

	_, ok = payload.C.Float64()
	assert.False(t, ok)
}

func TestFlexFloat_NonFiniteIsInvalid(t *testing.T) {
	for _, in := range []string{`"NaN"`, `"Infinity"`, `"-Inf"`, `"+Inf"`} {
		var payload struct {
			V FlexFloat `json:"v"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"v":`+in+`}`), &payload))
		_, ok := payload.V.Float64()
		assert.False(t, ok, "input %s", in)
	}
}

func TestParseEventDate_Layouts(t *testing.T) {
	for _, in := range []string{
		"2025-06-01T19:00:00Z",
		"2025-06-01T19:00:00",
		"2025-06-01T19:00",
		"2025-06-01",
	} {
		got, ok := ParseEventDate(in)
		require.True(t, ok, "input %s", in)
		assert.Equal(t, 2025, got.Year(), "input %s", in)
	}

	_, ok := ParseEventDate("next friday")
	assert.False(t, ok)
}

func TestCreateEventRequest_Validate(t *testing.T) {
	var req CreateEventRequest
	require.NoError(t, json.Unmarshal(
		[]byte(`{"venueId":"2","title":"  Concert ","eventDate":"2025-06-01T19:00"}`), &req))

	cmd, verr := req.Validate()
	require.Nil(t, verr)
	assert.Equal(t, int64(2), cmd.VenueID)
	assert.Equal(t, "Concert", cmd.Title)
	assert.True(t, cmd.EventDate.Equal(time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)))
}

func TestCreateEventRequest_Validate_MissingFields(t *testing.T) {
	for _, body := range []string{
		`{}`,
		`{"venueId":1,"title":"x"}`,
		`{"venueId":1,"eventDate":"2025-01-01"}`,
		`{"title":"x","eventDate":"2025-01-01"}`,
		`{"venueId":1,"title":"   ","eventDate":"2025-01-01"}`,
		`{"venueId":0,"title":"x","eventDate":"2025-01-01"}`,
	} {
		var req CreateEventRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		_, verr := req.Validate()
		require.NotNil(t, verr, "body %s", body)
		assert.Equal(t, "venueId, title and eventDate are required", verr.Message)
	}
}

func TestCreateEventRequest_Validate_BadDate(t *testing.T) {
	var req CreateEventRequest
	require.NoError(t, json.Unmarshal(
		[]byte(`{"venueId":1,"title":"x","eventDate":"not a date"}`), &req))
	_, verr := req.Validate()
	require.NotNil(t, verr)
	assert.Equal(t, "eventDate must be a valid date", verr.Message)
}

func TestImportEventsRequest_BareArrayAndWrapper(t *testing.T) {
	var bare ImportEventsRequest
	require.NoError(t, json.Unmarshal(
		[]byte(`[{"venueId":1,"title":"A","eventDate":"2025-01-01"}]`), &bare))
	assert.Len(t, bare.Items, 1)

	var wrapped ImportEventsRequest
	require.NoError(t, json.Unmarshal(
		[]byte(`{"items":[{"venueId":1,"title":"A","eventDate":"2025-01-01"}]}`), &wrapped))
	assert.Len(t, wrapped.Items, 1)
}

func TestImportEventsRequest_TolerantCasing(t *testing.T) {
	var req ImportEventsRequest
	require.NoError(t, json.Unmarshal(
		[]byte(`[{"VenueId":"3","Title":"Gala","EventDate":"2025-02-02"}]`), &req))

	items := req.Filter()
	require.Len(t, items, 1)
	assert.Equal(t, int64(3), items[0].VenueID)
	assert.Equal(t, "Gala", items[0].Title)
}

func TestImportEventsRequest_FilterDropsIncomplete(t *testing.T) {
	var req ImportEventsRequest
	require.NoError(t, json.Unmarshal([]byte(`[
		{"venueId":1,"title":"A","eventDate":"2025-01-01"},
		{"title":"bad"},
		{"venueId":2,"eventDate":"2025-01-01"},
		{"venueId":2,"title":"  ","eventDate":"2025-01-01"}
	]`), &req))

	items := req.Filter()
	require.Len(t, items, 1)
	assert.Equal(t, "A", items[0].Title)
}

func TestCreateTicketRequest_Validate_Defaults(t *testing.T) {
	var req CreateTicketRequest
	require.NoError(t, json.Unmarshal(
		[]byte(`{"eventId":1,"customerName":"Alice"}`), &req))

	cmd, verr := req.Validate()
	require.Nil(t, verr)
	assert.Equal(t, int64(1), cmd.Quantity)
	assert.Equal(t, 0.0, cmd.Total)
}

func TestCreateTicketRequest_Validate_NonFiniteTotalDefaultsToZero(t *testing.T) {
	var req CreateTicketRequest
	require.NoError(t, json.Unmarshal(
		[]byte(`{"eventId":1,"customerName":"Alice","total":"NaN"}`), &req))

	cmd, verr := req.Validate()
	require.Nil(t, verr)
	assert.Equal(t, 0.0, cmd.Total)
}

func TestCreateTicketRequest_Validate_ZeroQuantityFallsBack(t *testing.T) {
	var req CreateTicketRequest
	require.NoError(t, json.Unmarshal(
		[]byte(`{"eventId":1,"customerName":"Alice","quantity":"0","total":"12.50"}`), &req))

	cmd, verr := req.Validate()
	require.Nil(t, verr)
	assert.Equal(t, int64(1), cmd.Quantity)
	assert.Equal(t, 12.5, cmd.Total)
}

func TestCreateTicketRequest_Validate_NegativeQuantityKept(t *testing.T) {
	// Negative totals are rejected below, negative quantities are not; the
	// asymmetry is part of the observed contract.
	var req CreateTicketRequest
	require.NoError(t, json.Unmarshal(
		[]byte(`{"eventId":1,"customerName":"Alice","quantity":-2}`), &req))

	cmd, verr := req.Validate()
	require.Nil(t, verr)
	assert.Equal(t, int64(-2), cmd.Quantity)
}

func TestCreateTicketRequest_Validate_NegativeTotalRejected(t *testing.T) {
	var req CreateTicketRequest
	require.NoError(t, json.Unmarshal(
		[]byte(`{"eventId":1,"customerName":"Alice","total":-5}`), &req))

	_, verr := req.Validate()
	require.NotNil(t, verr)
	assert.Equal(t, "total must not be negative", verr.Message)
}

func TestCreateTicketRequest_Validate_MissingRequired(t *testing.T) {
	for _, body := range []string{
		`{"customerName":"Alice"}`,
		`{"eventId":1}`,
		`{"eventId":1,"customerName":"   "}`,
	} {
		var req CreateTicketRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		_, verr := req.Validate()
		require.NotNil(t, verr, "body %s", body)
		assert.Equal(t, "eventId and customerName are required", verr.Message)
	}
}
