package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestExtraFields(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    bson.M
		wantErr bool
	}{
		{name: "only typed fields", data: `{"productName":"Phone","user_email":"a@x.io"}`},
		{name: "unknown fields kept", data: `{"productName":"Phone","boycottReason":"x","tags":["a"]}`, want: bson.M{"boycottReason": "x", "tags": []any{"a"}}},
		{name: "typed names match case-insensitively", data: `{"ProductName":"Phone","PRODUCTBRAND":"Acme"}`},
		{name: "operator keys dropped", data: `{"$set":{"a":1},"note":"n"}`, want: bson.M{"note": "n"}},
		{name: "extra bag is not a client key", data: `{"Extra":{"a":1}}`, want: bson.M{"Extra": map[string]any{"a": float64(1)}}},
		{name: "not an object", data: `[1,2]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtraFields([]byte(tt.data), Query{})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuery_JSON(t *testing.T) {
	var q Query
	require.NoError(t, json.Unmarshal([]byte(`{"productName":"Phone","boycottReason":"x","currentDateAndTime":"2024"}`), &q))
	assert.Equal(t, "Phone", q.ProductName)
	assert.Equal(t, bson.M{"boycottReason": "x", "currentDateAndTime": "2024"}, q.Extra)

	out, err := json.Marshal(q)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "Phone", decoded["productName"])
	assert.Equal(t, "x", decoded["boycottReason"])
	assert.Equal(t, "2024", decoded["currentDateAndTime"])
	assert.NotContains(t, decoded, "createdAt")
	assert.NotContains(t, decoded, "Extra")
}

func TestQuery_JSON_TypedFieldWins(t *testing.T) {
	q := Query{ProductName: "Phone", Extra: bson.M{"productName": "shadow"}}

	out, err := json.Marshal(q)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"productName":"Phone"`)
	assert.NotContains(t, string(out), "shadow")
}

func TestCreatedAt_OmittedWhenZero(t *testing.T) {
	out, err := json.Marshal(Recommendation{QueryID: "q1"})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "createdAt")

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	out, err = json.Marshal(Query{CreatedAt: at})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"createdAt":"2024-05-01T10:00:00Z"`)
}

func TestRecommendation_JSON(t *testing.T) {
	var rec Recommendation
	require.NoError(t, json.Unmarshal([]byte(`{"queryId":"q1","recommendationTitle":"Try Y","rating":4}`), &rec))
	assert.Equal(t, "q1", rec.QueryID)
	assert.Equal(t, bson.M{"rating": float64(4)}, rec.Extra)

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"rating":4`)
}

func TestUser_JSON_HidesPassword(t *testing.T) {
	u := User{Email: "a@x.io", Password: "$2a$10$hash", Extra: bson.M{"role": "buyer"}}

	out, err := json.Marshal(u)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"role":"buyer"`)
	assert.NotContains(t, string(out), "password")
	assert.NotContains(t, string(out), "hash")
}
