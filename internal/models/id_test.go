package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestParseID(t *testing.T) {
	valid := bson.NewObjectID()

	tests := []struct {
		name    string
		in      string
		want    bson.ObjectID
		wantErr error
	}{
		{name: "valid", in: valid.Hex(), want: valid},
		{name: "empty", in: "", want: bson.NilObjectID, wantErr: ErrInvalidID},
		{name: "short", in: "abc", want: bson.NilObjectID, wantErr: ErrInvalidID},
		{name: "not hex", in: "zzzzzzzzzzzzzzzzzzzzzzzz", want: bson.NilObjectID, wantErr: ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.want, got)
		})
	}
}
