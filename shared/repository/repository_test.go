package repository

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"lodge/shared/failure"
	"lodge/shared/model"

	"github.com/lib/pq"
)

func TestTranslateConstraintError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantNil     bool
		wantCode    int
		wantMessage string
	}{
		{
			name: "unique violation",
			err: &pq.Error{
				Code:       "23505",
				Constraint: "rooms_number_key",
			},
			wantCode:    409,
			wantMessage: `room violates unique constraint "rooms_number_key"`,
		},
		{
			name: "foreign key violation",
			err: &pq.Error{
				Code:       "23503",
				Constraint: "bookings_room_id_fkey",
			},
			wantCode:    409,
			wantMessage: `room violates foreign key constraint "bookings_room_id_fkey"`,
		},
		{
			name: "wrapped pq error",
			err: fmt.Errorf("exec failed: %w", &pq.Error{
				Code:       "23505",
				Constraint: "rooms_number_key",
			}),
			wantCode:    409,
			wantMessage: `room violates unique constraint "rooms_number_key"`,
		},
		{
			name:    "other pq error passes through",
			err:     &pq.Error{Code: "42P01"},
			wantNil: true,
		},
		{
			name:    "plain error passes through",
			err:     errors.New("connection refused"),
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateConstraintError("room", tt.err)

			if tt.wantNil {
				if got != nil {
					t.Errorf("expected nil, got %v", got)
				}

				return
			}

			if got == nil {
				t.Fatal("expected a translated error, got nil")
			}

			if code := failure.GetCode(got); code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, code)
			}

			if got.Error() != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, got.Error())
			}
		})
	}
}

func TestGetColumns(t *testing.T) {
	type entity struct {
		ID     string `db:"id"`
		Number string `db:"number"`
		Hidden string
		model.Metadata
	}

	columns, insertColumns := getColumns("rooms", reflect.TypeOf(entity{}))

	wantInsert := []string{"id", "number", "created_at", "modified_at", "created_by", "modified_by"}

	if !reflect.DeepEqual(insertColumns, wantInsert) {
		t.Errorf("expected insert columns %v, got %v", wantInsert, insertColumns)
	}

	for _, col := range columns {
		if col.table != "rooms" {
			t.Errorf("expected table to be 'rooms', got %s", col.table)
		}
	}

	if len(columns) != len(wantInsert) {
		t.Errorf("expected %d columns, got %d", len(wantInsert), len(columns))
	}
}
