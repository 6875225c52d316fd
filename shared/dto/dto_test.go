package dto_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"lodge/shared/constant"
	"lodge/shared/dto"
	"lodge/shared/model"
	"lodge/shared/timezone"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := timezone.Format(createdAt, constant.DateFormat)
	expectedModifiedAt := timezone.Format(modifiedAt, constant.DateFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != expectedModifiedAt {
		t.Errorf("expected ModifiedAt to be %s, got %s", expectedModifiedAt, metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "status",
				"sort_dir": "asc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "status",
				SortDir: "ASC",
			},
		},
		{
			name:           "bare request stays unpaginated",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name: "limit without page starts at the first page",
			queryParams: map[string]string{
				"limit": "20",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   20,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name: "invalid values are discarded",
			queryParams: map[string]string{
				"page":     "-1",
				"limit":    "abc",
				"sort_dir": "sideways",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name: "no defaults leaves fields empty",
			queryParams: map[string]string{
				"page": "3",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page: 3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			if params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, params)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name       string
		filter     dto.Filter
		wantClause string
		wantArgs   map[string]any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorEq,
				Value:    "confirmed",
				Table:    "bookings",
			},
			wantClause: "bookings.status = :status",
			wantArgs:   map[string]any{"status": "confirmed"},
		},
		{
			name: "eq without table",
			filter: dto.Filter{
				Field:    "status",
				Operator: dto.FilterOperatorEq,
				Value:    "confirmed",
			},
			wantClause: "status = :status",
			wantArgs:   map[string]any{"status": "confirmed"},
		},
		{
			name: "like wraps value",
			filter: dto.Filter{
				Field:    "first_name",
				Operator: dto.FilterOperatorLike,
				Value:    "Ivan",
				Table:    "guests",
			},
			wantClause: "LOWER(guests.first_name) LIKE LOWER(:first_name)",
			wantArgs:   map[string]any{"first_name": "%Ivan%"},
		},
		{
			name: "is null has no args",
			filter: dto.Filter{
				Field:    "paid_at",
				Operator: dto.FilterIsNull,
				Table:    "payments",
			},
			wantClause: "payments.paid_at IS NULL",
			wantArgs:   map[string]any{},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "min_price",
				Field:    "price_per_night",
				Operator: dto.FilterOperatorGreaterEq,
				Value:    50,
				Table:    "rooms",
			},
			wantClause: "rooms.price_per_night >= :min_price",
			wantArgs:   map[string]any{"min_price": 50},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "status",
				Operator: "between",
			},
			wantClause: "",
			wantArgs:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()

			if strings.TrimSpace(clause) != tt.wantClause {
				t.Errorf("expected clause %q, got %q", tt.wantClause, clause)
			}

			if len(args) != len(tt.wantArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.wantArgs), len(args))
			}

			for key, want := range tt.wantArgs {
				if args[key] != want {
					t.Errorf("expected arg %s to be %v, got %v", key, want, args[key])
				}
			}
		})
	}
}

func TestFilter_GetWhereClause_InSlice(t *testing.T) {
	filter := dto.Filter{
		Field:    "status",
		Operator: dto.FilterOperatorIn,
		Value:    []string{"confirmed", "pending"},
		Table:    "bookings",
	}

	clause, args := filter.GetWhereClause()

	if !strings.Contains(clause, "bookings.status IN (:status_0, :status_1)") {
		t.Errorf("unexpected clause %q", clause)
	}

	if args["status_0"] != "confirmed" || args["status_1"] != "pending" {
		t.Errorf("unexpected args %v", args)
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group yields empty clause", func(t *testing.T) {
		group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

		clause, args := group.GetWhereClause()

		if clause != "" {
			t.Errorf("expected empty clause, got %q", clause)
		}

		if len(args) != 0 {
			t.Errorf("expected no args, got %v", args)
		}
	})

	t.Run("filters joined with operator", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{
					Field:    "status",
					Operator: dto.FilterOperatorEq,
					Value:    "confirmed",
					Table:    "bookings",
				},
				dto.Filter{
					Field:    "guest_id",
					Operator: dto.FilterOperatorEq,
					Value:    "some-id",
					Table:    "bookings",
				},
			},
		}

		clause, args := group.GetWhereClause()

		if !strings.Contains(clause, " AND ") {
			t.Errorf("expected AND in clause, got %q", clause)
		}

		if len(args) != 2 {
			t.Errorf("expected 2 args, got %d", len(args))
		}
	})

	t.Run("nested group", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{
					Field:    "is_active",
					Operator: dto.FilterOperatorEq,
					Value:    true,
					Table:    "rooms",
				},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{
							Field:    "type",
							Operator: dto.FilterOperatorEq,
							Value:    "standard",
							Table:    "rooms",
							ArgName:  "type_standard",
						},
						dto.Filter{
							Field:    "type",
							Operator: dto.FilterOperatorEq,
							Value:    "suite",
							Table:    "rooms",
							ArgName:  "type_suite",
						},
					},
				},
			},
		}

		clause, args := group.GetWhereClause()

		if !strings.Contains(clause, " OR ") || !strings.Contains(clause, " AND ") {
			t.Errorf("expected nested operators in clause, got %q", clause)
		}

		if len(args) != 3 {
			t.Errorf("expected 3 args, got %d", len(args))
		}
	})
}
