package dto_test

import (
	"reflect"
	"strings"
	"testing"

	"saylamc/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name         string
		filter       dto.Filter
		expectedSQL  string
		expectedArgs map[string]any
	}{
		{
			name: "equality filter",
			filter: dto.Filter{
				Field:    "status",
				Value:    "pending",
				Operator: dto.FilterOperatorEq,
			},
			expectedSQL:  "status = :status",
			expectedArgs: map[string]any{"status": "pending"},
		},
		{
			name: "equality filter with table prefix",
			filter: dto.Filter{
				Field:    "slug",
				Value:    "gold",
				Operator: dto.FilterOperatorEq,
				Table:    "packages",
			},
			expectedSQL:  "packages.slug = :slug",
			expectedArgs: map[string]any{"slug": "gold"},
		},
		{
			name: "equality filter with custom arg name",
			filter: dto.Filter{
				ArgName:  "status_filter",
				Field:    "status",
				Value:    "confirmed",
				Operator: dto.FilterOperatorEq,
			},
			expectedSQL:  "status = :status_filter",
			expectedArgs: map[string]any{"status_filter": "confirmed"},
		},
		{
			name: "like filter wraps value in wildcards",
			filter: dto.Filter{
				Field:    "title",
				Value:    "wedding",
				Operator: dto.FilterOperatorLike,
			},
			expectedSQL:  "LOWER(title) LIKE LOWER(:title) ",
			expectedArgs: map[string]any{"title": "%wedding%"},
		},
		{
			name: "not equal filter",
			filter: dto.Filter{
				Field:    "status",
				Value:    "cancelled",
				Operator: dto.FilterOperatorNotEq,
			},
			expectedSQL:  "status != :status",
			expectedArgs: map[string]any{"status": "cancelled"},
		},
		{
			name: "in filter expands slices into named args",
			filter: dto.Filter{
				Field:    "category",
				Value:    []string{"wedding", "birthday"},
				Operator: dto.FilterOperatorIn,
			},
			expectedSQL: "category IN (:category_0, :category_1) ",
			expectedArgs: map[string]any{
				"category_0": "wedding",
				"category_1": "birthday",
			},
		},
		{
			name: "is null filter has no args",
			filter: dto.Filter{
				Field:    "package_id",
				Operator: dto.FilterIsNull,
			},
			expectedSQL:  "package_id IS NULL",
			expectedArgs: map[string]any{},
		},
		{
			name: "is not null filter has no args",
			filter: dto.Filter{
				Field:    "image_url",
				Operator: dto.FilterIsNotNull,
			},
			expectedSQL:  "image_url IS NOT NULL",
			expectedArgs: map[string]any{},
		},
		{
			name: "unknown operator produces nothing",
			filter: dto.Filter{
				Field:    "status",
				Value:    "pending",
				Operator: "bogus",
			},
			expectedSQL:  "",
			expectedArgs: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.filter.GetWhereClause()

			if sql != tt.expectedSQL {
				t.Errorf("expected SQL %q, got %q", tt.expectedSQL, sql)
			}

			if !reflect.DeepEqual(args, tt.expectedArgs) {
				t.Errorf("expected args %v, got %v", tt.expectedArgs, args)
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group produces no clause", func(t *testing.T) {
		group := dto.FilterGroup{}

		sql, args := group.GetWhereClause()

		if sql != "" {
			t.Errorf("expected empty SQL, got %q", sql)
		}

		if len(args) != 0 {
			t.Errorf("expected no args, got %v", args)
		}
	})

	t.Run("defaults to AND between filters", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
				dto.Filter{Field: "is_visible", Value: true, Operator: dto.FilterOperatorEq},
			},
		}

		sql, args := group.GetWhereClause()

		if sql != "(status = :status AND is_visible = :is_visible)" {
			t.Errorf("unexpected SQL: %q", sql)
		}

		if args["status"] != "pending" || args["is_visible"] != true {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("OR operator joins with OR", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters: []any{
				dto.Filter{Field: "username", Value: "admin", Operator: dto.FilterOperatorEq},
				dto.Filter{Field: "email", Value: "admin@example.com", Operator: dto.FilterOperatorEq},
			},
		}

		sql, _ := group.GetWhereClause()

		if !strings.Contains(sql, " OR ") {
			t.Errorf("expected OR between clauses, got %q", sql)
		}

		if strings.Contains(sql, " AND ") {
			t.Errorf("did not expect AND in clause, got %q", sql)
		}
	})

	t.Run("nested groups are parenthesized", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{Field: "event_type", Value: "wedding", Operator: dto.FilterOperatorEq},
						dto.Filter{Field: "event_type", ArgName: "event_type_alt", Value: "gathering", Operator: dto.FilterOperatorEq},
					},
				},
			},
		}

		sql, args := group.GetWhereClause()

		expected := "(status = :status AND (event_type = :event_type OR event_type = :event_type_alt))"
		if sql != expected {
			t.Errorf("expected %q, got %q", expected, sql)
		}

		if len(args) != 3 {
			t.Errorf("expected 3 args, got %v", args)
		}
	})
}

func TestQueryParams_SortBy(t *testing.T) {
	params := dto.QueryParams{Limit: 5}.
		SortBy("display_order", dto.SortDirAsc).
		SortBy("created_at", dto.SortDirDesc)

	if params.Limit != 5 {
		t.Errorf("expected Limit to be 5, got %d", params.Limit)
	}

	if len(params.Sort) != 2 {
		t.Fatalf("expected 2 sort clauses, got %d", len(params.Sort))
	}

	if params.Sort[0].Field != "display_order" || params.Sort[0].Dir != dto.SortDirAsc {
		t.Errorf("unexpected first sort clause: %+v", params.Sort[0])
	}

	if params.Sort[1].Field != "created_at" || params.Sort[1].Dir != dto.SortDirDesc {
		t.Errorf("unexpected second sort clause: %+v", params.Sort[1])
	}
}

func TestSortDirectionConstants(t *testing.T) {
	if dto.SortDirAsc != "ASC" {
		t.Errorf("expected SortDirAsc to be 'ASC', got %s", dto.SortDirAsc)
	}
	if dto.SortDirDesc != "DESC" {
		t.Errorf("expected SortDirDesc to be 'DESC', got %s", dto.SortDirDesc)
	}
}
