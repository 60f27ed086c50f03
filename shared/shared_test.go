package shared_test

import (
	"reflect"
	"testing"

	"saylamc/shared"
	"saylamc/shared/constant"
	"saylamc/shared/dto"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    int64
		expectError bool
	}{
		{
			name:     "valid id",
			input:    "123",
			expected: 123,
		},
		{
			name:     "zero id",
			input:    "0",
			expected: 0,
		},
		{
			name:        "non-numeric id",
			input:       "wedding-planning",
			expectError: true,
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
		},
		{
			name:        "decimal number",
			input:       "12.5",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := shared.ParseID(tt.input)

			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}

				return
			}

			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}

			if id != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, id)
			}
		})
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "digits only", input: "42", expected: true},
		{name: "negative number", input: "-1", expected: true},
		{name: "slug", input: "wedding-planning", expected: false},
		{name: "mixed", input: "12abc", expected: false},
		{name: "empty", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := shared.IsNumeric(tt.input); result != tt.expected {
				t.Errorf("IsNumeric(%q): expected %v, got %v", tt.input, tt.expected, result)
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID(123, "id", "services")

	if len(result.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(result.Filters))
	}

	filter, ok := result.Filters[0].(dto.Filter)
	if !ok {
		t.Fatal("expected filter to be of type dto.Filter")
	}

	if filter.Field != "id" {
		t.Errorf("expected field to be 'id', got %s", filter.Field)
	}

	if filter.Value != int64(123) {
		t.Errorf("expected value to be 123, got %v", filter.Value)
	}

	if filter.Operator != dto.FilterOperatorEq {
		t.Errorf("expected operator to be %s, got %s", dto.FilterOperatorEq, filter.Operator)
	}

	if filter.Table != "services" {
		t.Errorf("expected table to be 'services', got %s", filter.Table)
	}
}

func TestFilterByField(t *testing.T) {
	tests := []struct {
		name  string
		value any
		field string
		table string
	}{
		{name: "string value", value: "pending", field: "status", table: "bookings"},
		{name: "bool value", value: true, field: "is_featured", table: "services"},
		{name: "empty table", value: "wedding", field: "category", table: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.FilterByField(tt.value, tt.field, tt.table)

			if len(result.Filters) != 1 {
				t.Fatalf("expected 1 filter, got %d", len(result.Filters))
			}

			filter, ok := result.Filters[0].(dto.Filter)
			if !ok {
				t.Fatal("expected filter to be of type dto.Filter")
			}

			if filter.Field != tt.field || filter.Table != tt.table {
				t.Errorf("unexpected filter: %+v", filter)
			}

			if !reflect.DeepEqual(filter.Value, tt.value) {
				t.Errorf("expected value %v, got %v", tt.value, filter.Value)
			}

			if filter.Operator != dto.FilterOperatorEq {
				t.Errorf("expected operator to be %s, got %s", dto.FilterOperatorEq, filter.Operator)
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "services:get_all",
			expected: "services:get_all",
		},
		{
			name:     "single part",
			prefix:   "services:get",
			parts:    []string{"12"},
			expected: "services:get:12",
		},
		{
			name:     "multiple parts",
			prefix:   "gallery:get_all",
			parts:    []string{"wedding", "visible"},
			expected: "gallery:get_all:wedding:visible",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.BuildCacheKey(tt.prefix, tt.parts...)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

// Distinct query shapes must never share a cache entry, while the same shape
// must always map to the same key.
func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{}.SortBy(constant.FieldCreatedAt, dto.SortDirDesc)
	filtered := shared.FilterByField("wedding", "category", "")

	keyA := shared.BuildCacheKeyWithQuery("gallery:get_all", params, filtered)
	keyB := shared.BuildCacheKeyWithQuery("gallery:get_all", params, filtered)
	keyC := shared.BuildCacheKeyWithQuery("gallery:get_all", params, dto.FilterGroup{})

	if keyA != keyB {
		t.Errorf("expected identical queries to share a key, got %q and %q", keyA, keyB)
	}

	if keyA == keyC {
		t.Errorf("expected different filters to produce different keys, both were %q", keyA)
	}
}
