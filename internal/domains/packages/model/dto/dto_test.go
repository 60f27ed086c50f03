package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saylamc/internal/domains/packages/model"
	"saylamc/internal/domains/packages/model/dto"
	"saylamc/shared/constant"
)

// Omitted flags and ordering fields default to false and zero, never to
// server-chosen values.
func TestCreatePackageRequest_Defaults(t *testing.T) {
	payload := `{"name": "Silver", "slug": "silver", "price": 5000000}`

	var req dto.CreatePackageRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	pkg := req.ToModel()

	assert.Equal(t, "Silver", pkg.Name)
	assert.Equal(t, "silver", pkg.Slug)
	assert.False(t, pkg.IsPopular)
	assert.False(t, pkg.IsFeatured)
	assert.Zero(t, pkg.DisplayOrder)
	assert.Empty(t, []string(pkg.Features))
	assert.False(t, pkg.CreatedAt.IsZero())
}

// An update is a full overwrite: zero values are written out, they are not
// treated as "leave unchanged".
func TestUpdatePackageRequest_ToFields_WritesZeroValues(t *testing.T) {
	req := dto.UpdatePackageRequest{
		Name: "Gold",
		Slug: "gold",
	}

	fields := req.ToFields()

	assert.Equal(t, "Gold", fields["name"])
	assert.Equal(t, float64(0), fields["price"])
	assert.Equal(t, false, fields["is_popular"])
	assert.Equal(t, false, fields["is_featured"])
	assert.Equal(t, 0, fields["display_order"])
	assert.Contains(t, fields, constant.FieldUpdatedAt)
	assert.Len(t, fields, 10)
}

func TestPackageResponse_FromModel(t *testing.T) {
	pkg := model.Package{
		ID:       3,
		Name:     "Platinum",
		Slug:     "platinum",
		Price:    12500000.50,
		Features: []string{"full day", "2 MC"},
	}

	var res dto.PackageResponse
	res.FromModel(pkg)

	assert.Equal(t, int64(3), res.ID)
	assert.Equal(t, "Platinum", res.Name)
	assert.Equal(t, 12500000.50, res.Price)
	assert.Equal(t, []string{"full day", "2 MC"}, res.Features)
}
