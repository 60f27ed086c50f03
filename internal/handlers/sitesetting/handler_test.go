package sitesetting_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saylamc/infras/otel/mocks"
	"saylamc/internal/domains/sitesetting/model/dto"
	"saylamc/internal/handlers/sitesetting"
)

type stubSiteSettingService struct {
	res dto.SiteSettingResponse
	err error
}

func (s *stubSiteSettingService) Get(context.Context) (dto.SiteSettingResponse, error) {
	return s.res, s.err
}

func (s *stubSiteSettingService) Upsert(context.Context, dto.UpsertSiteSettingRequest) (dto.SiteSettingResponse, error) {
	return s.res, s.err
}

// Before any settings are saved, the public read returns a literal empty
// object in data, never a zero-filled record.
func TestGetSettings_EmptyTableYieldsEmptyObject(t *testing.T) {
	handler := sitesetting.New(&stubSiteSettingService{}, nil, mocks.NewOtel())

	req := httptest.NewRequest(http.MethodGet, "/api/site-settings", nil)
	rec := httptest.NewRecorder()

	handler.GetSettings(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true, "data": {}}`, rec.Body.String())
}

func TestGetSettings_ExistingRow(t *testing.T) {
	stub := &stubSiteSettingService{
		res: dto.SiteSettingResponse{ID: 1, SiteName: "Sayla MC"},
	}
	handler := sitesetting.New(stub, nil, mocks.NewOtel())

	req := httptest.NewRequest(http.MethodGet, "/api/site-settings", nil)
	rec := httptest.NewRecorder()

	handler.GetSettings(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"site_name":"Sayla MC"`)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}
