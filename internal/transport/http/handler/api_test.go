package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"partnerdesk/internal/repo"
	"partnerdesk/internal/service"
	"partnerdesk/internal/store/partnerstore"
	"partnerdesk/internal/store/storetest"
	"partnerdesk/internal/store/userstore"
	"partnerdesk/internal/transport/http/handler"
	"partnerdesk/internal/transport/http/router"
)

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func newTestAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := storetest.Open(t)

	userGW, err := userstore.New(db)
	require.NoError(t, err)
	require.NoError(t, userGW.AutoMigrate())
	partnerGW, err := partnerstore.New(db)
	require.NoError(t, err)
	require.NoError(t, partnerGW.AutoMigrate())

	return router.NewAPIEngine(zap.NewNop(), router.Handlers{
		Users:        handler.NewUserHandler(service.NewUserService(repo.NewUserRepo(userGW))),
		UserSettings: handler.NewUserSettingsHandler(service.NewUserSettingsService(repo.NewUserSettingsRepo(userGW))),
		Partners:     handler.NewPartnerHandler(service.NewPartnerService(repo.NewPartnerRepo(partnerGW))),
		Contracts:    handler.NewContractHandler(service.NewContractService(repo.NewContractRepo(partnerGW))),
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var rd *bytes.Reader
	if body == "" {
		rd = bytes.NewReader(nil)
	} else {
		rd = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestUserEndpoints(t *testing.T) {
	r := newTestAPI(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/users",
		`{"email":"ada@example.com","name":"Ada"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 0, env.Code)
	var created struct {
		ID       uint `json:"id"`
		IsActive bool `json:"isActive"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, uint(1), created.ID)
	assert.True(t, created.IsActive)

	// Same email again conflicts.
	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/users",
		`{"email":"ada@example.com","name":"Clone"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Malformed payload.
	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/users", `{"email":"not-an-email","name":"X"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing user.
	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/users/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Lookup by email.
	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/users/email/ada@example.com", "")
	assert.Equal(t, http.StatusOK, w.Code)

	// Soft delete removes the user from the default listing.
	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/users/%d", created.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	w, env = doJSON(t, r, http.MethodGet, "/api/v1/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Empty(t, list)

	// But it remains fetchable by id.
	w, _ = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", created.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserSettingsEndpoints(t *testing.T) {
	r := newTestAPI(t)

	_, env := doJSON(t, r, http.MethodPost, "/api/v1/users",
		`{"email":"ada@example.com","name":"Ada"}`)
	var user struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &user))

	// Settings for a user that does not exist.
	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/users/999/settings", `{}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/settings", user.ID), `{"theme":"dark"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var settings struct {
		Theme    string `json:"theme"`
		Language string `json:"language"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &settings))
	assert.Equal(t, "dark", settings.Theme)
	assert.Equal(t, "en", settings.Language)

	// One settings row per user.
	w, _ = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/settings", user.ID), `{}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Invalid theme.
	w, _ = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/users/%d/settings", user.ID), `{"theme":"neon"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/users/%d/settings", user.ID), `{"timezone":"Europe/Berlin"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated struct {
		Theme    string `json:"theme"`
		Timezone string `json:"timezone"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "dark", updated.Theme)
	assert.Equal(t, "Europe/Berlin", updated.Timezone)

	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/users/%d/settings", user.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/settings", user.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPartnerEndpoints(t *testing.T) {
	r := newTestAPI(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/partners",
		`{"name":"Acme Corporation","email":"contact@acme.com","phone":"+1-555-0100"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var partner struct {
		ID    uint    `json:"id"`
		Phone *string `json:"phone"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &partner))
	require.NotNil(t, partner.Phone)

	// Explicit null clears the phone.
	w, env = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/partners/%d", partner.ID), `{"phone":null}`)
	require.Equal(t, http.StatusOK, w.Code)
	var patched struct {
		Phone *string `json:"phone"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &patched))
	assert.Nil(t, patched.Phone)
}

func TestContractEndpoints(t *testing.T) {
	r := newTestAPI(t)

	_, env := doJSON(t, r, http.MethodPost, "/api/v1/partners",
		`{"name":"Acme Corporation","email":"contact@acme.com"}`)
	var partner struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &partner))

	// Plain dates are accepted.
	body := fmt.Sprintf(`{"partnerId":%d,"title":"Annual Service Agreement","startDate":"2024-01-01","endDate":"2024-12-31","amount":5000}`, partner.ID)
	w, env := doJSON(t, r, http.MethodPost, "/api/v1/contracts", body)
	require.Equal(t, http.StatusCreated, w.Code)
	var contract struct {
		ID       uint     `json:"id"`
		Currency string   `json:"currency"`
		Status   string   `json:"status"`
		Amount   *float64 `json:"amount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &contract))
	assert.Equal(t, "USD", contract.Currency)
	assert.Equal(t, "active", contract.Status)
	require.NotNil(t, contract.Amount)
	assert.Equal(t, 5000.0, *contract.Amount)

	// Referencing a missing partner fails with 404.
	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/contracts",
		`{"partnerId":999,"title":"Orphan","startDate":"2024-01-01"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Unknown status values are rejected before hitting the store.
	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/contracts/status/paused", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/contracts/partner/%d", partner.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	var byPartner []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &byPartner))
	assert.Len(t, byPartner, 1)

	// Nested alias returns the same listing.
	w, env = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/partners/%d/contracts", partner.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	byPartner = nil
	require.NoError(t, json.Unmarshal(env.Data, &byPartner))
	assert.Len(t, byPartner, 1)

	w, env = doJSON(t, r, http.MethodGet, "/api/v1/contracts/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats struct {
		TotalContracts int64 `json:"totalContracts"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, int64(1), stats.TotalContracts)

	// Negative amounts are rejected on update just like on create.
	w, _ = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/contracts/%d", contract.ID), `{"amount":-5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, env = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/contracts/%d", contract.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	var afterReject struct {
		Amount *float64 `json:"amount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &afterReject))
	require.NotNil(t, afterReject.Amount)
	assert.Equal(t, 5000.0, *afterReject.Amount)

	// An explicit null still clears the amount.
	w, env = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/contracts/%d", contract.ID), `{"amount":null}`)
	require.Equal(t, http.StatusOK, w.Code)
	var nulled struct {
		Amount *float64 `json:"amount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &nulled))
	assert.Nil(t, nulled.Amount)

	// Clearing the end date with an explicit null.
	w, env = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/v1/contracts/%d", contract.ID), `{"endDate":null}`)
	require.Equal(t, http.StatusOK, w.Code)
	var cleared struct {
		EndDate *string `json:"endDate"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cleared))
	assert.Nil(t, cleared.EndDate)

	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/contracts/%d", contract.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/contracts/%d", contract.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
