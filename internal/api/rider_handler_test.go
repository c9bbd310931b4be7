package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feastboard/admin-api/internal/api/shared"
	"github.com/feastboard/admin-api/internal/domain"
	"github.com/feastboard/admin-api/internal/service"
	"github.com/feastboard/admin-api/internal/store"
)

// stubRiderService implements service.RiderService for handler tests.
type stubRiderService struct {
	provisionFn     func(ctx context.Context, params service.ProvisionRiderParams) (*service.ProvisionedRider, error)
	deleteFn        func(ctx context.Context, riderID uuid.UUID) ([]string, error)
	resetPasswordFn func(ctx context.Context, riderID uuid.UUID, newPassword string) error
}

func (s *stubRiderService) ProvisionRider(ctx context.Context, params service.ProvisionRiderParams) (*service.ProvisionedRider, error) {
	return s.provisionFn(ctx, params)
}

func (s *stubRiderService) DeleteRider(ctx context.Context, riderID uuid.UUID) ([]string, error) {
	return s.deleteFn(ctx, riderID)
}

func (s *stubRiderService) ResetPassword(ctx context.Context, riderID uuid.UUID, newPassword string) error {
	return s.resetPasswordFn(ctx, riderID, newPassword)
}

func provisionedRiderFixture() *service.ProvisionedRider {
	id := uuid.New()
	return &service.ProvisionedRider{
		Profile: &domain.Profile{
			ID:       id,
			FullName: "Asha",
			Phone:    "9876543210",
			Email:    "rider123456@riders.example.com",
			Role:     domain.RoleRider,
		},
		RiderID:  "rider123456",
		Password: "s3cretPass!@",
	}
}

func TestRiderHandlerCreate(t *testing.T) {
	t.Parallel()

	t.Run("returns the one-time credentials", func(t *testing.T) {
		t.Parallel()

		fixture := provisionedRiderFixture()
		svc := &stubRiderService{
			provisionFn: func(ctx context.Context, params service.ProvisionRiderParams) (*service.ProvisionedRider, error) {
				assert.Equal(t, "Asha", params.FullName)
				assert.Equal(t, "9876543210", params.Phone)
				assert.Empty(t, params.Email, "the short creation path never supplies an email")
				return fixture, nil
			},
		}
		handler := NewRiderHandler(svc, testLogger())

		req := newJSONRequest(t, http.MethodPost, "/riders/create",
			CreateRiderRequest{FullName: "Asha", Phone: "9876543210"})
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp CreateRiderResponse
		decodeBody(t, rec, &resp)
		assert.True(t, resp.Success)
		assert.Equal(t, fixture.Profile.ID, resp.Rider.ID)
		assert.Equal(t, "rider123456", resp.Rider.RiderID)
		assert.Equal(t, "s3cretPass!@", resp.Rider.Password)
		assert.Equal(t, fixture.Profile.Email, resp.Rider.Email)
	})

	t.Run("missing full_name returns 400", func(t *testing.T) {
		t.Parallel()

		handler := NewRiderHandler(&stubRiderService{}, testLogger())
		req := newJSONRequest(t, http.MethodPost, "/riders/create", map[string]string{"phone": "9876543210"})
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("service validation failure returns 400 with the field", func(t *testing.T) {
		t.Parallel()

		svc := &stubRiderService{
			provisionFn: func(ctx context.Context, params service.ProvisionRiderParams) (*service.ProvisionedRider, error) {
				return nil, domain.NewValidationError("full_name", "full name is required", domain.ErrValidation)
			},
		}
		handler := NewRiderHandler(svc, testLogger())

		req := newJSONRequest(t, http.MethodPost, "/riders/create", CreateRiderRequest{FullName: "x"})
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var resp shared.ErrorResponse
		decodeBody(t, rec, &resp)
		assert.Contains(t, resp.Error, "full_name")
	})
}

func TestRiderHandlerRegister(t *testing.T) {
	t.Parallel()

	t.Run("returns 201 with the stored profile", func(t *testing.T) {
		t.Parallel()

		fixture := provisionedRiderFixture()
		svc := &stubRiderService{
			provisionFn: func(ctx context.Context, params service.ProvisionRiderParams) (*service.ProvisionedRider, error) {
				assert.Equal(t, "bike", params.VehicleType)
				return fixture, nil
			},
		}
		handler := NewRiderHandler(svc, testLogger())

		req := newJSONRequest(t, http.MethodPost, "/riders", RegisterRiderRequest{
			FullName:    "Asha",
			Phone:       "9876543210",
			VehicleType: "bike",
		})
		rec := httptest.NewRecorder()
		handler.Register(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp RegisterRiderResponse
		decodeBody(t, rec, &resp)
		require.NotNil(t, resp.Data)
		assert.Equal(t, fixture.Profile.ID, resp.Data.ID)
	})

	t.Run("missing phone returns 400", func(t *testing.T) {
		t.Parallel()

		handler := NewRiderHandler(&stubRiderService{}, testLogger())
		req := newJSONRequest(t, http.MethodPost, "/riders", RegisterRiderRequest{FullName: "Asha"})
		rec := httptest.NewRecorder()
		handler.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate account returns 409", func(t *testing.T) {
		t.Parallel()

		svc := &stubRiderService{
			provisionFn: func(ctx context.Context, params service.ProvisionRiderParams) (*service.ProvisionedRider, error) {
				return nil, store.ErrProfileExists
			},
		}
		handler := NewRiderHandler(svc, testLogger())

		req := newJSONRequest(t, http.MethodPost, "/riders",
			RegisterRiderRequest{FullName: "Asha", Phone: "9876543210"})
		rec := httptest.NewRecorder()
		handler.Register(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestRiderHandlerDelete(t *testing.T) {
	t.Parallel()

	t.Run("successful delete returns warnings", func(t *testing.T) {
		t.Parallel()

		riderID := uuid.New()
		svc := &stubRiderService{
			deleteFn: func(ctx context.Context, id uuid.UUID) ([]string, error) {
				assert.Equal(t, riderID, id)
				return []string{"rider_live_status: table locked"}, nil
			},
		}
		handler := NewRiderHandler(svc, testLogger())

		req := newJSONRequest(t, http.MethodPost, "/riders/delete",
			DeleteRiderRequest{UserID: riderID.String()})
		rec := httptest.NewRecorder()
		handler.Delete(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp DeleteResponse
		decodeBody(t, rec, &resp)
		assert.True(t, resp.Success)
		assert.Equal(t, []string{"rider_live_status: table locked"}, resp.Warnings)
	})

	t.Run("unknown rider still responds with success", func(t *testing.T) {
		t.Parallel()

		// The service runs its cleanup unconditionally, so a rider the system
		// has never seen comes back as a clean delete.
		svc := &stubRiderService{
			deleteFn: func(ctx context.Context, id uuid.UUID) ([]string, error) {
				return nil, nil
			},
		}
		handler := NewRiderHandler(svc, testLogger())

		req := newJSONRequest(t, http.MethodPost, "/riders/delete",
			DeleteRiderRequest{UserID: uuid.New().String()})
		rec := httptest.NewRecorder()
		handler.Delete(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp DeleteResponse
		decodeBody(t, rec, &resp)
		assert.True(t, resp.Success)
	})

	t.Run("identity failure returns 500 with the step error", func(t *testing.T) {
		t.Parallel()

		svc := &stubRiderService{
			deleteFn: func(ctx context.Context, id uuid.UUID) ([]string, error) {
				return []string{"profile: table locked"}, assert.AnError
			},
		}
		handler := NewRiderHandler(svc, testLogger())

		req := newJSONRequest(t, http.MethodPost, "/riders/delete",
			DeleteRiderRequest{UserID: uuid.New().String()})
		rec := httptest.NewRecorder()
		handler.Delete(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		var resp shared.ErrorResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, assert.AnError.Error(), resp.Error)
	})

	t.Run("non-uuid userId returns 400", func(t *testing.T) {
		t.Parallel()

		handler := NewRiderHandler(&stubRiderService{}, testLogger())
		req := newJSONRequest(t, http.MethodPost, "/riders/delete",
			DeleteRiderRequest{UserID: "42"})
		rec := httptest.NewRecorder()
		handler.Delete(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRiderHandlerResetPassword(t *testing.T) {
	t.Parallel()

	t.Run("successful reset", func(t *testing.T) {
		t.Parallel()

		riderID := uuid.New()
		svc := &stubRiderService{
			resetPasswordFn: func(ctx context.Context, id uuid.UUID, newPassword string) error {
				assert.Equal(t, riderID, id)
				assert.Equal(t, "new-password-1", newPassword)
				return nil
			},
		}
		handler := NewRiderHandler(svc, testLogger())

		req := newJSONRequest(t, http.MethodPost, "/riders/reset-password",
			ResetRiderPasswordRequest{UserID: riderID.String(), NewPassword: "new-password-1"})
		rec := httptest.NewRecorder()
		handler.ResetPassword(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp SuccessResponse
		decodeBody(t, rec, &resp)
		assert.True(t, resp.Success)
	})

	t.Run("unknown rider returns 404", func(t *testing.T) {
		t.Parallel()

		svc := &stubRiderService{
			resetPasswordFn: func(ctx context.Context, id uuid.UUID, newPassword string) error {
				return store.ErrProfileNotFound
			},
		}
		handler := NewRiderHandler(svc, testLogger())

		req := newJSONRequest(t, http.MethodPost, "/riders/reset-password",
			ResetRiderPasswordRequest{UserID: uuid.New().String(), NewPassword: "new-password-1"})
		rec := httptest.NewRecorder()
		handler.ResetPassword(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("too short password returns 400", func(t *testing.T) {
		t.Parallel()

		handler := NewRiderHandler(&stubRiderService{}, testLogger())
		req := newJSONRequest(t, http.MethodPost, "/riders/reset-password",
			ResetRiderPasswordRequest{UserID: uuid.New().String(), NewPassword: "short"})
		rec := httptest.NewRecorder()
		handler.ResetPassword(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
