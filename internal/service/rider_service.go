package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/feastboard/admin-api/internal/domain"
	"github.com/feastboard/admin-api/internal/identity"
	"github.com/feastboard/admin-api/internal/store"
)

// ProvisionRiderParams carries the caller-supplied fields for a new rider.
// Only FullName is required; Email and Password are generated when absent.
type ProvisionRiderParams struct {
	FullName      string
	Phone         string
	Email         string
	Password      string
	VehicleType   string
	VehicleNumber string
	AadharNumber  string
}

// ProvisionedRider is the result of a successful provisioning run. Password
// holds the credential in plaintext; it is returned to the caller exactly
// once and never stored or logged by this service.
type ProvisionedRider struct {
	Profile  *domain.Profile
	RiderID  string
	Password string
}

// RiderService provides rider account administration operations.
type RiderService interface {
	// ProvisionRider creates the identity account and the application profile
	// as a pair. If the profile cannot be written after the account was
	// created, the account is deleted again (best-effort) and the profile
	// error is surfaced.
	ProvisionRider(ctx context.Context, params ProvisionRiderParams) (*ProvisionedRider, error)

	// DeleteRider removes the rider's application records and then the
	// identity account. Returns warnings from failed best-effort steps; a
	// non-nil error means the identity deletion failed. Deleting a rider
	// that no longer exists succeeds.
	DeleteRider(ctx context.Context, riderID uuid.UUID) ([]string, error)

	// ResetPassword replaces the password of the rider's identity account.
	// Returns store.ErrProfileNotFound if no such rider exists.
	ResetPassword(ctx context.Context, riderID uuid.UUID, newPassword string) error
}

// txRunner executes a function inside a database transaction. It exists as a
// field so tests can substitute the real transaction machinery.
type txRunner func(ctx context.Context, fn store.TxFn) error

// RiderServiceImpl implements the RiderService interface.
type RiderServiceImpl struct {
	riderStore           store.RiderStore
	provider             identity.Provider
	generatedEmailDomain string
	runTx                txRunner
	logger               *slog.Logger
}

// NewRiderService creates a new RiderService. generatedEmailDomain is the
// domain appended to generated rider IDs when the caller supplies no email.
func NewRiderService(
	db *sql.DB,
	riderStore store.RiderStore,
	provider identity.Provider,
	generatedEmailDomain string,
	logger *slog.Logger,
) RiderService {
	return &RiderServiceImpl{
		riderStore:           riderStore,
		provider:             provider,
		generatedEmailDomain: generatedEmailDomain,
		runTx: func(ctx context.Context, fn store.TxFn) error {
			return store.RunInTransaction(ctx, db, fn)
		},
		logger: logger.With("component", "rider_service"),
	}
}

// ProvisionRider creates the identity account first, then the profile and the
// initial live-status row in one local transaction. The identity provider and
// the application database share no transaction, so a failed profile write
// compensates by deleting the just-created account.
func (s *RiderServiceImpl) ProvisionRider(ctx context.Context, params ProvisionRiderParams) (*ProvisionedRider, error) {
	if params.FullName == "" {
		return nil, domain.NewValidationError("full_name", "full name is required", domain.ErrValidation)
	}

	riderID, err := generateRiderID()
	if err != nil {
		return nil, err
	}

	email := params.Email
	if email == "" {
		email = fmt.Sprintf("%s@%s", riderID, s.generatedEmailDomain)
	}

	password := params.Password
	if password == "" {
		password, err = generatePassword()
		if err != nil {
			return nil, err
		}
	}

	account, err := s.provider.CreateAccount(ctx, identity.CreateAccountParams{
		Email:     email,
		Phone:     params.Phone,
		Password:  password,
		Confirmed: true,
		Metadata: map[string]any{
			"full_name": params.FullName,
			"role":      string(domain.RoleRider),
			"rider_id":  riderID,
		},
	})
	if err != nil {
		s.logger.Error("failed to create identity account",
			"rider_id", riderID,
			"error", err)
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	profile, err := domain.NewRiderProfile(account.ID, params.FullName, params.Phone, email)
	if err == nil {
		profile.VehicleType = params.VehicleType
		profile.VehicleNumber = params.VehicleNumber
		profile.AadharNumber = params.AadharNumber

		err = s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
			txStore := s.riderStore.WithTx(tx)
			if err := txStore.CreateProfile(ctx, profile); err != nil {
				return err
			}
			return txStore.SeedLiveStatus(ctx, account.ID)
		})
	}
	if err != nil {
		// Undo the account so a retry of the whole call starts clean. The
		// profile error is what the caller acted on, so it wins even if the
		// compensating delete also fails.
		if delErr := s.provider.DeleteAccount(ctx, account.ID); delErr != nil {
			s.logger.Error("failed to compensate identity account after profile failure",
				"identity_id", account.ID,
				"rider_id", riderID,
				"error", delErr)
		}
		s.logger.Error("failed to create rider profile",
			"identity_id", account.ID,
			"rider_id", riderID,
			"error", err)
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.logger.Info("rider provisioned",
		"identity_id", account.ID,
		"rider_id", riderID)

	return &ProvisionedRider{
		Profile:  profile,
		RiderID:  riderID,
		Password: password,
	}, nil
}

// DeleteRider removes the rider's application rows best-effort, then deletes
// the identity account. The identity deletion is the fatal step: it is what
// revokes the rider's access, so its failure fails the whole call even when
// every database step succeeded.
//
// No existence check runs up front. A rider whose profile write failed during
// provisioning (and whose compensating account delete also failed) has an
// identity account but no profile row; the same call cleans that up too.
func (s *RiderServiceImpl) DeleteRider(ctx context.Context, riderID uuid.UUID) ([]string, error) {
	steps := []step{
		{name: "rider_live_status", run: func(ctx context.Context) error {
			return s.riderStore.DeleteLiveStatus(ctx, riderID)
		}},
		{name: "order_assignments", run: func(ctx context.Context) error {
			return s.riderStore.DeleteAssignmentsByRider(ctx, riderID)
		}},
		{name: "deliveries", run: func(ctx context.Context) error {
			return s.riderStore.ClearDeliveryRider(ctx, riderID)
		}},
		{name: "profile", run: func(ctx context.Context) error {
			return s.riderStore.DeleteProfile(ctx, riderID)
		}},
		{name: "identity", fatal: true, run: func(ctx context.Context) error {
			err := s.provider.DeleteAccount(ctx, riderID)
			// The account may already be gone from a concurrent delete; the
			// end state is the one we wanted.
			if errors.Is(err, identity.ErrAccountNotFound) {
				return nil
			}
			return err
		}},
	}

	warnings, err := runSteps(ctx, s.logger, steps)
	if err != nil {
		return warnings, err
	}

	s.logger.Info("rider deleted",
		"rider_id", riderID,
		"warnings", len(warnings))
	return warnings, nil
}

// ResetPassword looks up the rider profile and updates the paired identity
// account's password at the provider.
func (s *RiderServiceImpl) ResetPassword(ctx context.Context, riderID uuid.UUID, newPassword string) error {
	if _, err := s.riderStore.GetProfile(ctx, riderID); err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			s.logger.Debug("password reset for unknown rider", "rider_id", riderID)
		} else {
			s.logger.Error("failed to look up rider for password reset",
				"rider_id", riderID,
				"error", err)
		}
		return err
	}

	if err := s.provider.UpdatePassword(ctx, riderID, newPassword); err != nil {
		s.logger.Error("failed to reset rider password",
			"rider_id", riderID,
			"error", err)
		return fmt.Errorf("failed to reset password: %w", err)
	}

	s.logger.Info("rider password reset", "rider_id", riderID)
	return nil
}
