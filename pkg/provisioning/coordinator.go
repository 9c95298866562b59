// Package provisioning runs the two-step signup write: identity first, then
// profile. The second step is best effort and never undoes the first.
package provisioning

import (
	"context"
	"errors"
	"time"

	"career-ai-be/internal/entity"
	"career-ai-be/internal/pkg/logger"
	"career-ai-be/internal/pkg/metrics"
	"career-ai-be/pkg/authstore"
	"career-ai-be/pkg/datastore"
	"career-ai-be/pkg/deadline"
)

type State string

const (
	StateStart               State = "START"
	StateIdentityCreated     State = "IDENTITY_CREATED"
	StateProfileCreated      State = "PROFILE_CREATED"
	StateProfileCreateFailed State = "PROFILE_CREATE_FAILED"
	StateDone                State = "DONE"
)

var ErrIdentityCreationFailed = errors.New("identity creation failed")

// IdentityCreationError is the only failure Provision returns. Its message
// is the auth store's own text so it can be shown to the user unchanged.
type IdentityCreationError struct {
	Err error
}

func (e *IdentityCreationError) Error() string { return e.Err.Error() }

func (e *IdentityCreationError) Unwrap() error { return e.Err }

func (e *IdentityCreationError) Is(target error) bool { return target == ErrIdentityCreationFailed }

type SignupRequest struct {
	Email    string
	Password string
	Metadata entity.SignupMetadata
}

// Result is identical for callers whether or not the profile was written.
// ProfileState and ProfileErr are for operator diagnostics.
type Result struct {
	Identity     *entity.Identity
	Session      *entity.Session
	ProfileState State
	ProfileErr   error
	Trail        []State
}

type Coordinator struct {
	auth         authstore.AuthStore
	store        datastore.DataStore
	events       EventPublisher
	logger       logger.ILogger
	storeTimeout time.Duration
}

func NewCoordinator(
	auth authstore.AuthStore,
	store datastore.DataStore,
	events EventPublisher,
	logger logger.ILogger,
	storeTimeout time.Duration,
) *Coordinator {
	return &Coordinator{
		auth:         auth,
		store:        store,
		events:       events,
		logger:       logger,
		storeTimeout: storeTimeout,
	}
}

func (c *Coordinator) Provision(ctx context.Context, req SignupRequest) (*Result, error) {
	trail := []State{StateStart}

	identityCtx, cancel := c.bounded(ctx)
	identity, session, err := c.auth.CreateIdentity(identityCtx, req.Email, req.Password, req.Metadata)
	cancel()
	if err != nil {
		metrics.RecordProvisioningStep("identity", "failed")
		c.logger.Warn("PROVISIONING", "Identity creation failed", map[string]interface{}{
			"error": err.Error(),
			"state": string(StateStart),
		})
		return nil, &IdentityCreationError{Err: err}
	}
	metrics.RecordProvisioningStep("identity", "ok")
	trail = append(trail, StateIdentityCreated)

	res := &Result{
		Identity:     identity,
		Session:      session,
		ProfileState: StateProfileCreated,
	}

	profile := entity.Profile{
		UserId:          identity.Id,
		FullName:        req.Metadata.FullName,
		CareerGoal:      req.Metadata.CareerGoal,
		ExperienceLevel: req.Metadata.ExperienceLevel,
	}

	profileCtx, cancel := c.bounded(ctx)
	err = c.store.CreateProfile(profileCtx, session.AccessToken, profile)
	cancel()

	if err != nil {
		res.ProfileState = StateProfileCreateFailed
		res.ProfileErr = err
		metrics.RecordProvisioningStep("profile", "failed")
		c.logger.Error("PROVISIONING", "Profile creation failed; identity kept without profile", map[string]interface{}{
			"user_id": identity.Id.String(),
			"error":   err.Error(),
			"state":   string(StateProfileCreateFailed),
		})
		c.events.PublishProfileProvisionFailed(context.WithoutCancel(ctx), identity.Id, err)
	} else {
		metrics.RecordProvisioningStep("profile", "ok")
		c.logger.Info("PROVISIONING", "User provisioned", map[string]interface{}{
			"user_id": identity.Id.String(),
		})
	}
	res.Trail = append(trail, res.ProfileState, StateDone)

	c.events.PublishUserSignedUp(context.WithoutCancel(ctx), identity, res.ProfileErr == nil)
	return res, nil
}

func (c *Coordinator) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	return deadline.Bound(ctx, c.storeTimeout)
}
