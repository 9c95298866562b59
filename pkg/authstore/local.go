package authstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"career-ai-be/internal/entity"
	"career-ai-be/internal/pkg/logger"
	"career-ai-be/internal/pkg/mailer"
	"career-ai-be/internal/repository/contract"
	"career-ai-be/internal/repository/specification"
	"career-ai-be/internal/repository/unitofwork"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// LocalStore keeps identities in the users table and issues its own JWTs.
type LocalStore struct {
	uowFactory  unitofwork.RepositoryFactory
	tokens      *TokenIssuer
	revocations RevocationList
	mailer      mailer.IEmailService
	logger      logger.ILogger
	validate    *validator.Validate
}

var _ AuthStore = (*LocalStore)(nil)

// NewLocalStore accepts a nil mailer, in which case no welcome mail is sent.
func NewLocalStore(
	uowFactory unitofwork.RepositoryFactory,
	tokens *TokenIssuer,
	revocations RevocationList,
	emailService mailer.IEmailService,
	log logger.ILogger,
) *LocalStore {
	return &LocalStore{
		uowFactory:  uowFactory,
		tokens:      tokens,
		revocations: revocations,
		mailer:      emailService,
		logger:      log,
		validate:    validator.New(),
	}
}

func (s *LocalStore) CreateIdentity(ctx context.Context, email, password string, meta entity.SignupMetadata) (*entity.Identity, *entity.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, nil, ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return nil, nil, ErrWeakPassword
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, nil, fmt.Errorf("lookup identity: %w", err)
	}
	if existing != nil {
		return nil, nil, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	identity := &entity.Identity{
		Id:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Metadata:     meta,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uow.UserRepository().Create(ctx, identity); err != nil {
		// Lost a race with a concurrent signup for the same email.
		if errors.Is(err, contract.ErrDuplicateEmail) {
			return nil, nil, ErrEmailAlreadyRegistered
		}
		return nil, nil, fmt.Errorf("create identity: %w", err)
	}

	session, err := s.tokens.Issue(identity)
	if err != nil {
		return nil, nil, err
	}

	if s.mailer != nil {
		go func(to, name string) {
			if mailErr := s.mailer.SendWelcome(to, name); mailErr != nil {
				s.logger.Warn("AUTH", "Failed to send welcome email", map[string]interface{}{
					"user_id": identity.Id.String(),
					"error":   mailErr.Error(),
				})
			}
		}(identity.Email, meta.FullName)
	}

	return identity, session, nil
}

func (s *LocalStore) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	identity, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, fmt.Errorf("lookup identity: %w", err)
	}
	if identity == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.tokens.Issue(identity)
}

func (s *LocalStore) GetSession(ctx context.Context, accessToken string) (*entity.Session, error) {
	if accessToken == "" {
		return nil, nil
	}

	session, tokenId, err := s.tokens.Verify(accessToken)
	if err != nil {
		return nil, nil
	}

	revoked, err := s.revocations.IsRevoked(ctx, tokenId)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, nil
	}

	return session, nil
}

func (s *LocalStore) SignOut(ctx context.Context, accessToken string) error {
	session, tokenId, err := s.tokens.Verify(accessToken)
	if err != nil {
		// Nothing to revoke.
		return nil
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.revocations.Revoke(ctx, tokenId, ttl)
}
