package auth

import (
	"context"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dieselmedia/booking-api/internal/audit"
	authpkg "github.com/dieselmedia/booking-api/internal/auth"
	"github.com/dieselmedia/booking-api/internal/errs"
	"github.com/dieselmedia/booking-api/internal/limiter"
)

type TokenIssuer interface {
	Issue(email string) (string, time.Time, error)
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	AccessToken string
	TokenType   string
	Email       string
	ExpiresAt   time.Time
}

type Login struct {
	credentials authpkg.CredentialStore
	tokens      TokenIssuer
	limiter     limiter.Limiter
	audit       *audit.Dispatcher
	log         *zap.Logger
}

func NewLogin(
	credentials authpkg.CredentialStore,
	tokens TokenIssuer,
	lim limiter.Limiter,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *Login {
	if lim == nil {
		lim = limiter.Noop{}
	}
	return &Login{
		credentials: credentials,
		tokens:      tokens,
		limiter:     lim,
		audit:       audit,
		log:         log,
	}
}

// Execute checks the administrator credentials. A wrong e-mail, a wrong
// password and an empty field all produce the same error. clientKey identifies
// the caller for throttling.
func (uc *Login) Execute(
	ctx context.Context,
	in LoginInput,
	clientKey string,
) (*LoginResult, error) {

	// 1. throttle; a broken limiter must not lock the admin out
	allowed, wait, err := uc.limiter.Allow(ctx, clientKey)
	if err != nil {
		uc.log.Warn("login limiter unavailable", zap.Error(err))
		allowed = true
	}
	if !allowed {
		return nil, errs.New("too many failed logins").
			WithHint("Too many failed login attempts. Try again later.").
			WithDetails(map[string]any{"retry_after_seconds": int(math.Ceil(wait.Seconds()))}).
			Mark(errs.ErrRateLimited)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	// 2. credentials
	if !uc.credentials.Verify(email, in.Password) {
		if err := uc.limiter.Failure(ctx, clientKey); err != nil {
			uc.log.Warn("login limiter failure not recorded", zap.Error(err))
		}
		uc.audit.Dispatch(audit.Event{
			Action:   "admin_login_failed",
			Entity:   "admin",
			Metadata: map[string]string{"client": clientKey},
		})
		return nil, errs.Unauthenticated("invalid credentials")
	}

	if err := uc.limiter.Success(ctx, clientKey); err != nil {
		uc.log.Warn("login limiter reset failed", zap.Error(err))
	}

	// 3. token
	token, expiresAt, err := uc.tokens.Issue(email)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action: "admin_login_succeeded",
		Entity: "admin",
		Actor:  email,
	})

	return &LoginResult{
		AccessToken: token,
		TokenType:   authpkg.TokenType,
		Email:       email,
		ExpiresAt:   expiresAt,
	}, nil
}
