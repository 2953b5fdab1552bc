package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"time"

	"charterflow-be/internal/dto"
	"charterflow-be/internal/entity"
	"charterflow-be/internal/pkg/apperror"
	"charterflow-be/internal/pkg/logger"
	"charterflow-be/internal/pkg/mailer"
	"charterflow-be/internal/pkg/sessions"
	"charterflow-be/internal/repository/memory"
	"charterflow-be/internal/repository/specification"
	"charterflow-be/internal/repository/unitofwork"
	"charterflow-be/pkg/events"
	natspkg "charterflow-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, tokenStr string) error
	VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error
}

type authService struct {
	uowFactory        unitofwork.RepositoryFactory
	verificationStore *memory.VerificationStore
	blacklist         *sessions.TokenBlacklist
	emailService      mailer.IEmailService
	natsPublisher     *natspkg.Publisher
	logger            logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	verificationStore *memory.VerificationStore,
	blacklist *sessions.TokenBlacklist,
	emailService mailer.IEmailService,
	natsPublisher *natspkg.Publisher,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:        uowFactory,
		verificationStore: verificationStore,
		blacklist:         blacklist,
		emailService:      emailService,
		natsPublisher:     natsPublisher,
		logger:            log,
	}
}

func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflict("User with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	now := time.Now()
	user := entity.User{
		Id:              uuid.New(),
		Email:           req.Email,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		PasswordHash:    &hashStr,
		IsActive:        true,
		IsEmailVerified: false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uow.UserRepository().Create(ctx, &user); err != nil {
		return nil, err
	}

	code, err := generateVerificationCode()
	if err != nil {
		return nil, err
	}
	s.verificationStore.Save(user.Email, code)

	// Mail delivery must not block or fail registration.
	go func(email, code string) {
		if s.emailService == nil {
			return
		}
		if err := s.emailService.SendVerificationCode(email, code); err != nil {
			s.logger.Warn("auth", "Failed to send verification email", map[string]interface{}{
				"email": email,
				"error": err.Error(),
			})
		}
	}(user.Email, code)

	if s.natsPublisher != nil {
		if err := s.natsPublisher.Publish(ctx, events.UserRegistered(user.Id.String(), user.Email)); err != nil {
			s.logger.Warn("auth", "Failed to publish USER_REGISTERED", map[string]interface{}{
				"user_id": user.Id.String(),
				"error":   err.Error(),
			})
		}
	}

	return &dto.RegisterResponse{
		Id:    user.Id,
		Email: user.Email,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx,
		specification.ByEmail{Email: req.Email},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		return nil, apperror.NewUnauthorized("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.NewUnauthorized("Invalid email or password")
	}

	now := time.Now()
	user.LastLoginAt = &now
	user.UpdatedAt = now
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	expiresAt := now.Add(tokenLifetime)
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return nil, err
	}

	if s.natsPublisher != nil {
		if err := s.natsPublisher.Publish(ctx, events.UserLoggedIn(user.Id.String())); err != nil {
			s.logger.Warn("auth", "Failed to publish USER_LOGIN", map[string]interface{}{
				"user_id": user.Id.String(),
				"error":   err.Error(),
			})
		}
	}

	return &dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(tokenLifetime.Seconds()),
	}, nil
}

// Logout revokes the presented token for the remainder of its lifetime.
func (s *authService) Logout(ctx context.Context, tokenStr string) error {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return apperror.NewUnauthorized("Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return apperror.NewUnauthorized("Invalid token")
	}

	tokenId, _ := claims["jti"].(string)
	exp, _ := claims["exp"].(float64)
	ttl := time.Until(time.Unix(int64(exp), 0))

	return s.blacklist.Revoke(tokenId, ttl)
}

func (s *authService) VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx,
		specification.ByEmail{Email: req.Email},
		specification.ActiveOnly{},
	)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFound("User with email %s not found", req.Email)
	}

	code, found := s.verificationStore.Get(req.Email)
	if !found || code != req.Code {
		return apperror.NewBadRequest("Invalid or expired verification code")
	}

	user.IsEmailVerified = true
	user.UpdatedAt = time.Now()
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return err
	}

	s.verificationStore.Delete(req.Email)
	return nil
}
