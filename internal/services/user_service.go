package services

import (
	"context"
	"fmt"
	"time"

	"promanager_backend/internal/auth"
	"promanager_backend/internal/config"
	"promanager_backend/internal/logger"
	"promanager_backend/internal/metrics"
	"promanager_backend/internal/models"
	"promanager_backend/internal/repositories"
	"promanager_backend/internal/services/dto"
	"promanager_backend/pkg/apperrors"
)

// EmailSender abstracts the SMTP transport so tests can stub it.
type EmailSender interface {
	Send(to, subject, body string) error
}

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Profile(ctx context.Context, userID string) (*models.User, error)
	FetchAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, userID string, req *dto.UpdateUserRequest) (*dto.TokenResponse, error)
	Delete(ctx context.Context, userID string) error
	SendRecoveryCode(ctx context.Context, req *dto.RecoveryRequest) error
	UpdatePasswordByEmail(ctx context.Context, req *dto.UpdatePasswordRequest) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	email    EmailSender
	cfg      *config.Config
}

func NewUserService(userRepo repositories.UserRepository, email EmailSender, cfg *config.Config) UserService {
	return &UserServiceImpl{userRepo: userRepo, email: email, cfg: cfg}
}

func (s *UserServiceImpl) signToken(user *models.User) (*dto.TokenResponse, error) {
	ttl := time.Duration(s.cfg.JWT.TTL) * time.Minute
	token, err := auth.GenerateToken(s.cfg.JWT.Secret, user.ID, user.IsCoach, ttl)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.TokenResponse{Token: token}, nil
}

// generateUniqueID retries until the 15-char id is free. Collisions are
// vanishingly rare but the original flow re-rolls, so this does too.
func (s *UserServiceImpl) generateUniqueID(ctx context.Context) (string, error) {
	for {
		id, err := auth.GenerateID(15)
		if err != nil {
			return "", err
		}
		exists, err := s.userRepo.IDExists(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	id, err := s.generateUniqueID(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	user := &models.User{
		ID:           id,
		Username:     req.Username,
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		Age:          req.Age,
		Gender:       req.Gender,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		IsCoach:      *req.IsCoach,
		ImageBase64:  req.ImageBase64,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "is_coach", user.IsCoach)
	return s.signToken(user)
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByAuthentication(ctx, req.Authentication)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.UserNotFoundByName()
		}
		return nil, apperrors.DatabaseError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.signToken(user)
}

func (s *UserServiceImpl) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.UserNotFound()
		}
		return nil, apperrors.DatabaseError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) FetchAll(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if len(users) == 0 {
		return nil, apperrors.NoUsersFound()
	}
	return users, nil
}

func (s *UserServiceImpl) Update(ctx context.Context, userID string, req *dto.UpdateUserRequest) (*dto.TokenResponse, error) {
	if req.IsEmpty() {
		return nil, apperrors.NoChangesSubmitted()
	}

	changes := map[string]interface{}{}
	setIf := func(col string, v *string) {
		if v != nil && *v != "" {
			changes[col] = *v
		}
	}
	setIf("username", req.Username)
	setIf("firstname", req.Firstname)
	setIf("lastname", req.Lastname)
	setIf("gender", req.Gender)
	setIf("email", req.Email)
	setIf("phone", req.Phone)
	setIf("image_base64", req.ImageBase64)
	if req.Age != nil && *req.Age > 0 {
		changes["age"] = *req.Age
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		changes["password"] = hash
	}

	if err := s.userRepo.Update(ctx, userID, changes); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.UserNotFound()
		}
		return nil, apperrors.DatabaseError(err)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return s.signToken(user)
}

func (s *UserServiceImpl) Delete(ctx context.Context, userID string) error {
	// No cascade: applications and affiliations referencing the user stay
	// behind, matching the original schema.
	rows, err := s.userRepo.Delete(ctx, userID)
	if err != nil {
		return apperrors.DatabaseError(err)
	}
	if rows == 0 {
		return apperrors.UserNotFound()
	}
	return nil
}

func (s *UserServiceImpl) SendRecoveryCode(ctx context.Context, req *dto.RecoveryRequest) error {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return apperrors.DatabaseError(err)
	}
	if !exists {
		return apperrors.EmailNotFound()
	}

	body := fmt.Sprintf(
		"Your password recovery code is:\n%s\nPlease enter this code in the app to start the password recovery process!",
		req.RecoveryCode,
	)
	if err := s.email.Send(req.Email, "Password recovery - Pro Manager", body); err != nil {
		logger.CtxWithError(ctx, "recovery email failed", err, "email", req.Email)
		return apperrors.Wrap(err, apperrors.CodeEmailError, "user", "An unexpected error occurred.", 500)
	}

	metrics.RecoveryEmails.Inc()
	return nil
}

func (s *UserServiceImpl) UpdatePasswordByEmail(ctx context.Context, req *dto.UpdatePasswordRequest) error {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	rows, err := s.userRepo.UpdatePasswordByEmail(ctx, req.Email, hash)
	if err != nil {
		return apperrors.DatabaseError(err)
	}
	if rows == 0 {
		return apperrors.NoUserWithEmail()
	}
	return nil
}
