package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"assetdesk/internal/mailer"
	usererrors "assetdesk/internal/user/errors"
)

const blacklistKeyPrefix = "blacklist:"

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	CheckEmailAvailability(ctx context.Context, email string) error
	RegisterAdmin(ctx context.Context, req RegisterRequest) (UserResponse, error)
	RegisterUser(ctx context.Context, req RegisterRequest) (UserResponse, error)
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) error
	InitiatePasswordReset(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, email, password string) error
	SignIn(ctx context.Context, email, password string) (SignInResponse, error)
	SignOut(ctx context.Context, token string) error
	ValidateToken(ctx context.Context, token string) (Identity, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error)
	UpdateAvatar(ctx context.Context, id, avatar string) (UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	List(ctx context.Context, page, limit int, search string) ([]UserResponse, int64, error)
}

type service struct {
	repo   Repository
	mail   mailer.Sender
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(repo Repository, mail mailer.Sender, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, mail: mail, rdb: rdb, logger: l}
}

func (s *service) CheckEmailAvailability(ctx context.Context, email string) error {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return usererrors.ErrEmailTaken
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	s.logger.Error("check email availability failed", zap.Error(err))
	return err
}

func (s *service) RegisterAdmin(ctx context.Context, req RegisterRequest) (UserResponse, error) {
	return s.register(ctx, req, RoleAdmin)
}

func (s *service) RegisterUser(ctx context.Context, req RegisterRequest) (UserResponse, error) {
	return s.register(ctx, req, RoleITManager)
}

func (s *service) register(ctx context.Context, req RegisterRequest, role string) (UserResponse, error) {
	s.logger.Debug("register requested",
		zap.String("email", req.Email),
		zap.String("role", role),
	)

	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return UserResponse{}, usererrors.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("register email lookup failed", zap.Error(err))
		return UserResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	u := &User{
		ID:             uuid.New(),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Password:       string(hashed),
		StaffID:        req.StaffID,
		PhoneNumber:    req.PhoneNumber,
		OfficeLocation: req.OfficeLocation,
		Role:           role,
	}

	// Admins are usable immediately; regular users verify by OTP first.
	var otp string
	if role == RoleAdmin {
		u.AccountStatus = StatusActive
		u.IsActive = true
	} else {
		u.AccountStatus = StatusInactive
		otp, err = GenerateOTP()
		if err != nil {
			return UserResponse{}, err
		}
		expiresAt := time.Now().Add(OTPTTL)
		u.VerificationCode = HashOTP(otp)
		u.VerificationCodeExpiresAt = &expiresAt
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Error("register persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	if otp != "" {
		s.mail.SendVerificationEmail(u.FirstName+" "+u.LastName, u.Email, otp)
	}

	s.logger.Info("user registered",
		zap.String("user_id", u.ID.String()),
		zap.String("role", role),
	)
	return mapToResponse(*u), nil
}

func (s *service) SendOTP(ctx context.Context, email string) error {
	return s.issueOTP(ctx, email, false)
}

func (s *service) InitiatePasswordReset(ctx context.Context, email string) error {
	return s.issueOTP(ctx, email, true)
}

func (s *service) issueOTP(ctx context.Context, email string, passwordReset bool) error {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return mapRepositoryError(err)
	}

	otp, err := GenerateOTP()
	if err != nil {
		return err
	}
	expiresAt := time.Now().Add(OTPTTL)

	err = s.repo.UpdateFields(ctx, u.ID, map[string]any{
		"verification_code":            HashOTP(otp),
		"verification_code_expires_at": expiresAt,
	})
	if err != nil {
		s.logger.Error("store otp failed", zap.String("user_id", u.ID.String()), zap.Error(err))
		return err
	}

	name := u.FirstName + " " + u.LastName
	if passwordReset {
		s.mail.SendPasswordResetEmail(name, u.Email, otp)
	} else {
		s.mail.SendVerificationEmail(name, u.Email, otp)
	}

	s.logger.Info("otp issued",
		zap.String("user_id", u.ID.String()),
		zap.Bool("password_reset", passwordReset),
	)
	return nil
}

func (s *service) VerifyOTP(ctx context.Context, email, otp string) error {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return mapRepositoryError(err)
	}

	// Hash match and expiry are independent checks with distinct messages.
	if u.VerificationCode == "" || u.VerificationCode != HashOTP(otp) {
		return usererrors.ErrOTPInvalid
	}
	if u.VerificationCodeExpiresAt == nil || u.VerificationCodeExpiresAt.Before(time.Now()) {
		return usererrors.ErrOTPExpired
	}

	err = s.repo.UpdateFields(ctx, u.ID, map[string]any{
		"account_status": StatusActive,
		"is_active":      true,
	})
	if err != nil {
		s.logger.Error("activate account failed", zap.String("user_id", u.ID.String()), zap.Error(err))
		return err
	}

	s.logger.Info("account verified", zap.String("user_id", u.ID.String()))
	return nil
}

func (s *service) ChangePassword(ctx context.Context, email, password string) error {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return mapRepositoryError(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	err = s.repo.UpdateFields(ctx, u.ID, map[string]any{"password": string(hashed)})
	if err != nil {
		s.logger.Error("change password failed", zap.String("user_id", u.ID.String()), zap.Error(err))
		return err
	}

	s.mail.SendPasswordChangedEmail(
		u.FirstName+" "+u.LastName,
		u.Email,
		time.Now().Format(time.RFC1123),
	)

	s.logger.Info("password changed", zap.String("user_id", u.ID.String()))
	return nil
}

func (s *service) SignIn(ctx context.Context, email, password string) (SignInResponse, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SignInResponse{}, usererrors.ErrInvalidCredentials
		}
		s.logger.Error("sign in lookup failed", zap.Error(err))
		return SignInResponse{}, err
	}

	// Suspension wins over credential checks.
	if u.AccountStatus == StatusSuspended {
		return SignInResponse{}, usererrors.ErrAccountSuspended
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return SignInResponse{}, usererrors.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.repo.UpdateFields(ctx, u.ID, map[string]any{"last_login": now}); err != nil {
		s.logger.Error("update last login failed", zap.String("user_id", u.ID.String()), zap.Error(err))
		return SignInResponse{}, err
	}
	u.LastLogin = &now

	token, _, err := GenerateToken(u.ID.String(), u.Role, TokenTTL)
	if err != nil {
		s.logger.Error("token generation failed", zap.String("user_id", u.ID.String()), zap.Error(err))
		return SignInResponse{}, err
	}

	s.logger.Info("sign in success", zap.String("user_id", u.ID.String()))
	return SignInResponse{User: mapToResponse(*u), Token: token}, nil
}

func (s *service) SignOut(ctx context.Context, token string) error {
	hash := HashToken(token)

	// Pin the blacklist row to the token's own expiry so the sweeper can
	// drop it once the token would have died anyway. An unparsable token
	// gets the full TTL.
	expiresAt := time.Now().Add(TokenTTL)
	if claims, err := ParseToken(token); err == nil && !claims.ExpiresAt.IsZero() {
		expiresAt = claims.ExpiresAt
	}

	if err := s.repo.BlacklistToken(ctx, hash, expiresAt); err != nil {
		s.logger.Error("blacklist token failed", zap.Error(err))
		return err
	}

	if s.rdb != nil {
		ttl := time.Until(expiresAt)
		if ttl > 0 {
			if err := s.rdb.Set(ctx, blacklistKeyPrefix+hash, "1", ttl).Err(); err != nil {
				s.logger.Warn("blacklist cache set failed", zap.Error(err))
			}
		}
	}

	s.logger.Info("sign out success")
	return nil
}

func (s *service) ValidateToken(ctx context.Context, token string) (Identity, error) {
	claims, err := ParseToken(token)
	if err != nil {
		return Identity{}, err
	}

	revoked, err := s.isRevoked(ctx, HashToken(token))
	if err != nil {
		s.logger.Error("blacklist check failed", zap.Error(err))
		return Identity{}, err
	}
	if revoked {
		return Identity{}, usererrors.ErrTokenInvalid
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return Identity{}, usererrors.ErrTokenInvalid
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Identity{}, usererrors.ErrTokenInvalid
		}
		return Identity{}, err
	}

	if u.AccountStatus != StatusActive {
		return Identity{}, usererrors.ErrAccountNotActive
	}

	return Identity{
		ID:            u.ID.String(),
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Role:          u.Role,
		AccountStatus: u.AccountStatus,
	}, nil
}

// isRevoked consults the redis fast path first and backfills it on a
// database hit.
func (s *service) isRevoked(ctx context.Context, hash string) (bool, error) {
	if s.rdb != nil {
		if _, err := s.rdb.Get(ctx, blacklistKeyPrefix+hash).Result(); err == nil {
			return true, nil
		}
	}

	revoked, err := s.repo.IsTokenBlacklisted(ctx, hash)
	if err != nil {
		return false, err
	}
	if revoked && s.rdb != nil {
		if err := s.rdb.Set(ctx, blacklistKeyPrefix+hash, "1", time.Hour).Err(); err != nil {
			s.logger.Warn("blacklist cache backfill failed", zap.Error(err))
		}
	}
	return revoked, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return UserResponse{}, usererrors.ErrUserNotFound
	}

	fields := map[string]any{}
	if req.FirstName != "" {
		fields["first_name"] = req.FirstName
	}
	if req.LastName != "" {
		fields["last_name"] = req.LastName
	}
	if req.PhoneNumber != "" {
		fields["phone_number"] = req.PhoneNumber
	}
	if req.OfficeLocation != "" {
		fields["office_location"] = req.OfficeLocation
	}

	if len(fields) > 0 {
		if err := s.repo.UpdateFields(ctx, uid, fields); err != nil {
			s.logger.Error("update user failed", zap.String("user_id", id), zap.Error(err))
			return UserResponse{}, mapRepositoryError(err)
		}
	}

	u, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) UpdateAvatar(ctx context.Context, id, avatar string) (UserResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return UserResponse{}, usererrors.ErrUserNotFound
	}

	if err := s.repo.UpdateFields(ctx, uid, map[string]any{"avatar": avatar}); err != nil {
		s.logger.Error("update avatar failed", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	u, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return UserResponse{}, usererrors.ErrUserNotFound
	}

	u, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) List(ctx context.Context, page, limit int, search string) ([]UserResponse, int64, error) {
	offset := (page - 1) * limit
	users, total, err := s.repo.List(ctx, search, offset, limit)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = mapToResponse(u)
	}
	return out, total, nil
}

func mapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:             u.ID.String(),
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		StaffID:        u.StaffID,
		PhoneNumber:    u.PhoneNumber,
		OfficeLocation: u.OfficeLocation,
		Avatar:         u.Avatar,
		Role:           u.Role,
		AccountStatus:  u.AccountStatus,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
	if u.LastLogin != nil {
		resp.LastLogin = u.LastLogin.Format(time.RFC3339)
	}
	return resp
}
