package services // Use-case layer; orchestrates business rules, not HTTP/DB details.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/apperrors"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/core"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/repositories"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/utils"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/utils/redislog"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// UserService lists all use-cases that handlers can call.
type UserService interface {
	// Auth & profile:
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest, jwtSecret string, exp time.Duration) (*models.AuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.User, error) // cache-aware; used by /me
	UpdateProfile(ctx context.Context, s *models.Session, req models.UpdateProfileRequest) (*models.User, error)

	// Admin listing:
	ListUsers(ctx context.Context, s *models.Session, q models.ListUsersQuery) (*models.UserListResponse, error)
}

// WelcomeSender is the part of the email service Register needs.
type WelcomeSender interface {
	SendWelcome(ctx context.Context, req models.SendEmailRequest) (string, error)
}

// userService depends on repo + Redis + Redis logger; rdb and welcome may be nil.
type userService struct {
	repo    repositories.UserRepository
	rdb     *redis.Client
	log     *redislog.Logger
	welcome WelcomeSender
}

// NewUserService constructs a service with all dependencies injected.
func NewUserService(repo repositories.UserRepository, rdb *redis.Client, rlog *redislog.Logger, welcome WelcomeSender) UserService {
	return &userService{repo: repo, rdb: rdb, log: rlog, welcome: welcome}
}

// userCacheTTL is how long a cached user stays in Redis before expiring.
const userCacheTTL = 10 * time.Minute

func cacheKeyUser(id string) string {
	return fmt.Sprintf("user:%s", id)
}

// ---------------- Auth & profile ----------------

// Register creates a new user (after checking email uniqueness), hashes password, warms
// the cache and sends a welcome email. A failed welcome email does not fail registration.
func (s *userService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	email := core.NormalizeEmail(req.Email)
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		s.log.Warn("register email exists", map[string]string{"email": email})
		return nil, apperrors.NewValidationError("email", apperrors.ErrEmailTaken.Error())
	} else if !repositories.IsNotFound(err) {
		s.log.Error("register lookup error", map[string]string{"email": email, "err": err.Error()})
		return nil, apperrors.Upstream("register", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("register hash error", map[string]string{"email": email, "err": err.Error()})
		return nil, err
	}

	name := core.NormalizeName(req.Name)
	u := &models.User{
		Name:     &name,
		Email:    email,
		Password: hash,
		Role:     models.RoleUser,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		s.log.Error("register db create error", map[string]string{"email": email, "err": err.Error()})
		return nil, apperrors.Upstream("register", err)
	}

	s.cacheSet(ctx, u) // first /me is a HIT

	if s.welcome != nil {
		if _, err := s.welcome.SendWelcome(ctx, models.SendEmailRequest{To: u.Email, Name: name}); err != nil {
			s.log.Warn("register welcome email failed", map[string]string{"user_id": u.ID, "err": err.Error()})
		}
	}

	s.log.Info("register success", map[string]string{"user_id": u.ID, "email": u.Email})
	return u, nil
}

// Login validates credentials and issues a signed JWT.
func (s *userService) Login(ctx context.Context, req models.LoginRequest, jwtSecret string, exp time.Duration) (*models.AuthResponse, error) {
	email := core.NormalizeEmail(req.Email)
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if !repositories.IsNotFound(err) {
			s.log.Error("login lookup error", map[string]string{"email": email, "err": err.Error()})
			return nil, apperrors.Upstream("login", err)
		}
		s.log.Warn("login user not found", map[string]string{"email": email})
		return nil, apperrors.ErrInvalidLogin
	}
	if !utils.CheckPassword(u.Password, req.Password) {
		s.log.Warn("login wrong password", map[string]string{"email": email})
		return nil, apperrors.ErrInvalidLogin
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  u.ID,
		"eml":  u.Email,
		"role": string(u.Role),
		"exp":  now.Add(exp).Unix(),
		"iat":  now.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	if err != nil {
		s.log.Error("login token sign error", map[string]string{"email": u.Email, "err": err.Error()})
		return nil, err
	}

	s.log.Info("login success", map[string]string{"user_id": u.ID, "email": u.Email})
	return &models.AuthResponse{Token: signed, User: u}, nil
}

// GetByID returns a user, preferring Redis cache and falling back to DB.
func (s *userService) GetByID(ctx context.Context, id string) (*models.User, error) {
	if s.rdb != nil {
		key := cacheKeyUser(id)
		val, err := s.rdb.Get(ctx, key).Result()
		switch {
		case err == nil:
			var u models.User
			if json.Unmarshal([]byte(val), &u) == nil {
				s.log.Info("cache HIT", map[string]string{"key": key})
				return &u, nil
			}
			s.log.Warn("cache unmarshal failed", map[string]string{"key": key})
		case errors.Is(err, redis.Nil):
			s.log.Info("cache MISS", map[string]string{"key": key})
		default:
			s.log.Error("cache GET error", map[string]string{"key": key, "err": err.Error()})
		}
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		s.log.Error("db fetch error in GetByID", map[string]string{"user_id": id, "err": err.Error()})
		return nil, apperrors.Upstream("get user", err)
	}
	s.cacheSet(ctx, u)
	return u, nil
}

// UpdateProfile changes the caller's own name and/or email.
func (s *userService) UpdateProfile(ctx context.Context, sess *models.Session, req models.UpdateProfileRequest) (*models.User, error) {
	if sess == nil {
		return nil, apperrors.ErrUnauthorized
	}
	u, err := s.repo.FindByID(ctx, sess.UserID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Upstream("update profile", err)
	}

	if req.Name != nil {
		name := core.NormalizeName(*req.Name)
		u.Name = &name
	}
	if req.Email != nil {
		email := core.NormalizeEmail(*req.Email)
		if email != u.Email {
			if _, err := s.repo.FindByEmail(ctx, email); err == nil {
				s.log.Warn("update profile email exists", map[string]string{"email": email})
				return nil, apperrors.NewValidationError("email", apperrors.ErrEmailTaken.Error())
			} else if !repositories.IsNotFound(err) {
				return nil, apperrors.Upstream("update profile", err)
			}
			u.Email = email
		}
	}

	if err := s.repo.Update(ctx, u); err != nil {
		s.log.Error("update profile db error", map[string]string{"user_id": u.ID, "err": err.Error()})
		return nil, apperrors.Upstream("update profile", err)
	}

	// Refresh cache: delete the old value and set new.
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, cacheKeyUser(u.ID)).Err()
	}
	s.cacheSet(ctx, u)
	s.log.Info("update profile success", map[string]string{"user_id": u.ID})
	return u, nil
}

// ---------------- Admin listing ----------------

// ListUsers returns one page of users for an admin caller. Every query parameter is
// sanitized here; nothing raw reaches the repository.
func (s *userService) ListUsers(ctx context.Context, sess *models.Session, q models.ListUsersQuery) (*models.UserListResponse, error) {
	if !sess.IsAdmin() {
		return nil, apperrors.ErrUnauthorized
	}

	page := q.Page
	if page < 1 {
		page = core.DefaultPage
	}
	limit := q.Limit
	switch {
	case limit == 0:
		limit = core.DefaultLimit
	case limit < 1:
		limit = 1
	case limit > core.MaxLimit:
		limit = core.MaxLimit
	}
	// keeps (page-1)*limit from overflowing into a negative offset
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}
	sortBy, ok := core.ParseSortColumn(q.SortBy)
	if !ok {
		sortBy = core.DefaultSortBy
	}
	order, ok := core.ParseSortOrder(q.SortOrder)
	if !ok {
		order = core.DefaultSortOrder
	}

	users, total, err := s.repo.List(ctx, repositories.UserFilter{
		Search: q.Search,
		SortBy: sortBy,
		Order:  order,
		Offset: core.Offset(page, limit),
		Limit:  limit,
	})
	if err != nil {
		s.log.Error("ListUsers db error", map[string]string{"err": err.Error()})
		return nil, apperrors.Upstream("list users", err)
	}

	items := make([]models.UserListItem, 0, len(users))
	for _, u := range users {
		items = append(items, models.NewUserListItem(u))
	}
	s.log.Info("ListUsers success", map[string]string{"count": fmt.Sprint(len(items)), "total": fmt.Sprint(total)})
	return &models.UserListResponse{Users: items, Pagination: models.NewPaginationMeta(page, limit, total)}, nil
}

func (s *userService) cacheSet(ctx context.Context, u *models.User) {
	if s.rdb == nil {
		return
	}
	b, err := json.Marshal(u)
	if err != nil {
		return
	}
	key := cacheKeyUser(u.ID)
	if err := s.rdb.Set(ctx, key, b, userCacheTTL).Err(); err != nil {
		s.log.Error("cache SET error", map[string]string{"key": key, "err": err.Error()})
		return
	}
	s.log.Info("cache SET", map[string]string{"key": key, "ttl": userCacheTTL.String()})
}
