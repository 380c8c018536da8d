package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/expensex/expensex-api/models"
	"github.com/expensex/expensex-api/utils"
)

var (
	ErrMissingFields = errors.New("email and full name are required")
	ErrEmailTaken    = errors.New("user with this email already exists")
	ErrEmailInUse    = errors.New("email already in use")
	ErrMissingID     = errors.New("user id is required")
	ErrInvalidID     = errors.New("invalid user id")
	ErrUserNotFound  = errors.New("user not found")
)

// DefaultUserPassword is stored when a user is created without a password.
const DefaultUserPassword = "defaultPassword123"

const timestampLayout = "2006-01-02T15:04:05.000Z"

type UserRepository interface {
	List(ctx context.Context) ([]models.DirectoryUser, error)
	FindByID(ctx context.Context, id int64) (*models.DirectoryUser, error)
	FindByEmail(ctx context.Context, email string) (*models.DirectoryUser, error)
	Create(ctx context.Context, u *models.DirectoryUser) error
	Update(ctx context.Context, u *models.DirectoryUser) error
	Delete(ctx context.Context, id int64) error
}

// DirectoryService implements list/create/update/delete over directory users
// and translates rows into their wire form.
type DirectoryService struct {
	repo  UserRepository
	roles RoleConfig
	clock func() time.Time
}

func NewDirectoryService(repo UserRepository, roles RoleConfig) *DirectoryService {
	return &DirectoryService{
		repo:  repo,
		roles: roles,
		clock: time.Now,
	}
}

func (s *DirectoryService) now() time.Time {
	return s.clock().UTC().Truncate(time.Millisecond)
}

// ToResponse maps a stored user to its wire representation.
func (s *DirectoryService) ToResponse(u models.DirectoryUser) models.UserResponse {
	return models.UserResponse{
		ID:           strconv.FormatInt(u.UserID, 10),
		Email:        u.EmailAddress,
		FullName:     u.UserName,
		MobileNo:     u.MobileNo,
		ProfileImage: u.ProfileImage,
		CreatedAt:    u.Created.UTC().Format(timestampLayout),
		UpdatedAt:    u.Modified.UTC().Format(timestampLayout),
		Role:         ClassifyRole(u.EmailAddress, u.UserID, s.roles),
	}
}

func (s *DirectoryService) List(ctx context.Context) ([]models.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, s.ToResponse(u))
	}
	return out, nil
}

func (s *DirectoryService) Create(ctx context.Context, req models.CreateUserRequest) (models.UserResponse, error) {
	if req.Email == "" || req.FullName == "" {
		return models.UserResponse{}, ErrMissingFields
	}

	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return models.UserResponse{}, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return models.UserResponse{}, err
	}

	password := req.Password
	if password == "" {
		password = DefaultUserPassword
	}

	ts := s.now()
	u := &models.DirectoryUser{
		UserName:     req.FullName,
		EmailAddress: req.Email,
		Password:     password,
		MobileNo:     req.MobileNo,
		Created:      ts,
		Modified:     ts,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return models.UserResponse{}, err
	}

	utils.LogDirectoryAction("created", strconv.FormatInt(u.UserID, 10))
	return s.ToResponse(*u), nil
}

// Update changes only the supplied fields. Empty email and full name are
// treated as absent; a present mobile number is always written.
func (s *DirectoryService) Update(ctx context.Context, req models.UpdateUserRequest) (models.UserResponse, error) {
	id, err := ParseUserID(req.ID)
	if err != nil {
		return models.UserResponse{}, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return models.UserResponse{}, err
	}

	if req.Email != nil && *req.Email != "" && *req.Email != existing.EmailAddress {
		if _, err := s.repo.FindByEmail(ctx, *req.Email); err == nil {
			return models.UserResponse{}, ErrEmailInUse
		} else if !errors.Is(err, ErrUserNotFound) {
			return models.UserResponse{}, err
		}
	}

	updated := *existing
	if req.Email != nil && *req.Email != "" {
		updated.EmailAddress = *req.Email
	}
	if req.FullName != nil && *req.FullName != "" {
		updated.UserName = *req.FullName
	}
	if req.MobileNo != nil {
		updated.MobileNo = *req.MobileNo
	}
	updated.Modified = s.now()

	if err := s.repo.Update(ctx, &updated); err != nil {
		return models.UserResponse{}, err
	}

	utils.LogDirectoryAction("updated", strconv.FormatInt(id, 10))
	return s.ToResponse(updated), nil
}

func (s *DirectoryService) Delete(ctx context.Context, rawID string) error {
	id, err := ParseUserID(rawID)
	if err != nil {
		return err
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	utils.LogDirectoryAction("deleted", strconv.FormatInt(id, 10))
	return nil
}

// ParseUserID accepts an id sent as a JSON number or a decimal string.
// Absent and empty ids, and a numeric zero, are missing. Anything that is not
// an integer is invalid, including a blank string.
func ParseUserID(raw any) (int64, error) {
	switch v := raw.(type) {
	case nil:
		return 0, ErrMissingID
	case string:
		if v == "" {
			return 0, ErrMissingID
		}
		id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, ErrInvalidID
		}
		return id, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, ErrInvalidID
		}
		return ParseUserID(f)
	case float64:
		if v == 0 {
			return 0, ErrMissingID
		}
		if v != math.Trunc(v) || math.Abs(v) > math.MaxInt64/2 {
			return 0, ErrInvalidID
		}
		return int64(v), nil
	case int:
		if v == 0 {
			return 0, ErrMissingID
		}
		return int64(v), nil
	case int64:
		if v == 0 {
			return 0, ErrMissingID
		}
		return v, nil
	case bool:
		if !v {
			return 0, ErrMissingID
		}
		return 0, ErrInvalidID
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidID, raw)
	}
}
