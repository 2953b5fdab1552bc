package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"charterflow-be/internal/dto"
	"charterflow-be/internal/entity"
	"charterflow-be/internal/pkg/apperror"
	"charterflow-be/internal/pkg/storage"
	"charterflow-be/internal/repository/specification"
	"charterflow-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const maxAvatarSize = 2 * 1024 * 1024

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
	UploadAvatar(ctx context.Context, userId uuid.UUID, file *multipart.FileHeader) (*dto.UserProfileResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	storage    storage.Storage
	baseURL    string
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, store storage.Storage, baseURL string) IUserService {
	return &userService{
		uowFactory: uowFactory,
		storage:    store,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (s *userService) findActiveUser(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx,
		specification.ByID{ID: userId},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFound("User with ID %s not found", userId)
	}
	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.findActiveUser(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	return toUserProfileResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.findActiveUser(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.Skills != nil {
		user.Skills = req.Skills
	}
	if req.Experience != nil {
		user.Experience = req.Experience
	}
	if req.Assets != nil {
		user.Assets = req.Assets
	}
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	return toUserProfileResponse(user), nil
}

func (s *userService) UploadAvatar(ctx context.Context, userId uuid.UUID, file *multipart.FileHeader) (*dto.UserProfileResponse, error) {
	if file.Size > maxAvatarSize {
		return nil, apperror.NewBadRequest("Avatar must not exceed 2 MiB")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := s.findActiveUser(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	storedName, err := s.storage.Save(ctx, file.Filename, src)
	if err != nil {
		return nil, err
	}

	avatarURL := fmt.Sprintf("%s/uploads/%s", s.baseURL, storedName)
	user.Avatar = &avatarURL
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	return toUserProfileResponse(user), nil
}

func toUserProfileResponse(u *entity.User) *dto.UserProfileResponse {
	return &dto.UserProfileResponse{
		Id:              u.Id,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Avatar:          u.Avatar,
		Bio:             u.Bio,
		Skills:          u.Skills,
		Experience:      u.Experience,
		Assets:          u.Assets,
		IsEmailVerified: u.IsEmailVerified,
		LastLoginAt:     u.LastLoginAt,
		CreatedAt:       u.CreatedAt,
	}
}
