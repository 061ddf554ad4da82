package service

import (
	"context"
	"time"

	"github.com/KamrujjamanRony/sura-tools-serverside/config"
	"github.com/KamrujjamanRony/sura-tools-serverside/internal/domain"
	"github.com/KamrujjamanRony/sura-tools-serverside/internal/dto"
	"github.com/KamrujjamanRony/sura-tools-serverside/internal/repository"
	"github.com/KamrujjamanRony/sura-tools-serverside/pkg/utils"
	"go.mongodb.org/mongo-driver/bson"
)

// The two user-write paths mint tokens with different lifetimes.
const (
	profileTokenTTL = 101555 * time.Hour
	upsertTokenTTL  = 10 * 24 * time.Hour
)

type UserServiceImpl struct {
	repo   repository.UserRepository
	config config.Config
}

func CreateUserService(repo repository.UserRepository, config config.Config) UserService {
	return &UserServiceImpl{repo: repo, config: config}
}

func (s *UserServiceImpl) GetUsers(ctx context.Context) ([]bson.M, error) {
	return s.repo.GetUsers(ctx)
}

func (s *UserServiceImpl) UpdateUserProfile(ctx context.Context, email string, data dto.UserProfileRequest) (resp dto.UserTokenResponse, err error) {
	result, err := s.repo.UpdateUserProfile(ctx, email, domain.User{
		Username:  data.Username,
		Address:   data.Address,
		Phone:     data.Phone,
		Education: data.Education,
		Linkedin:  data.Linkedin,
	})
	if err != nil {
		return
	}

	token, err := utils.CreateToken(email, s.config.JWTSecret, profileTokenTTL)
	if err != nil {
		return
	}

	resp.Result = result
	resp.Token = token

	return
}

// UpsertUser applies the caller-supplied document verbatim, including any
// role field. The caller's own privileges are not checked.
func (s *UserServiceImpl) UpsertUser(ctx context.Context, email string, data bson.M) (resp dto.UserTokenResponse, err error) {
	result, err := s.repo.UpsertUser(ctx, email, data)
	if err != nil {
		return
	}

	token, err := utils.CreateToken(email, s.config.JWTSecret, upsertTokenTTL)
	if err != nil {
		return
	}

	resp.Result = result
	resp.Token = token

	return
}

func (s *UserServiceImpl) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return false, err
	}

	if user == nil {
		return false, nil
	}

	role, _ := user["role"].(string)

	return role == "admin", nil
}
