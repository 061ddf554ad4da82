package service

import (
	"context"

	"github.com/KamrujjamanRony/sura-tools-serverside/internal/domain"
	"github.com/KamrujjamanRony/sura-tools-serverside/internal/dto"
	"github.com/KamrujjamanRony/sura-tools-serverside/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ToolServiceImpl struct {
	repo repository.ToolRepository
}

func CreateToolService(repo repository.ToolRepository) ToolService {
	return &ToolServiceImpl{repo: repo}
}

func (s *ToolServiceImpl) AddTool(ctx context.Context, data bson.M) (*mongo.InsertOneResult, error) {
	return s.repo.AddTool(ctx, data)
}

func (s *ToolServiceImpl) GetTools(ctx context.Context) ([]bson.M, error) {
	return s.repo.GetTools(ctx)
}

func (s *ToolServiceImpl) GetToolByID(ctx context.Context, id string) (bson.M, error) {
	return s.repo.GetToolByID(ctx, id)
}

func (s *ToolServiceImpl) UpdateTool(ctx context.Context, id string, data dto.ToolRequest) (*mongo.UpdateResult, error) {
	return s.repo.UpdateTool(ctx, id, domain.Tool{
		Name:              data.Name,
		Image:             data.Image,
		Description:       data.Description,
		Price:             data.Price,
		MinQuantity:       data.MinQuantity,
		AvailableQuantity: data.AvailableQuantity,
	})
}

func (s *ToolServiceImpl) DeleteTool(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	return s.repo.DeleteTool(ctx, id)
}
