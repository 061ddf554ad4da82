package service

import (
	"context"

	"github.com/KamrujjamanRony/sura-tools-serverside/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewServiceImpl struct {
	repo repository.ReviewRepository
}

func CreateReviewService(repo repository.ReviewRepository) ReviewService {
	return &ReviewServiceImpl{repo: repo}
}

func (s *ReviewServiceImpl) AddReview(ctx context.Context, data bson.M) (*mongo.InsertOneResult, error) {
	return s.repo.AddReview(ctx, data)
}

func (s *ReviewServiceImpl) GetReviews(ctx context.Context) ([]bson.M, error) {
	return s.repo.GetReviews(ctx)
}
