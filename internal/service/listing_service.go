package service

import (
	"context"
	"fmt"

	"github.com/postloom/postloom/internal/repository"
	"github.com/postloom/postloom/internal/transfer"
)

const defaultPageSize = 10

// ListingService produces the filtered, paginated post views. It never
// mutates a post.
type ListingService interface {
	List(ctx context.Context, userID int64, f *transfer.PostListFilter) (*transfer.PostList, error)
}

type listingService struct {
	pr repository.PostRepository
}

func NewListingService(pr repository.PostRepository) ListingService {
	return &listingService{pr: pr}
}

func (s *listingService) List(ctx context.Context, userID int64, f *transfer.PostListFilter) (*transfer.PostList, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultPageSize
	}

	posts, total, err := s.pr.List(ctx, userID, f)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	if posts == nil {
		posts = []*transfer.PostWithIntegration{}
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + f.Limit - 1) / f.Limit
	}

	return &transfer.PostList{
		Posts:      posts,
		Total:      total,
		Page:       f.Page,
		TotalPages: totalPages,
	}, nil
}
