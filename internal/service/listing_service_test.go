package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/postloom/postloom/internal/models"
	"github.com/postloom/postloom/internal/transfer"
)

func TestListingService_List_PaginationMath(t *testing.T) {
	pr := new(MockPostRepository)
	s := NewListingService(pr)
	ctx := context.Background()

	posts := []*transfer.PostWithIntegration{
		{Post: models.Post{ID: 1, UserID: 7, Content: "a"}},
		{Post: models.Post{ID: 2, UserID: 7, Content: "b"}},
	}
	pr.On("List", mock.Anything, int64(7), mock.AnythingOfType("*transfer.PostListFilter")).Return(posts, 25, nil)

	result, err := s.List(ctx, 7, &transfer.PostListFilter{Page: 2, Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, 25, result.Total)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 3, result.TotalPages)
	assert.Len(t, result.Posts, 2)
}

func TestListingService_List_EmptyResult(t *testing.T) {
	pr := new(MockPostRepository)
	s := NewListingService(pr)
	ctx := context.Background()

	pr.On("List", mock.Anything, int64(7), mock.AnythingOfType("*transfer.PostListFilter")).Return(nil, 0, nil)

	result, err := s.List(ctx, 7, &transfer.PostListFilter{})

	assert.NoError(t, err)
	assert.NotNil(t, result.Posts)
	assert.Empty(t, result.Posts)
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 0, result.TotalPages)
	assert.Equal(t, 1, result.Page)
}

func TestListingService_List_NormalizesPageAndLimit(t *testing.T) {
	pr := new(MockPostRepository)
	s := NewListingService(pr)
	ctx := context.Background()

	pr.On("List", mock.Anything, int64(7), mock.AnythingOfType("*transfer.PostListFilter")).Return(nil, 11, nil)

	result, err := s.List(ctx, 7, &transfer.PostListFilter{Page: -3, Limit: 0})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Page)

	f := pr.Calls[0].Arguments.Get(2).(*transfer.PostListFilter)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, defaultPageSize, f.Limit)
	assert.Equal(t, 2, result.TotalPages)
}

func TestListingService_List_ExactPageBoundary(t *testing.T) {
	pr := new(MockPostRepository)
	s := NewListingService(pr)
	ctx := context.Background()

	pr.On("List", mock.Anything, int64(7), mock.AnythingOfType("*transfer.PostListFilter")).Return(nil, 20, nil)

	result, err := s.List(ctx, 7, &transfer.PostListFilter{Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, 2, result.TotalPages)
}
