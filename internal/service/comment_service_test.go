package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "blogapi/internal/errors"
	"blogapi/internal/model"
	"blogapi/internal/repository"
)

func TestCommentService_AddComment(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		setupMock     func(*MockCommentRepository, *MockPostRepository)
		expectedError error
	}{
		{
			name:    "comment on existing post",
			content: "This is a new comment.",
			setupMock: func(mc *MockCommentRepository, mp *MockPostRepository) {
				mp.On("FindByID", mock.Anything, uint(1)).Return(&model.Post{ID: 1, AuthorID: 9}, nil)
				mc.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Comment) bool {
					return c.PostID == 1 && c.AuthorID == 2
				})).Return(nil)
			},
		},
		{
			name:    "nonexistent post",
			content: "hello",
			setupMock: func(mc *MockCommentRepository, mp *MockPostRepository) {
				mp.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrPostNotFound,
		},
		{
			name:    "post deleted before insert",
			content: "hello",
			setupMock: func(mc *MockCommentRepository, mp *MockPostRepository) {
				mp.On("FindByID", mock.Anything, uint(1)).Return(&model.Post{ID: 1}, nil)
				mc.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(gorm.ErrForeignKeyViolated)
			},
			expectedError: apperrors.ErrPostNotFound,
		},
		{
			name:          "empty content",
			content:       " ",
			setupMock:     func(mc *MockCommentRepository, mp *MockPostRepository) {},
			expectedError: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockComments := new(MockCommentRepository)
			mockPosts := new(MockPostRepository)
			tt.setupMock(mockComments, mockPosts)

			service := NewCommentService(mockComments, mockPosts)
			comment, err := service.AddComment(context.Background(), 2, 1, tt.content)

			if tt.expectedError != nil {
				assert.True(t, errors.Is(err, tt.expectedError), "got %v", err)
				assert.Nil(t, comment)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.content, comment.Content)
			}
			mockComments.AssertExpectations(t)
			mockPosts.AssertExpectations(t)
		})
	}
}

func TestCommentService_ListComments(t *testing.T) {
	opts := repository.ListOptions{Limit: 20}

	mockComments := new(MockCommentRepository)
	mockPosts := new(MockPostRepository)
	mockPosts.On("FindByID", mock.Anything, uint(1)).Return(&model.Post{ID: 1}, nil)
	mockPosts.On("FindByID", mock.Anything, uint(2)).Return(nil, gorm.ErrRecordNotFound)
	mockComments.On("ListByPost", mock.Anything, uint(1), opts).Return([]model.Comment{{ID: 1, PostID: 1, Content: "hi"}}, nil)

	service := NewCommentService(mockComments, mockPosts)

	comments, err := service.ListComments(context.Background(), 1, opts)
	require.NoError(t, err)
	assert.Len(t, comments, 1)

	_, err = service.ListComments(context.Background(), 2, opts)
	assert.Equal(t, apperrors.ErrPostNotFound, err)
}

func TestCommentService_UpdateAndDeleteOwnership(t *testing.T) {
	existing := func() *model.Comment {
		return &model.Comment{ID: 4, PostID: 1, AuthorID: 2, Content: "old"}
	}

	tests := []struct {
		name          string
		actorID       uint
		postID        uint
		found         *model.Comment
		findErr       error
		expectedError error
	}{
		{name: "author", actorID: 2, postID: 1, found: existing()},
		{name: "not the author", actorID: 3, postID: 1, found: existing(), expectedError: apperrors.ErrForbidden},
		{name: "wrong post", actorID: 2, postID: 7, found: existing(), expectedError: apperrors.ErrCommentPostMismatch},
		{name: "missing comment", actorID: 2, postID: 1, findErr: gorm.ErrRecordNotFound, expectedError: apperrors.ErrCommentNotFound},
	}

	for _, tt := range tests {
		t.Run("update/"+tt.name, func(t *testing.T) {
			mockComments := new(MockCommentRepository)
			if tt.found != nil {
				mockComments.On("FindByID", mock.Anything, uint(4)).Return(tt.found, nil)
			} else {
				mockComments.On("FindByID", mock.Anything, uint(4)).Return(nil, tt.findErr)
			}
			if tt.expectedError == nil {
				mockComments.On("Update", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)
			}

			service := NewCommentService(mockComments, new(MockPostRepository))
			comment, err := service.UpdateComment(context.Background(), tt.actorID, tt.postID, 4, "Updated comment content.")

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Updated comment content.", comment.Content)
			}
			mockComments.AssertExpectations(t)
		})

		t.Run("delete/"+tt.name, func(t *testing.T) {
			mockComments := new(MockCommentRepository)
			if tt.found != nil {
				mockComments.On("FindByID", mock.Anything, uint(4)).Return(existing(), nil)
			} else {
				mockComments.On("FindByID", mock.Anything, uint(4)).Return(nil, tt.findErr)
			}
			if tt.expectedError == nil {
				mockComments.On("Delete", mock.Anything, uint(4)).Return(nil)
			}

			service := NewCommentService(mockComments, new(MockPostRepository))
			err := service.DeleteComment(context.Background(), tt.actorID, tt.postID, 4)

			assert.Equal(t, tt.expectedError, err)
			mockComments.AssertExpectations(t)
		})
	}
}
