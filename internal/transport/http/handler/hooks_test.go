package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/launchdeck/launchdeck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockNotifierSvc struct{ mock.Mock }

func (m *mockNotifierSvc) HandleEvent(ctx context.Context, evt domain.Event) error {
	return m.Called(ctx, evt).Error(0)
}

func TestCommentCreated_InvalidBody(t *testing.T) {
	svc := &mockNotifierSvc{}
	h := NewHookHandler(svc)

	r := httptest.NewRequest(http.MethodPost, "/v1/hooks/comments", bytes.NewBufferString("not-json"))
	rr := httptest.NewRecorder()
	h.CommentCreated(rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "HandleEvent", mock.Anything, mock.Anything)
}

func TestCommentCreated_MissingProductID(t *testing.T) {
	svc := &mockNotifierSvc{}
	h := NewHookHandler(svc)

	body, _ := json.Marshal(domain.CommentCreatedRequest{CommentID: "c1", UserID: "u2"})
	r := httptest.NewRequest(http.MethodPost, "/v1/hooks/comments", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.CommentCreated(rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "HandleEvent", mock.Anything, mock.Anything)
}

func TestCommentCreated_HappyPath(t *testing.T) {
	svc := &mockNotifierSvc{}
	svc.On("HandleEvent", mock.Anything, mock.MatchedBy(func(evt domain.Event) bool {
		return evt.Kind == domain.EventComment &&
			evt.ProductID == "p1" &&
			evt.ActorID == "u2" &&
			evt.Actor.DisplayName == "Alice"
	})).Return(nil).Once()
	h := NewHookHandler(svc)

	body, _ := json.Marshal(domain.CommentCreatedRequest{
		ProductID: "p1",
		CommentID: "c1",
		UserID:    "u2",
		Body:      "nice launch",
		UserInfo:  domain.ActorInfo{DisplayName: "Alice"},
	})
	r := httptest.NewRequest(http.MethodPost, "/v1/hooks/comments", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.CommentCreated(rr, r)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	svc.AssertExpectations(t)
}

func TestCommentCreated_ServiceError(t *testing.T) {
	svc := &mockNotifierSvc{}
	svc.On("HandleEvent", mock.Anything, mock.Anything).Return(errors.New("dynamo unavailable"))
	h := NewHookHandler(svc)

	body, _ := json.Marshal(domain.CommentCreatedRequest{ProductID: "p1", CommentID: "c1", UserID: "u2"})
	r := httptest.NewRequest(http.MethodPost, "/v1/hooks/comments", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.CommentCreated(rr, r)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestUpvoteCreated_MissingUserID(t *testing.T) {
	svc := &mockNotifierSvc{}
	h := NewHookHandler(svc)

	body, _ := json.Marshal(domain.UpvoteCreatedRequest{ProductID: "p1"})
	r := httptest.NewRequest(http.MethodPost, "/v1/hooks/upvotes", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.UpvoteCreated(rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "HandleEvent", mock.Anything, mock.Anything)
}

func TestUpvoteCreated_HappyPath(t *testing.T) {
	svc := &mockNotifierSvc{}
	svc.On("HandleEvent", mock.Anything, mock.MatchedBy(func(evt domain.Event) bool {
		return evt.Kind == domain.EventUpvote && evt.ProductID == "p1" && evt.ActorID == "u2"
	})).Return(nil).Once()
	h := NewHookHandler(svc)

	body, _ := json.Marshal(domain.UpvoteCreatedRequest{ProductID: "p1", UserID: "u2"})
	r := httptest.NewRequest(http.MethodPost, "/v1/hooks/upvotes", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.UpvoteCreated(rr, r)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	svc.AssertExpectations(t)
}
