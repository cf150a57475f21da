package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/bookarc/internal/client/client"
	"github.com/dmitrijs2005/bookarc/internal/client/models"
	"github.com/dmitrijs2005/bookarc/internal/logging"
)

const (
	customListName = "Custom"
	movedMessage   = "Book moved successfully"
)

// Move steps reported by MoveError.
const (
	MoveStepRemove = "remove"
	MoveStepAdd    = "add"
)

// ListService manages reading-list membership. It shares the request
// primitive with the API client and keeps no state of its own.
type ListService interface {
	GetUserLists(ctx context.Context) (*models.UserLists, error)
	GetListByID(ctx context.Context, listID int64) (*models.UserList, error)
	AddBookToList(ctx context.Context, listID, bookID int64) (*models.AddBookResponse, error)
	RemoveBookFromList(ctx context.Context, listID, bookID int64) (*models.MessageResponse, error)
	GetBookLists(ctx context.Context, bookID int64) (*models.UserLists, error)
	CreateCustomList(ctx context.Context, title string, visibility models.Visibility) (*models.UserListMutation, error)
	UpdateList(ctx context.Context, listID int64, update models.UserListUpdate) (*models.UserListMutation, error)
	DeleteList(ctx context.Context, listID int64) (*models.MessageResponse, error)
	MoveBookBetweenLists(ctx context.Context, bookID, fromListID, toListID int64) (*models.MessageResponse, error)
}

// MoveError reports which step of a move failed. When Step is "add" the
// book has already left the source list; retrying AddBookToList with
// ToListID and BookID completes the move.
type MoveError struct {
	Step       string
	BookID     int64
	FromListID int64
	ToListID   int64
	Err        error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move book %d from list %d to list %d: %s step: %v", e.BookID, e.FromListID, e.ToListID, e.Step, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

type listService struct {
	req client.Requester
	log logging.Logger
}

func NewListService(req client.Requester, log logging.Logger) ListService {
	if log == nil {
		log = logging.Nop()
	}
	return &listService{req: req, log: log.With("component", "lists")}
}

func (s *listService) GetUserLists(ctx context.Context) (*models.UserLists, error) {
	var out models.UserLists
	if err := s.req.Do(ctx, client.Request{Path: "/lists"}, &out); err != nil {
		return nil, err
	}
	if out.Lists == nil {
		out.Lists = []models.UserList{}
	}
	return &out, nil
}

func (s *listService) GetListByID(ctx context.Context, listID int64) (*models.UserList, error) {
	var out models.UserListResponse
	if err := s.req.Do(ctx, client.Request{Path: listPath(listID)}, &out); err != nil {
		return nil, err
	}
	return &out.List, nil
}

func (s *listService) AddBookToList(ctx context.Context, listID, bookID int64) (*models.AddBookResponse, error) {
	var out models.AddBookResponse
	err := s.req.Do(ctx, client.Request{
		Method: http.MethodPost,
		Path:   listPath(listID) + "/books",
		Body:   map[string]int64{"book_id": bookID},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *listService) RemoveBookFromList(ctx context.Context, listID, bookID int64) (*models.MessageResponse, error) {
	var out models.MessageResponse
	err := s.req.Do(ctx, client.Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("%s/books/%d", listPath(listID), bookID),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *listService) GetBookLists(ctx context.Context, bookID int64) (*models.UserLists, error) {
	var out models.UserLists
	if err := s.req.Do(ctx, client.Request{Path: fmt.Sprintf("/books/%d/lists", bookID)}, &out); err != nil {
		return nil, err
	}
	if out.Lists == nil {
		out.Lists = []models.UserList{}
	}
	return &out, nil
}

// CreateCustomList creates a titled list. An empty visibility means
// private.
func (s *listService) CreateCustomList(ctx context.Context, title string, visibility models.Visibility) (*models.UserListMutation, error) {
	if visibility == "" {
		visibility = models.VisibilityPrivate
	}
	var out models.UserListMutation
	err := s.req.Do(ctx, client.Request{
		Method: http.MethodPost,
		Path:   "/lists",
		Body:   models.CustomListCreate{Name: customListName, Title: title, Visibility: visibility},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *listService) UpdateList(ctx context.Context, listID int64, update models.UserListUpdate) (*models.UserListMutation, error) {
	var out models.UserListMutation
	err := s.req.Do(ctx, client.Request{
		Method: http.MethodPut,
		Path:   listPath(listID),
		Body:   update,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *listService) DeleteList(ctx context.Context, listID int64) (*models.MessageResponse, error) {
	var out models.MessageResponse
	if err := s.req.Do(ctx, client.Request{Method: http.MethodDelete, Path: listPath(listID)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MoveBookBetweenLists removes the book from one list and adds it to
// another. The two calls are not atomic.
func (s *listService) MoveBookBetweenLists(ctx context.Context, bookID, fromListID, toListID int64) (*models.MessageResponse, error) {
	moveErr := func(step string, err error) error {
		return &MoveError{Step: step, BookID: bookID, FromListID: fromListID, ToListID: toListID, Err: err}
	}

	if _, err := s.RemoveBookFromList(ctx, fromListID, bookID); err != nil {
		return nil, moveErr(MoveStepRemove, err)
	}

	if _, err := s.AddBookToList(ctx, toListID, bookID); err != nil {
		s.log.Warn(ctx, "book removed but not re-added", "book_id", bookID, "from", fromListID, "to", toListID, "error", err)
		return nil, moveErr(MoveStepAdd, err)
	}

	return &models.MessageResponse{Message: movedMessage}, nil
}

func listPath(id int64) string {
	return fmt.Sprintf("/lists/%d", id)
}
