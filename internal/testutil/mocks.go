package testutil

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/mlovre/kanbo/kanbo-backend/internal/domain"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	ByID    map[string]*domain.User
	ByEmail map[string]*domain.User
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		ByID:    make(map[string]*domain.User),
		ByEmail: make(map[string]*domain.User),
	}
}

// Create inserts a user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	m.ByID[user.ID] = user
	m.ByEmail[user.Email] = user
	return nil
}

// GetByID retrieves a user by id
func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if user, ok := m.ByID[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// GetByEmail retrieves a user by email
func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if user, ok := m.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.ByID[user.ID] = user
	m.ByEmail[user.Email] = user
}

// MockWorkspaceRepository is a mock implementation of domain.WorkspaceRepository
type MockWorkspaceRepository struct {
	Workspaces []*domain.Workspace
}

// NewMockWorkspaceRepository creates a new MockWorkspaceRepository
func NewMockWorkspaceRepository() *MockWorkspaceRepository {
	return &MockWorkspaceRepository{}
}

// Create inserts a workspace
func (m *MockWorkspaceRepository) Create(ctx context.Context, workspace *domain.Workspace) error {
	m.Workspaces = append(m.Workspaces, workspace)
	return nil
}

// ListForMember retrieves workspaces the user is a member of
func (m *MockWorkspaceRepository) ListForMember(ctx context.Context, userID string) ([]*domain.Workspace, error) {
	var out []*domain.Workspace
	for _, ws := range m.Workspaces {
		if hasMember(ws.Members, userID) {
			out = append(out, ws)
		}
	}
	return out, nil
}

// MockBoardRepository is a mock implementation of domain.BoardRepository
type MockBoardRepository struct {
	Boards []*domain.Board
}

// NewMockBoardRepository creates a new MockBoardRepository
func NewMockBoardRepository() *MockBoardRepository {
	return &MockBoardRepository{}
}

// Create inserts a board
func (m *MockBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	m.Boards = append(m.Boards, board)
	return nil
}

// GetForMember retrieves a board scoped to the given member. A missing
// board and a non-member caller both return ErrBoardNotFound.
func (m *MockBoardRepository) GetForMember(ctx context.Context, id, userID string) (*domain.Board, error) {
	for _, b := range m.Boards {
		if b.ID == id && hasMember(b.Members, userID) {
			return b, nil
		}
	}
	return nil, domain.ErrBoardNotFound
}

// ListForMember retrieves boards the user is a member of
func (m *MockBoardRepository) ListForMember(ctx context.Context, userID string) ([]*domain.Board, error) {
	var out []*domain.Board
	for _, b := range m.Boards {
		if hasMember(b.Members, userID) {
			out = append(out, b)
		}
	}
	return out, nil
}

// AddBoard adds a board to the mock repository (helper for tests)
func (m *MockBoardRepository) AddBoard(board *domain.Board) {
	m.Boards = append(m.Boards, board)
}

// MockListRepository is a mock implementation of domain.ListRepository
type MockListRepository struct {
	Lists []*domain.List
}

// NewMockListRepository creates a new MockListRepository
func NewMockListRepository() *MockListRepository {
	return &MockListRepository{}
}

// Create inserts a list
func (m *MockListRepository) Create(ctx context.Context, list *domain.List) error {
	m.Lists = append(m.Lists, list)
	return nil
}

// GetByID retrieves a list by id
func (m *MockListRepository) GetByID(ctx context.Context, id string) (*domain.List, error) {
	for _, l := range m.Lists {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, domain.ErrListNotFound
}

// ListByBoard retrieves a board's lists in ascending position order
func (m *MockListRepository) ListByBoard(ctx context.Context, boardID string) ([]*domain.List, error) {
	var out []*domain.List
	for _, l := range m.Lists {
		if l.BoardID == boardID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

// MaxPositionInBoard returns the highest list position on a board, or nil
func (m *MockListRepository) MaxPositionInBoard(ctx context.Context, boardID string) (*float64, error) {
	var max *float64
	for _, l := range m.Lists {
		if l.BoardID == boardID && (max == nil || l.Position > *max) {
			pos := l.Position
			max = &pos
		}
	}
	return max, nil
}

// AddList adds a list to the mock repository (helper for tests)
func (m *MockListRepository) AddList(list *domain.List) {
	m.Lists = append(m.Lists, list)
}

// MockCardRepository is a mock implementation of domain.CardRepository
type MockCardRepository struct {
	Cards []*domain.Card
}

// NewMockCardRepository creates a new MockCardRepository
func NewMockCardRepository() *MockCardRepository {
	return &MockCardRepository{}
}

// Create inserts a card
func (m *MockCardRepository) Create(ctx context.Context, card *domain.Card) error {
	m.Cards = append(m.Cards, card)
	return nil
}

// GetByID retrieves a card by id
func (m *MockCardRepository) GetByID(ctx context.Context, id string) (*domain.Card, error) {
	for _, c := range m.Cards {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrCardNotFound
}

// ListByListIDs retrieves cards across lists in ascending position order
func (m *MockCardRepository) ListByListIDs(ctx context.Context, listIDs []string) ([]*domain.Card, error) {
	var out []*domain.Card
	for _, c := range m.Cards {
		for _, id := range listIDs {
			if c.ListID == id {
				out = append(out, c)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

// MaxPositionInList returns the highest card position in a list, or nil
func (m *MockCardRepository) MaxPositionInList(ctx context.Context, listID string) (*float64, error) {
	var max *float64
	for _, c := range m.Cards {
		if c.ListID == listID && (max == nil || c.Position > *max) {
			pos := c.Position
			max = &pos
		}
	}
	return max, nil
}

// Update applies a partial patch: only non-nil patch fields change
func (m *MockCardRepository) Update(ctx context.Context, id string, patch domain.CardPatch) (*domain.Card, error) {
	card, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		card.Title = *patch.Title
	}
	if patch.Description != nil {
		card.Description = patch.Description
	}
	if patch.ListID != nil {
		card.ListID = *patch.ListID
	}
	if patch.Position != nil {
		card.Position = *patch.Position
	}
	if patch.Labels != nil {
		card.Labels = *patch.Labels
	}
	if patch.Assignees != nil {
		card.Assignees = *patch.Assignees
	}
	if patch.DueDate != nil {
		card.DueDate = patch.DueDate
	}
	card.UpdatedAt = time.Now().UTC()
	return card, nil
}

// Search retrieves cards matching the filter in ascending position order
func (m *MockCardRepository) Search(ctx context.Context, filter domain.CardFilter) ([]*domain.Card, error) {
	cards, _ := m.ListByListIDs(ctx, filter.ListIDs)
	var out []*domain.Card
	for _, c := range cards {
		if filter.Text != "" && !matchesText(c, filter.Text) {
			continue
		}
		if len(filter.Labels) > 0 && !intersects(c.Labels, filter.Labels) {
			continue
		}
		if len(filter.Assignees) > 0 && !intersects(c.Assignees, filter.Assignees) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// AddCard adds a card to the mock repository (helper for tests)
func (m *MockCardRepository) AddCard(card *domain.Card) {
	m.Cards = append(m.Cards, card)
}

// MockCommentRepository is a mock implementation of domain.CommentRepository
type MockCommentRepository struct {
	Comments []*domain.Comment
}

// NewMockCommentRepository creates a new MockCommentRepository
func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{}
}

// Create inserts a comment
func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	m.Comments = append(m.Comments, comment)
	return nil
}

// ListByCard retrieves a card's comments oldest first
func (m *MockCommentRepository) ListByCard(ctx context.Context, cardID string) ([]*domain.Comment, error) {
	var out []*domain.Comment
	for _, c := range m.Comments {
		if c.CardID == cardID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// MockActivityRepository is a mock implementation of domain.ActivityRepository
type MockActivityRepository struct {
	Activities []*domain.ActivityLog
}

// NewMockActivityRepository creates a new MockActivityRepository
func NewMockActivityRepository() *MockActivityRepository {
	return &MockActivityRepository{}
}

// Create inserts an activity log entry
func (m *MockActivityRepository) Create(ctx context.Context, activity *domain.ActivityLog) error {
	m.Activities = append(m.Activities, activity)
	return nil
}

// ListByBoard retrieves a board's activity newest first, capped at limit
func (m *MockActivityRepository) ListByBoard(ctx context.Context, boardID string, limit int) ([]*domain.ActivityLog, error) {
	var out []*domain.ActivityLog
	for _, a := range m.Activities {
		if a.BoardID == boardID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func hasMember(members []domain.Member, userID string) bool {
	for _, m := range members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

func matchesText(c *domain.Card, text string) bool {
	needle := strings.ToLower(text)
	if strings.Contains(strings.ToLower(c.Title), needle) {
		return true
	}
	return c.Description != nil && strings.Contains(strings.ToLower(*c.Description), needle)
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
