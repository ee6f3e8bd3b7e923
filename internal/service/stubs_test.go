package service

import (
	"context"

	"murmur/internal/models"
)

type userRepoStub struct {
	getByIDFn             func(context.Context, uint) (*models.User, error)
	getByIDWithThoughtsFn func(context.Context, uint, int) (*models.User, error)
	getByEmailFn          func(context.Context, string) (*models.User, error)
	getByUsernameFn       func(context.Context, string) (*models.User, error)
	createFn              func(context.Context, *models.User) error
	updateFn              func(context.Context, *models.User) error
	deleteWithOwnedFn     func(context.Context, uint) error
	listFn                func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDWithThoughts(ctx context.Context, id uint, limit int) (*models.User, error) {
	return s.getByIDWithThoughtsFn(ctx, id, limit)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) DeleteWithOwned(ctx context.Context, id uint) error {
	return s.deleteWithOwnedFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, FriendIDs: []uint{}}, nil
		},
		getByIDWithThoughtsFn: func(_ context.Context, id uint, _ int) (*models.User, error) {
			return &models.User{ID: id, FriendIDs: []uint{}}, nil
		},
		getByEmailFn:      func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn:   func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:          func(context.Context, *models.User) error { return nil },
		updateFn:          func(context.Context, *models.User) error { return nil },
		deleteWithOwnedFn: func(context.Context, uint) error { return nil },
		listFn:            func(context.Context, int, int) ([]models.User, error) { return nil, nil },
	}
}

type thoughtRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.Thought, error)
	listFn       func(context.Context, int, int) ([]models.Thought, error)
	listByUserFn func(context.Context, uint) ([]models.Thought, error)
	createFn     func(context.Context, *models.Thought) error
	updateFn     func(context.Context, *models.Thought) error
	deleteFn     func(context.Context, uint) error
}

func (s *thoughtRepoStub) GetByID(ctx context.Context, id uint) (*models.Thought, error) {
	return s.getByIDFn(ctx, id)
}
func (s *thoughtRepoStub) List(ctx context.Context, limit, offset int) ([]models.Thought, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *thoughtRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.Thought, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *thoughtRepoStub) Create(ctx context.Context, thought *models.Thought) error {
	return s.createFn(ctx, thought)
}
func (s *thoughtRepoStub) Update(ctx context.Context, thought *models.Thought) error {
	return s.updateFn(ctx, thought)
}
func (s *thoughtRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopThoughtRepo() *thoughtRepoStub {
	return &thoughtRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Thought, error) {
			return &models.Thought{ID: id, Reactions: []models.Reaction{}}, nil
		},
		listFn:       func(context.Context, int, int) ([]models.Thought, error) { return nil, nil },
		listByUserFn: func(context.Context, uint) ([]models.Thought, error) { return nil, nil },
		createFn:     func(context.Context, *models.Thought) error { return nil },
		updateFn:     func(context.Context, *models.Thought) error { return nil },
		deleteFn:     func(context.Context, uint) error { return nil },
	}
}

type friendRepoStub struct {
	addEdgeFn       func(context.Context, uint, uint) error
	removeEdgeFn    func(context.Context, uint, uint) error
	listFriendIDsFn func(context.Context, uint) ([]uint, error)
	listFriendsFn   func(context.Context, uint) ([]models.User, error)
	countFriendsFn  func(context.Context, uint) (int64, error)
}

func (s *friendRepoStub) AddEdge(ctx context.Context, userID, friendID uint) error {
	return s.addEdgeFn(ctx, userID, friendID)
}
func (s *friendRepoStub) RemoveEdge(ctx context.Context, userID, friendID uint) error {
	return s.removeEdgeFn(ctx, userID, friendID)
}
func (s *friendRepoStub) ListFriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.listFriendIDsFn(ctx, userID)
}
func (s *friendRepoStub) ListFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.listFriendsFn(ctx, userID)
}
func (s *friendRepoStub) CountFriends(ctx context.Context, userID uint) (int64, error) {
	return s.countFriendsFn(ctx, userID)
}

func noopFriendRepo() *friendRepoStub {
	return &friendRepoStub{
		addEdgeFn:       func(context.Context, uint, uint) error { return nil },
		removeEdgeFn:    func(context.Context, uint, uint) error { return nil },
		listFriendIDsFn: func(context.Context, uint) ([]uint, error) { return []uint{}, nil },
		listFriendsFn:   func(context.Context, uint) ([]models.User, error) { return nil, nil },
		countFriendsFn:  func(context.Context, uint) (int64, error) { return 0, nil },
	}
}
