package services

import (
	"context"
	"printdoot_server/database"
	"printdoot_server/lib"
	"printdoot_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// UserService reads buyer profiles. Clerk IDs are opaque external
// identifiers; there is no local authentication.
type UserService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewUserService(logger *gecho.Logger, db *database.DB) *UserService {
	return &UserService{
		logger: logger,
		db:     db,
	}
}

// GetUserByClerkID returns the user or nil when unknown
func (us *UserService) GetUserByClerkID(ctx context.Context, clerkID string) (*tables.User, error) {
	user, err := database.Query[tables.User](us.db).
		Where("clerk_id", clerkID).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return user, nil
}

// GetDetailsByClerkID returns the optional profile details or nil
func (us *UserService) GetDetailsByClerkID(ctx context.Context, clerkID string) (*tables.UserDetails, error) {
	details, err := database.Query[tables.UserDetails](us.db).
		Where("clerk_id", clerkID).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return details, nil
}

// GetUsersByClerkIDs batch-fetches users keyed by clerk ID
func (us *UserService) GetUsersByClerkIDs(ctx context.Context, clerkIDs []string) (map[string]*tables.User, error) {
	if len(clerkIDs) == 0 {
		return map[string]*tables.User{}, nil
	}

	args := make([]any, len(clerkIDs))
	for i, id := range clerkIDs {
		args[i] = id
	}

	users, err := database.Query[tables.User](us.db).
		WhereIn("clerk_id", args).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	result := make(map[string]*tables.User, len(users))
	for i := range users {
		result[users[i].ClerkID] = &users[i]
	}

	return result, nil
}

// GetDetailsByClerkIDs batch-fetches user details keyed by clerk ID
func (us *UserService) GetDetailsByClerkIDs(ctx context.Context, clerkIDs []string) (map[string]*tables.UserDetails, error) {
	if len(clerkIDs) == 0 {
		return map[string]*tables.UserDetails{}, nil
	}

	args := make([]any, len(clerkIDs))
	for i, id := range clerkIDs {
		args[i] = id
	}

	details, err := database.Query[tables.UserDetails](us.db).
		WhereIn("clerk_id", args).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	result := make(map[string]*tables.UserDetails, len(details))
	for i := range details {
		result[details[i].ClerkID] = &details[i]
	}

	return result, nil
}

// GetEmailByClerkID resolves a buyer's email address for notifications
func (us *UserService) GetEmailByClerkID(ctx context.Context, clerkID string) (string, error) {
	user, err := us.GetUserByClerkID(ctx, clerkID)
	if err != nil {
		return "", err
	}
	if user == nil {
		us.logger.Warn("No user found for clerk ID", gecho.Field("clerk_id", clerkID))
		return "", lib.ErrUserNotFound
	}
	return user.Email, nil
}
