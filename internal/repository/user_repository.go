package repository

import (
	"BalaghAPI/ent"
	"BalaghAPI/ent/user"
	"BalaghAPI/internal/model"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrDuplicateEmail = model.ErrDuplicateEmail

type UserRepository struct {
	client *ent.Client
}

func NewUserRepository(client *ent.Client) *UserRepository {
	return &UserRepository{
		client: client,
	}
}

func toUserRecord(u *ent.User) *model.UserRecord {
	return &model.UserRecord{
		UserDTO: model.UserDTO{
			ID:          u.ID.String(),
			Email:       u.Email,
			Username:    u.Username,
			DisplayName: u.DisplayName,
			Confirmed:   u.ConfirmedAt != nil,
			CreatedAt:   u.CreatedAt,
		},
		PasswordHash: u.PasswordHash,
	}
}

func (r *UserRepository) Create(ctx context.Context, dto model.CreateUserDTO) (*model.UserRecord, error) {
	create := r.client.User.Create().
		SetEmail(dto.Email).
		SetPasswordHash(dto.PasswordHash).
		SetUsername(dto.Username).
		SetDisplayName(dto.DisplayName)
	if dto.Confirmed {
		create.SetConfirmedAt(time.Now().UTC())
	}

	u, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return toUserRecord(u), nil
}

// FindByEmail returns nil without error when no user matches.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.UserRecord, error) {
	u, err := r.client.User.Query().Where(user.EmailEqualFold(email)).Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toUserRecord(u), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.UserRecord, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	u, err := r.client.User.Get(ctx, userID)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toUserRecord(u), nil
}

func (r *UserRepository) MarkConfirmed(ctx context.Context, id string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	return r.client.User.Update().
		Where(user.ID(userID), user.ConfirmedAtIsNil()).
		SetConfirmedAt(time.Now().UTC()).
		Exec(ctx)
}

// DeleteUnconfirmedBefore removes accounts that never confirmed their e-mail.
func (r *UserRepository) DeleteUnconfirmedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	n, err := r.client.User.Delete().
		Where(user.ConfirmedAtIsNil(), user.CreatedAtLT(cutoff)).
		Exec(ctx)
	return int64(n), err
}
