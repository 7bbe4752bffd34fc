package postgres

import (
	"context"

	"fitsync/internal/domain/entity"
	"fitsync/internal/domain/repository"
	"fitsync/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tokenRepository implements the repository.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// GetTokenSet retrieves the stored token set for a (user, provider) pair.
func (repo *tokenRepository) GetTokenSet(ctx context.Context, userID uuid.UUID, provider entity.Provider) (*entity.OAuthTokenSet, error) {
	var tokenM model.OAuthTokenSetModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider.String()).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenSetNotFound
		}

		return nil, errors.Wrap(err, "failed to find token set")
	}

	return toTokenSetDomain(&tokenM), nil
}

// SaveTokenSet creates or replaces the token set for its (user, provider) pair.
func (repo *tokenRepository) SaveTokenSet(ctx context.Context, tokens *entity.OAuthTokenSet) error {
	tokenM := fromTokenSetDomain(tokens)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "provider"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"access_token", "refresh_token", "expires_at", "updated_at",
			}),
		}).
		Create(tokenM).Error
	if err != nil {
		return errors.Wrap(err, "failed to save token set")
	}

	return nil
}

// ClearTokenSet removes the stored token set.
func (repo *tokenRepository) ClearTokenSet(ctx context.Context, userID uuid.UUID, provider entity.Provider) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider.String()).
		Delete(&model.OAuthTokenSetModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to clear token set")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTokenSetNotFound
	}

	return nil
}

func toTokenSetDomain(m *model.OAuthTokenSetModel) *entity.OAuthTokenSet {
	return &entity.OAuthTokenSet{
		UserID:       m.UserID,
		Provider:     entity.Provider(m.Provider),
		AccessToken:  m.AccessToken,
		RefreshToken: m.RefreshToken,
		ExpiresAt:    m.ExpiresAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromTokenSetDomain(t *entity.OAuthTokenSet) *model.OAuthTokenSetModel {
	return &model.OAuthTokenSetModel{
		UserID:       t.UserID,
		Provider:     t.Provider.String(),
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		ExpiresAt:    t.ExpiresAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
