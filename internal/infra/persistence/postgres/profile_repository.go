package postgres

import (
	"context"

	"fitsync/internal/domain/entity"
	domainerrors "fitsync/internal/domain/errors"
	"fitsync/internal/domain/repository"
	"fitsync/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByID retrieves a user's sync profile with its connected providers.
func (repo *profileRepository) FindByID(ctx context.Context, userID uuid.UUID) (*entity.UserSyncProfile, error) {
	var profileM model.SyncProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find sync profile")
	}

	var connectionModels []*model.ConnectedProviderModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("connected_at ASC").
		Find(&connectionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find connected providers")
	}

	return toProfileDomain(&profileM, connectionModels), nil
}

// CreateProfile persists a new sync profile for a user.
func (repo *profileRepository) CreateProfile(ctx context.Context, profile *entity.UserSyncProfile) error {
	profileM := &model.SyncProfileModel{
		ID:        profile.ID,
		Email:     profile.Email,
		Tier:      string(profile.Tier),
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Concurrent first-connect attempts race on profile creation;
			// the existing row wins
			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sync profile")
	}

	return nil
}

// ConnectProvider adds a provider to the user's connected set.
func (repo *profileRepository) ConnectProvider(ctx context.Context, userID uuid.UUID, connection entity.ConnectedProvider) error {
	connM := &model.ConnectedProviderModel{
		UserID:      userID,
		Provider:    connection.Provider.String(),
		DisplayName: connection.DisplayName,
		ConnectedAt: connection.ConnectedAt,
	}

	if err := repo.db.WithContext(ctx).Create(connM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrProviderAlreadyConnected, connection.Provider.String())
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to connect provider")
	}

	return nil
}

// DisconnectProvider removes a provider from the user's connected set.
func (repo *profileRepository) DisconnectProvider(ctx context.Context, userID uuid.UUID, provider entity.Provider) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider.String()).
		Delete(&model.ConnectedProviderModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to disconnect provider")
	}

	return nil
}

// GetRateLimitState loads the stored counter for one (user, provider, call
// type) key. A missing row comes back as a zero-valued state.
func (repo *profileRepository) GetRateLimitState(ctx context.Context, userID uuid.UUID, provider entity.Provider, callType entity.CallType) (*entity.RateLimitState, error) {
	var stateM model.RateLimitStateModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ? AND call_type = ?", userID, provider.String(), string(callType)).
		First(&stateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.RateLimitState{Provider: provider, CallType: callType}, nil
		}

		return nil, errors.Wrap(err, "failed to find rate limit state")
	}

	return &entity.RateLimitState{
		Provider:       entity.Provider(stateM.Provider),
		CallType:       entity.CallType(stateM.CallType),
		LastCalledAt:   stateM.LastCalledAt,
		CallCountToday: stateM.CallCountToday,
	}, nil
}

// SaveRateLimitState upserts the counter for its key.
func (repo *profileRepository) SaveRateLimitState(ctx context.Context, userID uuid.UUID, state *entity.RateLimitState) error {
	stateM := &model.RateLimitStateModel{
		UserID:         userID,
		Provider:       state.Provider.String(),
		CallType:       string(state.CallType),
		LastCalledAt:   state.LastCalledAt,
		CallCountToday: state.CallCountToday,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "provider"}, {Name: "call_type"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_called_at", "call_count_today"}),
		}).
		Create(stateM).Error
	if err != nil {
		return errors.Wrap(err, "failed to save rate limit state")
	}

	return nil
}

func toProfileDomain(m *model.SyncProfileModel, connections []*model.ConnectedProviderModel) *entity.UserSyncProfile {
	profile := &entity.UserSyncProfile{
		ID:        m.ID,
		Email:     m.Email,
		Tier:      entity.SubscriptionTier(m.Tier),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	for _, connM := range connections {
		profile.ConnectedProviders = append(profile.ConnectedProviders, entity.ConnectedProvider{
			Provider:    entity.Provider(connM.Provider),
			DisplayName: connM.DisplayName,
			ConnectedAt: connM.ConnectedAt,
		})
	}

	return profile
}
