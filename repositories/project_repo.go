package repositories

import (
	"context"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models"

	"gorm.io/gorm"
)

// ProjectRepository scopes every read and write by owner, so a foreign project
// looks exactly like a missing one.
type ProjectRepository interface {
	ListByOwner(ctx context.Context, userID string) ([]models.Project, error)
	FindOwned(ctx context.Context, id, userID string) (*models.Project, error)
	Create(ctx context.Context, p *models.Project) error
	Update(ctx context.Context, p *models.Project) error
	DeleteOwned(ctx context.Context, id, userID string) error
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepo{db: db}
}

// ListByOwner returns the user's projects, most recently updated first.
func (r *projectRepo) ListByOwner(ctx context.Context, userID string) ([]models.Project, error) {
	items := []models.Project{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&items).Error
	return items, err
}

// FindOwned returns gorm.ErrRecordNotFound when the project is absent or owned by someone else.
func (r *projectRepo) FindOwned(ctx context.Context, id, userID string) (*models.Project, error) {
	var p models.Project
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) Create(ctx context.Context, p *models.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Update writes every column, so a nil EndDate clears the stored value.
func (r *projectRepo) Update(ctx context.Context, p *models.Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// DeleteOwned removes the row only when it belongs to userID.
func (r *projectRepo) DeleteOwned(ctx context.Context, id, userID string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound // No row to delete → treat as not found.
	}
	return nil
}
