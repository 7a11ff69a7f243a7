// repository hides GORM details behind an interface, so services stay DB-agnostic.
// Data-access layer. Only talks to the database (via GORM here)-> (only talks to DB, no HTTP/JSON).
package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/core"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models"

	"gorm.io/gorm" // GORM DB type is injected so repos are testable/mocked.
	"gorm.io/gorm/clause"
)

// UserFilter is an already-validated listing request.
type UserFilter struct {
	Search string          // matched case-insensitively against name and email; empty matches all
	SortBy core.SortColumn // allow-listed column
	Order  core.SortOrder
	Offset int
	Limit  int
}

// UserRepository defines the operations our service layer expects.
// Depending on interfaces (not concrete types) helps testability and swapping implementations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	// List returns one page of users with their projects, plus the total matching count.
	List(ctx context.Context, f UserFilter) ([]models.User, int64, error)
}

// userRepo holds a *gorm.DB that can connect to any dialect (mysql/postgres/sqlite/sqlserver).
type userRepo struct{ db *gorm.DB }

// NewUserRepository is a constructor that injects *gorm.DB and returns an interface.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

// Create inserts a new user row using GORM's Create method.
func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// FindByEmail queries for a user with the given email.
// We use a parameterized query (WHERE email = ?) which GORM compiles safely for the dialect.
func (r *userRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// Update saves fields on an existing user (assumes u has valid ID).
func (r *userRepo) Update(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Omit("Projects").Save(u).Error
}

// List runs the count and the page query separately; a write landing between the two
// can make the total disagree with the page for one response.
func (r *userRepo) List(ctx context.Context, f UserFilter) ([]models.User, int64, error) {
	var (
		items []models.User
		total int64
	)
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Scopes(matchSearch(f.Search)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	col := f.SortBy.Column()
	if col == "" {
		col = core.DefaultSortBy.Column()
	}
	if err := r.db.WithContext(ctx).
		Scopes(matchSearch(f.Search)).
		Preload("Projects", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC") // insertion order
		}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: f.Order == core.SortDesc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}). // stable pages on ties
		Offset(f.Offset).
		Limit(f.Limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// likeEscaper neutralises LIKE wildcards in user input; '!' is the escape character
// because it needs no quoting in any of the supported dialects.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// matchSearch filters on name OR email containing search, case-insensitive.
func matchSearch(search string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search == "" {
			return db
		}
		pattern := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		return db.Where("(LOWER(name) LIKE ? ESCAPE '!' OR LOWER(email) LIKE ? ESCAPE '!')", pattern, pattern)
	}
}

// Helper: IsNotFound checks GORM's "record not found" sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
