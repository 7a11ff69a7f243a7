package seed

import (
	"fmt"
	"testing"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/config"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func memDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func TestRun_SeedsAndIsRepeatable(t *testing.T) {
	db := memDB(t)
	s := New(db, nil, 42)

	require.NoError(t, s.Run(t.Context()))
	require.NoError(t, s.Run(t.Context())) // second run replaces, never duplicates

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(1+len(demoUsers)), users)

	var admin models.User
	require.NoError(t, db.Where("email = ?", AdminEmail).First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, utils.CheckPassword(admin.Password, AdminPassword))

	var adminProjects int64
	db.Model(&models.Project{}).Where("user_id = ?", admin.ID).Count(&adminProjects)
	assert.Equal(t, int64(5), adminProjects)

	var john models.User
	require.NoError(t, db.Preload("Projects").Where("email = ?", "john.doe@example.com").First(&john).Error)
	assert.Len(t, john.Projects, 5)
	for _, p := range john.Projects {
		if p.EndDate != nil {
			assert.True(t, p.EndDate.After(p.StartDate))
		}
	}
}
