package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta_EmptyResult(t *testing.T) {
	m := NewPaginationMeta(1, 10, 0)
	assert.Equal(t, 0, m.TotalPages)
	assert.False(t, m.HasNext)
	assert.False(t, m.HasPrevious)
}

func TestNewPaginationMeta_Flags(t *testing.T) {
	const total, limit = 25, 10
	m := NewPaginationMeta(1, limit, total)
	assert.Equal(t, 3, m.TotalPages)

	for page := 1; page <= m.TotalPages; page++ {
		got := NewPaginationMeta(page, limit, total)
		assert.Equal(t, page > 1, got.HasPrevious, "page %d", page)
		assert.Equal(t, page < 3, got.HasNext, "page %d", page)
	}
}

func TestNewPaginationMeta_ExactMultiple(t *testing.T) {
	m := NewPaginationMeta(2, 10, 20)
	assert.Equal(t, 2, m.TotalPages)
	assert.False(t, m.HasNext)
	assert.True(t, m.HasPrevious)
}

func TestNewUserListItem_ProjectsProjection(t *testing.T) {
	name := "Jane"
	u := User{ID: "u1", Name: &name, Email: "j@x.io", Role: RoleUser, Projects: []Project{{ID: "p1", Title: "Alpha", Status: StatusActive, Priority: PriorityHigh}}}
	item := NewUserListItem(u)
	assert.Equal(t, "Jane", item.DisplayName())
	assert.Len(t, item.Projects, 1)
	assert.Equal(t, "Alpha", item.Projects[0].Title)
	assert.Nil(t, item.Projects[0].EndDate)

	empty := NewUserListItem(User{ID: "u2"})
	assert.Equal(t, "No Name", empty.DisplayName())
	assert.NotNil(t, empty.Projects)
}
