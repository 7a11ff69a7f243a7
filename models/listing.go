package models

import "time"

// ListUsersQuery carries the raw listing parameters from the URL.
// The service validates every field before building a query.
type ListUsersQuery struct {
	Page      int    `form:"page"`  // 1-based; defaulted in service when < 1.
	Limit     int    `form:"limit"` // page size; defaulted to 10 and clamped.
	Search    string `form:"search"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

// ProjectSummary is the read-only projection of a project shown in the user listing.
type ProjectSummary struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

// UserListItem is one row of the admin user listing.
type UserListItem struct {
	ID        string           `json:"id"`
	Name      *string          `json:"name"`
	Email     string           `json:"email"`
	Role      Role             `json:"role"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
	Projects  []ProjectSummary `json:"projects"`
}

// DisplayName returns the name or "No Name" when unset.
func (u UserListItem) DisplayName() string {
	if u.Name == nil || *u.Name == "" {
		return "No Name"
	}
	return *u.Name
}

// PaginationMeta describes the page window of a listing response.
type PaginationMeta struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalCount  int64 `json:"totalCount"`
	TotalPages  int   `json:"totalPages"`
	HasNext     bool  `json:"hasNext"`
	HasPrevious bool  `json:"hasPrevious"`
}

// UserListResponse is the GET /api/users envelope.
type UserListResponse struct {
	Users      []UserListItem `json:"users"`
	Pagination PaginationMeta `json:"pagination"`
}

// NewUserListItem projects a User (with preloaded projects) into a listing row.
func NewUserListItem(u User) UserListItem {
	item := UserListItem{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		Projects:  make([]ProjectSummary, 0, len(u.Projects)),
	}
	for _, p := range u.Projects {
		item.Projects = append(item.Projects, ProjectSummary{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Status:      p.Status,
			Priority:    p.Priority,
			StartDate:   p.StartDate,
			EndDate:     p.EndDate,
		})
	}
	return item
}

// NewPaginationMeta computes the page window for total matching rows.
// totalPages is ceil(total/limit), so an empty result has zero pages and neither flag set.
func NewPaginationMeta(page, limit int, total int64) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return PaginationMeta{
		Page:        page,
		Limit:       limit,
		TotalCount:  total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
