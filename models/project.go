package models

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status of a project.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusOnHold    Status = "ON_HOLD"
	StatusCancelled Status = "CANCELLED"
)

// Priority of a project.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Project is owned by exactly one user.
type Project struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description"`
	Status      Status     `gorm:"size:16;not null;default:ACTIVE" json:"status"`
	Priority    Priority   `gorm:"size:16;not null;default:MEDIUM" json:"priority"`
	StartDate   time.Time  `gorm:"not null" json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	UserID      string     `gorm:"size:36;index;not null" json:"userId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (p *Project) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// CreateProjectRequest is the POST /api/projects body.
// Dates are strings here so a malformed date is reported against its own field.
type CreateProjectRequest struct {
	Title       string  `json:"title" validate:"required,min=3"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE COMPLETED ON_HOLD CANCELLED"`
	Priority    string  `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	StartDate   string  `json:"startDate" validate:"required,flexdate"`
	EndDate     *string `json:"endDate,omitempty" validate:"omitempty,flexdate"`
}

// UpdateProjectRequest is the PATCH body; every field is optional.
type UpdateProjectRequest struct {
	Title       *string      `json:"title,omitempty" validate:"omitempty,min=3"`
	Description *string      `json:"description,omitempty"`
	Status      *string      `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE COMPLETED ON_HOLD CANCELLED"`
	Priority    *string      `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	StartDate   *string      `json:"startDate,omitempty" validate:"omitempty,flexdate"`
	EndDate     NullableDate `json:"endDate" validate:"omitempty,flexdate"`

	nulls []string // keys other than endDate sent as an explicit null
}

// UnmarshalJSON records explicit nulls, which would otherwise read as "no change".
func (r *UpdateProjectRequest) UnmarshalJSON(b []byte) error {
	type plain UpdateProjectRequest
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*r = UpdateProjectRequest(p)
	for _, key := range []string{"title", "description", "status", "priority", "startDate"} {
		if v, ok := raw[key]; ok && bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			r.nulls = append(r.nulls, key)
		}
	}
	return nil
}

// NullFields lists the non-nullable keys the request set to null.
func (r UpdateProjectRequest) NullFields() []string { return r.nulls }

// NullableDate distinguishes an absent key (Set=false) from an explicit null (Set, Null).
type NullableDate struct {
	Set   bool
	Null  bool
	Value string
}

func (n *NullableDate) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Null = true
		n.Value = ""
		return nil
	}
	n.Null = false
	return json.Unmarshal(b, &n.Value)
}

func (n NullableDate) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Null {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// DeleteResponse is returned by DELETE /api/projects/:id.
type DeleteResponse struct {
	Success bool `json:"success"`
}
