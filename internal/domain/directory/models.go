package directory

import "time"

type Employee struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	PasswordHash         string    `json:"-"`
	Role                 string    `json:"role"`
	Phone                string    `json:"phone"`
	Photo                string    `json:"photo"`
	Address              string    `json:"address"`
	FatherName           string    `json:"fatherName"`
	Experience           int       `json:"experience"`
	LastSalary           *float64  `json:"lastSalary,omitempty"`
	EmergencyNumber      string    `json:"emergencyNumber"`
	EmergencyContactName string    `json:"emergencyContactName"`
	EmergencyRelation    string    `json:"relationWithEmergencyContact"`
	CreatedAt            time.Time `json:"createdAt"`
}

// CreateRequest carries every mandatory field; LastSalary is the one
// optional attribute.
type CreateRequest struct {
	Name                 string   `json:"name"`
	Email                string   `json:"email"`
	Password             string   `json:"password"`
	Role                 string   `json:"role"`
	Phone                string   `json:"phone"`
	Photo                string   `json:"photo"`
	Address              string   `json:"address"`
	FatherName           string   `json:"fatherName"`
	Experience           int      `json:"experience"`
	LastSalary           *float64 `json:"lastSalary"`
	EmergencyNumber      string   `json:"emergencyNumber"`
	EmergencyContactName string   `json:"emergencyContactName"`
	EmergencyRelation    string   `json:"relationWithEmergencyContact"`
}

// UpdateRequest is a partial overlay. Zero values mean "not supplied"
// and leave the stored field untouched, so neither role nor password
// can be cleared through an update, and an experience of 0 cannot be
// written over a non-zero value.
type UpdateRequest struct {
	Name                 string   `json:"name"`
	Email                string   `json:"email"`
	Phone                string   `json:"phone"`
	Photo                string   `json:"photo"`
	Address              string   `json:"address"`
	FatherName           string   `json:"fatherName"`
	Experience           int      `json:"experience"`
	LastSalary           *float64 `json:"lastSalary"`
	EmergencyNumber      string   `json:"emergencyNumber"`
	EmergencyContactName string   `json:"emergencyContactName"`
	EmergencyRelation    string   `json:"relationWithEmergencyContact"`
}
