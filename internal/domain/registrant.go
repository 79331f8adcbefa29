package domain

import "time"

// Registrant is an event attendee and their accompanying family counts.
// The mobile number is the natural key: it is immutable once created and
// unique among non-deleted rows.
type Registrant struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Mobile     string `json:"mobile"`
	Department string `json:"department"`
	Company    string `json:"company"`

	// Family counts per category. A nil pointer means "not reported",
	// which is distinct from an explicit zero.
	FamilyEmployee int  `json:"family_employee"`
	FamilyInfant   *int `json:"family_infant"`
	FamilyChild    *int `json:"family_child"`
	FamilyAdult    *int `json:"family_adult"`
	FamilyElderly  *int `json:"family_elderly"`

	Group *string `json:"group"`

	IsChecked     bool       `json:"is_checked"`
	CheckedInTime *time.Time `json:"checked_in_time"`
	IsDeleted     bool       `json:"is_deleted"`
}

// CreateRegistrantRequest is the payload for single registrant creation.
// FamilyEmployee defaults to 1 when omitted.
type CreateRegistrantRequest struct {
	Name           string  `json:"name" validate:"required"`
	Mobile         string  `json:"mobile" validate:"required,mobile"`
	Department     string  `json:"department" validate:"required"`
	Company        string  `json:"company" validate:"required"`
	FamilyEmployee *int    `json:"family_employee" validate:"omitempty,min=0"`
	FamilyInfant   *int    `json:"family_infant" validate:"omitempty,min=0"`
	FamilyChild    *int    `json:"family_child" validate:"omitempty,min=0"`
	FamilyAdult    *int    `json:"family_adult" validate:"omitempty,min=0"`
	FamilyElderly  *int    `json:"family_elderly" validate:"omitempty,min=0"`
	Group          *string `json:"group"`
}

// ImportRow is one row of the bulk-import spreadsheet. The column set
// mirrors CreateRegistrantRequest; validation rules are shared.
type ImportRow struct {
	Name           string  `validate:"required"`
	Mobile         string  `validate:"required,mobile"`
	Department     string  `validate:"required"`
	Company        string  `validate:"required"`
	FamilyEmployee *int    `validate:"omitempty,min=0"`
	FamilyInfant   *int    `validate:"omitempty,min=0"`
	FamilyChild    *int    `validate:"omitempty,min=0"`
	FamilyAdult    *int    `validate:"omitempty,min=0"`
	FamilyElderly  *int    `validate:"omitempty,min=0"`
	Group          *string
}

// ParticipantTotals is the per-category sum of family counts across all
// checked-in registrants. Null counts contribute zero; a category with no
// contributing rows is zero, never an error.
type ParticipantTotals struct {
	Employee int64 `json:"employee"`
	Infant   int64 `json:"infant"`
	Child    int64 `json:"child"`
	Adult    int64 `json:"adult"`
	Elderly  int64 `json:"elderly"`
}
