package class

import "github.com/trezcool/darasa/core"

type Class struct {
	ID       int    `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Subject  string `json:"subject" db:"subject"`
	Room     string `json:"room" db:"room"`
	Schedule string `json:"schedule" db:"schedule"`
}

// NewClass contains information needed to create a new Class.
type NewClass struct {
	Name     string `json:"name" validate:"required,notblank"`
	Subject  string `json:"subject" validate:"required,notblank"`
	Room     string `json:"room"`
	Schedule string `json:"schedule"`
}

func (nc *NewClass) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	nc.Subject = core.CleanString(nc.Subject)
	return core.Validate.Struct(nc)
}

// UpdateClass contains information needed to update an existing Class.
type UpdateClass struct {
	Name     string `json:"name" validate:"required,notblank"`
	Subject  string `json:"subject" validate:"required,notblank"`
	Room     string `json:"room"`
	Schedule string `json:"schedule"`
}

func (uc *UpdateClass) Validate() error {
	uc.Name = core.CleanString(uc.Name)
	uc.Subject = core.CleanString(uc.Subject)
	return core.Validate.Struct(uc)
}
