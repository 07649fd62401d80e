package model

import "time"

// Colaborador is a security guard. Only active colaboradores can be assigned
// or log in through the negocio link.
type Colaborador struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	NegocioID int64     `gorm:"not null;index" json:"negocio_id"`
	Nombres   string    `gorm:"not null" json:"nombres"`
	Apellidos string    `gorm:"not null" json:"apellidos"`
	Cedula    string    `gorm:"not null" json:"cedula"`
	Telefono  string    `json:"telefono"`
	Activo    bool      `gorm:"not null;default:true" json:"activo"`
	CreatedAt time.Time `json:"created_at"`
}

func (Colaborador) TableName() string { return "colaboradores" }

func (c Colaborador) NombreCompleto() string {
	return c.Nombres + " " + c.Apellidos
}
