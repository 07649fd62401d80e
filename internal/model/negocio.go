package model

import "time"

// Negocio is a tenant business. Puestos and colaboradores are scoped to one.
type Negocio struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Nombre    string    `gorm:"not null" json:"nombre"`
	Activo    bool      `gorm:"not null;default:true" json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Negocio) TableName() string { return "negocios" }

type UnidadNegocio struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	NegocioID int64  `gorm:"not null;index" json:"negocio_id"`
	Nombre    string `gorm:"not null" json:"nombre"`
	Activo    bool   `gorm:"not null;default:true" json:"activo"`
}

func (UnidadNegocio) TableName() string { return "unidades_negocio" }

// Puesto is a guard post, it belongs to a unidad de negocio.
type Puesto struct {
	ID              int64  `gorm:"primaryKey" json:"id"`
	UnidadNegocioID int64  `gorm:"not null;index" json:"unidad_negocio_id"`
	Nombre          string `gorm:"not null" json:"nombre"`
	Direccion       string `json:"direccion"`
	Activo          bool   `gorm:"not null;default:true" json:"activo"`
}

func (Puesto) TableName() string { return "puestos" }
