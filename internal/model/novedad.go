package model

import "time"

// Estados de una novedad
const (
	EstadoPendiente = "pendiente"
	EstadoRevisada  = "revisada"
	EstadoCerrada   = "cerrada"
)

// Novedad is an incident reported by a vigilante from a puesto.
type Novedad struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	NegocioID     int64     `gorm:"not null;index" json:"negocio_id"`
	PuestoID      int64     `gorm:"not null" json:"puesto_id"`
	ColaboradorID int64     `gorm:"not null" json:"colaborador_id"`
	TipoNovedadID int64     `gorm:"not null" json:"tipo_novedad_id"`
	Descripcion   string    `gorm:"not null" json:"descripcion"`
	Estado        string    `gorm:"not null;default:pendiente" json:"estado"`
	ImagenURL     *string   `json:"imagen_url,omitempty"`
	ObjectKey     *string   `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Novedad) TableName() string { return "novedades" }

func ValidEstado(estado string) bool {
	switch estado {
	case EstadoPendiente, EstadoRevisada, EstadoCerrada:
		return true
	}
	return false
}
