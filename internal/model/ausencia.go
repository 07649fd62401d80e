package model

import "time"

type Ausencia struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	ColaboradorID  int64     `gorm:"not null;index" json:"colaborador_id"`
	TipoAusenciaID int64     `gorm:"not null" json:"tipo_ausencia_id"`
	FechaInicio    time.Time `gorm:"type:date;not null" json:"-"`
	FechaFin       time.Time `gorm:"type:date;not null" json:"-"`
	Descripcion    string    `json:"descripcion"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Ausencia) TableName() string { return "ausencias" }
