package model

// TipoTurno is a shift type (diurno, nocturno, ...). Hours are "HH:MM".
type TipoTurno struct {
	ID         int64  `gorm:"primaryKey" json:"id" binding:"isdefault"`
	Nombre     string `gorm:"not null" json:"nombre" binding:"required,max=100"`
	HoraInicio string `gorm:"not null" json:"hora_inicio" binding:"required,datetime=15:04"`
	HoraFin    string `gorm:"not null" json:"hora_fin" binding:"required,datetime=15:04"`
	Activo     bool   `gorm:"not null;default:true" json:"activo"`
}

func (TipoTurno) TableName() string { return "tipos_turno" }

type TipoAusencia struct {
	ID     int64  `gorm:"primaryKey" json:"id" binding:"isdefault"`
	Nombre string `gorm:"not null" json:"nombre" binding:"required,max=100"`
}

func (TipoAusencia) TableName() string { return "tipos_ausencia" }

type TipoNovedad struct {
	ID     int64  `gorm:"primaryKey" json:"id" binding:"isdefault"`
	Nombre string `gorm:"not null" json:"nombre" binding:"required,max=100"`
}

func (TipoNovedad) TableName() string { return "tipos_novedad" }
