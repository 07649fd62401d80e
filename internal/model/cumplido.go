package model

import "time"

// FechaLayout is the canonical date format of cumplidos, ausencias and query params.
const FechaLayout = "2006-01-02"

// TipoArchivoIdentidad is the file type code of the identity photo.
const TipoArchivoIdentidad = 1

// Cumplido is a shift assignment, unique per (puesto, fecha, tipo turno).
// A nil ColaboradorID means the slot is open; such a row only survives while
// it carries a note.
type Cumplido struct {
	ID            int64     `gorm:"primaryKey"`
	PuestoID      int64     `gorm:"not null;uniqueIndex:ux_cumplido_slot"`
	Fecha         time.Time `gorm:"type:date;not null;uniqueIndex:ux_cumplido_slot"`
	TipoTurnoID   int64     `gorm:"not null;uniqueIndex:ux_cumplido_slot"`
	ColaboradorID *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Nota *NotaCumplido `gorm:"foreignKey:CumplidoID"`
}

func (Cumplido) TableName() string { return "cumplidos" }

type NotaCumplido struct {
	ID         int64  `gorm:"primaryKey"`
	CumplidoID int64  `gorm:"not null;uniqueIndex"`
	Nota       string `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (NotaCumplido) TableName() string { return "notas_cumplido" }

type ArchivoCumplido struct {
	ID             int64  `gorm:"primaryKey"`
	CumplidoID     int64  `gorm:"not null;index"`
	TipoArchivoID  int    `gorm:"not null"`
	URL            string `gorm:"not null"`
	ObjectKey      string `gorm:"not null"`
	NombreOriginal string
	MimeType       string
	Tamano         int64
	CreatedAt      time.Time
}

func (ArchivoCumplido) TableName() string { return "archivos_cumplido" }

// Assignment is the input of an assignment upsert. Fecha must already be
// normalized to a date.
type Assignment struct {
	PuestoID      int64
	Fecha         time.Time
	TipoTurnoID   int64
	ColaboradorID *int64
}

type AssignAction string

const (
	AssignCreated AssignAction = "created"
	AssignUpdated AssignAction = "updated"
	AssignRemoved AssignAction = "removed"
	AssignKept    AssignAction = "kept"
)

// AssignResult reports what an assignment upsert did. OrphanedKeys lists the
// object storage keys of attachments whose rows went away with the cumplido.
type AssignResult struct {
	Action       AssignAction
	CumplidoID   int64
	OrphanedKeys []string
}

type NotaAction string

const (
	NotaCreated NotaAction = "created"
	NotaUpdated NotaAction = "updated"
	NotaDeleted NotaAction = "deleted"
	NotaNoop    NotaAction = "noop"
)

type NotaResult struct {
	Action          NotaAction
	CumplidoDeleted bool
	OrphanedKeys    []string
}
