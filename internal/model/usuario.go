package model

import "time"

// Usuario is a staff member (admin, supervisor or operador). Vigilantes are
// colaboradores and never have a Usuario row.
type Usuario struct {
	ID           int64     `gorm:"primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Nombre       string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Rol          Role      `gorm:"not null"`
	Activo       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Usuario) TableName() string { return "usuarios" }

type Role string

// Staff roles
const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleOperador   Role = "operador"
)

type Permission string

const (
	PermConfiguracion Permission = "configuracion"
	PermCumplidos     Permission = "cumplidos"
	PermAusencias     Permission = "ausencias"
	PermNovedades     Permission = "novedades"
	PermUsuarios      Permission = "usuarios"
)

// AllPermissions lists every permission in display order.
var AllPermissions = []Permission{PermConfiguracion, PermCumplidos, PermAusencias, PermNovedades, PermUsuarios}

var rolePermissions = map[Role][]Permission{
	RoleAdmin:      {PermConfiguracion, PermCumplidos, PermAusencias, PermNovedades, PermUsuarios},
	RoleSupervisor: {PermConfiguracion, PermCumplidos, PermAusencias, PermNovedades},
	RoleOperador:   {PermCumplidos, PermNovedades},
}

func (r Role) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// Can reports whether the role grants the permission.
func (r Role) Can(p Permission) bool {
	for _, granted := range rolePermissions[r] {
		if granted == p {
			return true
		}
	}
	return false
}
