package middleware

import (
	"guardia/internal/model"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middlewares.
const (
	UsuarioKey       = "usuario"
	NegocioKey       = "negocio"
	ColaboradorKey   = "colaborador"
	ColaboradorIDKey = "colaborador_id"
	RequestIDKey     = "request_id"
)

func CurrentUsuario(c *gin.Context) (*model.Usuario, bool) {
	v, ok := c.Get(UsuarioKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*model.Usuario)
	return u, ok
}

func CurrentNegocio(c *gin.Context) (*model.Negocio, bool) {
	v, ok := c.Get(NegocioKey)
	if !ok {
		return nil, false
	}
	n, ok := v.(*model.Negocio)
	return n, ok
}

func CurrentColaborador(c *gin.Context) (*model.Colaborador, bool) {
	v, ok := c.Get(ColaboradorKey)
	if !ok {
		return nil, false
	}
	col, ok := v.(*model.Colaborador)
	return col, ok
}
