package handler

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Identity numbers: digits, optionally with letters or hyphens for foreign documents.
var cedulaPattern = regexp.MustCompile(`^[0-9A-Za-z-]{4,20}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("cedula", validCedula)
	}
}

func validCedula(fl validator.FieldLevel) bool {
	return cedulaPattern.MatchString(fl.Field().String())
}
