package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// v instancia compartida; el validador cachea metadatos de structs y es seguro
// para uso concurrente.
var v = validator.New(validator.WithRequiredStructEnabled())

// Struct valida un struct con tags `validate`. Devuelve nil si es válido.
func Struct(s any) error {
	return v.Struct(s)
}

// Message devuelve un mensaje legible por campo para errores de validación,
// pensado para responderse tal cual al formulario que lo envió.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fieldMessage(fe))
	}
	return strings.Join(parts, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es requerido", field)
	case "email":
		return fmt.Sprintf("%s no es un email válido", field)
	case "min":
		return fmt.Sprintf("%s es demasiado corto o pequeño (min %s)", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s es demasiado largo o grande (max %s)", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s debe ser mayor que %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", field, fe.Param())
	case "uuid4":
		return fmt.Sprintf("%s no es un UUID válido", field)
	case "datetime":
		return fmt.Sprintf("%s debe tener formato %s", field, fe.Param())
	}
	return fmt.Sprintf("%s es inválido (%s)", field, fe.Tag())
}
