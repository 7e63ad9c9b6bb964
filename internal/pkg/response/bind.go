package response

import (
	"errors"
	"net/http"

	xerrors "catalog-service/internal/pkg/errors"
	"catalog-service/internal/pkg/validate"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// EmailTag is the binding tag that checks an address with validate.Email.
const EmailTag = "email_format"

// tagPriority decides which failure is reported when several fields fail.
var tagPriority = []string{"required", EmailTag, "eqfield", "oneof", "min", "max"}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation(EmailTag, func(fl validator.FieldLevel) bool {
			return validate.Email(fl.Field().String())
		})
	}
}

// BindRules maps binding tags to the error sent when a field fails them.
// Malformed is sent for bodies that do not decode or fail an unmapped tag;
// when nil a generic InvalidRequest is used.
type BindRules struct {
	Malformed error
	Tags      map[string]error
}

// BindError answers a failed ShouldBind call.
func BindError(c *gin.Context, err error, rules BindRules) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		failed := make(map[string]bool, len(verrs))
		for _, fe := range verrs {
			failed[fe.Tag()] = true
		}
		for _, tag := range tagPriority {
			if mapped, ok := rules.Tags[tag]; ok && failed[tag] {
				FromError(c, mapped)
				return
			}
		}
	}

	if rules.Malformed != nil {
		FromError(c, rules.Malformed)
		return
	}
	Error(c, http.StatusBadRequest, xerrors.CodeInvalidRequest, "Cuerpo de la solicitud inválido")
}
