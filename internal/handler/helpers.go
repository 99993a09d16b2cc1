package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/rafaelmsj/commandSystem/internal/apierror"
	"github.com/rafaelmsj/commandSystem/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// bindQuery binds query-string filters and runs validator tags.
func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parâmetros inválidos: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps domain errors to HTTP statuses. Unknown errors become a
// generic 500 so internals never leak into responses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProdutoNaoEncontrado),
		errors.Is(err, service.ErrClienteNaoEncontrado),
		errors.Is(err, service.ErrComandaNaoEncontrada),
		errors.Is(err, service.ErrLancamentoNaoEncontrado),
		errors.Is(err, service.ErrPagamentoNaoEncontrado),
		errors.Is(err, service.ErrPremioNaoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))

	case errors.Is(err, service.ErrEstoqueInsuficiente),
		errors.Is(err, service.ErrComandaFechada),
		errors.Is(err, service.ErrSaldoEmAberto),
		errors.Is(err, service.ErrComandaQuitada),
		errors.Is(err, service.ErrProdutoJaExiste):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))

	case errors.Is(err, service.ErrValorExcedeSaldo),
		errors.Is(err, service.ErrValorInvalido):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))

	case errors.Is(err, service.ErrCredenciaisInvalidas):
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))

	default:
		c.JSON(http.StatusInternalServerError, apierror.New("Erro interno do servidor"))
	}
}
