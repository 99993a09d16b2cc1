package handler

import (
	"net/http"

	"github.com/rafaelmsj/commandSystem/internal/apierror"
	"github.com/rafaelmsj/commandSystem/internal/dto"
	"github.com/rafaelmsj/commandSystem/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EstoqueHandler struct{ svc service.EstoqueService }

func NewEstoqueHandler(svc service.EstoqueService) *EstoqueHandler {
	return &EstoqueHandler{svc: svc}
}

func (h *EstoqueHandler) RegistrarMovimentacao(c *gin.Context) {
	var req dto.RegistrarMovimentacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarMovimentacao(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *EstoqueHandler) ListarMovimentacoes(c *gin.Context) {
	var filter dto.MovimentacaoFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListarMovimentacoes(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EstoqueHandler) EstoqueBaixo(c *gin.Context) {
	resp, err := h.svc.EstoqueBaixo(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EstoqueHandler) Reconciliar(c *gin.Context) {
	produtoID, err := uuid.Parse(c.Param("produto_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Reconciliar(c.Request.Context(), produtoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
