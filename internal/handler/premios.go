package handler

import (
	"net/http"

	"github.com/rafaelmsj/commandSystem/internal/apierror"
	"github.com/rafaelmsj/commandSystem/internal/dto"
	"github.com/rafaelmsj/commandSystem/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PremiosHandler struct{ svc service.PremioService }

func NewPremiosHandler(svc service.PremioService) *PremiosHandler {
	return &PremiosHandler{svc: svc}
}

func (h *PremiosHandler) Criar(c *gin.Context) {
	var req dto.CriarPremioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PremiosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), c.Query("status_entrega"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PremiosHandler) AtualizarEntrega(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.EntregarPremioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarEntrega(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
