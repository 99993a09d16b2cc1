package handler

import (
	"net/http"

	"github.com/rafaelmsj/commandSystem/internal/apierror"
	"github.com/rafaelmsj/commandSystem/internal/dto"
	"github.com/rafaelmsj/commandSystem/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ComandasHandler struct {
	comandas    service.ComandaService
	lancamentos service.LancamentoService
	pagamentos  service.PagamentoService
}

func NewComandasHandler(
	comandas service.ComandaService,
	lancamentos service.LancamentoService,
	pagamentos service.PagamentoService,
) *ComandasHandler {
	return &ComandasHandler{comandas: comandas, lancamentos: lancamentos, pagamentos: pagamentos}
}

// ── Comandas ─────────────────────────────────────────────────────────────────

func (h *ComandasHandler) Abrir(c *gin.Context) {
	var req dto.AbrirComandaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.comandas.Abrir(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ComandasHandler) Listar(c *gin.Context) {
	var filter dto.ComandaFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.comandas.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ComandasHandler) ObterPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.comandas.ObterPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ComandasHandler) Fechar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.comandas.Fechar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ComandasHandler) Recalcular(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.comandas.Recalcular(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Lançamentos ──────────────────────────────────────────────────────────────

func (h *ComandasHandler) CriarLancamento(c *gin.Context) {
	var req dto.CriarLancamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.lancamentos.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ComandasHandler) ListarLancamentos(c *gin.Context) {
	comandaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.lancamentos.ListarPorComanda(c.Request.Context(), comandaID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ComandasHandler) ExcluirLancamento(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.lancamentos.Excluir(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Pagamentos ───────────────────────────────────────────────────────────────

func (h *ComandasHandler) CriarPagamento(c *gin.Context) {
	var req dto.CriarPagamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.pagamentos.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ComandasHandler) ListarPagamentos(c *gin.Context) {
	comandaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.pagamentos.ListarPorComanda(c.Request.Context(), comandaID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ComandasHandler) ExcluirPagamento(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.pagamentos.Excluir(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
