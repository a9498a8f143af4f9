package handlers

import (
	"net/http"

	request "metalshop/internal/adapter/http/dto/request"
	"metalshop/internal/usecase"
	"metalshop/pkg"

	"github.com/gin-gonic/gin"
)

type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

func (h *ContractHandler) CreateContract(c *gin.Context) {
	var payload request.ContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}

	contract, err := h.usecase.Create(c.Request.Context(), payload.ToInput(c.Param("id")))
	if err != nil {
		respondError(c, "[contract][handler] create", err)
		return
	}
	c.JSON(http.StatusCreated, pkg.Success(contract))
}

func (h *ContractHandler) ListContracts(c *gin.Context) {
	contracts, err := h.usecase.ListByJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[contract][handler] list", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(contracts))
}

func (h *ContractHandler) GetContract(c *gin.Context) {
	contract, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[contract][handler] get", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(contract))
}

func (h *ContractHandler) UpdateContract(c *gin.Context) {
	var payload request.ContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}

	contract, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput(""))
	if err != nil {
		respondError(c, "[contract][handler] update", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(contract))
}

// UpdateContractStatus moves a contract through Draft, SentForSignature,
// Signed and Cancelled. Signing stamps the signature date.
func (h *ContractHandler) UpdateContractStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}

	contract, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		respondError(c, "[contract][handler] update-status", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(contract))
}

func (h *ContractHandler) DeleteContract(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "[contract][handler] delete", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(nil))
}
