package handlers

import (
	"net/http"

	request "metalshop/internal/adapter/http/dto/request"
	"metalshop/internal/usecase"
	"metalshop/pkg"

	"github.com/gin-gonic/gin"
)

// FileHandler records metadata of files kept in external storage.
type FileHandler struct {
	usecase usecase.IFileUseCase
}

func NewFileHandler(uc usecase.IFileUseCase) *FileHandler {
	return &FileHandler{usecase: uc}
}

func (h *FileHandler) CreateFile(c *gin.Context) {
	var payload request.FileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, errInvalidPayload, err)
		return
	}

	file, err := h.usecase.Create(c.Request.Context(), payload.ToInput(c.Param("id")))
	if err != nil {
		respondError(c, "[file][handler] create", err)
		return
	}
	c.JSON(http.StatusCreated, pkg.Success(file))
}

func (h *FileHandler) ListFiles(c *gin.Context) {
	files, err := h.usecase.ListByJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "[file][handler] list", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(files))
}

func (h *FileHandler) DeleteFile(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "[file][handler] delete", err)
		return
	}
	c.JSON(http.StatusOK, pkg.Success(nil))
}
