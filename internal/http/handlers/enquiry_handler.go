package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Uchencho/Bar-Zubi/internal/errs"
	"github.com/Uchencho/Bar-Zubi/internal/http/middleware"
	"github.com/Uchencho/Bar-Zubi/internal/services"
	"github.com/Uchencho/Bar-Zubi/internal/utils"
	"github.com/gin-gonic/gin"
)

type EnquiryHandler struct {
	enquiries *services.EnquiryService
}

type EnquiryRequest struct {
	Question string `json:"question" binding:"required"`
}

func NewEnquiryHandler(enquiries *services.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{enquiries: enquiries}
}

// Create records an enquiry for the token subject. The owner is always the
// authenticated username regardless of the request body.
func (h *EnquiryHandler) Create(c *gin.Context) {
	var req EnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	enq, err := h.enquiries.Create(c.Request.Context(), c.GetString(middleware.ContextUsername), req.Question)
	if err != nil {
		utils.RespondError(c, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "could not create enquiry", nil))
		return
	}
	c.JSON(http.StatusOK, enq)
}

func (h *EnquiryHandler) List(c *gin.Context) {
	enquiries, err := h.enquiries.List(c.Request.Context(), c.GetString(middleware.ContextUsername))
	if err != nil {
		utils.RespondError(c, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "could not list enquiries", nil))
		return
	}
	c.JSON(http.StatusOK, enquiries)
}

func (h *EnquiryHandler) Get(c *gin.Context) {
	id, ok := enquiryID(c)
	if !ok {
		return
	}

	enq, err := h.enquiries.Get(c.Request.Context(), c.GetString(middleware.ContextUsername), id)
	if err != nil {
		respondEnquiryError(c, err)
		return
	}
	c.JSON(http.StatusOK, enq)
}

func (h *EnquiryHandler) Update(c *gin.Context) {
	id, ok := enquiryID(c)
	if !ok {
		return
	}

	var req EnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	enq, err := h.enquiries.Update(c.Request.Context(), c.GetString(middleware.ContextUsername), id, req.Question)
	if err != nil {
		respondEnquiryError(c, err)
		return
	}
	c.JSON(http.StatusOK, enq)
}

func (h *EnquiryHandler) Delete(c *gin.Context) {
	id, ok := enquiryID(c)
	if !ok {
		return
	}

	deleted, err := h.enquiries.Delete(c.Request.Context(), c.GetString(middleware.ContextUsername), id)
	if err != nil {
		utils.RespondError(c, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "could not delete enquiry", nil))
		return
	}
	if !deleted {
		utils.RespondError(c, utils.NewAppError(http.StatusNotFound, "NOT_FOUND", "enquiry not found", nil))
		return
	}
	c.Status(http.StatusNoContent)
}

// enquiryID parses the id path parameter; a non-numeric id is
// indistinguishable from a missing record.
func enquiryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, utils.NewAppError(http.StatusNotFound, "NOT_FOUND", "enquiry not found", nil))
		return 0, false
	}
	return id, true
}

func respondEnquiryError(c *gin.Context, err error) {
	if errors.Is(err, errs.ErrNotFound) {
		utils.RespondError(c, utils.NewAppError(http.StatusNotFound, "NOT_FOUND", "enquiry not found", nil))
		return
	}
	utils.RespondError(c, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "enquiry lookup failed", nil))
}
