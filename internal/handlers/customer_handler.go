package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yellowboat/backoffice/internal/services"
	"github.com/yellowboat/backoffice/internal/services/dto"
)

type CustomerHandler struct {
	*BaseHandler
	customerService *services.CustomerService
}

func NewCustomerHandler(base *BaseHandler, customerService *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{BaseHandler: base, customerService: customerService}
}

func (h *CustomerHandler) List(c *gin.Context) {
	limit, offset := ParsePagination(c)

	customers, total, err := h.customerService.List(c.Query("search"), limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(customers, total, limit, offset))
}

func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.customerService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	customer, err := h.customerService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var req dto.UpdateCustomerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	customer, err := h.customerService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.customerService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
