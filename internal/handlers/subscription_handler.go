package handlers

import (
	"net/http"

	"jobbridge_backend/internal/middleware"
	"jobbridge_backend/internal/models"
	"jobbridge_backend/internal/services"
	"jobbridge_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	*BaseHandler
	subscriptionService services.SubscriptionService
}

func NewSubscriptionHandler(base *BaseHandler, subscriptionService services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		BaseHandler:         base,
		subscriptionService: subscriptionService,
	}
}

func (h *SubscriptionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	subscriptions := rg.Group("/subscriptions")
	subscriptions.Use(middleware.AuthMiddleware())
	{
		subscriptions.POST("", h.Create)
		subscriptions.GET("", h.List)
	}

	payments := rg.Group("/admin/payments")
	payments.Use(middleware.AuthMiddleware())
	payments.Use(middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		payments.GET("", h.ListPayments)
		payments.PATCH("/:id", h.ReviewPayment)
	}
}

// Create godoc
// @Summary      Request a subscription
// @Description  Creates a PENDING subscription with its companion PENDING
// @Description  payment. Nothing activates until an admin approves the
// @Description  payment.
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateSubscriptionRequest true "Package and amount"
// @Success      201 {object} services.SubscriptionCreated
// @Failure      400 {object} apperrors.ErrorResponse
// @Router       /subscriptions [post]
func (h *SubscriptionHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSubscriptionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	created, err := h.subscriptionService.Create(db, userID, h.CallerRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// List godoc
// @Summary      List the caller's subscriptions with payments
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Subscription
// @Router       /subscriptions [get]
func (h *SubscriptionHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	subscriptions, err := h.subscriptionService.ListByUser(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, subscriptions)
}

// ListPayments godoc
// @Summary      List payments for review
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "PENDING, APPROVED or REJECTED"
// @Success      200 {array} models.Payment
// @Failure      403 {object} apperrors.ErrorResponse
// @Router       /admin/payments [get]
func (h *SubscriptionHandler) ListPayments(c *gin.Context) {
	var query dto.PaymentsQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	db := h.GetDB(c)

	payments, err := h.subscriptionService.ListPayments(db, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

// ReviewPayment godoc
// @Summary      Approve or reject a payment
// @Description  Approval activates the companion subscription for one year.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Payment ID"
// @Param        request body dto.ReviewPaymentRequest true "Decision"
// @Success      200 {object} models.Payment
// @Failure      400 {object} apperrors.ErrorResponse
// @Failure      404 {object} apperrors.ErrorResponse
// @Router       /admin/payments/{id} [patch]
func (h *SubscriptionHandler) ReviewPayment(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ReviewPaymentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	payment, err := h.subscriptionService.ReviewPayment(db, adminID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}
