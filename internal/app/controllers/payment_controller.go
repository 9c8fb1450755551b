package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tasnim/scholarhub/internal/app/models"
	"github.com/tasnim/scholarhub/internal/app/models/dto"
	"github.com/tasnim/scholarhub/internal/app/repositories"
	"github.com/tasnim/scholarhub/internal/middleware"
	"github.com/tasnim/scholarhub/internal/pkg/payments"
)

// PaymentController handles payment-intent creation and payment records
type PaymentController struct {
	payments repositories.PaymentStore
	intents  payments.IntentCreator
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(paymentStore repositories.PaymentStore, intents payments.IntentCreator) *PaymentController {
	return &PaymentController{
		payments: paymentStore,
		intents:  intents,
	}
}

// CreatePaymentIntent asks the provider for a payment intent over the
// posted decimal price and returns the client secret needed to complete
// the charge in the browser
func (c *PaymentController) CreatePaymentIntent(ctx *gin.Context) {
	var req dto.PaymentIntentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("a positive price is required"))
		return
	}

	clientSecret, err := c.intents.CreateIntent(ctx.Request.Context(), req.Price)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PaymentIntentResponse{ClientSecret: clientSecret})
}

// GetPaymentsByEmail lists a student's payment history. Callers may only
// read their own history.
func (c *PaymentController) GetPaymentsByEmail(ctx *gin.Context) {
	email := ctx.Param("email")
	if email != ctx.GetString(middleware.ContextEmailKey) {
		ctx.JSON(http.StatusForbidden, dto.NewMessage("forbidden access"))
		return
	}

	history, err := c.payments.FindByEmail(ctx.Request.Context(), email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, history)
}

// CreatePayment records a completed payment. The student email defaults to
// the token identity when the payload omits it.
func (c *PaymentController) CreatePayment(ctx *gin.Context) {
	var payment models.Payment
	if err := ctx.ShouldBindJSON(&payment); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("invalid payment payload"))
		return
	}

	if payment.StudentEmail == "" {
		payment.StudentEmail = ctx.GetString(middleware.ContextEmailKey)
	}

	insertedID, err := c.payments.Insert(ctx.Request.Context(), &payment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InsertResponse{InsertedID: &insertedID})
}
