package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/branch_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/branch_ledger/internal/core/ports/services"
	"github.com/SscSPs/branch_ledger/internal/core/services"
	"github.com/SscSPs/branch_ledger/internal/dto"
	"github.com/SscSPs/branch_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// postingHandler handles the ledger-affecting business events.
type postingHandler struct {
	postingService portssvc.PostingSvcFacade
}

func newPostingHandler(ps portssvc.PostingSvcFacade) *postingHandler {
	return &postingHandler{postingService: ps}
}

// registerPostingRoutes registers the posting, correction and order status routes.
func registerPostingRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvcFacade) {
	h := newPostingHandler(postingService)

	ledger := rg.Group("/ledger")
	{
		ledger.POST("/ceilings", h.openCeiling)
		ledger.POST("/guarantees/deposits", h.fundGuarantee)
		ledger.POST("/exchanges", h.exchangeCurrency)
		ledger.POST("/receipts", h.createReceipt)
		ledger.POST("/payments", h.createPayment)
		ledger.POST("/references/reverse", h.reverseReference)
		ledger.DELETE("/references/:referenceType/:referenceID", h.deleteReference)
	}

	rg.PUT("/orders/:orderID/status", h.updateOrderStatus)
	rg.GET("/guarantees/:guaranteeID/balance", h.guaranteeBalance)
}

// openCeiling godoc
// @Summary Open a credit ceiling
// @Description Grants a credit ceiling to a customer account in the local currency
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   X-Branch-ID header int false "Branch override (admin branch only)"
// @Param   ceiling body dto.OpenCeilingRequest true "Ceiling details"
// @Success 201 {object} dto.PostingResponse
// @Failure 400 {object} dto.PostingResponse "Invalid input or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} dto.PostingResponse "Unresolvable account or setting"
// @Failure 500 {object} dto.PostingResponse "Failed to open ceiling"
// @Security BearerAuth
// @Router /ledger/ceilings [post]
func (h *postingHandler) openCeiling(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OpenCeilingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for OpenCeiling", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	pr, ok := postingRequest(c)
	if !ok {
		logger.Error("Principal not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to open ceiling", slog.Int64("account_id", req.AccountID))
	result, err := h.postingService.OpenCeiling(c.Request.Context(), pr, req)
	if err != nil {
		respondError(c, logger, err, "Failed to open ceiling")
		return
	}

	logger.Info("Ceiling opened", slog.Int64("ceiling_id", result.ReferenceID))
	respondPosted(c, http.StatusCreated, result, "ceiling opened")
}

// fundGuarantee godoc
// @Summary Fund a customer guarantee
// @Description Records a cash or bank deposit into a customer guarantee
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   X-Branch-ID header int false "Branch override (admin branch only)"
// @Param   deposit body dto.FundGuaranteeRequest true "Deposit details"
// @Success 201 {object} dto.PostingResponse
// @Failure 400 {object} dto.PostingResponse "Invalid input, validation error or rate out of bounds"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} dto.PostingResponse "Guarantee not found"
// @Failure 422 {object} dto.PostingResponse "Unresolvable cash box, bank or setting"
// @Failure 500 {object} dto.PostingResponse "Failed to fund guarantee"
// @Security BearerAuth
// @Router /ledger/guarantees/deposits [post]
func (h *postingHandler) fundGuarantee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FundGuaranteeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for FundGuarantee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	pr, ok := postingRequest(c)
	if !ok {
		logger.Error("Principal not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.postingService.FundGuarantee(c.Request.Context(), pr, req)
	if err != nil {
		respondError(c, logger, err, "Failed to fund guarantee")
		return
	}

	logger.Info("Guarantee funded", slog.Int64("guarantee_id", req.GuaranteeID), slog.Int64("move_id", result.ReferenceID))
	respondPosted(c, http.StatusCreated, result, "guarantee funded")
}

// exchangeCurrency godoc
// @Summary Exchange currency
// @Description Moves value between two accounts in two currencies
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   X-Branch-ID header int false "Branch override (admin branch only)"
// @Param   exchange body dto.ExchangeCurrencyRequest true "Exchange details"
// @Success 201 {object} dto.PostingResponse
// @Failure 400 {object} dto.PostingResponse "Invalid input, validation error or rate out of bounds"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} dto.PostingResponse "Unresolvable account"
// @Failure 500 {object} dto.PostingResponse "Failed to exchange currency"
// @Security BearerAuth
// @Router /ledger/exchanges [post]
func (h *postingHandler) exchangeCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ExchangeCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ExchangeCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	pr, ok := postingRequest(c)
	if !ok {
		logger.Error("Principal not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.postingService.ExchangeCurrency(c.Request.Context(), pr, req)
	if err != nil {
		respondError(c, logger, err, "Failed to exchange currency")
		return
	}

	logger.Info("Currency exchanged", slog.Int64("exchange_id", result.ReferenceID))
	respondPosted(c, http.StatusCreated, result, "currency exchanged")
}

// createReceipt godoc
// @Summary Create a receipt voucher
// @Description Posts money received into a cash box or bank against a counter account
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   X-Branch-ID header int false "Branch override (admin branch only)"
// @Param   voucher body dto.VoucherRequest true "Voucher details"
// @Success 201 {object} dto.PostingResponse
// @Failure 400 {object} dto.PostingResponse "Invalid input or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} dto.PostingResponse "Unresolvable cash box, bank or account"
// @Failure 500 {object} dto.PostingResponse "Failed to create voucher"
// @Security BearerAuth
// @Router /ledger/receipts [post]
func (h *postingHandler) createReceipt(c *gin.Context) {
	h.createVoucher(c, domain.VoucherReceipt)
}

// createPayment godoc
// @Summary Create a payment voucher
// @Description Posts money paid out of a cash box or bank to a counter account
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   X-Branch-ID header int false "Branch override (admin branch only)"
// @Param   voucher body dto.VoucherRequest true "Voucher details"
// @Success 201 {object} dto.PostingResponse
// @Failure 400 {object} dto.PostingResponse "Invalid input or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} dto.PostingResponse "Unresolvable cash box, bank or account"
// @Failure 500 {object} dto.PostingResponse "Failed to create voucher"
// @Security BearerAuth
// @Router /ledger/payments [post]
func (h *postingHandler) createPayment(c *gin.Context) {
	h.createVoucher(c, domain.VoucherPayment)
}

func (h *postingHandler) createVoucher(c *gin.Context, kind domain.VoucherKind) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("voucher_kind", string(kind)))
	var req dto.VoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	pr, ok := postingRequest(c)
	if !ok {
		logger.Error("Principal not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.postingService.CreateVoucher(c.Request.Context(), pr, kind, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create voucher")
		return
	}

	logger.Info("Voucher created", slog.Int64("voucher_id", result.ReferenceID))
	respondPosted(c, http.StatusCreated, result, string(kind)+" voucher created")
}

// updateOrderStatus godoc
// @Summary Update an order status
// @Description Transitions an order; a manual order reaching shipping for the first time is posted to the ledger
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   X-Branch-ID header int false "Branch override (admin branch only)"
// @Param   orderID path int true "Order ID"
// @Param   status body dto.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} dto.PostingResponse
// @Failure 400 {object} dto.PostingResponse "Invalid input or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} dto.PostingResponse "Order not found"
// @Failure 422 {object} dto.PostingResponse "Unresolvable customer, restaurant or setting"
// @Failure 500 {object} dto.PostingResponse "Failed to update order status"
// @Security BearerAuth
// @Router /orders/{orderID}/status [put]
func (h *postingHandler) updateOrderStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID, ok := parseIDParam(c, "orderID")
	if !ok {
		logger.Warn("Invalid order ID", slog.String("order_id", c.Param("orderID")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateOrderStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	pr, ok := postingRequest(c)
	if !ok {
		logger.Error("Principal not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.Int64("order_id", orderID), slog.String("status", req.Status))
	result, err := h.postingService.UpdateOrderStatus(c.Request.Context(), pr, orderID, domain.OrderStatus(req.Status))
	if err != nil {
		respondError(c, logger, err, "Failed to update order status")
		return
	}

	if result == nil {
		logger.Info("Order status updated")
		id := orderID
		c.JSON(http.StatusOK, dto.PostingResponse{Success: true, Message: "order status updated", ID: &id})
		return
	}
	logger.Info("Order status updated and posted", slog.Int("rows", len(result.Entries)))
	respondPosted(c, http.StatusOK, result, "order status updated and posted")
}

// reverseReference godoc
// @Summary Reverse a posted reference group
// @Description Posts offsetting rows for every journal row of a reference
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   X-Branch-ID header int false "Branch override (admin branch only)"
// @Param   reversal body dto.ReverseReferenceRequest true "Reference to reverse"
// @Success 201 {object} dto.PostingResponse
// @Failure 400 {object} dto.PostingResponse "Invalid input or already reversed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} dto.PostingResponse "Reference not found"
// @Failure 500 {object} dto.PostingResponse "Failed to reverse reference"
// @Security BearerAuth
// @Router /ledger/references/reverse [post]
func (h *postingHandler) reverseReference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReverseReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReverseReference", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	pr, ok := postingRequest(c)
	if !ok {
		logger.Error("Principal not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("reference_type", req.ReferenceType), slog.Int64("reference_id", req.ReferenceID))
	result, err := h.postingService.ReverseReference(c.Request.Context(), pr, req)
	if err != nil {
		respondError(c, logger, err, "Failed to reverse reference")
		return
	}

	logger.Info("Reference reversed", slog.Int("rows", len(result.Entries)))
	respondPosted(c, http.StatusCreated, result, "reference reversed")
}

// deleteReference godoc
// @Summary Delete a posted reference group
// @Description Removes every journal row of a reference within the caller's branch scope
// @Tags ledger
// @Produce  json
// @Param   X-Branch-ID header int false "Branch override (admin branch only)"
// @Param   referenceType path string true "Reference type"
// @Param   referenceID path int true "Reference ID"
// @Success 200 {object} dto.PostingResponse
// @Failure 400 {object} dto.PostingResponse "Invalid reference"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} dto.PostingResponse "Reference not found"
// @Failure 500 {object} dto.PostingResponse "Failed to delete reference"
// @Security BearerAuth
// @Router /ledger/references/{referenceType}/{referenceID} [delete]
func (h *postingHandler) deleteReference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	refType, err := services.ParseReferenceType(c.Param("referenceType"))
	if err != nil {
		respondError(c, logger, err, "Invalid reference type")
		return
	}
	refID, ok := parseIDParam(c, "referenceID")
	if !ok {
		logger.Warn("Invalid reference ID", slog.String("reference_id", c.Param("referenceID")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reference ID"})
		return
	}

	pr, ok := postingRequest(c)
	if !ok {
		logger.Error("Principal not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("reference_type", string(refType)), slog.Int64("reference_id", refID))
	removed, err := h.postingService.DeleteReference(c.Request.Context(), pr, refType, refID)
	if err != nil {
		respondError(c, logger, err, "Failed to delete reference")
		return
	}

	logger.Info("Reference deleted", slog.Int64("rows", removed))
	c.JSON(http.StatusOK, dto.PostingResponse{Success: true, Message: "reference deleted", ID: &refID})
}

// guaranteeBalance godoc
// @Summary Get a guarantee balance
// @Description Derives the balance of a customer guarantee in local currency
// @Tags guarantees
// @Produce  json
// @Param   guaranteeID path int true "Guarantee ID"
// @Success 200 {object} dto.GuaranteeBalanceResponse
// @Failure 400 {object} dto.PostingResponse "Invalid guarantee ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} dto.PostingResponse "Guarantee not found"
// @Failure 500 {object} dto.PostingResponse "Failed to compute guarantee balance"
// @Security BearerAuth
// @Router /guarantees/{guaranteeID}/balance [get]
func (h *postingHandler) guaranteeBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	guaranteeID, ok := parseIDParam(c, "guaranteeID")
	if !ok {
		logger.Warn("Invalid guarantee ID", slog.String("guarantee_id", c.Param("guaranteeID")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guarantee ID"})
		return
	}

	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		logger.Error("Principal not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	balance, err := h.postingService.GuaranteeBalance(c.Request.Context(), principal, guaranteeID)
	if err != nil {
		respondError(c, logger.With(slog.Int64("guarantee_id", guaranteeID)), err, "Failed to compute guarantee balance")
		return
	}

	c.JSON(http.StatusOK, dto.GuaranteeBalanceResponse{
		GuaranteeID: balance.GuaranteeID,
		Type:        balance.Type,
		Balance:     balance.Balance,
	})
}
