package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/branch_ledger/internal/core/ports/services"
	"github.com/SscSPs/branch_ledger/internal/core/services"
	"github.com/SscSPs/branch_ledger/internal/dto"
	"github.com/SscSPs/branch_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("/tree", h.getAccountTree)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates a chart-of-accounts node; child accounts inherit branch and financial statement from their parent
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} dto.PostingResponse "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} dto.PostingResponse "Parent account not found"
// @Failure 409 {object} dto.PostingResponse "Account code already exists"
// @Failure 500 {object} dto.PostingResponse "Failed to create account"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		logger.Error("Principal not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to create account", slog.String("account_code", req.Code))
	newAccount, err := h.accountService.CreateAccount(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create account")
		return
	}

	logger.Info("Account created successfully", slog.Int64("account_id", newAccount.ID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(newAccount))
}

// getAccountTree godoc
// @Summary Get the account tree
// @Description Returns the chart of accounts visible to the caller's branch, ordered by code
// @Tags accounts
// @Produce  json
// @Param   X-Branch-ID header int false "Branch override (admin branch only)"
// @Success 200 {array} dto.AccountTreeNode
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} dto.PostingResponse "Failed to load account tree"
// @Security BearerAuth
// @Router /accounts/tree [get]
func (h *accountHandler) getAccountTree(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		logger.Error("Principal not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	scope := services.ResolveReadScope(principal, middleware.GetBranchOverride(c))
	roots, err := h.accountService.GetAccountTree(c.Request.Context(), scope)
	if err != nil {
		respondError(c, logger, err, "Failed to load account tree")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountTree(roots))
}
