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

// reportingHandler handles the read-only statement and commission reports.
type reportingHandler struct {
	statementService  portssvc.StatementSvc
	commissionService portssvc.CommissionSvc
}

func newReportingHandler(ss portssvc.StatementSvc, cs portssvc.CommissionSvc) *reportingHandler {
	return &reportingHandler{statementService: ss, commissionService: cs}
}

// registerReportingRoutes registers statement and commission routes.
func registerReportingRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvc, commissionService portssvc.CommissionSvc) {
	h := newReportingHandler(statementService, commissionService)

	rg.GET("/statements", h.getStatement)
	reports := rg.Group("/reports")
	{
		reports.GET("/commissions", h.getCommissions)
	}
}

// getStatement godoc
// @Summary Get an account statement
// @Description Returns one block per currency with opening balance, rows or per-account summary, and closing balance
// @Tags reports
// @Produce  json
// @Param   X-Branch-ID header int false "Branch override (admin branch only)"
// @Param   account_id query int false "Account ID; every account visible to the branch when omitted"
// @Param   currency_id query int false "Currency ID; every active currency with rows when omitted"
// @Param   from_date query string false "Start date (YYYY-MM-DD)"
// @Param   to_date query string false "End date (YYYY-MM-DD)"
// @Param   mode query string false "detailed or summary" default(detailed)
// @Success 200 {array} dto.StatementBlockResponse
// @Failure 400 {object} dto.PostingResponse "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} dto.PostingResponse "Failed to compute statement"
// @Security BearerAuth
// @Router /statements [get]
func (h *reportingHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		logger.Error("Principal not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	query, err := statementQuery(c)
	if err != nil {
		respondError(c, logger, err, "Invalid statement query")
		return
	}

	scope := services.ResolveReadScope(principal, middleware.GetBranchOverride(c))
	blocks, err := h.statementService.GetStatement(c.Request.Context(), scope, query)
	if err != nil {
		respondError(c, logger, err, "Failed to compute statement")
		return
	}

	logger.Info("Statement computed", slog.Int("blocks", len(blocks)), slog.String("mode", string(query.Mode)))
	c.JSON(http.StatusOK, dto.ToStatementBlockResponses(blocks))
}

func statementQuery(c *gin.Context) (domain.StatementQuery, error) {
	var q domain.StatementQuery
	var err error
	if q.AccountID, err = optionalInt64Query(c, "account_id"); err != nil {
		return q, err
	}
	if q.CurrencyID, err = optionalInt64Query(c, "currency_id"); err != nil {
		return q, err
	}
	if q.FromDate, err = optionalDateQuery(c, "from_date"); err != nil {
		return q, err
	}
	if q.ToDate, err = optionalDateQuery(c, "to_date"); err != nil {
		return q, err
	}
	q.Mode = domain.StatementMode(c.DefaultQuery("mode", string(domain.StatementDetailed)))
	return q, nil
}

// getCommissions godoc
// @Summary Get the commission report
// @Description Derives restaurant and captain commissions from orders and the contracts active today
// @Tags reports
// @Produce  json
// @Param   X-Branch-ID header int false "Branch override (admin branch only)"
// @Param   from_date query string false "Start date (YYYY-MM-DD)"
// @Param   to_date query string false "End date (YYYY-MM-DD)"
// @Param   restaurant_id query int false "Restaurant ID"
// @Param   captain_id query int false "Captain ID"
// @Success 200 {object} dto.CommissionReportResponse
// @Failure 400 {object} dto.PostingResponse "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} dto.PostingResponse "Failed to compute commissions"
// @Security BearerAuth
// @Router /reports/commissions [get]
func (h *reportingHandler) getCommissions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		logger.Error("Principal not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	q, err := commissionQuery(c)
	if err != nil {
		respondError(c, logger, err, "Invalid commission query")
		return
	}

	scope := services.ResolveReadScope(principal, middleware.GetBranchOverride(c))
	report, err := h.commissionService.Report(c.Request.Context(), scope, q)
	if err != nil {
		respondError(c, logger, err, "Failed to compute commissions")
		return
	}

	logger.Info("Commission report computed", slog.Int("orders", len(report.Orders)))
	c.JSON(http.StatusOK, dto.ToCommissionReportResponse(report))
}

func commissionQuery(c *gin.Context) (domain.CommissionQuery, error) {
	var q domain.CommissionQuery
	var err error
	if q.FromDate, err = optionalDateQuery(c, "from_date"); err != nil {
		return q, err
	}
	if q.ToDate, err = optionalDateQuery(c, "to_date"); err != nil {
		return q, err
	}
	if q.RestaurantID, err = optionalInt64Query(c, "restaurant_id"); err != nil {
		return q, err
	}
	q.CaptainID, err = optionalInt64Query(c, "captain_id")
	return q, err
}
