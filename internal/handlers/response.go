package handlers

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/SscSPs/branch_ledger/internal/apperrors"
	"github.com/SscSPs/branch_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/branch_ledger/internal/core/ports/services"
	"github.com/SscSPs/branch_ledger/internal/dto"
	"github.com/SscSPs/branch_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// respondError writes the status and caller-facing message of err. Server-side failures are
// logged at error level, everything else at warn.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := apperrors.StatusCode(err)
	if status >= 500 {
		logger.Error(fallback, slog.String("error", err.Error()))
	} else {
		logger.Warn(fallback, slog.String("error", err.Error()))
	}
	c.JSON(status, dto.PostingResponse{Success: false, Message: apperrors.PublicMessage(err, fallback)})
}

// respondPosted writes the envelope of a committed posting.
func respondPosted(c *gin.Context, status int, result *domain.PostingResult, message string) {
	resp := dto.PostingResponse{Success: true, Message: message}
	if result != nil {
		id := result.ReferenceID
		resp.ID = &id
		resp.VoucherNo = result.VoucherNo
	}
	c.JSON(status, resp)
}

// postingRequest reads the principal and branch override the auth middlewares stored.
func postingRequest(c *gin.Context) (portssvc.PostingRequest, bool) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		return portssvc.PostingRequest{}, false
	}
	return portssvc.PostingRequest{Principal: principal, BranchOverride: middleware.GetBranchOverride(c)}, true
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// optionalInt64Query returns nil for a missing parameter.
func optionalInt64Query(c *gin.Context, name string) (*int64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, apperrors.NewValidationError("%s must be a positive integer", name)
	}
	return &v, nil
}

// optionalDateQuery parses a YYYY-MM-DD parameter, nil when missing.
func optionalDateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, apperrors.NewValidationError("%s must be a date in YYYY-MM-DD format", name)
	}
	return &t, nil
}
