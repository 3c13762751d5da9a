package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/wallet_ledger_app/internal/apperrors"
	"github.com/SscSPs/wallet_ledger_app/internal/core/domain"
	"github.com/SscSPs/wallet_ledger_app/internal/core/ledger"
	portssvc "github.com/SscSPs/wallet_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger_app/internal/dto"
	"github.com/SscSPs/wallet_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for wallet and transaction views.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// RegisterLedgerRoutes registers wallet, transaction and dashboard routes on rg.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	rg.GET("/wallet", h.getWallet)
	rg.GET("/dashboard", h.getDashboard)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.GET("/analytics", h.getAnalytics)
		transactions.GET("/export", h.exportTransactions)
	}
}

// callerOrAbort returns the authenticated caller, writing a 401 when there is none.
func callerOrAbort(c *gin.Context, logger *slog.Logger) (domain.Caller, bool) {
	caller, ok := middleware.GetCallerFromContext(c)
	if !ok {
		handleServiceError(c, logger, fmt.Errorf("%w: caller not found in context", apperrors.ErrUnauthorized), "identify caller")
		return domain.Caller{}, false
	}
	return caller, true
}

// bindCriteria binds and converts the shared query parameters, writing a 400 on failure.
func bindCriteria(c *gin.Context, logger *slog.Logger) (dto.ListTransactionsParams, domain.FilterCriteria, bool) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return params, domain.FilterCriteria{}, false
	}

	criteria, err := params.ToFilterCriteria()
	if err != nil {
		logger.Warn("Invalid filter criteria", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return params, domain.FilterCriteria{}, false
	}
	return params, criteria, true
}

// handleServiceError maps service errors to HTTP responses.
func handleServiceError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Invalid request", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Error("Caller identity missing", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Caller forbidden", slog.String("action", action))
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to view these transactions"})
	case errors.Is(err, apperrors.ErrSourceUnavailable):
		logger.Error("Transaction source unavailable", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Transaction data is temporarily unavailable"})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// getWallet godoc
// @Summary Get wallet balance
// @Description Computes the balance, totals and reserved amount over every transaction visible to the caller
// @Tags wallet
// @Produce json
// @Success 200 {object} dto.WalletResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (role has no ledger access)"
// @Failure 503 {object} map[string]string "Transaction source unavailable"
// @Failure 500 {object} map[string]string "Failed to compute wallet"
// @Security BearerAuth
// @Router /wallet [get]
func (h *ledgerHandler) getWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, ok := callerOrAbort(c, logger)
	if !ok {
		return
	}

	wallet, err := h.ledgerService.Wallet(c.Request.Context(), caller)
	if err != nil {
		handleServiceError(c, logger, err, "compute wallet")
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletResponse(*wallet))
}

// listTransactions godoc
// @Summary List transactions
// @Description Filters, sorts and pages the transactions visible to the caller
// @Tags transactions
// @Produce json
// @Param search query string false "Case-insensitive text or phone number search"
// @Param kind query string false "credit, debit, transfer or refund"
// @Param status query string false "success, pending, failed or reversed"
// @Param dateFrom query string false "Inclusive lower bound (YYYY-MM-DD or RFC3339)"
// @Param dateTo query string false "Inclusive upper bound (YYYY-MM-DD covers the whole day)"
// @Param amountFrom query string false "Inclusive minimum amount"
// @Param amountTo query string false "Inclusive maximum amount"
// @Param sort query string false "recent, oldest, amount-desc or amount-asc" default(recent)
// @Param strictDates query bool false "Exclude undated records when a date bound is set"
// @Param page query int false "1-indexed page" default(1)
// @Param pageSize query int false "Items per page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 503 {object} map[string]string "Transaction source unavailable"
// @Security BearerAuth
// @Router /transactions [get]
func (h *ledgerHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, ok := callerOrAbort(c, logger)
	if !ok {
		return
	}
	params, criteria, ok := bindCriteria(c, logger)
	if !ok {
		return
	}

	page, err := h.ledgerService.ListTransactions(c.Request.Context(), caller, criteria, params.Page, params.PageSize)
	if err != nil {
		handleServiceError(c, logger, err, "list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(*page))
}

// getAnalytics godoc
// @Summary Transaction analytics
// @Description Count, totals and success rate over the full filtered set, ignoring pagination
// @Tags transactions
// @Produce json
// @Param search query string false "Case-insensitive text or phone number search"
// @Param kind query string false "credit, debit, transfer or refund"
// @Param status query string false "success, pending, failed or reversed"
// @Param dateFrom query string false "Inclusive lower bound (YYYY-MM-DD or RFC3339)"
// @Param dateTo query string false "Inclusive upper bound (YYYY-MM-DD covers the whole day)"
// @Param amountFrom query string false "Inclusive minimum amount"
// @Param amountTo query string false "Inclusive maximum amount"
// @Param strictDates query bool false "Exclude undated records when a date bound is set"
// @Success 200 {object} dto.AnalyticsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 503 {object} map[string]string "Transaction source unavailable"
// @Security BearerAuth
// @Router /transactions/analytics [get]
func (h *ledgerHandler) getAnalytics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, ok := callerOrAbort(c, logger)
	if !ok {
		return
	}
	_, criteria, ok := bindCriteria(c, logger)
	if !ok {
		return
	}

	analytics, err := h.ledgerService.Analytics(c.Request.Context(), caller, criteria)
	if err != nil {
		handleServiceError(c, logger, err, "compute analytics")
		return
	}

	c.JSON(http.StatusOK, dto.ToAnalyticsResponse(*analytics))
}

// exportTransactions godoc
// @Summary Export transactions
// @Description Downloads the full filtered set as delimited text
// @Tags transactions
// @Produce text/csv
// @Param search query string false "Case-insensitive text or phone number search"
// @Param kind query string false "credit, debit, transfer or refund"
// @Param status query string false "success, pending, failed or reversed"
// @Param dateFrom query string false "Inclusive lower bound (YYYY-MM-DD or RFC3339)"
// @Param dateTo query string false "Inclusive upper bound (YYYY-MM-DD covers the whole day)"
// @Param amountFrom query string false "Inclusive minimum amount"
// @Param amountTo query string false "Inclusive maximum amount"
// @Param sort query string false "recent, oldest, amount-desc or amount-asc" default(recent)
// @Param strictDates query bool false "Exclude undated records when a date bound is set"
// @Success 200 {string} string "Delimited file"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 503 {object} map[string]string "Transaction source unavailable"
// @Security BearerAuth
// @Router /transactions/export [get]
func (h *ledgerHandler) exportTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, ok := callerOrAbort(c, logger)
	if !ok {
		return
	}
	_, criteria, ok := bindCriteria(c, logger)
	if !ok {
		return
	}

	// buffered so a failure can still be reported with a proper status
	var buf bytes.Buffer
	rows, err := h.ledgerService.Export(c.Request.Context(), caller, criteria, &buf)
	if err != nil {
		handleServiceError(c, logger, err, "export transactions")
		return
	}

	filename := ledger.ExportFilename("", time.Now().UTC())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("X-Export-Rows", strconv.Itoa(rows))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// getDashboard godoc
// @Summary Dashboard view
// @Description Wallet, one page of transactions and analytics from a single scope resolution
// @Tags dashboard
// @Produce json
// @Param search query string false "Case-insensitive text or phone number search"
// @Param kind query string false "credit, debit, transfer or refund"
// @Param status query string false "success, pending, failed or reversed"
// @Param dateFrom query string false "Inclusive lower bound (YYYY-MM-DD or RFC3339)"
// @Param dateTo query string false "Inclusive upper bound (YYYY-MM-DD covers the whole day)"
// @Param amountFrom query string false "Inclusive minimum amount"
// @Param amountTo query string false "Inclusive maximum amount"
// @Param sort query string false "recent, oldest, amount-desc or amount-asc" default(recent)
// @Param strictDates query bool false "Exclude undated records when a date bound is set"
// @Param page query int false "1-indexed page" default(1)
// @Param pageSize query int false "Items per page"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 503 {object} map[string]string "Transaction source unavailable"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *ledgerHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, ok := callerOrAbort(c, logger)
	if !ok {
		return
	}
	params, criteria, ok := bindCriteria(c, logger)
	if !ok {
		return
	}

	view, err := h.ledgerService.Dashboard(c.Request.Context(), caller, criteria, params.Page, params.PageSize)
	if err != nil {
		handleServiceError(c, logger, err, "build dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(*view))
}
