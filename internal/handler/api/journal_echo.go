package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"FoxJournal/internal/domain/models"
	"FoxJournal/internal/usecase"
	xhttp "FoxJournal/pkg/http"
	"FoxJournal/pkg/kv"
	xlogger "FoxJournal/pkg/logger"
)

// JournalEchoHandler exposes the journal core over HTTP.
type JournalEchoHandler struct {
	logger     *xlogger.Logger
	journal    *usecase.Journal
	statistics *usecase.Statistics
	reset      *usecase.Reset
	settings   *usecase.SettingsManager
}

func NewJournalEchoHandler(
	logger *xlogger.Logger,
	journal *usecase.Journal,
	statistics *usecase.Statistics,
	reset *usecase.Reset,
	settings *usecase.SettingsManager,
) *JournalEchoHandler {
	return &JournalEchoHandler{
		logger:     logger,
		journal:    journal,
		statistics: statistics,
		reset:      reset,
		settings:   settings,
	}
}

func (h *JournalEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/transactions", h.CreateTransaction)
	g.GET("/transactions", h.ListTransactions)
	g.PUT("/transactions/:id", h.UpdateTransaction)
	g.DELETE("/transactions/:id", h.DeleteTransaction)
	g.GET("/risk", h.RiskState)
	g.POST("/risk/reset", h.ResetRisk)
	g.GET("/statistics", h.Statistics)
	g.POST("/reset", h.ResetAll)
	g.GET("/reset", h.Overview)
	g.GET("/settings", h.GetSettings)
	g.PUT("/settings", h.UpdateSettings)
}

func (h *JournalEchoHandler) CreateTransaction(c echo.Context) error {
	req := &models.CreateTransactionRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	tx, err := h.journal.Append(c.Request().Context(), models.TransactionCandidate{
		Date:        req.Date,
		Amount:      decimal.NewFromFloat(req.Amount),
		Type:        models.TransactionType(req.Type),
		Description: req.Description,
	})
	if err != nil {
		if !errors.Is(err, models.ErrRiskActive) {
			h.logger.Error("create transaction", xlogger.Error(err))
		}
		return xhttp.AppErrorResponse(c, toAppError(err))
	}
	return xhttp.CreatedResponse(c, tx)
}

func (h *JournalEchoHandler) ListTransactions(c echo.Context) error {
	req := &models.ListTransactionsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	txs, err := h.journal.List(c.Request().Context(), models.TransactionFilter{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Type:      models.TransactionType(req.Type),
	})
	if err != nil {
		h.logger.Error("list transactions", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, toAppError(err))
	}
	return xhttp.ListResponse(c, txs, int64(len(txs)))
}

func (h *JournalEchoHandler) UpdateTransaction(c echo.Context) error {
	req := &models.UpdateTransactionRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	patch := models.TransactionPatch{
		Date:        req.Date,
		Description: req.Description,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		patch.Amount = &amount
	}
	if req.Type != nil {
		txType := models.TransactionType(*req.Type)
		patch.Type = &txType
	}

	tx, err := h.journal.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			h.logger.Error("update transaction", xlogger.Error(err))
		}
		return xhttp.AppErrorResponse(c, toAppError(err))
	}
	return xhttp.SuccessResponse(c, tx)
}

func (h *JournalEchoHandler) DeleteTransaction(c echo.Context) error {
	if err := h.journal.Remove(c.Request().Context(), c.Param("id")); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			h.logger.Error("delete transaction", xlogger.Error(err))
		}
		return xhttp.AppErrorResponse(c, toAppError(err))
	}
	return xhttp.NoContentResponse(c)
}

func (h *JournalEchoHandler) RiskState(c echo.Context) error {
	view, err := h.journal.RiskState(c.Request().Context())
	if err != nil {
		h.logger.Error("risk state", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, toAppError(err))
	}
	return xhttp.SuccessResponse(c, view)
}

func (h *JournalEchoHandler) ResetRisk(c echo.Context) error {
	if err := h.journal.ResetRisk(c.Request().Context()); err != nil {
		h.logger.Error("reset risk", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, toAppError(err))
	}
	view, err := h.journal.RiskState(c.Request().Context())
	if err != nil {
		return xhttp.AppErrorResponse(c, toAppError(err))
	}
	return xhttp.SuccessResponse(c, view)
}

func (h *JournalEchoHandler) Statistics(c echo.Context) error {
	req := &models.StatisticsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	snap, err := h.statistics.Compute(c.Request().Context(), models.Period(req.Period), req.Date)
	if err != nil {
		h.logger.Error("statistics", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, toAppError(err))
	}
	return xhttp.SuccessResponse(c, snap)
}

func (h *JournalEchoHandler) ResetAll(c echo.Context) error {
	req := &models.ResetAllRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	resetAt, err := h.reset.ResetAll(c.Request().Context(), req.ConfirmCode)
	if err != nil {
		if !errors.Is(err, models.ErrInvalidConfirmation) {
			h.logger.Error("reset all", xlogger.Error(err))
		}
		return xhttp.AppErrorResponse(c, toAppError(err))
	}
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"message":   "all data reset to initial state",
		"resetTime": resetAt,
	})
}

func (h *JournalEchoHandler) Overview(c echo.Context) error {
	overview, err := h.reset.Overview(c.Request().Context())
	if err != nil {
		h.logger.Error("system overview", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, toAppError(err))
	}
	return xhttp.SuccessResponse(c, overview)
}

func (h *JournalEchoHandler) GetSettings(c echo.Context) error {
	settings, err := h.settings.Get(c.Request().Context())
	if err != nil {
		h.logger.Error("get settings", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, toAppError(err))
	}
	return xhttp.SuccessResponse(c, settings)
}

func (h *JournalEchoHandler) UpdateSettings(c echo.Context) error {
	req := &models.UpdateSettingsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	settings, err := h.settings.Update(c.Request().Context(), models.SettingsPatch{
		Currency:          req.Currency,
		RiskAlertEnabled:  req.RiskAlertEnabled,
		Theme:             req.Theme,
		AutoBackup:        req.AutoBackup,
		DataRetentionDays: req.DataRetentionDays,
	})
	if err != nil {
		h.logger.Error("update settings", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, toAppError(err))
	}
	return xhttp.SuccessResponse(c, settings)
}

// toAppError maps domain errors onto transport-level application errors.
func toAppError(err error) *xhttp.AppError {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		return xhttp.NewAppError("ERR_VALIDATION", verr.Field, verr.Message, http.StatusBadRequest)
	case errors.Is(err, models.ErrRiskActive):
		return xhttp.ForbiddenError("ERR_RISK_ACTIVE",
			"risk control active: new entries are blocked until the next day")
	case errors.Is(err, models.ErrNotFound):
		return xhttp.NotFoundError("transaction not found")
	case errors.Is(err, models.ErrInvalidConfirmation):
		return xhttp.NewAppError("ERR_INVALID_CONFIRMATION", "confirmCode",
			"confirmation code does not match", http.StatusBadRequest)
	case errors.Is(err, kv.ErrUnavailable):
		return xhttp.ServiceUnavailableError("storage unavailable").WithError(err)
	default:
		return xhttp.InternalError("internal error").WithError(err)
	}
}
