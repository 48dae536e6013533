package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	request "university_billing/internal/adapter/http/dto/request"
	response "university_billing/internal/adapter/http/dto/response"
	"university_billing/internal/adapter/http/middleware"
	"university_billing/internal/infrastructure/reports"
	"university_billing/internal/usecase"
	"university_billing/pkg"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	errInvalidFeePayload     = pkg.NewDomainErrorSimple("INVALID_FEE_INPUT", "Invalid inscription fee payload", http.StatusBadRequest)
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment update payload", http.StatusBadRequest)
)

// InscriptionFeeHandler handles HTTP requests for inscription fees.
type InscriptionFeeHandler struct {
	usecase usecase.IInscriptionFeeUseCase
	now     func() time.Time
}

func NewInscriptionFeeHandler(uc usecase.IInscriptionFeeUseCase) *InscriptionFeeHandler {
	return &InscriptionFeeHandler{usecase: uc, now: func() time.Time { return time.Now().UTC() }}
}

func (h *InscriptionFeeHandler) ListFees(c *gin.Context) {
	fees, err := h.usecase.GetAll(c.Request.Context())
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, response.FromInscriptionFees(fees, h.now()))
}

func (h *InscriptionFeeHandler) GetFee(c *gin.Context) {
	fee, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromInscriptionFee(fee, h.now()))
}

func (h *InscriptionFeeHandler) ListFeesByStudent(c *gin.Context) {
	fees, err := h.usecase.ListByStudentID(c.Request.Context(), c.Param("student_id"))
	if err != nil {
		h.fail(c, "list-by-student", err)
		return
	}
	c.JSON(http.StatusOK, response.FromInscriptionFees(fees, h.now()))
}

func (h *InscriptionFeeHandler) CreateFee(c *gin.Context) {
	var payload request.InscriptionFeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFeePayload.HTTPStatus, errInvalidFeePayload.ToHTTPError())
		return
	}
	fee, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidFeePayload.HTTPStatus, errInvalidFeePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), fee, middleware.ActorID(c))
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromInscriptionFee(created, h.now()))
}

func (h *InscriptionFeeHandler) ReplaceFee(c *gin.Context) {
	var payload request.InscriptionFeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFeePayload.HTTPStatus, errInvalidFeePayload.ToHTTPError())
		return
	}
	fee, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidFeePayload.HTTPStatus, errInvalidFeePayload.ToHTTPError())
		return
	}

	replaced, err := h.usecase.Replace(c.Request.Context(), c.Param("id"), fee, middleware.ActorID(c))
	if err != nil {
		h.fail(c, "replace", err)
		return
	}
	c.JSON(http.StatusOK, response.FromInscriptionFee(replaced, h.now()))
}

// UpdatePayment records the total paid so far; the status follows from the amounts.
func (h *InscriptionFeeHandler) UpdatePayment(c *gin.Context) {
	var payload request.PaymentUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	update, err := payload.ToEntity(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdatePayment(c.Request.Context(), update, middleware.ActorID(c))
	if err != nil {
		h.fail(c, "update-payment", err)
		return
	}
	c.JSON(http.StatusOK, response.FromInscriptionFee(updated, h.now()))
}

func (h *InscriptionFeeHandler) DeleteFee(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InscriptionFeeHandler) GetStatistics(c *gin.Context) {
	stats, err := h.usecase.GetStatistics(c.Request.Context())
	if err != nil {
		h.fail(c, "statistics", err)
		return
	}
	c.JSON(http.StatusOK, response.FromFeeStatistics(stats))
}

// ExportFees streams every fee and the statistics as an xlsx workbook.
func (h *InscriptionFeeHandler) ExportFees(c *gin.Context) {
	report, err := h.usecase.GetReport(c.Request.Context())
	if err != nil {
		h.fail(c, "export", err)
		return
	}

	var buf bytes.Buffer
	if err := reports.WriteFeeWorkbook(&buf, report.Fees, report.Statistics, report.GeneratedAt); err != nil {
		h.fail(c, "export", err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+reports.FileName(report.GeneratedAt))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// Checkout charges the outstanding balance of a fee through Mercado Pago.
func (h *InscriptionFeeHandler) Checkout(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[fee][handler] checkout start fee_id=%s", id)

	payload, err := readCheckoutPayload(c)
	if err != nil {
		log.Printf("[fee][handler] invalid checkout payload fee_id=%s err=%v", id, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.Checkout(c.Request.Context(), id, payload, middleware.ActorID(c))
	if err != nil {
		h.fail(c, "checkout", err)
		return
	}
	log.Printf("[fee][handler] checkout done fee_id=%s provider_payment_id=%s provider_status=%s", id, result.ProviderPaymentID, result.ProviderStatus)
	c.JSON(http.StatusOK, response.FromCheckoutResult(result, h.now()))
}

func (h *InscriptionFeeHandler) fail(c *gin.Context, op string, err error) {
	appErr := mapInscriptionFeeError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[fee][handler] %s failed path=%s err=%v", op, c.Request.URL.Path, err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// readCheckoutPayload accepts {"mp_payload": {...}}, a bare provider payload or an empty body.
func readCheckoutPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope request.CheckoutRequest
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.MPPayload != nil {
		wrapped := strings.TrimSpace(string(envelope.MPPayload))
		if wrapped == "" || wrapped == "null" {
			return nil, errors.New("mp_payload cannot be empty")
		}
		return envelope.MPPayload, nil
	}
	return json.RawMessage(raw), nil
}

func mapInscriptionFeeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFeeID), errors.Is(err, usecase.ErrInvalidStudentID),
		errors.Is(err, usecase.ErrInvalidCheckoutPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInscriptionFee):
		return pkg.NewDomainError("VALIDATION_FAILED", "Inscription fee validation failed", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentUpdate):
		return pkg.NewDomainError("VALIDATION_FAILED", "Payment update validation failed", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInscriptionFeeNotFound):
		return pkg.NewDomainErrorSimple("FEE_NOT_FOUND", "Inscription fee not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFeeAlreadySettled):
		return pkg.NewDomainErrorSimple("FEE_ALREADY_SETTLED", "Inscription fee already settled", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Online payment is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
