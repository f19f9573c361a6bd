package api

import (
	"encoding/json"
	"errors"

	"github.com/valyala/fasthttp"

	"github.com/DilipRavikumar/freelance-project/internal/dto"
)

var (
	ErrInvalidEmployeeID = errors.New("invalid employee id")
	ErrInvalidManagerID  = errors.New("invalid manager id")
	ErrInvalidCompanyID  = errors.New("invalid company id")

	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeAlreadyExists = errors.New("employee with the same email, bank account number or PAN already exists")
)

type okResponse struct {
	Status string `json:"status" example:"ok"`
	Msg    string `json:"msg" example:"OK"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type validationResponse struct {
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Errors  []dto.FieldError `json:"errors"`
}

func writeJSON(ctx *fasthttp.RequestCtx, statusCode int, body any) {
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.SetStatusCode(statusCode)

	_ = json.NewEncoder(ctx).Encode(body)
}

func ok(ctx *fasthttp.RequestCtx, msg string) {
	writeJSON(ctx, fasthttp.StatusOK, okResponse{Status: "ok", Msg: msg})
}

func writeError(ctx *fasthttp.RequestCtx, httpStatus int, err error) {
	writeJSON(ctx, httpStatus, errorResponse{Code: fasthttp.StatusMessage(httpStatus), Message: err.Error()})
}

// writeValidationError reports every failing field, not just the first one.
func writeValidationError(ctx *fasthttp.RequestCtx, fieldErrors []dto.FieldError) {
	writeJSON(ctx, fasthttp.StatusBadRequest, validationResponse{
		Code:    fasthttp.StatusMessage(fasthttp.StatusBadRequest),
		Message: "validation failed",
		Errors:  fieldErrors,
	})
}
