package service

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mukunt07/subramaniya-mess/internal/dao/mongodb"
	"github.com/Mukunt07/subramaniya-mess/internal/logic"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// OK writes a success envelope.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Status: "ok",
		Code:   http.StatusOK,
		Data:   data,
	})
}

// Created writes a success envelope for newly created resources.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Status: "ok",
		Code:   http.StatusCreated,
		Data:   data,
	})
}

// Fail writes an error envelope with an explicit status code.
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Status:  "error",
		Code:    code,
		Message: message,
	})
}

// FailFromError maps business errors onto HTTP status codes. Unknown errors
// (including aborted transactions) become opaque 500s; the details stay in
// the logs, not the response.
func FailFromError(c *gin.Context, err error) {
	var insufficient *mongodb.InsufficientStockError
	switch {
	case errors.Is(err, logic.ErrEmptyCart),
		errors.Is(err, logic.ErrInvalidQuantity),
		errors.Is(err, logic.ErrInvalidName),
		errors.Is(err, logic.ErrInvalidPrice),
		errors.Is(err, logic.ErrInvalidStock),
		errors.Is(err, logic.ErrInvalidGST):
		Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, logic.ErrItemNotFound),
		errors.Is(err, logic.ErrBillNotFound):
		Fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, logic.ErrAlreadyCancelled):
		Fail(c, http.StatusConflict, err.Error())
	case errors.As(err, &insufficient):
		Fail(c, http.StatusConflict, err.Error())
	default:
		Fail(c, http.StatusInternalServerError, "internal server error")
	}
}
