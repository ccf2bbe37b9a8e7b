// Package handlers wires the HTTP routes to the services layer. Every
// handler loads what it needs through the store, delegates the business
// decision to services, and maps the error taxonomy onto an HTTP
// status in one place.
package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"github.com/shopspring/decimal"

	"atelierbrocs/models"
)

// writeError maps a service error onto the HTTP surface. Validation
// problems come back before any mutation, so a 4xx here always means
// nothing was written.
func writeError(e *core.RequestEvent, err error) error {
	status := http.StatusInternalServerError
	switch {
	case models.IsValidation(err):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrInvalidState), errors.Is(err, models.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, models.ErrStorageUnavailable):
		status = http.StatusServiceUnavailable
	}
	if status == http.StatusInternalServerError {
		log.Printf("handlers: unexpected error: %v", err)
	}
	return e.JSON(status, map[string]string{"error": err.Error()})
}

// formDecimal parses a monetary form field. An empty field is zero.
func formDecimal(e *core.RequestEvent, field string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(e.Request.FormValue(field))
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		return decimal.Zero, &models.ValidationError{Field: field, Message: "not a number"}
	}
	return d, nil
}

// formFloat parses an hours form field. An empty field is zero.
func formFloat(e *core.RequestEvent, field string) (float64, error) {
	raw := strings.TrimSpace(e.Request.FormValue(field))
	if raw == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return 0, &models.ValidationError{Field: field, Message: "not a number"}
	}
	return f, nil
}

// formInt parses an integer form field. An empty field is zero.
func formInt(e *core.RequestEvent, field string) (int, error) {
	raw := strings.TrimSpace(e.Request.FormValue(field))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &models.ValidationError{Field: field, Message: "not an integer"}
	}
	return n, nil
}

// formDate parses a yyyy-mm-dd form field, defaulting to today.
func formDate(e *core.RequestEvent, field string) (time.Time, error) {
	raw := strings.TrimSpace(e.Request.FormValue(field))
	if raw == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, &models.ValidationError{Field: field, Message: "expected yyyy-mm-dd"}
	}
	return t, nil
}

// pathInt parses an integer path value.
func pathInt(e *core.RequestEvent, name string) (int, error) {
	n, err := strconv.Atoi(e.Request.PathValue(name))
	if err != nil {
		return 0, &models.ValidationError{Field: name, Message: "not an integer id"}
	}
	return n, nil
}

func sanitizeFilename(name string) string {
	r := strings.NewReplacer(" ", "-", "/", "-", "\\", "-", ":", "-")
	return r.Replace(name)
}
