package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"guardia/internal/model"

	"github.com/gin-gonic/gin"
)

var errInvalidFecha = errors.New("invalid date, expected YYYY-MM-DD")

// FlexID is an id that may arrive as a JSON number or a numeric string.
// null and "" decode to an unset value; anything else that is not a positive
// integer is rejected.
type FlexID struct {
	Value int64
	Valid bool
}

func (f *FlexID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = FlexID{}
		return nil
	}
	s = strings.TrimSpace(strings.Trim(s, `"`))
	if s == "" {
		*f = FlexID{}
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("invalid id %q", s)
	}
	*f = FlexID{Value: v, Valid: true}
	return nil
}

// Ptr returns nil for an unset id.
func (f FlexID) Ptr() *int64 {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// parseFecha normalizes a date to midnight UTC. Full RFC 3339 timestamps are
// accepted and truncated to their date part.
func parseFecha(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(model.FechaLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, errInvalidFecha
}

func formatFecha(t time.Time) string {
	return t.Format(model.FechaLayout)
}

// idParam reads a positive integer path parameter, writing a 400 when it is
// malformed.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

// queryID reads an optional positive integer query parameter.
func queryID(c *gin.Context, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("invalid %s", name)
	}
	return &id, nil
}

// queryFecha reads an optional date query parameter.
func queryFecha(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := parseFecha(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return &t, nil
}

// dateRange resolves desde/hasta query params, defaulting to span days
// starting today.
func dateRange(c *gin.Context, span int) (time.Time, time.Time, error) {
	desde, err := queryFecha(c, "desde")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	hasta, err := queryFecha(c, "hasta")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if desde == nil {
		now := time.Now().UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		desde = &today
	}
	if hasta == nil {
		end := desde.AddDate(0, 0, span-1)
		hasta = &end
	}
	if hasta.Before(*desde) {
		return time.Time{}, time.Time{}, errors.New("hasta must not be before desde")
	}
	return *desde, *hasta, nil
}
