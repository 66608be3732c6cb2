// Package handler binds HTTP payloads, validates them, and delegates to
// the services. Handlers never touch the stores directly.
package handler

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"partnerdesk/internal/domain"
)

// Date accepts "2006-01-02" or full RFC 3339 timestamps in JSON bodies.
type Date struct{ time.Time }

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q", s)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(time.RFC3339))
}

// pathID parses a numeric :param. It writes no response; callers answer
// with 400 when ok is false.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// dateField lifts a tri-state Date into the domain's time.Time field.
func dateField(f domain.Field[Date]) domain.Field[time.Time] {
	if !f.Present() {
		return domain.Field[time.Time]{}
	}
	if f.IsNull() {
		return domain.Null[time.Time]()
	}
	return domain.Set(f.Value().Time)
}
