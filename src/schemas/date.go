package schemas

import (
	"fmt"
	"strings"
	"time"

	"portfolio-server/src/utils"
)

// Date is a calendar day serialized as "2006-01-02" on the wire.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(fmt.Sprintf("%q", d.Time.Format(utils.ShortDashDateLayout))), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(utils.ShortDashDateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
