// SPDX-License-Identifier: MIT

package demo

import (
	"io"
	"time"
)

// referenceDate anchors the time demo so its output is reproducible.
var referenceDate = time.Date(2024, time.February, 28, 9, 30, 0, 0, time.UTC)

func runTime(w io.Writer, _ Input) error {
	p := newPrinter(w)

	p.section("Dates")
	d := referenceDate
	p.printf("reference: %s\n", d.Format(time.RFC3339))
	p.printf("formatted: %s\n", d.Format("02/01/2006 15:04"))
	p.printf("weekday: %s, day of year: %d\n", d.Weekday(), d.YearDay())
	p.printf("plus one day: %s (leap year)\n", d.AddDate(0, 0, 1).Format("2006-01-02"))
	p.printf("plus one month: %s\n", d.AddDate(0, 1, 0).Format("2006-01-02"))
	later := d.Add(36 * time.Hour)
	p.printf("36h later: %s, difference %s\n", later.Format(time.DateTime), later.Sub(d))

	parsed, err := time.Parse(time.DateOnly, "2024-12-25")
	if err != nil {
		return err
	}
	p.printf("days until %s: %.0f\n", parsed.Format(time.DateOnly), parsed.Sub(d.Truncate(24*time.Hour)).Hours()/24)

	return p.err
}
