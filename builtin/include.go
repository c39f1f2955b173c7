package builtin

import (
	"github.com/djedproject/formatter"
)

// Include registers date, time, datetime, timedelta and size, and defaults
// the timezone setting to UTC.
//
//	c := formatter.NewConfigurator()
//	c.Include("builtin", builtin.Include)
func Include(c *formatter.Configurator) {
	c.Settings().SetDefaultTimezone(formatter.DefaultTimezone)

	c.AddFormatter("date", Date, formatter.WithDescription("Calendar date in the request locale."))
	c.AddFormatter("time", Time, formatter.WithDescription("Clock time in the request locale and timezone."))
	c.AddFormatter("datetime", DateTime, formatter.WithDescription("Date and time in the request locale and timezone."))
	c.AddFormatter("timedelta", Timedelta, formatter.WithDescription("Duration as a clock, a breakdown, seconds or an approximation."))
	c.AddFormatter("size", Size, formatter.WithDescription("Byte count in B, KB, MB or GB."))
}
