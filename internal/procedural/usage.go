package procedural

import (
	"time"

	"github.com/usagechallenge/challenge/internal/jsonv"
)

// TimestampLayout is the canonical timestamp form: RFC 3339, UTC, milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// RFC2822Layout is the textual form used by the timestamp variance rule.
const RFC2822Layout = "Mon, 2 Jan 2006 15:04:05 -0700"

// Usage is one use of a fictional application by one account from one device.
type Usage struct {
	UUID string

	FirstName string
	LastName  string
	FullName  string
	Email     string
	CreatedOn time.Time
	IsDemo    bool

	Hostname        string
	IPAddress       string
	OperatingSystem string
	CPU             string

	UsageDate time.Time
	// UsageTime is the duration of the usage in milliseconds.
	UsageTime int64
}

// SampleUsage synthesizes a consistent record. It consumes a fixed number of
// draws; the order below must not change.
func SampleUsage(s *Stream) Usage {
	first := SampleFirstName(s)
	last := SampleLastName(s)
	pattern := SampleEmailPattern(s)
	ip := SampleIP(s)
	hostname := SampleHostname(s)
	id := SampleUUID(s)
	os := SampleOperatingSystem(s)
	cpu := SampleCPU(s)
	dates := SampleDates(s)
	demo := SampleBool(s)

	return Usage{
		UUID:            id,
		FirstName:       first,
		LastName:        last,
		FullName:        first + " " + last,
		Email:           pattern.Address(first, last, EmailDomain),
		CreatedOn:       dates.CreatedOn,
		IsDemo:          demo,
		Hostname:        hostname,
		IPAddress:       ip,
		OperatingSystem: os,
		CPU:             cpu,
		UsageDate:       dates.UsageDate,
		UsageTime:       dates.UsageTime,
	}
}

// Value converts u into its canonical JSON tree with a stable key order.
func (u Usage) Value() jsonv.Value {
	account := jsonv.NewMap(7)
	account.Set("first_name", jsonv.StringValue(u.FirstName))
	account.Set("last_name", jsonv.StringValue(u.LastName))
	account.Set("full_name", jsonv.StringValue(u.FullName))
	account.Set("email", jsonv.StringValue(u.Email))
	account.Set("created_on", jsonv.StringValue(FormatTimestamp(u.CreatedOn)))
	account.Set("is_demo", jsonv.BoolValue(u.IsDemo))

	device := jsonv.NewMap(4)
	device.Set("hostname", jsonv.StringValue(u.Hostname))
	device.Set("ip_address", jsonv.StringValue(u.IPAddress))
	device.Set("operating_system", jsonv.StringValue(u.OperatingSystem))
	device.Set("cpu", jsonv.StringValue(u.CPU))

	record := jsonv.NewMap(5)
	record.Set("uuid", jsonv.StringValue(u.UUID))
	record.Set("account", jsonv.ObjectValue(account))
	record.Set("device", jsonv.ObjectValue(device))
	record.Set("usage_date", jsonv.StringValue(FormatTimestamp(u.UsageDate)))
	record.Set("usage_time", jsonv.IntValue(u.UsageTime))
	return jsonv.ObjectValue(record)
}

// FormatTimestamp renders t in the canonical form.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
