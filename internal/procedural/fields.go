package procedural

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/usagechallenge/challenge/internal/reference"
)

// EmailDomain is the domain of every generated address.
const EmailDomain = "example.com"

// Bounds of the generated timestamps.
var (
	EarliestCreated = time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC)
	LatestCreated   = time.Date(2020, time.May, 15, 0, 0, 0, 0, time.UTC)
	LatestUsage     = time.Date(2020, time.May, 28, 0, 0, 0, 0, time.UTC)
)

// Bounds of the usage duration in milliseconds.
const (
	MinUsageTime = 3000
	MaxUsageTime = 86400000
)

// EmailPattern is a common corporate address scheme.
type EmailPattern int

const (
	PatternFLast      EmailPattern = iota // jsmith
	PatternDotted                         // john.smith
	PatternCollated                       // johnsmith
	PatternLast                           // smith
	PatternSnake                          // john_smith
	PatternFLastSnake                     // j_smith
	PatternFirstL                         // johns

	emailPatternCount = iota
)

func (p EmailPattern) String() string {
	switch p {
	case PatternFLast:
		return "flast"
	case PatternDotted:
		return "first.last"
	case PatternCollated:
		return "firstlast"
	case PatternLast:
		return "last"
	case PatternSnake:
		return "first_last"
	case PatternFLastSnake:
		return "f_last"
	case PatternFirstL:
		return "firstl"
	default:
		return fmt.Sprintf("EmailPattern(%d)", int(p))
	}
}

// Address builds the lowercase address for the given names.
func (p EmailPattern) Address(first, last, domain string) string {
	first, last = strings.ToLower(first), strings.ToLower(last)
	var local string
	switch p {
	case PatternFLast:
		local = initial(first) + last
	case PatternDotted:
		local = first + "." + last
	case PatternCollated:
		local = first + last
	case PatternLast:
		local = last
	case PatternSnake:
		local = first + "_" + last
	case PatternFLastSnake:
		local = initial(first) + "_" + last
	default:
		local = first + initial(last)
	}
	return local + "@" + domain
}

func initial(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// UsageDates is the timing part of a usage record.
type UsageDates struct {
	CreatedOn time.Time
	UsageDate time.Time
	UsageTime int64
}

// The sample functions below each note how many draws they consume.

// SampleFirstName draws 1.
func SampleFirstName(s *Stream) string { return pick(s, reference.FirstNames) }

// SampleLastName draws 1.
func SampleLastName(s *Stream) string { return pick(s, reference.LastNames) }

// SampleEmailPattern draws 1.
func SampleEmailPattern(s *Stream) EmailPattern {
	return EmailPattern(s.IntN(emailPatternCount))
}

// SampleIP draws 2 and returns an address in 192.168.[0,128).[1,255).
func SampleIP(s *Stream) string {
	subnet := s.IntN(128)
	host := 1 + s.IntN(254)
	return fmt.Sprintf("192.168.%d.%d", subnet, host)
}

// SampleHostname draws 3, e.g. "build-fra07".
func SampleHostname(s *Stream) string {
	role := pick(s, reference.HostRoles)
	site := pick(s, reference.HostSites)
	n := 1 + s.IntN(99)
	return fmt.Sprintf("%s-%s%02d", role, site, n)
}

// SampleUUID draws 2 and formats all 128 bits as a lowercase hyphenated UUID.
func SampleUUID(s *Stream) string {
	var id uuid.UUID
	binary.BigEndian.PutUint64(id[:8], s.Uint64())
	binary.BigEndian.PutUint64(id[8:], s.Uint64())
	return id.String()
}

// SampleOperatingSystem draws 1.
func SampleOperatingSystem(s *Stream) string { return pick(s, reference.OperatingSystems) }

// SampleCPU draws 1.
func SampleCPU(s *Stream) string { return pick(s, reference.CPUs) }

// SampleDates draws 3. CreatedOn falls in [EarliestCreated, LatestCreated),
// UsageDate in [CreatedOn, LatestUsage), both at millisecond precision.
func SampleDates(s *Stream) UsageDates {
	createdSpan := LatestCreated.Sub(EarliestCreated).Milliseconds()
	created := EarliestCreated.Add(time.Duration(s.Int64Range(0, createdSpan)) * time.Millisecond)

	usageSpan := LatestUsage.Sub(created).Milliseconds()
	usage := created.Add(time.Duration(s.Int64Range(0, usageSpan)) * time.Millisecond)

	return UsageDates{
		CreatedOn: created,
		UsageDate: usage,
		UsageTime: s.Int64Range(MinUsageTime, MaxUsageTime),
	}
}

// SampleBool draws 1.
func SampleBool(s *Stream) bool { return s.Uint64()&1 == 1 }

func pick(s *Stream, table []string) string {
	return table[s.IntN(len(table))]
}
