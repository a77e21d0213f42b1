package procedural

import (
	"errors"
	"fmt"
	"time"

	"github.com/usagechallenge/challenge/internal/jsonv"
)

// ErrInvariant reports a record that generation itself produced in an
// impossible shape. It indicates a bug, not bad input.
var ErrInvariant = errors.New("procedural: record invariant violated")

// Probabilities of the per-record corruption rules.
const (
	pDropName      = 0.10
	pBlankEmail    = 0.10
	pDropCPU       = 0.10
	pDropUsageTime = 0.05
	pEpochDate     = 0.15
	pRFC2822Date   = 0.15
	pProfileImage  = 0.40
)

var nameFields = [...]string{"first_name", "last_name", "full_name"}

// Mutate degrades record in place according to difficulty. Rules are cumulative:
//
//	2: shuffle the key order of every object
//	3: drop a name field, blank the email, drop cpu, drop usage_time
//	5: rewrite usage_date as Unix seconds or RFC 2822 text
//	6: attach a large profile picture to the account
//
// Levels 4 and 7 change the response, not the record, and have no rule here.
// Rules run in the order above and draw from s in a fixed order.
func Mutate(s *Stream, difficulty int, record jsonv.Value) error {
	root, ok := record.AsObject()
	if !ok {
		return fmt.Errorf("%w: record is a %s", ErrInvariant, record.Kind())
	}

	if difficulty >= 2 {
		shuffleKeys(s, record)
	}
	if difficulty >= 3 {
		if err := dropFields(s, root); err != nil {
			return err
		}
	}
	if difficulty >= 5 {
		if err := varyTimestamp(s, root); err != nil {
			return err
		}
	}
	if difficulty >= 6 {
		if err := attachImage(s, root); err != nil {
			return err
		}
	}
	return nil
}

func shuffleKeys(s *Stream, record jsonv.Value) {
	jsonv.WalkObjects(record, func(m *jsonv.Map) {
		s.Shuffle(m.Len(), m.Swap)
	})
}

func dropFields(s *Stream, root *jsonv.Map) error {
	account, err := child(root, "account")
	if err != nil {
		return err
	}
	device, err := child(root, "device")
	if err != nil {
		return err
	}

	if s.Chance(pDropName) {
		account.Delete(nameFields[s.IntN(len(nameFields))])
	}
	if s.Chance(pBlankEmail) {
		account.Set("email", jsonv.StringValue(""))
	}
	if s.Chance(pDropCPU) {
		device.Delete("cpu")
	}
	if s.Chance(pDropUsageTime) {
		root.Delete("usage_time")
	}
	return nil
}

// varyTimestamp only touches a usage_date in canonical form. A missing
// usage_date consumes no draws.
func varyTimestamp(s *Stream, root *jsonv.Map) error {
	raw, ok := root.Get("usage_date")
	if !ok {
		return nil
	}
	text, ok := raw.AsString()
	if !ok {
		return fmt.Errorf("%w: usage_date is a %s", ErrInvariant, raw.Kind())
	}
	date, err := time.Parse(time.RFC3339, text)
	if err != nil {
		return fmt.Errorf("%w: parse usage_date: %v", ErrInvariant, err)
	}

	if s.Chance(pEpochDate) {
		root.Set("usage_date", jsonv.IntValue(date.Unix()))
	} else if s.Chance(pRFC2822Date) {
		root.Set("usage_date", jsonv.StringValue(date.Format(RFC2822Layout)))
	}
	return nil
}

func attachImage(s *Stream, root *jsonv.Map) error {
	if !s.Chance(pProfileImage) {
		return nil
	}
	account, err := child(root, "account")
	if err != nil {
		return err
	}
	picture, err := ProfilePicture()
	if err != nil {
		return fmt.Errorf("%w: render profile picture: %v", ErrInvariant, err)
	}
	account.Set("profile_picture", jsonv.StringValue(picture))
	return nil
}

func child(m *jsonv.Map, key string) (*jsonv.Map, error) {
	v, ok := m.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q", ErrInvariant, key)
	}
	obj, ok := v.AsObject()
	if !ok {
		return nil, fmt.Errorf("%w: %q is a %s", ErrInvariant, key, v.Kind())
	}
	return obj, nil
}
