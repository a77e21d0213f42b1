package procedural

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func render(t *testing.T, difficulty int, pageNo uint64, n int) []byte {
	t.Helper()

	g, err := NewGenerator(difficulty, pageNo)
	require.NoError(t, err)

	var buf []byte
	for record, err := range g.Take(n) {
		require.NoError(t, err)
		buf = record.AppendJSON(buf)
		buf = append(buf, '\n')
	}
	return buf
}

func TestSeed(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint64(10<<17+5), Seed(1, 5))
	require.Equal(t, uint64(10<<22), Seed(6, 0))
	require.NotEqual(t, Seed(2, 0), Seed(3, 0))
	require.NotEqual(t, Seed(2, 10), Seed(2, 11))
}

func TestGenerator_Deterministic(t *testing.T) {
	t.Parallel()

	for difficulty := MinDifficulty; difficulty < Complete; difficulty++ {
		first := render(t, difficulty, 12, 50)
		second := render(t, difficulty, 12, 50)
		require.True(t, bytes.Equal(first, second), "difficulty %d not reproducible", difficulty)
	}
}

func TestGenerator_PagesDiffer(t *testing.T) {
	t.Parallel()

	require.NotEqual(t, render(t, 1, 0, 10), render(t, 1, 1, 10))
	require.NotEqual(t, render(t, 1, 3, 10), render(t, 2, 3, 10))
}

func TestGenerator_RejectsOutOfRange(t *testing.T) {
	t.Parallel()

	for _, d := range []int{-1, 0, Complete, 12} {
		_, err := NewGenerator(d, 0)
		require.ErrorIs(t, err, ErrDifficulty)
	}
}

func TestGenerator_TakeStopsEarly(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator(1, 0)
	require.NoError(t, err)

	count := 0
	for range g.Take(100) {
		count++
		if count == 3 {
			break
		}
	}
	require.Equal(t, 3, count)
}

type canonicalRecord struct {
	UUID    string `json:"uuid"`
	Account struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		FullName  string `json:"full_name"`
		Email     string `json:"email"`
		CreatedOn string `json:"created_on"`
		IsDemo    *bool  `json:"is_demo"`
	} `json:"account"`
	Device struct {
		Hostname        string `json:"hostname"`
		IPAddress       string `json:"ip_address"`
		OperatingSystem string `json:"operating_system"`
		CPU             string `json:"cpu"`
	} `json:"device"`
	UsageDate string `json:"usage_date"`
	UsageTime *int64 `json:"usage_time"`
}

func TestGenerator_LevelOneRecordsAreWellFormed(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator(1, 5)
	require.NoError(t, err)

	wantKeys := []string{"uuid", "account", "device", "usage_date", "usage_time"}
	for record, err := range g.Take(10) {
		require.NoError(t, err)
		root, _ := record.AsObject()
		require.Equal(t, wantKeys, root.Keys())

		var r canonicalRecord
		require.NoError(t, json.Unmarshal([]byte(record.String()), &r))
		require.NotEmpty(t, r.UUID)
		require.NotEmpty(t, r.Account.FirstName)
		require.NotEmpty(t, r.Account.LastName)
		require.Equal(t, r.Account.FirstName+" "+r.Account.LastName, r.Account.FullName)
		require.NotEmpty(t, r.Account.Email)
		require.NotNil(t, r.Account.IsDemo)
		require.NotEmpty(t, r.Device.Hostname)
		require.NotEmpty(t, r.Device.IPAddress)
		require.NotEmpty(t, r.Device.OperatingSystem)
		require.NotEmpty(t, r.Device.CPU)
		require.NotNil(t, r.UsageTime)

		created, err := time.Parse(time.RFC3339, r.Account.CreatedOn)
		require.NoError(t, err)
		used, err := time.Parse(time.RFC3339, r.UsageDate)
		require.NoError(t, err)
		require.False(t, used.Before(created))
		require.True(t, created.Before(LatestCreated))
		require.Equal(t, r.UsageDate, FormatTimestamp(used))
	}
}
