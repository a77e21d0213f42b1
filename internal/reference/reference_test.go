package reference

import (
	"strings"
	"testing"
)

func TestTablesNonEmpty(t *testing.T) {
	t.Parallel()

	tables := map[string][]string{
		"first names":       FirstNames,
		"last names":        LastNames,
		"host roles":        HostRoles,
		"host sites":        HostSites,
		"operating systems": OperatingSystems,
		"cpus":              CPUs,
	}

	for name, table := range tables {
		if len(table) == 0 {
			t.Errorf("%s table is empty", name)
		}
		for i, v := range table {
			if v == "" {
				t.Errorf("%s[%d] is empty", name, i)
			}
		}
	}
}

// Email addresses and hostnames are built directly from these fragments.
func TestNameAndHostFragmentsAreSingleTokens(t *testing.T) {
	t.Parallel()

	for _, table := range [][]string{FirstNames, LastNames, HostRoles, HostSites} {
		for _, v := range table {
			if strings.ContainsAny(v, " @.") {
				t.Errorf("fragment %q contains a separator", v)
			}
		}
	}
}
