package tableview

import (
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	rows := []table.Row{
		{"orders_OFFLINE", "OFFLINE"},
		{"clicks_REALTIME", "REALTIME"},
		{"error_log_OFFLINE", "OFFLINE"},
	}

	cases := map[string]struct {
		query string
		want  []string
	}{
		"empty query": {
			query: "",
			want:  []string{"orders_OFFLINE", "clicks_REALTIME", "error_log_OFFLINE"},
		},
		"blank query": {
			query: "   ",
			want:  []string{"orders_OFFLINE", "clicks_REALTIME", "error_log_OFFLINE"},
		},
		"case insensitive": {
			query: "ORD",
			want:  []string{"orders_OFFLINE"},
		},
		"fuzzy": {
			query: "clkrt",
			want:  []string{"clicks_REALTIME"},
		},
		"any column": {
			query: "realtime",
			want:  []string{"clicks_REALTIME"},
		},
		"no match": {
			query: "segments",
			want:  []string{},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := []string{}
			for _, row := range Filter(rows, tc.query) {
				got = append(got, row[0])
			}

			require.Equal(t, tc.want, got)
		})
	}
}
