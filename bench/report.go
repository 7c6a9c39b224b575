// Copyright 2026 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
)

// WriteTable writes rows as an aligned table, one row per line, with a
// throughput column derived from the average latency.
func WriteTable(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "size\talign\tcandidate\tworkers\tmin\tmax\tavg\tthroughput\t")
	for _, r := range rows {
		align := "aligned"
		if !r.Case.Aligned {
			align = "misaligned"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%v\t%v\t%v\t%s\t\n",
			humanize.IBytes(uint64(r.Case.Len())), align, r.Candidate, r.Workers,
			r.Stats.Min, r.Stats.Max, r.Stats.Avg, throughput(r.Case.Len(), r.Stats.Avg))
	}
	return tw.Flush()
}

func throughput(n int, d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return humanize.IBytes(uint64(float64(n)/d.Seconds())) + "/s"
}
