package harness

import (
	"github.com/yyyoichi/stegotext"
	"github.com/yyyoichi/stegotext/internal/stats"
)

type groupKey struct {
	cover, secret string
	method        stegotext.Method
}

type group struct {
	embed, extract stats.Sample
	success        map[Format]*stats.Sample
}

// Aggregate groups trials by (cover, secret, method), keeping the order in
// which each group first appears, and averages every group.
// A format missing from a trial counts as a failure for that trial.
func Aggregate(trials []TrialResult) []AggregateResult {
	var (
		order   []groupKey
		groups  = make(map[groupKey]*group)
		formats []Format
		seen    = make(map[Format]bool)
	)
	for _, t := range trials {
		for f := range t.Success {
			if !seen[f] {
				seen[f] = true
				formats = append(formats, f)
			}
		}
	}
	for _, t := range trials {
		k := groupKey{t.Cover, t.Secret, t.Method}
		g, ok := groups[k]
		if !ok {
			g = &group{success: make(map[Format]*stats.Sample, len(formats))}
			for _, f := range formats {
				g.success[f] = new(stats.Sample)
			}
			groups[k] = g
			order = append(order, k)
		}
		g.embed.Add(Milliseconds(t.Embed))
		g.extract.Add(Milliseconds(t.Extract))
		for _, f := range formats {
			g.success[f].AddBool(t.Success[f])
		}
	}

	out := make([]AggregateResult, 0, len(order))
	for _, k := range order {
		g := groups[k]
		a := AggregateResult{
			Cover:           k.cover,
			Secret:          k.secret,
			Method:          k.method,
			Trials:          g.embed.Count(),
			EmbedMS:         g.embed.Mean(),
			ExtractMS:       g.extract.Mean(),
			EmbedStdDevMS:   g.embed.StdDev(),
			ExtractStdDevMS: g.extract.StdDev(),
			Success:         make(map[Format]float64, len(formats)),
		}
		for _, f := range formats {
			a.Success[f] = g.success[f].Percent()
		}
		out = append(out, a)
	}
	return out
}
