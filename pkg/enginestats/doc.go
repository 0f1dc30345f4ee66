// Package enginestats groups rendering engines for analytics reports.
//
// An Aggregator counts renderingengine.RenderingEngine values using the value
// itself as the map key, so grouping follows the engine equality contract
// exactly. By default the full version is dropped before counting and engines
// are grouped by vendor, family and short version; WithFullVersions keeps it.
//
//	agg := enginestats.NewAggregator()
//	for _, ua := range userAgents {
//	    engine, _ := enginedetect.Detect(ua)
//	    agg.Add(engine)
//	}
//
//	report := agg.Snapshot()
//	report.WriteTable(os.Stdout)
//	_ = report.WriteYAML(file)
//
// Report rows are ordered by count, largest first. Each row carries the engine
// hash so reports from different detectors can be joined on it.
package enginestats
