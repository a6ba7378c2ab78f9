/*
Package registry serializes access to named team charts.

A hierarchy.Tree is not safe for concurrent use. The Registry wraps every
operation on a chart in a per-chart lock (plus an optional distributed lock),
loads the chart from a ports.ChartStore, applies the operation and saves the
result, so concurrent callers observe each insertion atomically.
*/
package registry
