/*
Package observability provides in-process introspection for a running
pipeline.

The Aggregator is a sink that folds every record and change into plain
counters, with a JSON snapshot for the HTTP /stats endpoint and for hosts
that poll state directly instead of scraping Prometheus.
*/
package observability
