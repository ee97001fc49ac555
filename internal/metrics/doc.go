// Package metrics records site rebuild metrics.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no nil checks are needed at call sites:
//
//	w := watch.New(path, watch.Options{Recorder: metrics.NoopRecorder{}})
//
// To export metrics, register a PrometheusRecorder on a registry and serve it
// with HTTPHandler:
//
//	reg := prom.NewRegistry()
//	rec := metrics.NewPrometheusRecorder(reg)
//	http.Handle("/metrics", metrics.HTTPHandler(reg))
package metrics
