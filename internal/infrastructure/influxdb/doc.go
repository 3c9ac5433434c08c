// Package influxdb provides time-series metric storage for the light simulator.
//
// This package manages:
//   - Connection to InfluxDB v2 with token authentication
//   - Non-blocking batched writes of state metrics
//   - Asynchronous error reporting via callback
//   - Connection health monitoring
//
// After each successful mutation the API layer records brightness, colour
// temperature, and power as light_metrics points. The integration is
// optional (influxdb.enabled in config.yaml); when disabled the simulator
// skips metric writes entirely.
//
// # Usage
//
//	client, err := influxdb.Connect(cfg.InfluxDB)
//	if errors.Is(err, influxdb.ErrDisabled) {
//	    // run without metrics
//	}
//	defer client.Close()
//
//	client.SetOnError(func(err error) {
//	    logger.Warn("influxdb write failed", "error", err)
//	})
//
//	client.WriteLightMetric("light-kitchen", "brightness", 50)
package influxdb
